package models

import "encoding/json"

// CategoryRef is a reference to a parent category.
// Only one level of nesting is interpreted.
type CategoryRef struct {
	Title string `json:"title,omitempty"`
	Slug  string `json:"slug,omitempty"`
}

type Category struct {
	Title       string       `json:"title,omitempty"`
	Slug        string       `json:"slug,omitempty"`
	Description string       `json:"description,omitempty"`
	Parent      *CategoryRef `json:"parent,omitempty"`
}

type Categories []Category

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (cats Categories) MarshalBinary() (data []byte, err error) {
	return json.Marshal(cats)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (cats *Categories) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, cats)
}
