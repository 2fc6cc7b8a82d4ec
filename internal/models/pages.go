package models

import "encoding/json"

// Page is a CMS backed static page (about, contact, privacy...)
type Page struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Body        string `json:"body,omitempty"`
}

type Pages []Page

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (p Pages) MarshalBinary() (data []byte, err error) {
	return json.Marshal(p)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (p *Pages) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, p)
}
