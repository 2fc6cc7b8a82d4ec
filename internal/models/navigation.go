package models

import "encoding/json"

// NavItem is one resolved navigation link
type NavItem struct {
	Text        string    `json:"text,omitempty"`
	Href        string    `json:"href,omitempty"`
	Target      string    `json:"target,omitempty"`
	Description string    `json:"description,omitempty"`
	Highlighted bool      `json:"highlighted,omitempty"`
	SubItems    []NavItem `json:"sub_items,omitempty"`
}

type Navigation struct {
	Title string    `json:"title,omitempty"`
	Items []NavItem `json:"items,omitempty"`
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (n Navigation) MarshalBinary() (data []byte, err error) {
	return json.Marshal(n)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (n *Navigation) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, n)
}
