package models

import (
	"encoding/json"
	"time"
)

type Author struct {
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
	Bio  string `json:"bio,omitempty"`
}

type Article struct {
	ID                   string     `json:"_id,omitempty"`
	Title                string     `json:"title,omitempty"`
	Description          string     `json:"description,omitempty"`
	Slug                 string     `json:"slug,omitempty"`
	Body                 string     `json:"body,omitempty"`
	CoverURL             string     `json:"cover_url,omitempty"`
	PublishedAt          *time.Time `json:"published_at,omitempty"` // needs pointer to omit the date
	UpdatedAt            *time.Time `json:"updated_at,omitempty"`
	IsDraft              bool       `json:"is_draft,omitempty"`
	IsMainHeadline       bool       `json:"is_main_headline,omitempty"`
	IsSubHeadline        bool       `json:"is_sub_headline,omitempty"`
	Tags                 []string   `json:"tags,omitempty"`
	UniqueLinkingKeyword string     `json:"unique_linking_keyword,omitempty"`
	Categories           []Category `json:"categories,omitempty"`
	Authors              []Author   `json:"authors,omitempty"`
}

// LastModified is the updated time if present, the publish time otherwise
func (a *Article) LastModified() *time.Time {
	if a.UpdatedAt != nil {
		return a.UpdatedAt
	}
	return a.PublishedAt
}

type Articles []Article

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (arts Articles) MarshalBinary() (data []byte, err error) {
	return json.Marshal(arts)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (arts *Articles) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, arts)
}
