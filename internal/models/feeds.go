package models

import "encoding/xml"

// RSSItem is one <item> in an RSS 2.0 channel
type RSSItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description,omitempty"`
	Author      string   `xml:"author,omitempty"`
	Categories  []string `xml:"category,omitempty"`
	PubDate     string   `xml:"pubDate,omitempty"`
	GUID        string   `xml:"guid,omitempty"`
}

// RSSChannel is the <channel> of an RSS 2.0 feed
type RSSChannel struct {
	Title          string    `xml:"title"`
	Link           string    `xml:"link"`
	Description    string    `xml:"description"`
	Language       string    `xml:"language,omitempty"`
	LastBuildDate  string    `xml:"lastBuildDate,omitempty"`
	WebMaster      string    `xml:"webMaster,omitempty"`
	ManagingEditor string    `xml:"managingEditor,omitempty"`
	Generator      string    `xml:"generator,omitempty"`
	TTL            int       `xml:"ttl,omitempty"`
	Items          []RSSItem `xml:"item"`
}

// RSS is a complete RSS 2.0 document
type RSS struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel RSSChannel `xml:"channel"`
}

// NewRSS creates an empty RSS 2.0 document
func NewRSS() *RSS {
	return &RSS{Version: "2.0"}
}
