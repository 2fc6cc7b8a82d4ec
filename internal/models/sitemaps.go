package models

import "encoding/xml"

// The sitemap protocol namespaces
const (
	SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	NewsNamespace    = "http://www.google.com/schemas/sitemap-news/0.9"
)

// SitemapURL is one <url> element in a <urlset> document.
// Priority is kept as a string so the one decimal formatting survives.
type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// URLSet is a <urlset> sitemap document
type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// NewURLSet creates an empty urlset with the proper namespace
func NewURLSet() *URLSet {
	return &URLSet{Xmlns: SitemapNamespace}
}

// SitemapRef is one <sitemap> element in a <sitemapindex> document
type SitemapRef struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// SitemapIndex is a <sitemapindex> document
type SitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	Xmlns    string       `xml:"xmlns,attr"`
	Sitemaps []SitemapRef `xml:"sitemap"`
}

// NewSitemapIndex creates an empty sitemapindex with the proper namespace
func NewSitemapIndex() *SitemapIndex {
	return &SitemapIndex{Xmlns: SitemapNamespace}
}

// NewsPublication identifies the publication in a news sitemap entry
type NewsPublication struct {
	Name     string `xml:"news:name"`
	Language string `xml:"news:language"`
}

// NewsInfo is the <news:news> block of a news sitemap entry
type NewsInfo struct {
	Publication     NewsPublication `xml:"news:publication"`
	PublicationDate string          `xml:"news:publication_date"`
	Title           string          `xml:"news:title"`
	Keywords        string          `xml:"news:keywords,omitempty"`
}

// NewsURL is one <url> element in a news sitemap
type NewsURL struct {
	Loc  string   `xml:"loc"`
	News NewsInfo `xml:"news:news"`
}

// NewsURLSet is a Google News flavored <urlset> document
type NewsURLSet struct {
	XMLName   xml.Name  `xml:"urlset"`
	Xmlns     string    `xml:"xmlns,attr"`
	XmlnsNews string    `xml:"xmlns:news,attr"`
	URLs      []NewsURL `xml:"url"`
}

// NewNewsURLSet creates an empty news urlset with the proper namespaces
func NewNewsURLSet() *NewsURLSet {
	return &NewsURLSet{Xmlns: SitemapNamespace, XmlnsNews: NewsNamespace}
}
