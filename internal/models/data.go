package models

import "html/template"

type HTMLErrorData struct {
	Title   string
	Heading string
	Text    string
}

type JSONErrorData struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// TemplateData is the data passed to every HTML template
type TemplateData struct {
	AppName        string
	AppDescription string
	Title          string
	Description    string
	CanonicalURL   string
	SiteURL        string

	Navigation *Navigation

	Article       *Article
	ArticleHTML   template.HTML
	Articles      Articles
	MainHeadlines Articles
	SubHeadlines  Articles

	Category   *Category
	Categories Categories

	Page *Page

	SearchQuery string
	Pagination  *PaginationInfo
	// Unpaginated base path of the current listing,
	// the pagination element appends page numbers to it
	ListingPath string

	HTMLErrorData *HTMLErrorData
}
