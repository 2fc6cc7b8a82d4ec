// Package linking inserts internal links into rendered article HTML.
// Each published article can declare one unique keyword, and the first
// mention of that keyword in another article's text becomes a link.
package linking

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/techhorizons/website/internal/models"
)

const (
	// At most this many links are inserted per document
	maxLinksPerDocument = 5
	// Keywords shorter than this are too ambiguous to link
	minKeywordLength = 3
)

// candidate is one linkable keyword and its target path
type candidate struct {
	keyword string
	href    string
}

var (
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
	anchorOpen  = regexp.MustCompile(`(?i)^<a[\s>]`)
	anchorClose = regexp.MustCompile(`(?i)^</a\s*>`)
)

// InsertLinks links the first mention of every known keyword in the
// document body. Longer keywords win over shorter ones, each keyword
// links at most once and an article never links to itself. Text inside
// existing anchors and inside markup tags is left alone.
func InsertLinks(body, currentSlug string, articles models.Articles) string {

	candidates := make([]candidate, 0, len(articles))
	for _, article := range articles {
		keyword := strings.TrimSpace(article.UniqueLinkingKeyword)
		if utf8.RuneCountInString(keyword) < minKeywordLength {
			continue
		}
		if article.Slug == currentSlug || article.Slug == "" {
			continue
		}
		candidates = append(candidates, candidate{
			keyword: keyword,
			href:    "/" + article.Slug,
		})
	}

	// Longest keyword first, so "machine learning" beats "machine"
	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].keyword) > len(candidates[j].keyword)
	})

	var linked int
	for _, c := range candidates {
		if linked >= maxLinksPerDocument {
			break
		}

		// Re-tokenizing after every insertion keeps freshly
		// inserted anchors off limits for later keywords
		if out, ok := linkFirstMention(body, c.keyword, c.href); ok {
			body = out
			linked++
		}
	}

	return body
}

// Link the first whole word mention of the keyword that sits in plain
// text, outside of any anchor element.
func linkFirstMention(body, keyword, href string) (string, bool) {

	pattern, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(keyword))
	if err != nil {
		return body, false
	}

	var anchorDepth, pos int

	for _, tag := range tagPattern.FindAllStringIndex(body, -1) {

		if anchorDepth == 0 {
			segment := body[pos:tag[0]]
			if i, j, ok := findWholeWord(pattern, segment); ok {
				return body[:pos+i] +
					`<a href="` + href + `">` + segment[i:j] + `</a>` +
					body[pos+j:], true
			}
		}

		token := body[tag[0]:tag[1]]
		switch {
		case anchorClose.MatchString(token):
			if anchorDepth > 0 {
				anchorDepth--
			}
		case anchorOpen.MatchString(token):
			anchorDepth++
		}

		pos = tag[1]
	}

	// The trailing text after the last tag
	if anchorDepth == 0 {
		segment := body[pos:]
		if i, j, ok := findWholeWord(pattern, segment); ok {
			return body[:pos+i] +
				`<a href="` + href + `">` + segment[i:j] + `</a>` +
				body[pos+j:], true
		}
	}

	return body, false
}

// Find the first match that is not embedded in a longer word
func findWholeWord(pattern *regexp.Regexp, segment string) (int, int, bool) {
	for _, loc := range pattern.FindAllStringIndex(segment, -1) {
		if isWordBoundary(segment, loc[0], loc[1]) {
			return loc[0], loc[1], true
		}
	}
	return 0, 0, false
}

// Check that the runes around the match are not letters or digits
func isWordBoundary(segment string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(segment[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}

	if end < len(segment) {
		r, _ := utf8.DecodeRuneInString(segment[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
