package feeds

import (
	"encoding/xml"
	"io"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/techhorizons/website/internal/models"
)

// FeedHandler serves the RSS 2.0 feed. A fetch failure degrades
// to an empty valid channel, feed readers never see an error.
func (s *Service) FeedHandler(w http.ResponseWriter, r *http.Request) {

	arts, err := s.artsRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("Failed to fetch the articles on URI '%s': %v", r.RequestURI, err)
		arts = nil
	}

	arts = publishable(arts)

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")

	if _, err := io.WriteString(w, xml.Header); err != nil {
		log.Printf("Failed to write the XML header on URI '%s': %v", r.RequestURI, err)
		return
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(s.buildFeed(arts, time.Now())); err != nil {
		// Too late for recovery here, just log the error
		log.Printf("Failed to encode the RSS feed on URI '%s': %v", r.RequestURI, err)
	}
}

// Drop drafts and undated articles, newest first
func publishable(arts models.Articles) models.Articles {

	var out models.Articles
	for _, a := range arts {
		if a.IsDraft || a.Slug == "" || a.PublishedAt == nil {
			continue
		}
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(*out[j].PublishedAt)
	})

	return out
}
