package feeds

import (
	"time"

	artsRepo "github.com/techhorizons/website/internal/repositories/articles"

	"github.com/techhorizons/website/internal/config"
	"github.com/techhorizons/website/internal/models"
)

// The feed carries the latest articles only
const feedSize = 20

// Minutes a consumer may cache the feed
const feedTTL = 60

type Service struct {
	artsRepo *artsRepo.Repository
	config   *config.Config
}

func New(artsRepo *artsRepo.Repository, config *config.Config) *Service {
	return &Service{
		artsRepo: artsRepo,
		config:   config,
	}
}

// buildFeed builds the RSS 2.0 document from the articles,
// expected sorted newest first
func (s *Service) buildFeed(arts models.Articles, now time.Time) *models.RSS {

	rss := models.NewRSS()
	rss.Channel = models.RSSChannel{
		Title:         s.config.AppName,
		Link:          s.config.SiteURL(),
		Description:   s.config.AppDescription,
		Language:      s.config.Language,
		LastBuildDate: now.Format(time.RFC1123Z),
		WebMaster:     s.config.WebmasterEmail,
		Generator:     s.config.AppName,
		TTL:           feedTTL,
	}

	if len(arts) > feedSize {
		arts = arts[:feedSize]
	}

	for i := range arts {
		a := &arts[i]

		item := models.RSSItem{
			Title:       a.Title,
			Link:        s.config.SiteURL() + "/" + a.Slug,
			Description: a.Description,
			GUID:        s.config.SiteURL() + "/" + a.Slug,
		}

		if len(a.Authors) > 0 {
			item.Author = a.Authors[0].Name
		}

		for _, cat := range a.Categories {
			if cat.Title != "" {
				item.Categories = append(item.Categories, cat.Title)
			}
		}

		if a.PublishedAt != nil {
			item.PubDate = a.PublishedAt.Format(time.RFC1123Z)
		}

		rss.Channel.Items = append(rss.Channel.Items, item)
	}

	return rss
}
