package config

import (
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

type Secret struct {
	Bytes []byte
}

type Target string

const (
	App     Target = "app"
	Worker  Target = "worker"
	Backup  Target = "backup"
	Migrate Target = "migrate"
)

type Config struct {
	// Running localy or not
	Debug    bool   `env:"DEBUG" envDefault:"false"`
	Protocol string `env:"PROTOCOL" envDefault:"https"`
	Target   Target `env:"TARGET" envDefault:"app"`

	// App settings
	AppName        string `env:"APP_NAME" envDefault:"TechHorizons"`
	AppDescription string `env:"APP_DESCRIPTION"`
	Domain         string `env:"DOMAIN" envDefault:"localhost:5000"`
	Language       string `env:"LANGUAGE" envDefault:"fr"`
	WebmasterEmail string `env:"WEBMASTER_EMAIL"`
	PostsPerPage   int    `env:"POSTS_PER_PAGE" envDefault:"8"`

	// Sitemap settings
	ArticlesPerSitemap int           `env:"ARTICLES_PER_SITEMAP" envDefault:"400"`
	NewsWindow         time.Duration `env:"NEWS_WINDOW" envDefault:"48h"`
	NewsMaxEntries     int           `env:"NEWS_MAX_ENTRIES" envDefault:"1000"`

	// Paths exempt from the 404 fallback redirect
	NotFoundExemptPrefixes []string `env:"NOT_FOUND_EXEMPT_PREFIXES" envDefault:"/tags/,/authors/,/categories/"`

	// Content store (headless CMS) settings
	CMSProjectID  string        `env:"CMS_PROJECT_ID"`
	CMSDataset    string        `env:"CMS_DATASET" envDefault:"production"`
	CMSAPIVersion string        `env:"CMS_API_VERSION" envDefault:"2023-05-03"`
	CMSToken      Secret        `env:"CMS_TOKEN"`
	CMSUseCDN     bool          `env:"CMS_USE_CDN" envDefault:"true"`
	CMSTimeout    time.Duration `env:"CMS_TIMEOUT" envDefault:"15s"`

	// Redis
	RedisHost     string        `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort     int           `env:"REDIS_PORT" envDefault:"6379"`
	RedisUsername string        `env:"REDIS_USERNAME"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	CacheTimeout  time.Duration `env:"CACHE_TIMEOUT" envDefault:"3600s"`

	// Worker
	WarmInterval time.Duration `env:"WARM_INTERVAL" envDefault:"15m"`

	// Backups to an S3 compatible bucket (Cloudflare R2)
	BackupBucketName  string `env:"BACKUP_BUCKET_NAME"`
	R2AccountId       string `env:"R2_ACCOUNT_ID"`
	R2AccessKeyId     string `env:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY"`

	// Local app host and port
	Host string `env:"HOST" envDefault:"localhost"`
	Port int    `env:"PORT" envDefault:"5000"`
}

// New creates new config object
func New() *Config {

	// Parse the config from the environment
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse the config; %v", err)
	}

	if cfg.Target == App && cfg.CMSProjectID == "" {
		log.Fatal("no CMS project ID defined in env")
	}

	return &cfg
}

// SiteURL returns the canonical base URL of the site, no trailing slash
func (c *Config) SiteURL() string {
	if c.Debug {
		return fmt.Sprintf("http://%s", c.Domain)
	}
	return fmt.Sprintf("%s://%s", c.Protocol, c.Domain)
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// It's called by the env library to decode the Secret.
func (s *Secret) UnmarshalText(text []byte) error {

	s.Bytes = make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(s.Bytes, text)
	if err != nil {
		return fmt.Errorf("error decoding a secret key; %w", err)
	}

	s.Bytes = s.Bytes[:n]
	return nil
}

// String implements the fmt.Stringer interface,
// so the secret doesn't end up in logs verbatim.
func (s Secret) String() string {
	return "[redacted]"
}

// LegacyCategories are top level paths inherited from the old
// WordPress site. Requests for them redirect to /categories/{slug}.
var LegacyCategories = []string{
	"actualites",
	"apple",
	"applications",
	"audio",
	"blockchain",
	"cloud",
	"crypto",
	"cybersecurite",
	"developpement",
	"devops",
	"gadgets",
	"gaming",
	"google",
	"hardware",
	"high-tech",
	"innovation",
	"intelligence-artificielle",
	"internet",
	"jeux-video",
	"logiciels",
	"microsoft",
	"mobile",
	"objets-connectes",
	"programmation",
	"reseaux-sociaux",
	"science",
	"smartphones",
	"startups",
	"streaming",
}
