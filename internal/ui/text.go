package ui

import (
	"fmt"
	"strings"

	"github.com/techhorizons/website/internal/config"
	"github.com/techhorizons/website/internal/models"
)

var weirdBots = []string{
	"Nuclei",
	"WikiDo",
	"Riddler",
	"PetalBot",
	"Zoominfobot",
	"Go-http-client",
	"Node/simplecrawler",
	"CazoodleBot",
	"dotbot/1.0",
	"Gigabot",
	"Barkrowler",
	"BLEXBot",
	"magpie-crawler",
	"Thinkbot",
}

// Paths no crawler has business in
var disallowedPaths = []string{
	"/api/",
	"/admin/",
	"/preview/",
	"/search?",
}

// parseTextFiles generates the plain text files the app serves
func parseTextFiles(cfg *config.Config) models.TextFiles {
	tf := make(models.TextFiles)
	tf["/robots.txt"] = &models.FileInfo{Bytes: buildRobotsTxt(cfg)}
	return tf
}

// buildRobotsTxt builds the content of the robots.txt file
func buildRobotsTxt(cfg *config.Config) []byte {
	var builder strings.Builder

	builder.WriteString("# Sitemaps\n")
	fmt.Fprintf(&builder, "Sitemap: %s/sitemap-index.xml\n", cfg.SiteURL())
	fmt.Fprintf(&builder, "Sitemap: %s/news-sitemap.xml\n\n", cfg.SiteURL())

	builder.WriteString("# Ban weird bots\n")
	for _, bot := range weirdBots {
		fmt.Fprintf(&builder, "User-agent: %s\n", bot)
	}
	builder.WriteString("Disallow: /\n\n")

	builder.WriteString("# Keep all bots out of the private sections\n")
	builder.WriteString("User-agent: *\n")
	for _, path := range disallowedPaths {
		fmt.Fprintf(&builder, "Disallow: %s\n", path)
	}

	return []byte(builder.String())
}
