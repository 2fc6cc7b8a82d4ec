package navigation

const getNavigationQuery = `
	*[_type == "navigation"][0] {
	title,
	items[] {
		label,
		"link_type": linkType,
		"internal_link": internalLink,
		"category_slug": categoryLink->slug.current,
		"article_slug": articleLink->slug.current,
		"external_link": externalLink,
		"open_in_new_tab": openInNewTab,
		description,
		highlighted,
		"sub_items": subItems[] {
			label,
			"link_type": linkType,
			"internal_link": internalLink,
			"category_slug": categoryLink->slug.current,
			"article_slug": articleLink->slug.current,
			"external_link": externalLink,
			"open_in_new_tab": openInNewTab,
			description
		}
	}
}`
