package articles

// The projection shared by every article query.
// Slugs and timestamps are flattened so the documents
// decode straight into the article model.
const articleFields = `
	_id,
	title,
	description,
	"slug": slug.current,
	"cover_url": cover.asset->url,
	"published_at": publishedTime,
	"updated_at": _updatedAt,
	"is_draft": isDraft,
	"is_main_headline": isMainHeadline,
	"is_sub_headline": isSubHeadline,
	tags,
	"unique_linking_keyword": uniqueLinkingKeyword,
	categories[]-> {
		title,
		"slug": slug.current,
		parent-> {
			title,
			"slug": slug.current
		}
	},
	authors[]-> {
		name,
		"slug": slug.current
	}
`

// Only published articles with a slug and a publish
// date participate anywhere on the site.
const publishedFilter = `_type == "article" && !isDraft &&
	defined(publishedTime) && defined(slug.current)`

const getAllArticlesQuery = `
	*[` + publishedFilter + `] | order(publishedTime desc) {` + articleFields + `}`

const getArticleBySlugQuery = `
	*[` + publishedFilter + ` && slug.current == $slug][0] {` + articleFields + `,
	"body": body
}`

const getMainHeadlinesQuery = `
	*[` + publishedFilter + ` && isMainHeadline == true]
	| order(publishedTime desc)[0...5] {` + articleFields + `}`

const getSubHeadlinesQuery = `
	*[` + publishedFilter + ` && isSubHeadline == true]
	| order(publishedTime desc)[0...10] {` + articleFields + `}`

const searchArticlesQuery = `
	*[` + publishedFilter + ` && (title match $term || description match $term)]
	| order(publishedTime desc)[0...50] {` + articleFields + `}`

const getLinkingArticlesQuery = `
	*[` + publishedFilter + ` && defined(uniqueLinkingKeyword) &&
	uniqueLinkingKeyword != ""] | order(publishedTime desc) {
	title,
	"slug": slug.current,
	"published_at": publishedTime,
	"unique_linking_keyword": uniqueLinkingKeyword
}`
