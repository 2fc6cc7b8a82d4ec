package pages

const getPagesQuery = `
	*[_type == "page" && isPublished == true && defined(slug.current)] {
	_id,
	title,
	"slug": slug.current,
	description
}`

const getPageBySlugQuery = `
	*[_type == "page" && isPublished == true && slug.current == $slug][0] {
	_id,
	title,
	"slug": slug.current,
	description,
	"body": body
}`
