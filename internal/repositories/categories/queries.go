package categories

const getCategoriesQuery = `
	*[_type == "category" && defined(slug.current)] | order(order asc) {
	title,
	"slug": slug.current,
	description,
	parent-> {
		title,
		"slug": slug.current
	}
}`
