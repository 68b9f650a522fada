package store

// categoryDescriptions maps a product category to the blurb shown for
// products that carry no custom description of their own. Adding a
// category here is enough; callers always go through DescriptionFor.
var categoryDescriptions = map[string]string{
	"men's clothing":   "Perfect for anyone after men's clothing. Quality and style in one product.",
	"women's clothing": "Women's fashion with comfort and style for any occasion.",
	"jewelery":         "Hand-picked jewelry with unique details and quality materials.",
	"electronics":      "Reliable everyday technology with great performance.",
	"sportswear":       "Official sportswear for football fans.",
}

// fallbackDescription is used when neither the product nor its category
// provides one.
const fallbackDescription = "A featured product from our store."

// DescriptionFor resolves the description shown for a product: the
// product's own text wins, then the per-category table, then a generic
// fallback.
func DescriptionFor(custom, category string) string {
	if custom != "" {
		return custom
	}
	if d, ok := categoryDescriptions[category]; ok {
		return d
	}
	return fallbackDescription
}
