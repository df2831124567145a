package catalog

import "strings"

// FindExact returns products whose disease field matches the ailment exactly,
// ignoring case and surrounding whitespace. Catalog order is preserved.
func FindExact(products []Product, ailment string) []Product {
	needle := normalize(ailment)

	var matches []Product
	for _, p := range products {
		if normalize(p.Disease) == needle {
			matches = append(matches, p)
		}
	}
	return matches
}

// FindApproximate returns products whose disease field contains the ailment
// as a substring, ignoring case. It is the fallback when FindExact comes up
// empty; results are surfaced as suggestions and never auto-added to a cart.
func FindApproximate(products []Product, ailment string) []Product {
	needle := normalize(ailment)

	var matches []Product
	for _, p := range products {
		if strings.Contains(normalize(p.Disease), needle) {
			matches = append(matches, p)
		}
	}
	return matches
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
