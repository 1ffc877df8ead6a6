package engine

import "strings"

// Indefinite prefixes a noun phrase with its indefinite article.
func Indefinite(name string) string {
	if name == "" {
		return name
	}
	switch strings.ToLower(name[:1]) {
	case "a", "e", "i", "o", "u":
		return "an " + name
	default:
		return "a " + name
	}
}

// List joins noun phrases with commas and a final "and".
func List(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
