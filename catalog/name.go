package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DisplayName turns a file slug into a title: segments separated by hyphens
// are capitalized and joined with spaces, "mt-rainier-hike" becomes
// "Mt Rainier Hike". Empty segments are dropped.
func DisplayName(slug string) string {
	var words []string

	for _, segment := range strings.Split(slug, "-") {
		if segment == "" {
			continue
		}

		r, size := utf8.DecodeRuneInString(segment)
		words = append(words, string(unicode.ToUpper(r))+segment[size:])
	}

	return strings.Join(words, " ")
}

// validSlug reports whether slug can name a file directly inside the track
// directory.
func validSlug(slug string) bool {
	if slug == "" || slug == "." || slug == ".." {
		return false
	}

	return !strings.ContainsAny(slug, `/\`+"\x00")
}
