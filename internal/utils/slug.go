package utils

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

var pinyinArgs = pinyin.NewArgs()

// Slugify lowercases the input and collapses every run of non-alphanumeric
// characters into a single hyphen. Han characters are romanized through
// pinyin so customers with Chinese names still get usable username slugs.
func Slugify(parts ...string) string {
	tokens := []string{}
	current := strings.Builder{}

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, part := range parts {
		for _, r := range part {
			switch {
			case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
				current.WriteRune(r)
			case r >= 'A' && r <= 'Z':
				current.WriteRune(unicode.ToLower(r))
			case unicode.Is(unicode.Han, r):
				flush()
				tokens = append(tokens, pinyin.LazyPinyin(string(r), pinyinArgs)...)
			default:
				flush()
			}
		}
		flush()
	}

	return strings.Join(tokens, "-")
}
