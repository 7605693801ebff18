package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlug    = regexp.MustCompile(`[^a-z0-9-]+`)
	multiDash  = regexp.MustCompile(`-{2,}`)
	accentsOff = transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool { return unicode.Is(unicode.Mn, r) }), norm.NFC)
)

func slugify(s string) string {
	out, _, err := transform.String(accentsOff, strings.TrimSpace(s))
	if err != nil {
		out = s
	}
	out = strings.ToLower(out)
	out = strings.Join(strings.Fields(out), "-")
	out = nonSlug.ReplaceAllString(out, "-")
	out = multiDash.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}
