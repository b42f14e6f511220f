// Package strcase converts identifiers between naming conventions and
// generates random identifiers for schema entries.
package strcase

import (
	"regexp"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	dashWord  = regexp.MustCompile(`-(\w)`)
	underWord = regexp.MustCompile(`_(\w)`)
	upper     = regexp.MustCompile(`([A-Z])`)
)

// KebabToCamel converts "user-name" to "userName". Only a dash followed by a
// word character is folded; other text is kept as is.
func KebabToCamel(s string) string {
	return dashWord.ReplaceAllStringFunc(s, func(m string) string {
		return cases.Upper(language.Und).String(m[1:])
	})
}

// SnakeToCamel converts "user_name" to "userName".
func SnakeToCamel(s string) string {
	return underWord.ReplaceAllStringFunc(s, func(m string) string {
		return cases.Upper(language.Und).String(m[1:])
	})
}

// CamelToKebab converts "userName" to "user-name". A leading capital yields a
// leading dash ("UserName" -> "-user-name").
func CamelToKebab(s string) string {
	return cases.Lower(language.Und).String(upper.ReplaceAllString(s, "-$1"))
}

// CamelToSnake converts "userName" to "user_name".
func CamelToSnake(s string) string {
	return cases.Lower(language.Und).String(upper.ReplaceAllString(s, "_$1"))
}

// RandomID returns a random identifier in the xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
// layout, where y is one of 8, 9, a or b.
func RandomID() string {
	return uuid.NewString()
}
