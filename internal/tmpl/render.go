// Package tmpl implements the placeholder substitution used by the email
// templates. Tokens look like {{name}}; unknown tokens are left verbatim so a
// partially-filled template still renders.
package tmpl

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`\{\{([a-zA-Z][a-zA-Z0-9_]*)\}\}`)

// Render replaces every occurrence of each {{key}} token with the matching
// value from data. Tokens without a matching key are left untouched. Escaping
// untrusted values is the caller's responsibility.
func Render(template string, data map[string]string) string {
	return tokenPattern.ReplaceAllStringFunc(template, func(token string) string {
		key := token[2 : len(token)-2]
		if value, ok := data[key]; ok {
			return value
		}
		return token
	})
}

// htmlEscaper covers the five characters that allow markup injection.
// The entity forms match the ones baked into the stored templates.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape HTML-escapes user-supplied text before it is rendered into a template
func Escape(text string) string {
	return htmlEscaper.Replace(text)
}
