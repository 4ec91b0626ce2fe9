package render

import "strings"

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// escapeText escapes character data for element content.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttr escapes an attribute value for use inside double quotes.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
