package codec

import "strings"

var wifiEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`"`, `\"`,
	`:`, `\:`,
)

func escapeWiFi(s string) string {
	return wifiEscaper.Replace(s)
}

// unescapeWiFi drops the backslash in front of any escaped character.
// A trailing lone backslash is kept.
func unescapeWiFi(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
