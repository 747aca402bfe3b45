package internal

import (
	"regexp"
	"strings"
)

var colonSpaces = regexp.MustCompile(": +")

// TrimLines collapses a pretty-printed JSON literal into its compact form.
func TrimLines(s string) string {
	trimmed := colonSpaces.ReplaceAllString(s, ":")
	trimmed = strings.ReplaceAll(trimmed, "\n", "")
	trimmed = strings.ReplaceAll(trimmed, "\t", "")
	trimmed = strings.TrimSpace(trimmed)
	return trimmed
}

func IsBlank(s string) bool {
	return TrimLines(s) == ""
}

// SplitList splits a comma separated value, dropping blank entries.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
