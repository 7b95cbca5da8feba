package cli

import (
	"strings"
	"unicode/utf8"
)

// ParseInput splits raw into symbols. With an empty separator every rune is a
// symbol; otherwise parts are trimmed and empty parts dropped.
func ParseInput(raw, sep string) []string {
	if sep == "" {
		out := make([]string, 0, utf8.RuneCountInString(raw))
		for _, r := range raw {
			if r == ' ' || r == '\t' || r == '\n' {
				continue
			}
			out = append(out, string(r))
		}
		return out
	}
	out := []string{}
	for _, p := range strings.Split(raw, sep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
