package systems

import (
	"strings"

	"github.com/automoto/tacdrill/fonts"
)

// wrapText breaks s into lines no wider than maxWidth pixels in font name
func wrapText(name fonts.FontName, s string, maxWidth int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if fonts.Width(name, candidate) > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
