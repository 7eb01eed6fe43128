package tailicon

import (
	"regexp"
	"strings"
)

var (
	strokeCurrentRegexp = regexp.MustCompile(`stroke=("currentColor"|'currentColor')`)
	svgTagRegexp        = regexp.MustCompile(`<svg([^>]*)>`)
)

// Colorize replaces the currentColor strokes of svg by color. When svg has no stroke attribute at all, it is added to the root svg element.
// An empty color or CurrentColor returns svg unchanged. The markup is not parsed, malformed SVGs may result in malformed output.
func Colorize(svg, color string) string {
	if color == "" || color == CurrentColor {
		return svg
	}

	stroke := `stroke="` + color + `"`
	svg = strokeCurrentRegexp.ReplaceAllLiteralString(svg, stroke)
	if !strings.Contains(svg, "stroke=") {
		if loc := svgTagRegexp.FindStringSubmatchIndex(svg); loc != nil {
			// loc[3] is the end of the attribute list, right before '>'
			svg = svg[:loc[3]] + " " + stroke + svg[loc[3]:]
		}
	}
	return svg
}
