package tailicon

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestColorize(t *testing.T) {
	var tests = []struct {
		svg      string
		color    string
		expected string
	}{
		{`<svg><path stroke="currentColor"/></svg>`, "#ff0000", `<svg><path stroke="#ff0000"/></svg>`},
		{`<svg><path stroke='currentColor'/></svg>`, "#ff0000", `<svg><path stroke="#ff0000"/></svg>`},
		{`<svg stroke="currentColor"><path stroke='currentColor'/><path stroke="currentColor"/></svg>`, "red", `<svg stroke="red"><path stroke="red"/><path stroke="red"/></svg>`},
		{`<svg viewBox="0 0 24 24"><path d="M0 0"/></svg>`, "#00ff00", `<svg viewBox="0 0 24 24" stroke="#00ff00"><path d="M0 0"/></svg>`},
		{`<svg><svg></svg></svg>`, "#00ff00", `<svg stroke="#00ff00"><svg></svg></svg>`},
		{`<svg><path stroke="#000"/></svg>`, "#00ff00", `<svg><path stroke="#000"/></svg>`},
		{`<svg><path stroke-width="2"/></svg>`, "#00ff00", `<svg stroke="#00ff00"><path stroke-width="2"/></svg>`},
		{`<path d="M0 0"/>`, "#00ff00", `<path d="M0 0"/>`},
		{`<svg/>`, "#00ff00", `<svg/ stroke="#00ff00">`},
		{`<svg><path stroke="currentColor"/></svg>`, "$1", `<svg><path stroke="$1"/></svg>`},

		// unchanged
		{`<svg><path stroke="currentColor"/></svg>`, "", `<svg><path stroke="currentColor"/></svg>`},
		{`<svg><path stroke="currentColor"/></svg>`, CurrentColor, `<svg><path stroke="currentColor"/></svg>`},
		{`<svg viewBox="0 0 24 24"></svg>`, CurrentColor, `<svg viewBox="0 0 24 24"></svg>`},
	}
	for _, tt := range tests {
		t.Run(tt.svg, func(t *testing.T) {
			test.String(t, Colorize(tt.svg, tt.color), tt.expected)
		})
	}
}

func TestColorizeIdempotent(t *testing.T) {
	once := Colorize(FallbackSVG, "#ef4444")
	test.String(t, Colorize(once, "#ef4444"), once)
	test.String(t, Colorize(once, "#3b82f6"), once, "colorized strokes are not replaced again")
}
