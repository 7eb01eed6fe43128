package tailicon

import (
	"regexp"
	"strconv"
	"strings"
)

// CurrentColor is the color that inherits from the rendering context, it is never substituted into an SVG.
const CurrentColor = "currentColor"

var (
	textColorRegexp = regexp.MustCompile(`\btext-([a-z]+(?:-\d+)?|current|black|white)\b`)
	shadeRegexp     = regexp.MustCompile(`^([a-z]+)-(\d+)$`)
)

// Props are the size, color and class name of an icon. An empty Size or Color means it is unset.
type Props struct {
	Size  string
	Color string
	Class string
}

// ResolveColor returns the color of a text color utility class such as text-red-500, or an empty string if the class is not a known color.
func ResolveColor(class string) string {
	m := textColorRegexp.FindStringSubmatch(class)
	if m == nil {
		return ""
	}

	name := m[1]
	switch name {
	case "current":
		return CurrentColor
	case "black":
		return "#000000"
	case "white":
		return "#FFFFFF"
	}
	if color, ok := CustomColors[name]; ok {
		return color
	}

	if m := shadeRegexp.FindStringSubmatch(name); m != nil {
		shade, err := strconv.Atoi(m[2])
		if err != nil {
			return "" // overflow
		}
		if color, ok := Palette[m[1]][shade]; ok {
			return color
		}
	}
	return ""
}

// ExtractProps takes the size and color utility classes out of className and returns them together with the remaining classes.
// Width classes always override the size, height classes only set it when no size was found before. The last color class wins.
func ExtractProps(className string) Props {
	props := Props{}
	if className == "" {
		return props
	}

	remaining := []string{}
	for _, class := range strings.Fields(className) {
		if strings.HasPrefix(class, "w-") {
			if size, ok := Sizes[class]; ok {
				props.Size = size
				continue
			}
		} else if strings.HasPrefix(class, "h-") {
			if size, ok := Sizes[class]; ok {
				if props.Size == "" {
					props.Size = size
				}
				continue
			}
		} else if strings.HasPrefix(class, "text-") {
			if color := ResolveColor(class); color != "" {
				props.Color = color
				continue
			}
		}
		remaining = append(remaining, class)
	}
	props.Class = strings.Join(remaining, " ")
	return props
}
