// Package tailicon renders SVG icons as image data URIs for mini-program image components.
// Size and stroke color are derived from Tailwind utility classes such as "w-6 text-red-500".
package tailicon

import (
	"html"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
)

// DefaultSize is the icon size in pixels when neither the class name nor the attributes set one.
const DefaultSize = 24

// FallbackSVG is rendered for icons that cannot be found.
const FallbackSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><circle cx="12" cy="12" r="10"/></svg>`

// Px formats a number of pixels as a CSS length.
func Px(n int) string {
	return strconv.Itoa(n) + "px"
}

// NewMinifier returns a minifier for image/svg+xml that can be set as Factory.Minifier.
func NewMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("image/svg+xml", svg.Minify)
	return m
}

////////////////////////////////////////////////////////////////

// Attrs are the attributes an icon is rendered with. Size and color classes in Class take precedence over Size and Color.
type Attrs struct {
	Size  string // CSS length, see Px
	Color string
	Class string
	Style map[string]string // merged over the width and height
}

// Image is an image element for the rendering target.
type Image struct {
	Src   string
	Style map[string]string
	Class string // empty when no classes remain
	Mode  string
}

// StyleString returns the inline style with width and height first, followed by the other properties in alphabetical order.
func (img Image) StyleString() string {
	keys := make([]string, 0, len(img.Style))
	for key := range img.Style {
		if key != "width" && key != "height" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	if _, ok := img.Style["height"]; ok {
		keys = append([]string{"height"}, keys...)
	}
	if _, ok := img.Style["width"]; ok {
		keys = append([]string{"width"}, keys...)
	}

	sb := strings.Builder{}
	for i, key := range keys {
		if i != 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(key)
		sb.WriteByte(':')
		sb.WriteString(img.Style[key])
	}
	return sb.String()
}

// WXML returns the image as a mini-program image tag.
func (img Image) WXML() string {
	sb := strings.Builder{}
	sb.WriteString(`<image src="`)
	sb.WriteString(html.EscapeString(img.Src))
	sb.WriteString(`" style="`)
	sb.WriteString(html.EscapeString(img.StyleString()))
	sb.WriteString(`"`)
	if img.Class != "" {
		sb.WriteString(` class="`)
		sb.WriteString(html.EscapeString(img.Class))
		sb.WriteString(`"`)
	}
	if img.Mode != "" {
		sb.WriteString(` mode="`)
		sb.WriteString(img.Mode)
		sb.WriteString(`"`)
	}
	sb.WriteString(`/>`)
	return sb.String()
}

////////////////////////////////////////////////////////////////

// Icon is an SVG icon that is rendered with per-instance size, color and class name.
type Icon struct {
	Name string
	SVG  string

	// Minifier minifies the colorized SVG before encoding when not nil.
	Minifier *minify.M
}

// NewIcon returns a new Icon.
func NewIcon(name, svg string) *Icon {
	return &Icon{
		Name: name,
		SVG:  svg,
	}
}

// NewIcons returns icons for a map of names to SVG markup.
func NewIcons(svgs map[string]string) map[string]*Icon {
	icons := make(map[string]*Icon, len(svgs))
	for name, svg := range svgs {
		icons[name] = NewIcon(name, svg)
	}
	return icons
}

// Props returns the size and color the icon is rendered with for the given attributes, and the remaining classes.
func (icon *Icon) Props(attrs Attrs) Props {
	props := ExtractProps(attrs.Class)
	if props.Size == "" {
		props.Size = attrs.Size
		if props.Size == "" {
			props.Size = Px(DefaultSize)
		}
	}
	if props.Color == "" {
		props.Color = attrs.Color
		if props.Color == "" {
			props.Color = CurrentColor
		}
	}
	return props
}

// ColorizedSVG returns the SVG markup with the color of the given attributes.
func (icon *Icon) ColorizedSVG(attrs Attrs) string {
	return icon.colorize(icon.Props(attrs).Color)
}

func (icon *Icon) colorize(color string) string {
	s := Colorize(icon.SVG, color)
	if icon.Minifier != nil {
		if m, err := icon.Minifier.String("image/svg+xml", s); err == nil {
			s = m
		}
	}
	return s
}

// Render returns the image element for the icon with the given attributes.
func (icon *Icon) Render(attrs Attrs) Image {
	props := icon.Props(attrs)
	style := map[string]string{
		"width":  props.Size,
		"height": props.Size,
	}
	for key, val := range attrs.Style {
		style[key] = val
	}
	return Image{
		Src:   DataURI(icon.colorize(props.Color)),
		Style: style,
		Class: props.Class,
		Mode:  "aspectFit",
	}
}

////////////////////////////////////////////////////////////////

// Factory creates icons by name from a Store and caches them.
type Factory struct {
	Store    Store
	Cache    *Cache
	Minifier *minify.M
	Warning  *log.Logger
}

// NewFactory returns a new Factory with an empty cache that logs warnings to stderr.
func NewFactory(store Store) *Factory {
	return &Factory{
		Store:   store,
		Cache:   NewCache(),
		Warning: log.New(os.Stderr, "WARNING: ", 0),
	}
}

// Icon returns the icon for name. Unknown icons log a warning and render as FallbackSVG.
func (f *Factory) Icon(name string) *Icon {
	return f.Cache.GetOrInsert(name, func() *Icon {
		icon := NewIcon(name, f.load(name))
		icon.Minifier = f.Minifier
		return icon
	})
}

// Resolve renders the icon for name with the given attributes.
func (f *Factory) Resolve(name string, attrs Attrs) Image {
	return f.Icon(name).Render(attrs)
}

func (f *Factory) load(name string) string {
	if f.Store != nil {
		if loader, ok := f.Store.(Loader); ok {
			svg, err := loader.Load(name)
			if err == nil {
				return svg
			}
			f.warn("failed to load icon %q: %v", name, err)
			return FallbackSVG
		} else if svg, ok := f.Store.Get(name); ok {
			return svg
		}
	}
	f.warn("icon %q not found", name)
	return FallbackSVG
}

func (f *Factory) warn(format string, args ...interface{}) {
	if f.Warning != nil {
		f.Warning.Printf(format, args...)
	}
}
