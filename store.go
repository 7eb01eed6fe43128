package tailicon

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"unicode"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

var (
	// ErrNotExist is returned when an icon does not exist in a store.
	ErrNotExist = errors.New("icon does not exist")

	// ErrNotSVG is returned when an icon file is not an SVG image.
	ErrNotSVG = errors.New("icon is not an SVG image")
)

// Store maps icon names to SVG markup.
type Store interface {
	Get(name string) (string, bool)
}

// Loader is a Store that reports why an icon could not be loaded.
type Loader interface {
	Load(name string) (string, error)
}

// Lister is a Store that lists its icon names.
type Lister interface {
	Names() []string
}

// MapStore is a Store of in-memory SVG markup.
type MapStore map[string]string

// Get returns the SVG markup of an icon.
func (s MapStore) Get(name string) (string, bool) {
	svg, ok := s[name]
	return svg, ok
}

// Names returns all icon names in alphabetical order.
func (s MapStore) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

////////////////////////////////////////////////////////////////

// FSStore is a Store of SVG files in a file system, such as the icons directory of lucide-static.
// Icons are found by their filename without extension or by its PascalCase name as returned by Names, ie. ArrowLeft loads arrow-left.svg.
// Other names in PascalCase are mapped to kebab-case filenames.
type FSStore struct {
	fsys fs.FS
}

// NewFSStore returns a store for the SVG files in the root of fsys.
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys}
}

// Load returns the SVG markup of an icon.
func (s *FSStore) Load(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%q: %w", name, ErrNotExist)
	}
	filename := s.filename(name)
	if !fs.ValidPath(filename) {
		return "", fmt.Errorf("%q: %w", name, ErrNotExist)
	}

	b, err := fs.ReadFile(s.fsys, filename)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", filename, ErrNotExist)
	} else if err != nil {
		return "", err
	} else if err := checkSVG(b); err != nil {
		return "", fmt.Errorf("%s: %w", filename, err)
	}
	return string(b), nil
}

// filename returns the SVG file of an icon. Digits in names are ambiguous in PascalCase (Grid2x2 is grid-2x2.svg, ArrowUp01 is arrow-up-0-1.svg), so the existing files are matched first.
func (s *FSStore) filename(name string) string {
	if filenames, err := fs.Glob(s.fsys, "*.svg"); err == nil {
		for _, filename := range filenames {
			stem := strings.TrimSuffix(filename, ".svg")
			if stem == name || PascalCase(stem) == name {
				return filename
			}
		}
	}
	return KebabCase(name) + ".svg"
}

// Get returns the SVG markup of an icon.
func (s *FSStore) Get(name string) (string, bool) {
	svg, err := s.Load(name)
	return svg, err == nil
}

// Names returns the names of all SVG files in PascalCase, in alphabetical order.
func (s *FSStore) Names() []string {
	filenames, err := fs.Glob(s.fsys, "*.svg")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(filenames))
	for _, filename := range filenames {
		names = append(names, PascalCase(strings.TrimSuffix(path.Base(filename), ".svg")))
	}
	sort.Strings(names)
	return names
}

// checkSVG returns ErrNotSVG if the first element is not an svg element.
func checkSVG(b []byte) error {
	l := xml.NewLexer(parse.NewInputBytes(b))
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			return ErrNotSVG
		case xml.StartTagToken:
			if string(l.Text()) != "svg" {
				return ErrNotSVG
			}
			return nil
		}
	}
}

// KebabCase converts an icon name such as ArrowLeft to arrow-left. Names that are in kebab-case already are returned unchanged.
func KebabCase(name string) string {
	sb := strings.Builder{}
	prev := rune(-1)
	for _, r := range name {
		if unicode.IsUpper(r) {
			if prev != -1 && prev != '-' {
				sb.WriteByte('-')
			}
			r = unicode.ToLower(r)
		} else if unicode.IsDigit(r) && unicode.IsLetter(prev) {
			sb.WriteByte('-')
		}
		sb.WriteRune(r)
		prev = r
	}
	return sb.String()
}

// PascalCase converts a kebab-case icon filename such as arrow-left to ArrowLeft.
func PascalCase(name string) string {
	sb := strings.Builder{}
	for _, part := range strings.Split(name, "-") {
		for i, r := range part {
			if i == 0 {
				r = unicode.ToUpper(r)
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
