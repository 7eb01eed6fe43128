package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/tailicon"
	"github.com/tdewolff/tailicon/lucide"
	"github.com/tdewolff/tailicon/raster"
)

// Version is the current tailicon version.
var Version = "built from source"

var (
	list      bool
	all       bool
	decode    bool
	quiet     bool
	verbose   int
	version   bool
	watch     bool
	wxml      bool
	minifySVG bool
	dir       string
	filetype  string
	size      string
	color     string
	class     string
)

// Loggers.
var (
	Error   *log.Logger
	Warning *log.Logger
	Info    *log.Logger
)

func main() {
	// os.Exit doesn't execute pending defer calls, this is fixed by encapsulating run()
	os.Exit(run())
}

func run() int {
	var names []string
	var output string

	list, all, decode, quiet, verbose, version = false, false, false, false, 0, false
	watch, wxml, minifySVG = false, false, false
	dir, filetype, size, color, class = "", "svg", "", "", ""

	f := argp.New("tailicon")
	f.AddRest(&names, "names", "Icon names (eg. ArrowLeft or arrow-left), or data URIs when decoding")
	f.AddOpt(&output, "o", "output", "Output file, leave blank to use stdout")
	f.AddOpt(&dir, "", "dir", "Directory of SVG icons, leave blank to use the embedded Lucide icons")
	f.AddOpt(&class, "c", "class", "Class names, size and text color classes are applied to the icon (eg. 'w-6 text-red-500')")
	f.AddOpt(&size, "s", "size", "Icon size in pixels or as a CSS length, overridden by size classes")
	f.AddOpt(&color, "", "color", "Icon stroke color, overridden by text color classes")
	f.AddOpt(&filetype, "t", "type", "Image type of the data URI (svg or png)")
	f.AddOpt(&wxml, "", "wxml", "Output image tags instead of data URIs")
	f.AddOpt(&minifySVG, "m", "minify", "Minify SVG icons")
	f.AddOpt(&all, "a", "all", "Output all icons")
	f.AddOpt(&list, "l", "list", "List all icon names")
	f.AddOpt(&decode, "d", "decode", "Decode SVG data URIs")
	f.AddOpt(&watch, "w", "watch", "Watch the icon directory and regenerate upon changes")
	f.AddOpt(&quiet, "q", "quiet", "Quiet mode to suppress all output")
	f.AddOpt(argp.Count{I: &verbose}, "v", "verbose", "Verbose mode, set twice for more verbosity")
	f.AddOpt(&version, "", "version", "Version")
	f.Parse()

	if version {
		if !quiet {
			fmt.Printf("tailicon %s\n", Version)
		}
		return 0
	}

	Error = log.New(ioutil.Discard, "", 0)
	Warning = log.New(ioutil.Discard, "", 0)
	Info = log.New(ioutil.Discard, "", 0)
	if !quiet {
		Error = log.New(os.Stderr, "ERROR: ", 0)
		if 0 < verbose {
			Warning = log.New(os.Stderr, "WARNING: ", 0)
		}
		if 1 < verbose {
			Info = log.New(os.Stderr, "INFO: ", 0)
		}
	}

	if output == "-" {
		output = "" // stdout
	}
	if filetype != "svg" && filetype != "png" {
		Error.Println("unknown type", filetype, ", must be svg or png")
		return 1
	} else if watch && (dir == "" || output == "") {
		Error.Println("--watch requires --dir and --output")
		return 1
	} else if decode && (all || list || watch) {
		Error.Println("--decode cannot be used together with --all, --list or --watch")
		return 1
	} else if !decode && !list && !all && len(names) == 0 {
		Error.Println("must specify icon names or --all")
		return 1
	}

	if decode {
		return write(output, func(w io.Writer) (int, error) {
			return decodeURIs(w, names)
		})
	}

	var store tailicon.Store = lucide.Store
	if dir != "" {
		if !IsDir(dir) {
			Error.Printf("stat %v: no such directory\n", dir)
			return 1
		}
		store = tailicon.NewFSStore(os.DirFS(dir))
		Info.Println("load icons from", dir)
	}

	if list {
		lister, ok := store.(tailicon.Lister)
		if !ok {
			Error.Println("store cannot list icons")
			return 1
		}
		return write(output, func(w io.Writer) (int, error) {
			n := 0
			for _, name := range lister.Names() {
				if _, err := fmt.Fprintln(w, name); err != nil {
					return n, err
				}
				n++
			}
			return n, nil
		})
	}

	g := Generator{
		Attrs: tailicon.Attrs{
			Size:  parseSize(size),
			Color: color,
			Class: class,
		},
		PNG:  filetype == "png",
		WXML: wxml,
	}
	if minifySVG {
		g.Minifier = tailicon.NewMinifier()
	}

	generate := func() int {
		iconNames := names
		if all {
			lister, ok := store.(tailicon.Lister)
			if !ok {
				Error.Println("store cannot list icons")
				return 1
			}
			iconNames = lister.Names()
		}

		factory := tailicon.NewFactory(store)
		factory.Warning = Warning
		factory.Minifier = g.Minifier
		return write(output, func(w io.Writer) (int, error) {
			return g.Generate(w, factory, iconNames)
		})
	}

	if ret := generate(); ret != 0 || !watch {
		return ret
	}

	watcher, err := NewWatcher(dir)
	if err != nil {
		Error.Println(err)
		return 1
	}
	defer watcher.Close()
	changes := watcher.Run()
	Info.Println("watching", dir)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	for changes != nil {
		select {
		case <-c:
			watcher.Close()
		case file, ok := <-changes:
			if !ok {
				changes = nil
				break
			}
			Info.Println("changed", file)
			generate()
		}
	}
	return 0
}

// parseSize returns a CSS length, plain numbers are in pixels.
func parseSize(s string) string {
	if n, err := strconv.Atoi(s); err == nil {
		return tailicon.Px(n)
	}
	return s
}

// write calls fn with stdout or the output file and prints statistics.
func write(output string, fn func(io.Writer) (int, error)) int {
	start := time.Now()
	fw, err := openOutputFile(output)
	if err != nil {
		Error.Println(err)
		return 1
	}

	cw := &countWriter{w: fw}
	n, err := fn(cw)
	if f, ok := fw.(*outputFile); ok && err != nil {
		f.Discard()
	} else if ok {
		err = f.Close()
	}
	if err != nil {
		Error.Println(err)
		return 1
	}

	if !quiet && output != "" {
		fmt.Printf("(%9v, %6v) - %d icons to %s\n", time.Since(start), humanize.Bytes(uint64(cw.n)), n, output)
	}
	return 0
}

type countWriter struct {
	w io.Writer
	n int
}

func (w *countWriter) Write(b []byte) (int, error) {
	n, err := w.w.Write(b)
	w.n += n
	return n, err
}

////////////////////////////////////////////////////////////////

// Generator writes the data URIs or image tags of icons.
type Generator struct {
	Attrs    tailicon.Attrs
	PNG      bool
	WXML     bool
	Minifier *minify.M
}

// Generate writes one line per icon. A single icon is written as is, multiple icons are prefixed by their name and a tab.
func (g Generator) Generate(w io.Writer, factory *tailicon.Factory, names []string) (int, error) {
	for i, name := range names {
		icon := factory.Icon(name)

		var img tailicon.Image
		if g.PNG {
			var err error
			if img, err = raster.Render(icon, g.Attrs); err != nil {
				return i, fmt.Errorf("rasterize %s: %w", name, err)
			}
		} else {
			img = icon.Render(g.Attrs)
		}

		line := img.Src
		if g.WXML {
			line = img.WXML()
		}
		if 1 < len(names) {
			line = name + "\t" + line
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return i, err
		}
	}
	return len(names), nil
}

func decodeURIs(w io.Writer, uris []string) (int, error) {
	for i, uri := range uris {
		svg, err := tailicon.DecodeDataURI(strings.TrimSpace(uri))
		if err != nil {
			return i, err
		}
		if _, err := io.WriteString(w, svg+"\n"); err != nil {
			return i, err
		}
	}
	return len(uris), nil
}

// IsDir returns true if the passed string is an existing directory.
func IsDir(dir string) bool {
	info, err := os.Stat(filepath.Clean(dir))
	return err == nil && info.IsDir()
}
