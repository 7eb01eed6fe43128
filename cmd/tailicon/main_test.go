package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/tdewolff/tailicon"
	"github.com/tdewolff/tailicon/lucide"
	"github.com/tdewolff/test"
)

var testStore = tailicon.MapStore{
	"Minus": `<svg viewBox="0 0 24 24"><path d="M5 12h14" stroke="currentColor"/></svg>`,
	"Plus":  `<svg viewBox="0 0 24 24"><path d="M5 12h14"/><path d="M12 5v14"/></svg>`,
}

func newTestFactory() *tailicon.Factory {
	f := tailicon.NewFactory(testStore)
	f.Warning = nil
	return f
}

func TestParseSize(t *testing.T) {
	test.String(t, parseSize(""), "")
	test.String(t, parseSize("32"), "32px")
	test.String(t, parseSize("2em"), "2em")
	test.String(t, parseSize("16px"), "16px")
}

func TestGenerate(t *testing.T) {
	var tests = []struct {
		g        Generator
		names    []string
		expected string
	}{
		{Generator{}, []string{"Minus"}, tailicon.DataURI(testStore["Minus"]) + "\n"},
		{Generator{Attrs: tailicon.Attrs{Color: "#fff"}}, []string{"Minus"}, tailicon.DataURI(strings.Replace(testStore["Minus"], "currentColor", "#fff", 1)) + "\n"},
		{Generator{}, []string{"Minus", "Plus"}, "Minus\t" + tailicon.DataURI(testStore["Minus"]) + "\nPlus\t" + tailicon.DataURI(testStore["Plus"]) + "\n"},
		{Generator{}, []string{"Missing"}, tailicon.DataURI(tailicon.FallbackSVG) + "\n"},
		{Generator{WXML: true, Attrs: tailicon.Attrs{Class: "w-4 foo"}}, []string{"Plus"}, `<image src="` + tailicon.DataURI(testStore["Plus"]) + `" style="width:16px;height:16px" class="foo" mode="aspectFit"/>` + "\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.names, ","), func(t *testing.T) {
			w := &bytes.Buffer{}
			n, err := tt.g.Generate(w, newTestFactory(), tt.names)
			test.Error(t, err)
			test.T(t, n, len(tt.names))
			test.String(t, w.String(), tt.expected)
		})
	}
}

func TestGeneratePNG(t *testing.T) {
	w := &bytes.Buffer{}
	_, err := Generator{PNG: true, Attrs: tailicon.Attrs{Size: "16px"}}.Generate(w, newTestFactory(), []string{"Plus"})
	test.Error(t, err)
	test.That(t, strings.HasPrefix(w.String(), "data:image/png;base64,"), w.String())
}

func TestDecodeURIs(t *testing.T) {
	w := &bytes.Buffer{}
	n, err := decodeURIs(w, []string{tailicon.DataURI("<svg/>"), " " + tailicon.DataURI(testStore["Plus"]) + "\n"})
	test.Error(t, err)
	test.T(t, n, 2)
	test.String(t, w.String(), "<svg/>\n"+testStore["Plus"]+"\n")

	_, err = decodeURIs(w, []string{"data:text/plain,abc"})
	test.That(t, err != nil, "must fail for non-SVG data URIs")
}

func TestOpenOutputFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "dir", "icons.txt")
	fw, err := openOutputFile(output)
	test.Error(t, err)
	_, err = io.WriteString(fw, "icon")
	test.Error(t, err)
	_, err = os.Stat(output)
	test.That(t, os.IsNotExist(err), "output must not exist before closing")
	test.Error(t, fw.Close())

	b, err := os.ReadFile(output)
	test.Error(t, err)
	test.String(t, string(b), "icon")

	entries, err := os.ReadDir(filepath.Dir(output))
	test.Error(t, err)
	test.T(t, len(entries), 1, "temporary file must be renamed")

	fw, err = openOutputFile("")
	test.Error(t, err)
	test.T(t, fw, os.Stdout)
}

func TestIsIconChange(t *testing.T) {
	var tests = []struct {
		event    fsnotify.Event
		expected bool
	}{
		{fsnotify.Event{Name: "icons/x.svg", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "icons/x.SVG", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "icons/x.svg", Op: fsnotify.Remove}, true},
		{fsnotify.Event{Name: "icons/x.svg", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "icons/x.svg.swp", Op: fsnotify.Write}, false},
		{fsnotify.Event{Name: "icons/readme.md", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.event.String(), func(t *testing.T) {
			test.T(t, isIconChange(tt.event), tt.expected)
		})
	}
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	test.That(t, IsDir(dir))
	test.That(t, !IsDir(filepath.Join(dir, "missing")))
}

func runArgs(args ...string) int {
	osArgs := os.Args
	defer func() { os.Args = osArgs }()
	os.Args = append([]string{"tailicon", "-q"}, args...)
	return run()
}

func TestRunArgs(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "icons.txt")

	var tests = []struct {
		args     []string
		expected int
	}{
		{[]string{}, 1},
		{[]string{"-t", "gif", "Circle"}, 1},
		{[]string{"-w", "Circle"}, 1},
		{[]string{"-w", "--dir", dir, "Circle"}, 1},
		{[]string{"-w", "-o", output, "Circle"}, 1},
		{[]string{"-d", "-a"}, 1},
		{[]string{"-d", "-l"}, 1},
		{[]string{"--dir", filepath.Join(dir, "missing"), "Circle"}, 1},
		{[]string{"-d", "data:text/plain,abc"}, 1},
		{[]string{"--version"}, 0},
		{[]string{"-o", output, "Circle"}, 0},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			test.T(t, runArgs(tt.args...), tt.expected)
		})
	}
}

func TestRunOutput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "icons.txt")
	test.T(t, runArgs("-o", output, "-c", "w-8 text-red-500", "Circle"), 0)

	b, err := os.ReadFile(output)
	test.Error(t, err)
	test.String(t, string(b), lucide.Get("Circle").Render(tailicon.Attrs{Class: "w-8 text-red-500"}).Src+"\n")

	test.T(t, runArgs("-o", output, "-t", "png", "-s", "100000", "Circle"), 1)
	b2, err := os.ReadFile(output)
	test.Error(t, err)
	test.Bytes(t, b2, b, "failed runs must keep the previous output")
	entries, err := os.ReadDir(filepath.Dir(output))
	test.Error(t, err)
	test.T(t, len(entries), 1)
}
