// Package raster renders icons to PNG images for image components that do not support SVG data URIs.
package raster

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strconv"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/tdewolff/tailicon"
)

// DefaultSize is the width and height in pixels used when size is not positive.
const DefaultSize = 128

// MaxSize is the largest width and height in pixels that is rasterized.
const MaxSize = 4096

// ErrTooLarge is returned when the requested size exceeds MaxSize.
var ErrTooLarge = errors.New("image size too large")

// DefaultColor replaces currentColor, since there is no rendering context to inherit from.
const DefaultColor = "#000000"

// Image rasterizes svg to a square image of size pixels. The icon is scaled to fit and centered.
func Image(svg string, size int) (*image.RGBA, error) {
	if size <= 0 {
		size = DefaultSize
	} else if MaxSize < size {
		return nil, fmt.Errorf("%dpx: %w", size, ErrTooLarge)
	}
	svg = strings.ReplaceAll(tailicon.Colorize(svg, DefaultColor), tailicon.CurrentColor, DefaultColor)

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("decode SVG: %w", err)
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = float64(size), float64(size)
	}
	scale := float64(size) / max(w, h)
	outW, outH := int(w*scale), int(h*scale)
	icon.SetTarget(float64((size-outW)/2), float64((size-outH)/2), float64(outW), float64(outH))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// PNG rasterizes svg and encodes it as PNG.
func PNG(svg string, size int) ([]byte, error) {
	img, err := Image(svg, size)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURI rasterizes svg and returns it as a base64 encoded PNG data URI.
func DataURI(svg string, size int) (string, error) {
	b, err := PNG(svg, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(b), nil
}

// Render rasterizes an icon with the given attributes. Only pixel sizes are supported, other sizes fall back to DefaultSize.
func Render(icon *tailicon.Icon, attrs tailicon.Attrs) (tailicon.Image, error) {
	img := icon.Render(attrs)
	size, _ := strconv.Atoi(strings.TrimSuffix(img.Style["width"], "px"))

	uri, err := DataURI(icon.ColorizedSVG(attrs), size)
	if err != nil {
		return tailicon.Image{}, err
	}
	img.Src = uri
	return img, nil
}
