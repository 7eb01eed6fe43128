// Package lucide embeds a set of Lucide icons (https://lucide.dev, ISC license) and renders them through a shared tailicon.Factory.
package lucide

import (
	"embed"
	"io/fs"

	"github.com/tdewolff/tailicon"
)

//go:embed icons/*.svg
var iconsFS embed.FS

// Store holds the embedded icons, names are in PascalCase such as ArrowLeft.
var Store *tailicon.FSStore

// Default is the factory for the embedded icons.
var Default *tailicon.Factory

func init() {
	sub, err := fs.Sub(iconsFS, "icons")
	if err != nil {
		panic(err)
	}
	Store = tailicon.NewFSStore(sub)
	Default = tailicon.NewFactory(Store)
}

// Get returns the icon for any name, unknown names render a circle.
func Get(name string) *tailicon.Icon {
	return Default.Icon(name)
}

// Names returns the names of all embedded icons.
func Names() []string {
	return Store.Names()
}

// Search returns the search icon.
func Search() *tailicon.Icon { return Get("Search") }

// Heart returns the heart icon.
func Heart() *tailicon.Icon { return Get("Heart") }

// User returns the user icon.
func User() *tailicon.Icon { return Get("User") }

// Home returns the home icon.
func Home() *tailicon.Icon { return Get("Home") }

// Settings returns the settings icon.
func Settings() *tailicon.Icon { return Get("Settings") }

// Menu returns the menu icon.
func Menu() *tailicon.Icon { return Get("Menu") }

// X returns the x icon.
func X() *tailicon.Icon { return Get("X") }

// Check returns the check icon.
func Check() *tailicon.Icon { return Get("Check") }

// ArrowLeft returns the arrow left icon.
func ArrowLeft() *tailicon.Icon { return Get("ArrowLeft") }

// ArrowRight returns the arrow right icon.
func ArrowRight() *tailicon.Icon { return Get("ArrowRight") }

// ArrowUp returns the arrow up icon.
func ArrowUp() *tailicon.Icon { return Get("ArrowUp") }

// ArrowDown returns the arrow down icon.
func ArrowDown() *tailicon.Icon { return Get("ArrowDown") }

// Star returns the star icon.
func Star() *tailicon.Icon { return Get("Star") }

// Bell returns the bell icon.
func Bell() *tailicon.Icon { return Get("Bell") }

// Mail returns the mail icon.
func Mail() *tailicon.Icon { return Get("Mail") }

// Phone returns the phone icon.
func Phone() *tailicon.Icon { return Get("Phone") }

// Camera returns the camera icon.
func Camera() *tailicon.Icon { return Get("Camera") }

// Image returns the image icon.
func Image() *tailicon.Icon { return Get("Image") }

// File returns the file icon.
func File() *tailicon.Icon { return Get("File") }

// Folder returns the folder icon.
func Folder() *tailicon.Icon { return Get("Folder") }
