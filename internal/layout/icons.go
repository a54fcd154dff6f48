package layout

import (
	"path"
	"strings"

	"github.com/jonathan/resumetex/internal/rendering"
)

// Icon names an inline image resource
type Icon string

// Known icons
const (
	IconGitHub   Icon = "github"
	IconLinkedIn Icon = "linkedin"
	IconPhone    Icon = "phone"
	IconMail     Icon = "mail"
	IconHome     Icon = "home"
	IconWeb      Icon = "web"
)

// DefaultResourceDir is where icon images are looked up relative to the .tex file
const DefaultResourceDir = "resources"

var iconFiles = map[Icon]string{
	IconGitHub:   "github.png",
	IconLinkedIn: "in.png",
	IconPhone:    "phone.png",
	IconMail:     "mail.png",
	IconHome:     "home.png",
	IconWeb:      "web.png",
}

// Icons returns every known icon in a stable order
func Icons() []Icon {
	return []Icon{IconGitHub, IconLinkedIn, IconPhone, IconMail, IconHome, IconWeb}
}

// ResolveIcon maps a resource key such as a profile network to its icon.
// Matching ignores case and surrounding whitespace; unknown keys get IconWeb.
func ResolveIcon(key string) Icon {
	icon := Icon(strings.ToLower(strings.TrimSpace(key)))
	if _, ok := iconFiles[icon]; ok {
		return icon
	}
	return IconWeb
}

// File returns the image file name of the icon
func (i Icon) File() string {
	if f, ok := iconFiles[i]; ok {
		return f
	}
	return iconFiles[IconWeb]
}

// Path returns the icon's image path inside resourceDir, using forward slashes
func (i Icon) Path(resourceDir string) string {
	if resourceDir == "" {
		resourceDir = DefaultResourceDir
	}
	return path.Join(resourceDir, i.File())
}

// InlineIcon returns an \includegraphics scaled to the height of a capital letter
func InlineIcon(resourceDir string, icon Icon) rendering.Node {
	return rendering.Command{
		Name:    "includegraphics",
		Options: []string{"height=\\fontcharht\\font`\\B"},
		Args:    []rendering.Node{rendering.Raw(icon.Path(resourceDir))},
	}
}
