package picker

import (
	"path/filepath"
	"strings"
)

// Icon is a display glyph plus the highlight group to render it with.
type Icon struct {
	Glyph string
	Group string
}

// IconProvider maps a path to its display icon. Implementations are
// selected at configuration time; when icons are disabled the NoIcons
// provider is used and no icon column is rendered.
type IconProvider interface {
	Icon(path string) Icon
}

// NoIcons renders no icon.
type NoIcons struct{}

func (NoIcons) Icon(string) Icon { return Icon{} }

// ExtIcons resolves icons from a built-in extension table, memoized by
// extension since lookups repeat heavily across a file listing.
type ExtIcons struct {
	cache map[string]Icon
}

func NewExtIcons() *ExtIcons {
	return &ExtIcons{cache: make(map[string]Icon)}
}

var extIconTable = map[string]Icon{
	".go":   {Glyph: "", Group: "FpickIconGo"},
	".lua":  {Glyph: "", Group: "FpickIconLua"},
	".py":   {Glyph: "", Group: "FpickIconPython"},
	".js":   {Glyph: "", Group: "FpickIconJS"},
	".ts":   {Glyph: "", Group: "FpickIconTS"},
	".rs":   {Glyph: "", Group: "FpickIconRust"},
	".c":    {Glyph: "", Group: "FpickIconC"},
	".h":    {Glyph: "", Group: "FpickIconC"},
	".sh":   {Glyph: "", Group: "FpickIconShell"},
	".md":   {Glyph: "", Group: "FpickIconMarkdown"},
	".json": {Glyph: "", Group: "FpickIconJSON"},
	".yaml": {Glyph: "", Group: "FpickIconYAML"},
	".yml":  {Glyph: "", Group: "FpickIconYAML"},
	".toml": {Glyph: "", Group: "FpickIconTOML"},
}

var defaultIcon = Icon{Glyph: "", Group: "FpickIconFile"}

func (e *ExtIcons) Icon(path string) Icon {
	ext := strings.ToLower(filepath.Ext(path))
	if icon, ok := e.cache[ext]; ok {
		return icon
	}
	icon, ok := extIconTable[ext]
	if !ok {
		icon = defaultIcon
	}
	e.cache[ext] = icon
	return icon
}
