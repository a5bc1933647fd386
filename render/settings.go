package render

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeSepia = "sepia"
)

const (
	FontSmall  = "small"
	FontMedium = "medium"
	FontLarge  = "large"
	FontHuge   = "huge"
)

// Settings control the visual treatment of rendered blocks. The same
// settings type is used by the read-only viewer, the editor preview and
// presentation mode, so all three stay visually in sync.
type Settings struct {
	Theme      string `json:"theme"`
	FontSize   string `json:"font_size"`
	ShowBlocks bool   `json:"show_blocks"`
}

// DefaultSettings is what the viewer starts with.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeLight, FontSize: FontMedium, ShowBlocks: true}
}

// PresentationSettings are locked for presentation mode to keep slides
// legible at distance.
func PresentationSettings() Settings {
	return Settings{Theme: ThemeDark, FontSize: FontHuge, ShowBlocks: true}
}

// Normalize replaces unknown theme or font size values with the defaults.
func (s Settings) Normalize() Settings {
	switch s.Theme {
	case ThemeLight, ThemeDark, ThemeSepia:
	default:
		s.Theme = ThemeLight
	}
	switch s.FontSize {
	case FontSmall, FontMedium, FontLarge, FontHuge:
	default:
		s.FontSize = FontMedium
	}
	return s
}
