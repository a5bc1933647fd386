// Package render turns lesson blocks into HTML fragments. Render is a pure
// function over (block, settings); the viewer, editor preview and
// presentation mode all go through it.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/Sem485/eduforge-lms/models"
)

func fontClass(s Settings) string {
	switch s.FontSize {
	case FontSmall:
		return "font-small"
	case FontLarge:
		return "font-large"
	case FontHuge:
		return "font-huge"
	default:
		return "font-medium"
	}
}

func themeClass(s Settings) string {
	return "theme-" + s.Theme
}

func baseClasses(s Settings) string {
	return fontClass(s) + " " + themeClass(s)
}

// chrome is the wrapper class controlled by the show_blocks setting. The
// per-type class always stays so content keeps its styling.
func chrome(s Settings) string {
	if s.ShowBlocks {
		return "block "
	}
	return ""
}

// Render produces the HTML fragment for one block. Unknown block types get a
// visible "unsupported" placeholder; nothing is ever dropped silently and
// Render never fails.
func Render(b models.Block, s Settings) string {
	s = s.Normalize()
	switch b.Type {
	case models.BlockText:
		return fmt.Sprintf(`<div class="%sblock-text %s">%s</div>`,
			chrome(s), baseClasses(s), html.EscapeString(b.Content))

	case models.BlockQuote:
		return fmt.Sprintf(`<blockquote class="%sblock-quote %s">%s</blockquote>`,
			chrome(s), baseClasses(s), html.EscapeString(b.Content))

	case models.BlockNote:
		return fmt.Sprintf(`<aside class="%sblock-note %s"><strong>Note:</strong> %s</aside>`,
			chrome(s), baseClasses(s), html.EscapeString(b.Content))

	case models.BlockCallout:
		variant := models.CalloutInfo
		if b.Metadata != nil && b.Metadata.Variant != "" {
			variant = b.Metadata.Variant
		}
		return fmt.Sprintf(`<div class="%sblock-callout callout-%s %s"><span class="callout-icon">%s</span><div>%s</div></div>`,
			chrome(s), variant, baseClasses(s), calloutIcon(variant), html.EscapeString(b.Content))

	case models.BlockList:
		tag := "ul"
		if b.Metadata != nil && b.Metadata.Style != nil && b.Metadata.Style.ListType == models.ListNumber {
			tag = "ol"
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, `<div class="%sblock-list %s"><%s>`, chrome(s), baseClasses(s), tag)
		for _, item := range ListItems(b.Content) {
			fmt.Fprintf(&sb, "<li>%s</li>", html.EscapeString(item))
		}
		fmt.Fprintf(&sb, "</%s></div>", tag)
		return sb.String()

	case models.BlockImage:
		var sb strings.Builder
		fmt.Fprintf(&sb, `<figure class="%sblock-image %s"><img src="%s" alt="Lesson content" />`,
			chrome(s), themeClass(s), html.EscapeString(b.Content))
		if b.Metadata != nil && b.Metadata.Caption != "" {
			fmt.Fprintf(&sb, `<figcaption class="block-caption">%s</figcaption>`, html.EscapeString(b.Metadata.Caption))
		}
		sb.WriteString("</figure>")
		return sb.String()

	case models.BlockAudio:
		return fmt.Sprintf(`<div class="%sblock-audio %s"><span class="audio-label">Audio Track</span><audio controls src="%s"></audio></div>`,
			chrome(s), themeClass(s), html.EscapeString(b.Content))

	case models.BlockVideoLink:
		if embed, ok := EmbedURL(b.Content); ok {
			return fmt.Sprintf(`<div class="%sblock-video %s"><iframe src="%s" allowfullscreen></iframe></div>`,
				chrome(s), themeClass(s), html.EscapeString(embed))
		}
		return fmt.Sprintf(`<div class="%sblock-link %s"><a href="%s" target="_blank" rel="noopener noreferrer">%s</a></div>`,
			chrome(s), themeClass(s), html.EscapeString(b.Content), html.EscapeString(b.Content))

	case models.BlockPDFLink:
		return fmt.Sprintf(`<div class="%sblock-link block-pdf %s"><a href="%s" target="_blank" rel="noopener noreferrer">Download PDF</a></div>`,
			chrome(s), themeClass(s), html.EscapeString(b.Content))

	case models.BlockDivider:
		return fmt.Sprintf(`<hr class="%sblock-divider %s" />`, chrome(s), themeClass(s))

	default:
		return fmt.Sprintf(`<div class="%sblock-unsupported">Unsupported block type: %s</div>`,
			chrome(s), html.EscapeString(string(b.Type)))
	}
}

// RenderAll renders a whole block sequence in order.
func RenderAll(seq []models.Block, s Settings) []string {
	out := make([]string, len(seq))
	for i, b := range seq {
		out[i] = Render(b, s)
	}
	return out
}

// ListItems splits LIST block content on newlines, dropping blank lines.
func ListItems(content string) []string {
	var items []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}

func calloutIcon(variant string) string {
	switch variant {
	case models.CalloutWarning:
		return "&#9888;"
	case models.CalloutSuccess:
		return "&#10003;"
	case models.CalloutTip:
		return "&#128161;"
	default:
		return "&#8505;"
	}
}
