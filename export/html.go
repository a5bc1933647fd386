package export

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Sem485/eduforge-lms/models"
	"github.com/Sem485/eduforge-lms/render"
)

const htmlStylesheet = `
    body { font-family: 'Inter', system-ui, sans-serif; max-width: 900px; margin: 0 auto; padding: 40px; color: #1e293b; background: #fff; line-height: 1.6; }
    h1 { font-size: 2.5em; border-bottom: 4px solid #3b82f6; padding-bottom: 16px; margin-bottom: 24px; color: #0f172a; }
    .course-meta { background: #f8fafc; padding: 20px; border-radius: 12px; margin-bottom: 40px; border: 1px solid #e2e8f0; }
    .module { margin-top: 60px; break-inside: avoid; page-break-before: always; }
    .module-header { background: #1e293b; color: white; padding: 16px 24px; border-radius: 8px; margin-bottom: 24px; }
    .module-title { font-size: 1.8em; font-weight: 700; margin: 0; }
    .lesson { margin-bottom: 40px; border: 1px solid #e2e8f0; border-radius: 12px; overflow: hidden; break-inside: avoid; }
    .lesson-header { background: #f1f5f9; padding: 16px 24px; border-bottom: 1px solid #e2e8f0; }
    .lesson-title { font-size: 1.4em; font-weight: 600; margin: 0; color: #334155; }
    .lesson-content { padding: 24px; }
    .block { margin-bottom: 24px; }
    .block-text { font-size: 1.1em; color: #334155; white-space: pre-wrap; }
    .block-image { text-align: center; }
    .block-image img { max-width: 100%; height: auto; border-radius: 8px; }
    .block-caption { font-size: 0.9em; color: #64748b; margin-top: 8px; font-style: italic; }
    .block-audio audio { width: 100%; margin-top: 8px; }
    .block-note { background: #fffbeb; border-left: 4px solid #f59e0b; padding: 16px; border-radius: 4px; color: #92400e; }
    .block-callout { padding: 16px; border-radius: 8px; border: 1px solid; margin: 16px 0; display: flex; align-items: start; gap: 12px; }
    .callout-info { background: #eff6ff; border-color: #bfdbfe; color: #1e40af; }
    .callout-warning { background: #fff7ed; border-color: #fed7aa; color: #9a3412; }
    .callout-success { background: #f0fdf4; border-color: #bbf7d0; color: #166534; }
    .callout-tip { background: #faf5ff; border-color: #e9d5ff; color: #6b21a8; }
    .block-quote { border-left: 4px solid #cbd5e1; padding-left: 16px; font-style: italic; color: #475569; font-size: 1.1em; margin: 20px 0; }
    .block-divider { height: 1px; background: #e2e8f0; border: 0; margin: 40px 0; }
    .block-list ul, .block-list ol { margin-left: 20px; }
    .block-list li { margin-bottom: 8px; }
    .block-link a { display: inline-flex; align-items: center; background: #eff6ff; color: #2563eb; padding: 12px 20px; border-radius: 6px; text-decoration: none; font-weight: 600; }
    .block-unsupported { color: #dc2626; font-size: 0.9em; padding: 16px; border: 1px solid #fecaca; border-radius: 6px; }
    @media print {
      body { padding: 0; }
      .module { page-break-before: always; }
      .lesson { break-inside: avoid; border: none; }
      .lesson-header { background: none; border-bottom: 2px solid #000; padding-left: 0; }
    }
`

// blockHTML is the static-markup projection of one block for the exported
// document. It mirrors the interactive renderer's per-type rules; unknown
// types emit a visible placeholder here too.
func blockHTML(b models.Block) string {
	switch b.Type {
	case models.BlockText:
		return fmt.Sprintf(`<div class="block-text">%s</div>`, html.EscapeString(b.Content))
	case models.BlockImage:
		caption := ""
		if b.Metadata != nil && b.Metadata.Caption != "" {
			caption = fmt.Sprintf(`<div class="block-caption">%s</div>`, html.EscapeString(b.Metadata.Caption))
		}
		return fmt.Sprintf(`<div class="block-image"><img src="%s" alt="Image" />%s</div>`, html.EscapeString(b.Content), caption)
	case models.BlockAudio:
		return fmt.Sprintf(`<div class="block-audio"><audio controls src="%s"></audio></div>`, html.EscapeString(b.Content))
	case models.BlockNote:
		return fmt.Sprintf(`<div class="block-note"><strong>Note:</strong> %s</div>`, html.EscapeString(b.Content))
	case models.BlockQuote:
		return fmt.Sprintf(`<div class="block-quote">%s</div>`, html.EscapeString(b.Content))
	case models.BlockCallout:
		variant := models.CalloutInfo
		if b.Metadata != nil && b.Metadata.Variant != "" {
			variant = b.Metadata.Variant
		}
		return fmt.Sprintf(`<div class="block-callout callout-%s"><div>%s</div></div>`, variant, html.EscapeString(b.Content))
	case models.BlockDivider:
		return `<hr class="block-divider" />`
	case models.BlockList:
		tag := "ul"
		if b.Metadata != nil && b.Metadata.Style != nil && b.Metadata.Style.ListType == models.ListNumber {
			tag = "ol"
		}
		var items strings.Builder
		for _, item := range render.ListItems(b.Content) {
			fmt.Fprintf(&items, "<li>%s</li>", html.EscapeString(item))
		}
		return fmt.Sprintf(`<div class="block-list"><%s>%s</%s></div>`, tag, items.String(), tag)
	case models.BlockVideoLink, models.BlockPDFLink:
		return fmt.Sprintf(`<div class="block-link"><a href="%s" target="_blank">Open resource</a></div>`, html.EscapeString(b.Content))
	default:
		return fmt.Sprintf(`<div class="block-unsupported">Unsupported block type: %s</div>`, html.EscapeString(string(b.Type)))
	}
}

// GenerateHTML produces the single self-contained export document: one
// section per module, one article per lesson, blocks in sequence order.
func GenerateHTML(pkg *CoursePackage) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"ru\">\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&sb, "<title>%s - Course export</title>\n", html.EscapeString(pkg.Course.Title))
	fmt.Fprintf(&sb, "<style>%s</style>\n</head>\n<body>\n", htmlStylesheet)

	fmt.Fprintf(&sb, "<header>\n<h1>%s</h1>\n", html.EscapeString(pkg.Course.Title))
	fmt.Fprintf(&sb, `<div class="course-meta"><p><strong>Description:</strong> %s</p><p><strong>Exported:</strong> %s</p></div>`,
		html.EscapeString(pkg.Course.Description), time.Now().Format("2006-01-02"))
	sb.WriteString("\n</header>\n")

	for _, mod := range pkg.SortedModules() {
		fmt.Fprintf(&sb, `<section class="module"><div class="module-header"><h2 class="module-title">%s</h2></div><div class="module-content">`,
			html.EscapeString(mod.Title))
		for _, lesson := range pkg.LessonsFor(mod.ID) {
			fmt.Fprintf(&sb, `<article class="lesson"><div class="lesson-header"><h3 class="lesson-title">%s</h3></div><div class="lesson-content">`,
				html.EscapeString(lesson.Title))
			for _, b := range lesson.Blocks {
				fmt.Fprintf(&sb, `<div class="block">%s</div>`, blockHTML(b))
			}
			sb.WriteString("</div></article>")
		}
		sb.WriteString("</div></section>\n")
	}

	sb.WriteString("</body></html>\n")
	return sb.String()
}
