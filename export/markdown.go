package export

import (
	"fmt"
	"strings"

	"github.com/Sem485/eduforge-lms/models"
	"github.com/Sem485/eduforge-lms/render"
)

// BlockMarkdown maps one block to its markdown projection. Types with no
// sensible markdown shape become a visible [TYPE] placeholder.
func BlockMarkdown(b models.Block) string {
	switch b.Type {
	case models.BlockText:
		return b.Content
	case models.BlockList:
		items := render.ListItems(b.Content)
		lines := make([]string, len(items))
		for i, item := range items {
			lines[i] = "- " + item
		}
		return strings.Join(lines, "\n")
	case models.BlockQuote:
		return "> " + b.Content
	case models.BlockDivider:
		return "---"
	default:
		return fmt.Sprintf("[%s]", b.Type)
	}
}

// LessonMarkdown renders one lesson as a markdown document.
func LessonMarkdown(lesson models.Lesson) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", lesson.Title)
	parts := make([]string, len(lesson.Blocks))
	for i, b := range lesson.Blocks {
		parts[i] = BlockMarkdown(b)
	}
	sb.WriteString(strings.Join(parts, "\n\n"))
	sb.WriteString("\n")
	return sb.String()
}

// CourseMarkdown renders the whole tree as one markdown document. This is
// the source for the PDF export.
func CourseMarkdown(pkg *CoursePackage) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n%s\n", pkg.Course.Title, pkg.Course.Description)
	for _, mod := range pkg.SortedModules() {
		fmt.Fprintf(&sb, "\n## %s\n", mod.Title)
		for _, lesson := range pkg.LessonsFor(mod.ID) {
			fmt.Fprintf(&sb, "\n### %s\n\n", lesson.Title)
			for _, b := range lesson.Blocks {
				sb.WriteString(BlockMarkdown(b))
				sb.WriteString("\n\n")
			}
		}
	}
	return sb.String()
}
