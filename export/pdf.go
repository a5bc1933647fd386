package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mandolyte/mdtopdf"
)

// GeneratePDF renders the course's markdown projection into a PDF document.
// The renderer works on files, so the conversion goes through a temp dir.
func GeneratePDF(pkg *CoursePackage) ([]byte, error) {
	dir, err := os.MkdirTemp("", "eduforge-pdf-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	pdfPath := filepath.Join(dir, "course.pdf")
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process([]byte(CourseMarkdown(pkg))); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("read pdf output: %w", err)
	}
	return data, nil
}
