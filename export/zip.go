package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
)

// GenerateZIP packs the course into an archive holding the raw course record,
// the HTML export and one markdown file per lesson, grouped by module folder.
// Folder and file numbering is 1-based on the order index.
func GenerateZIP(pkg *CoursePackage) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	info, err := json.MarshalIndent(pkg.Course, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal course info: %w", err)
	}
	if err := writeZipFile(zw, "course_info.json", info); err != nil {
		return nil, err
	}
	if err := writeZipFile(zw, "index.html", []byte(GenerateHTML(pkg))); err != nil {
		return nil, err
	}

	for _, mod := range pkg.SortedModules() {
		folder := fmt.Sprintf("Module_%d_%s", mod.OrderIndex+1, SanitizeName(mod.Title))
		for _, lesson := range pkg.LessonsFor(mod.ID) {
			name := fmt.Sprintf("%s/Lesson_%d.md", folder, lesson.OrderIndex+1)
			if err := writeZipFile(zw, name, []byte(LessonMarkdown(lesson))); err != nil {
				return nil, err
			}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

func writeZipFile(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
