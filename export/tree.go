// Package export serializes a full course tree into the downloadable
// formats: HTML document, PPTX deck, ZIP of markdown, raw JSON and PDF.
package export

import (
	"sort"

	"github.com/Sem485/eduforge-lms/models"
)

// CoursePackage is the fully fetched course tree an exporter walks. Every
// format visits modules by order, lessons by order within their module and
// blocks by sequence position.
type CoursePackage struct {
	Course  models.Course        `json:"course"`
	Modules []models.CourseModule `json:"modules"`
	Lessons []models.Lesson      `json:"lessons"`
}

// SortedModules returns the modules ordered by their order index.
func (p *CoursePackage) SortedModules() []models.CourseModule {
	out := append([]models.CourseModule(nil), p.Modules...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out
}

// LessonsFor returns the lessons of one module ordered by their order index.
func (p *CoursePackage) LessonsFor(moduleID uint) []models.Lesson {
	var out []models.Lesson
	for _, l := range p.Lessons {
		if l.ModuleID == moduleID {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out
}
