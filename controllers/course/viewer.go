package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sem485/eduforge-lms/middleware"
	"github.com/Sem485/eduforge-lms/presentation"
	"github.com/Sem485/eduforge-lms/render"
)

// RenderLesson returns the lesson's blocks rendered under the caller's
// viewer settings. Order and count always match the stored sequence.
func RenderLesson(c *fiber.Ctx) error {
	lesson, err := editableLesson(c)
	if lesson == nil {
		return err
	}

	settings := render.Settings{
		Theme:      c.Query("theme", render.ThemeLight),
		FontSize:   c.Query("font_size", render.FontMedium),
		ShowBlocks: c.QueryBool("show_blocks", true),
	}.Normalize()

	fragments := render.RenderAll(lesson.Blocks, settings)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson rendered successfully!", fiber.Map{
		"lesson_id": lesson.ID,
		"title":     lesson.Title,
		"settings":  settings,
		"fragments": fragments,
	})
}

// PresentLesson returns the slide sequence for presentation mode. Display
// settings are locked to dark/huge; per-slide progress comes back with each
// fragment so the client only tracks the cursor.
func PresentLesson(c *fiber.Ctx) error {
	lesson, err := editableLesson(c)
	if lesson == nil {
		return err
	}

	seq := presentation.NewSequencer(lesson.Blocks)
	settings := seq.Settings()

	type slide struct {
		Index    int     `json:"index"`
		HTML     string  `json:"html"`
		Progress float64 `json:"progress"`
	}

	slides := make([]slide, 0, seq.Len())
	for i, b := range lesson.Blocks {
		slides = append(slides, slide{
			Index:    i,
			HTML:     render.Render(b, settings),
			Progress: float64(i+1) / float64(seq.Len()),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Presentation prepared successfully!", fiber.Map{
		"lesson_id": lesson.ID,
		"title":     lesson.Title,
		"settings":  settings,
		"slides":    slides,
	})
}
