package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sem485/eduforge-lms/blocks"
	"github.com/Sem485/eduforge-lms/database"
	"github.com/Sem485/eduforge-lms/middleware"
	"github.com/Sem485/eduforge-lms/models"
)

// editableLesson loads the lesson behind a block mutation and enforces the
// ownership rule in one place.
func editableLesson(c *fiber.Ctx) (*models.Lesson, error) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lessonID, ok := c.Locals("lessonID").(uint)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID!", nil)
	}

	lesson, course, err := loadLessonCourse(lessonID)
	if err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if !middleware.CanAccessCourse(user, course) {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}
	return lesson, nil
}

func saveBlocks(c *fiber.Ctx, lesson *models.Lesson, seq []models.Block, message string, data interface{}) error {
	lesson.Blocks = models.BlockSequence(seq)
	if err := database.Database.Db.Save(lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save lesson!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, data)
}

func InsertBlock(c *fiber.Ctx) error {
	lesson, err := editableLesson(c)
	if lesson == nil {
		return err
	}

	reqData, ok := c.Locals("validatedBlockInsert").(*struct {
		Type    string `json:"type"`
		AtIndex *int   `json:"at_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	atIndex := -1
	if reqData.AtIndex != nil {
		atIndex = *reqData.AtIndex
	}

	seq, block, err := blocks.Insert(lesson.Blocks, models.BlockType(reqData.Type), atIndex)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unsupported block type!", nil)
	}

	return saveBlocks(c, lesson, seq, "Block inserted successfully!", fiber.Map{
		"block":  block,
		"blocks": seq,
	})
}

func UpdateBlock(c *fiber.Ctx) error {
	lesson, err := editableLesson(c)
	if lesson == nil {
		return err
	}

	blockID := c.Params("blockId")

	reqData, ok := c.Locals("validatedBlockUpdate").(*struct {
		Content  *string               `json:"content"`
		Metadata *blocks.MetadataPatch `json:"metadata"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	seq := []models.Block(lesson.Blocks)
	if reqData.Content != nil {
		seq, err = blocks.UpdateContent(seq, blockID, *reqData.Content)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Block not found!", nil)
		}
	}
	if reqData.Metadata != nil {
		seq, err = blocks.UpdateMetadata(seq, blockID, *reqData.Metadata)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Block not found!", nil)
		}
	}

	return saveBlocks(c, lesson, seq, "Block updated successfully!", fiber.Map{"blocks": seq})
}

func DeleteBlock(c *fiber.Ctx) error {
	lesson, err := editableLesson(c)
	if lesson == nil {
		return err
	}

	seq, err := blocks.Remove(lesson.Blocks, c.Params("blockId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Block not found!", nil)
	}

	return saveBlocks(c, lesson, seq, "Block deleted successfully!", fiber.Map{"blocks": seq})
}

func DuplicateBlock(c *fiber.Ctx) error {
	lesson, err := editableLesson(c)
	if lesson == nil {
		return err
	}

	seq, dup, err := blocks.Duplicate(lesson.Blocks, c.Params("blockId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Block not found!", nil)
	}

	return saveBlocks(c, lesson, seq, "Block duplicated successfully!", fiber.Map{
		"block":  dup,
		"blocks": seq,
	})
}

func ReorderBlocks(c *fiber.Ctx) error {
	lesson, err := editableLesson(c)
	if lesson == nil {
		return err
	}

	reqData, ok := c.Locals("validatedBlockReorder").(*struct {
		FromIndex int `json:"from_index"`
		ToIndex   int `json:"to_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	seq, err := blocks.Reorder(lesson.Blocks, reqData.FromIndex, reqData.ToIndex)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid block position!", nil)
	}

	return saveBlocks(c, lesson, seq, "Blocks reordered successfully!", fiber.Map{"blocks": seq})
}
