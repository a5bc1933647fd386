package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Sem485/eduforge-lms/blocks"
	"github.com/Sem485/eduforge-lms/middleware"
	"github.com/Sem485/eduforge-lms/models"
)

func InsertBlock() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Type    string `json:"type"`
			AtIndex *int   `json:"at_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Type
		if strings.TrimSpace(reqData.Type) == "" {
			errors["type"] = "Block type is required!"
		} else if !models.IsValidBlockType(models.BlockType(reqData.Type)) {
			errors["type"] = "Unknown block type: " + reqData.Type
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBlockInsert", reqData)
		return c.Next()
	}
}

func UpdateBlock() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Content  *string               `json:"content"`
			Metadata *blocks.MetadataPatch `json:"metadata"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Content == nil && reqData.Metadata == nil {
			errors["body"] = "Either content or metadata is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBlockUpdate", reqData)
		return c.Next()
	}
}

func ReorderBlocks() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FromIndex int `json:"from_index"`
			ToIndex   int `json:"to_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.FromIndex < 0 {
			errors["from_index"] = "From index must not be negative!"
		}
		if reqData.ToIndex < 0 {
			errors["to_index"] = "To index must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBlockReorder", reqData)
		return c.Next()
	}
}
