package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"rebrain/internal/middleware"
	"rebrain/internal/models"
	"rebrain/internal/service"
	"rebrain/internal/validation"
)

// contentRequest is the body of POST /content.
type contentRequest struct {
	Title string   `json:"title" validate:"required,max=256"`
	Link  string   `json:"link" validate:"required,weburl"`
	Type  string   `json:"type" validate:"required,oneof=twitter youtube document link tag"`
	Tags  []string `json:"tags" validate:"omitempty,max=32,dive,required,max=64"`
}

// ContentHandler handles the caller's content via JSON API.
type ContentHandler struct {
	contents *service.Contents
	validate *validation.Validator
}

// NewContentHandler creates a new API content handler.
func NewContentHandler(contents *service.Contents, validate *validation.Validator) *ContentHandler {
	return &ContentHandler{contents: contents, validate: validate}
}

// Create adds a content item owned by the caller.
func (h *ContentHandler) Create(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return jsonError(c, fiber.StatusForbidden, "Token missing or malformed")
	}

	var body contentRequest
	if ok, err := decodeAndValidate(c, h.validate, &body, "Invalid content input"); !ok {
		return err
	}

	content, err := h.contents.Add(c.Context(), userID, service.NewContent{
		Title: body.Title,
		Link:  body.Link,
		Type:  models.ContentType(body.Type),
		Tags:  body.Tags,
	})
	if err != nil {
		slog.Error("failed to add content", "user_id", userID, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to add content")
	}

	return c.JSON(models.ContentCreatedResponse{Message: "Content added", Content: content})
}

// List returns every content item owned by the caller.
func (h *ContentHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return jsonError(c, fiber.StatusForbidden, "Token missing or malformed")
	}

	items, err := h.contents.List(c.Context(), userID)
	if err != nil {
		slog.Error("failed to list content", "user_id", userID, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load content")
	}

	return c.JSON(models.ContentListResponse{Content: items})
}

// Delete removes a content item owned by the caller. Ids that are malformed,
// unknown or owned by someone else are reported as deleted too.
func (h *ContentHandler) Delete(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return jsonError(c, fiber.StatusForbidden, "Token missing or malformed")
	}

	contentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonMessage(c, "Deleted")
	}

	if err := h.contents.Remove(c.Context(), userID, contentID); err != nil {
		slog.Error("failed to delete content", "user_id", userID, "content_id", contentID, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to delete content")
	}

	return jsonMessage(c, "Deleted")
}

// Tags returns the distinct tags used on the caller's content.
func (h *ContentHandler) Tags(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return jsonError(c, fiber.StatusForbidden, "Token missing or malformed")
	}

	tags, err := h.contents.Tags(c.Context(), userID)
	if err != nil {
		slog.Error("failed to list tags", "user_id", userID, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load tags")
	}

	return c.JSON(models.TagListResponse{Tags: tags})
}
