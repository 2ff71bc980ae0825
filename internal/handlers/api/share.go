package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"rebrain/internal/middleware"
	"rebrain/internal/models"
	"rebrain/internal/service"
	"rebrain/internal/validation"
)

// shareRequest is the body of POST /brain/share. A missing share is false.
type shareRequest struct {
	Share bool `json:"share"`
}

// ShareHandler handles share links via JSON API.
type ShareHandler struct {
	sharing    *service.Sharing
	validate   *validation.Validator
	recordView func(hash string)
}

// NewShareHandler creates a new API share handler. recordView is called after
// every successful resolve and may be nil.
func NewShareHandler(sharing *service.Sharing, validate *validation.Validator, recordView func(hash string)) *ShareHandler {
	if recordView == nil {
		recordView = func(string) {}
	}
	return &ShareHandler{sharing: sharing, validate: validate, recordView: recordView}
}

// Share enables or disables the caller's share link.
func (h *ShareHandler) Share(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return jsonError(c, fiber.StatusForbidden, "Token missing or malformed")
	}

	// An empty body means share=false.
	var body shareRequest
	if len(c.Body()) > 0 {
		if ok, err := decodeAndValidate(c, h.validate, &body, "Incorrect format"); !ok {
			return err
		}
	}

	if !body.Share {
		if err := h.sharing.Disable(c.Context(), userID); err != nil {
			slog.Error("failed to remove share link", "user_id", userID, "error", err)
			return jsonError(c, fiber.StatusInternalServerError, "Failed to remove sharable link")
		}
		return jsonMessage(c, "Link Removed")
	}

	hash, err := h.sharing.Enable(c.Context(), userID)
	if err != nil {
		slog.Error("failed to enable share link", "user_id", userID, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to generate sharable link")
	}

	return c.JSON(models.ShareResponse{Hash: hash})
}

// Status reports whether the caller's share link is enabled.
func (h *ShareHandler) Status(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return jsonError(c, fiber.StatusForbidden, "Token missing or malformed")
	}

	link, err := h.sharing.Status(c.Context(), userID)
	if err != nil {
		slog.Error("failed to load share status", "user_id", userID, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load share status")
	}
	if link == nil {
		return c.JSON(models.ShareStatusResponse{Enabled: false})
	}

	return c.JSON(models.ShareStatusResponse{Enabled: true, Hash: link.Hash, ViewCount: link.ViewCount})
}

// Resolve returns the username and content published under a share hash.
func (h *ShareHandler) Resolve(c fiber.Ctx) error {
	hash := c.Params("hash")

	brain, err := h.sharing.Resolve(c.Context(), hash)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrShareLinkNotFound):
			return jsonError(c, fiber.StatusNotFound, "invalid shared link")
		case errors.Is(err, service.ErrOwnerNotFound):
			return jsonError(c, fiber.StatusNotFound, "user not found")
		}
		slog.Error("failed to resolve share link", "hash", hash, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load content")
	}

	h.recordView(hash)
	return c.JSON(brain)
}
