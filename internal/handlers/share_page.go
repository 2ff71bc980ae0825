package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"rebrain/internal/config"
	"rebrain/internal/service"
)

// SharePageHandler renders a shared brain as HTML.
type SharePageHandler struct {
	sharing    *service.Sharing
	cfg        *config.Config
	recordView func(hash string)
}

// NewSharePageHandler creates a new share page handler. recordView may be nil.
func NewSharePageHandler(sharing *service.Sharing, cfg *config.Config, recordView func(hash string)) *SharePageHandler {
	if recordView == nil {
		recordView = func(string) {}
	}
	return &SharePageHandler{sharing: sharing, cfg: cfg, recordView: recordView}
}

// Show renders the content published under the :hash route parameter.
func (h *SharePageHandler) Show(c fiber.Ctx) error {
	hash := c.Params("hash")

	brain, err := h.sharing.Resolve(c.Context(), hash)
	if err != nil {
		if errors.Is(err, service.ErrShareLinkNotFound) || errors.Is(err, service.ErrOwnerNotFound) {
			return renderError(c, h.cfg, fiber.StatusNotFound, "Not found", "This shared brain does not exist or is no longer shared.")
		}
		slog.Error("failed to render shared brain", "hash", hash, "error", err)
		return renderError(c, h.cfg, fiber.StatusInternalServerError, "Error", "Something went wrong loading this page.")
	}

	h.recordView(hash)
	return c.Render("share", MergeBranding(fiber.Map{
		"Title":    brain.Username + "'s brain",
		"Username": brain.Username,
		"Content":  brain.Content,
	}, h.cfg))
}
