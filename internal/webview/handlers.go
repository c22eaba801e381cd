package webview

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/Veraticus/wardrobe/internal/common"
	"github.com/Veraticus/wardrobe/internal/page"
	"github.com/Veraticus/wardrobe/internal/style"
	"github.com/gin-gonic/gin"
)

type handlers struct {
	controller Controller
	logger     *slog.Logger
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// groupParam reads the wardrobe group filter, answering 400 when it is unknown.
func groupParam(c *gin.Context) (string, bool) {
	group := c.DefaultQuery("group", style.GroupAll)
	if !slices.Contains(style.Groups(), group) {
		respondError(c, http.StatusBadRequest, "invalid_group", "unknown wardrobe group: "+group)
		return "", false
	}
	return group, true
}

func (h *handlers) dashboard(c *gin.Context) {
	group, ok := groupParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.controller.Dashboard(group))
}

func (h *handlers) tips(c *gin.Context) {
	d := h.controller.Dashboard(style.GroupAll)
	c.JSON(http.StatusOK, gin.H{
		"signed_in": d.SignedIn,
		"tips":      d.Tips,
	})
}

func (h *handlers) recommendations(c *gin.Context) {
	d := h.controller.Dashboard(style.GroupAll)
	c.JSON(http.StatusOK, gin.H{
		"signed_in":       d.SignedIn,
		"recommendations": d.Recommendations,
		"outfits":         d.Outfits,
	})
}

func (h *handlers) refresh(c *gin.Context) {
	group, ok := groupParam(c)
	if !ok {
		return
	}
	if err := h.controller.Refresh(c.Request.Context()); err != nil {
		h.logger.Warn("refresh failed", "request_id", RequestIDFromContext(c), "error", err)
		respondError(c, http.StatusBadGateway, "refresh_failed", common.UserMessage(err))
		return
	}
	c.JSON(http.StatusOK, h.controller.Dashboard(group))
}

func (h *handlers) generate(c *gin.Context) {
	if _, err := h.controller.GenerateRecommendations(c.Request.Context()); err != nil {
		if errors.Is(err, page.ErrLoginRequired) {
			respondError(c, http.StatusUnauthorized, "login_required", "Log in to generate recommendations")
			return
		}
		h.logger.Warn("recommendation generation failed", "request_id", RequestIDFromContext(c), "error", err)
		respondError(c, http.StatusBadGateway, "generation_failed", common.UserMessage(err))
		return
	}
	h.recommendations(c)
}
