package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/specforge-io/specforge-backend/internal/auth"
	"github.com/specforge-io/specforge-backend/internal/documents/domain"
	"github.com/specforge-io/specforge-backend/internal/documents/repository"
)

type Handler struct {
	repo *repository.Repo
}

func NewHandler(repo *repository.Repo) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) list(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	items, err := h.repo.List(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "documents": items})
}

func (h *Handler) get(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	d, err := h.repo.Get(c.Request.Context(), uid, c.Param("public_id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "document": d})
}

type updateReq struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (h *Handler) update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if req.Title == nil && req.Content == nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "nothing to update"})
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "title must not be empty"})
		return
	}

	uid := auth.UserFirebaseUID(c)
	d, err := h.repo.Update(c.Request.Context(), uid, c.Param("public_id"), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "document": d})
}

func (h *Handler) delete(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	ok, err := h.repo.SoftDelete(c.Request.Context(), uid, c.Param("public_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "document not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
