package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/specforge-io/specforge-backend/internal/auth"
	"github.com/specforge-io/specforge-backend/internal/blueprint/domain"
	"github.com/specforge-io/specforge-backend/internal/blueprint/integrity"
	"github.com/specforge-io/specforge-backend/internal/blueprint/service"
	"github.com/specforge-io/specforge-backend/internal/blueprint/testplan"
	"github.com/specforge-io/specforge-backend/internal/llm"
	"github.com/specforge-io/specforge-backend/internal/results"
)

type Handler struct {
	svc          *service.GenerationService
	resultsStore *results.Store // optional, nil when Redis is absent
}

func NewHandler(svc *service.GenerationService, store *results.Store) *Handler {
	return &Handler{svc: svc, resultsStore: store}
}

// bindSpec decodes and shape-validates the request body. It owns the 400
// responses so the engines only ever see valid input.
func bindSpec(c *gin.Context) (*domain.Spec, bool) {
	var spec domain.Spec
	if err := c.ShouldBindJSON(&spec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return nil, false
	}
	if err := spec.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return nil, false
	}
	return &spec, true
}

func (h *Handler) validate(c *gin.Context) {
	spec, ok := bindSpec(c)
	if !ok {
		return
	}
	res := integrity.Evaluate(spec)
	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"valid":       res.Valid(),
		"conflicts":   res.Conflicts,
		"warnings":    res.Warnings,
		"suggestions": res.Suggestions,
	})
}

func (h *Handler) testPlan(c *gin.Context) {
	spec, ok := bindSpec(c)
	if !ok {
		return
	}
	plan := testplan.Derive(spec)
	c.JSON(http.StatusOK, gin.H{"ok": true, "plan": plan})
}

func (h *Handler) generate(c *gin.Context) {
	spec, ok := bindSpec(c)
	if !ok {
		return
	}

	uid := auth.UserFirebaseUID(c)
	out, err := h.svc.Generate(c.Request.Context(), uid, spec)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "text generation is not configured"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": out})
}

func (h *Handler) getResult(c *gin.Context) {
	if h.resultsStore == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "result cache is not configured"})
		return
	}
	uid := auth.UserFirebaseUID(c)
	res, err := h.resultsStore.Get(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, results.ErrResultNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "result not found or expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": res})
}
