package http

import "github.com/gin-gonic/gin"

// Register attaches blueprint routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/validate", h.validate)
	rg.POST("/testplan", h.testPlan)
	rg.POST("/generate", h.generate)
}

// RegisterResults attaches the result lookup route.
func (h *Handler) RegisterResults(rg *gin.RouterGroup) {
	rg.GET("/:id", h.getResult)
}
