package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sirbot/sir/web"
)

// PageHandler serves the embedded browser front end.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index handles GET / with the single-page joke teller.
// The page carries no joke content; the browser fetches setups and
// punchlines through the API.
func (h *PageHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.Index)
}

// RegisterPageRoutes registers the front end route on the engine.
func (h *PageHandler) RegisterPageRoutes(engine *gin.Engine) {
	engine.GET("/", h.Index)
}
