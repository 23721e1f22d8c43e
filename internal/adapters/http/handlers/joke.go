package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sirbot/sir/internal/adapters/http/dto"
	"github.com/sirbot/sir/internal/app"
)

// JokeHandler handles joke-related HTTP endpoints.
type JokeHandler struct {
	service *app.JokeService
}

// NewJokeHandler creates a new joke handler.
func NewJokeHandler(service *app.JokeService) *JokeHandler {
	return &JokeHandler{
		service: service,
	}
}

// NewJokeResponse is the HTTP response for a freshly served joke.
// The punchline is deliberately absent; clients fetch it in a second
// request once the reader is ready.
type NewJokeResponse struct {
	ID    string `json:"id"`
	Setup string `json:"setup"`
	Total int    `json:"total"`
}

// PunchlineResponse is the HTTP response for a revealed punchline.
type PunchlineResponse struct {
	Punchline string `json:"punchline"`
}

// NewJoke handles GET /api/v1/jokes/new
// Picks a random joke and returns its setup and handle.
func (h *JokeHandler) NewJoke(c *gin.Context) {
	reveal, err := h.service.NewJoke(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewJokeResponse{
		ID:    reveal.ID(),
		Setup: reveal.Setup(),
		Total: h.service.Count(),
	})
}

// Punchline handles GET /api/v1/jokes/:id/punchline
// Reveals the punchline for a previously served joke.
func (h *JokeHandler) Punchline(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			"joke ID is required",
		).WithTraceID(dto.GetTraceID(c)))

		return
	}

	punchline, err := h.service.Punchline(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, PunchlineResponse{
		Punchline: punchline,
	})
}

// RegisterJokeRoutes registers joke routes on the given router group.
func (h *JokeHandler) RegisterJokeRoutes(rg *gin.RouterGroup) {
	jokes := rg.Group("/jokes")
	jokes.GET("/new", h.NewJoke)
	jokes.GET("/:id/punchline", h.Punchline)
}
