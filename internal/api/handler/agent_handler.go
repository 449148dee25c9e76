package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/valo-rant/community-api/internal/core/domain"
	"github.com/valo-rant/community-api/internal/core/ports"
)

// AgentHandler proxies the external character catalog. Its envelope differs
// from the rest of the API: the body repeats the status code, mirroring the
// upstream catalog's own format.
type AgentHandler struct {
	catalog ports.CatalogService
}

func NewAgentHandler(catalog ports.CatalogService) *AgentHandler {
	return &AgentHandler{catalog: catalog}
}

type agentsResponse struct {
	Status int            `json:"status"`
	Data   []domain.Agent `json:"data"`
}

type agentsErrorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// List handles GET /api/agents.
//
// @Summary      List playable agents from the external catalog
// @Tags         agents
// @Produce      json
// @Success      200  {object}  agentsResponse
// @Failure      500  {object}  agentsErrorResponse
// @Router       /api/agents [get]
func (h *AgentHandler) List(c echo.Context) error {
	agents, err := h.catalog.ListAgents(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, agentsErrorResponse{
			Status: http.StatusInternalServerError,
			Error:  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, agentsResponse{Status: http.StatusOK, Data: agents})
}
