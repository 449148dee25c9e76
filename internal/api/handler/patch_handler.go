package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/valo-rant/community-api/internal/api/metrics"
	"github.com/valo-rant/community-api/internal/core/domain"
	"github.com/valo-rant/community-api/internal/core/ports"
)

// PatchHandler handles HTTP requests for patch-notes entries. All mutations
// are admin-gated by the store; the privilege check runs before validation,
// so an unprivileged request with bad fields still gets 403.
type PatchHandler struct {
	store ports.PatchStore
}

func NewPatchHandler(store ports.PatchStore) *PatchHandler {
	return &PatchHandler{store: store}
}

// List handles GET /api/patches.
//
// @Summary      List all patches
// @Tags         patches
// @Produce      json
// @Success      200  {array}  domain.Patch
// @Router       /api/patches [get]
func (h *PatchHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.List(c.Request().Context()))
}

// Create handles POST /api/patches.
//
// @Summary      Create a patch (admin only)
// @Tags         patches
// @Accept       json
// @Produce      json
// @Param        body  body      createPatchRequest  true  "New patch"
// @Success      201   {object}  domain.Patch
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/patches [post]
func (h *PatchHandler) Create(c echo.Context) error {
	var req createPatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patch, err := h.store.Create(c.Request().Context(), ports.CreatePatchInput{
		Version: req.Version,
		Date:    req.Date,
		Text:    req.Text,
	}, domain.Claim{IsAdmin: req.IsAdmin})
	if err != nil {
		return err
	}

	metrics.PatchesTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, patch)
}

// Update handles PUT /api/patches/:id with partial-merge semantics: only the
// fields present in the body change.
//
// @Summary      Update a patch (admin only)
// @Tags         patches
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Patch id"
// @Param        body  body      updatePatchRequest  true  "Partial edit"
// @Success      200   {object}  domain.Patch
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/patches/{id} [put]
func (h *PatchHandler) Update(c echo.Context) error {
	var req updatePatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patch, err := h.store.Update(c.Request().Context(), pathID(c, "id"), ports.UpdatePatchInput{
		Version: req.Version,
		Date:    req.Date,
		Text:    req.Text,
	}, domain.Claim{IsAdmin: req.IsAdmin})
	if err != nil {
		return err
	}

	metrics.PatchesTotal.WithLabelValues("updated").Inc()
	return c.JSON(http.StatusOK, patch)
}

// Delete handles DELETE /api/patches/:id.
//
// @Summary      Delete a patch (admin only)
// @Tags         patches
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Patch id"
// @Param        body  body      claimRequest  true  "Privilege assertion"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/patches/{id} [delete]
func (h *PatchHandler) Delete(c echo.Context) error {
	var req claimRequest
	_ = c.Bind(&req)

	if err := h.store.Delete(c.Request().Context(), pathID(c, "id"), domain.Claim{IsAdmin: req.IsAdmin}); err != nil {
		return err
	}

	metrics.PatchesTotal.WithLabelValues("deleted").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Patch deleted"})
}
