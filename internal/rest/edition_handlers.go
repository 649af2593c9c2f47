package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/editions/internal/catalog"
	"github.com/labstack/echo/v4"
)

const (
	msgInvalidID      = "Invalid edition ID"
	msgInvalidBody    = "Invalid request body"
	msgNotFound       = catalog.MsgNotFound
	msgFetchEditions  = "Failed to fetch editions"
	msgFetchEdition   = "Failed to fetch edition"
	msgCreateEdition  = "Failed to create edition"
	msgUpdateEdition  = "Failed to update edition"
	msgDeleteEdition  = "Failed to delete edition"
	msgEditionCreated = "Edition created successfully"
	msgEditionUpdated = "Edition updated successfully"
	msgEditionDeleted = "Edition deleted successfully"
)

type EditionHandler struct {
	m   *catalog.Manager
	log *slog.Logger

	frontendDir string
}

func NewEditionHandler(m *catalog.Manager, log *slog.Logger, frontendDir string) *EditionHandler {
	return &EditionHandler{
		m:           m,
		log:         log,
		frontendDir: frontendDir,
	}
}

func (h *EditionHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, Envelope{Success: false, Error: message})
}

// handleManagerError maps manager errors to a status code. failMessage is
// used for internal errors.
func (h *EditionHandler) handleManagerError(c echo.Context, err error, failMessage string) error {
	var ve *catalog.ValidationError
	switch {
	case errors.As(err, &ve):
		h.log.Warn("invalid edition", "error", err, "fields", ve.Fields)
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: ve.Message, Message: ve.Details()})
	case errors.Is(err, catalog.ErrNotFound):
		return h.handleError(c, err, http.StatusNotFound, msgNotFound)
	default:
		return h.handleError(c, err, http.StatusInternalServerError, failMessage)
	}
}

func (h *EditionHandler) editionID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

// Editions handles GET /api/editions
// @Summary List editions
// @Description Searches title and description, filters by category, sorts and paginates editions
// @Tags editions
// @Produce json
// @Param q query string false "Case-insensitive search in title and description"
// @Param category query string false "Exact category"
// @Param sortBy query string false "Sort field (default: date)"
// @Param order query string false "asc or desc (default: desc)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {object} rest.Envelope{data=rest.EditionsPage}
// @Failure 500 {object} rest.Envelope
// @Router /api/editions [get]
func (h *EditionHandler) Editions(c echo.Context) error {
	var req EditionsRequest
	if err := c.Bind(&req); err != nil {
		h.log.Warn("failed to bind list parameters", "error", err)
	}

	page, err := h.m.Editions(c.Request().Context(), req.ToModel())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, msgFetchEditions)
	}

	return c.JSON(http.StatusOK, Envelope{Success: true, Data: NewEditionsPage(*page)})
}

// EditionByID handles GET /api/editions/:id
// @Summary Get edition by ID
// @Tags editions
// @Produce json
// @Param id path int true "Edition ID"
// @Success 200 {object} rest.Envelope{data=rest.Edition}
// @Failure 400,404,500 {object} rest.Envelope
// @Router /api/editions/{id} [get]
func (h *EditionHandler) EditionByID(c echo.Context) error {
	id, err := h.editionID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, msgInvalidID)
	}

	edition, err := h.m.EditionByID(c.Request().Context(), id)
	if err != nil {
		return h.handleManagerError(c, err, msgFetchEdition)
	}

	return c.JSON(http.StatusOK, Envelope{Success: true, Data: NewEdition(*edition)})
}

// CreateEdition handles POST /api/editions
// @Summary Create edition
// @Tags editions
// @Accept json
// @Produce json
// @Param edition body rest.EditionFormData true "Edition fields"
// @Success 201 {object} rest.Envelope{data=rest.Edition}
// @Failure 400,500 {object} rest.Envelope
// @Router /api/editions [post]
func (h *EditionHandler) CreateEdition(c echo.Context) error {
	var form EditionFormData
	if err := c.Bind(&form); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, msgInvalidBody)
	}

	edition, err := h.m.CreateEdition(c.Request().Context(), form.ToModel())
	if err != nil {
		return h.handleManagerError(c, err, msgCreateEdition)
	}

	return c.JSON(http.StatusCreated, Envelope{Success: true, Data: NewEdition(*edition), Message: msgEditionCreated})
}

// UpdateEdition handles PUT /api/editions/:id
// @Summary Replace edition
// @Description Replaces every field except the id
// @Tags editions
// @Accept json
// @Produce json
// @Param id path int true "Edition ID"
// @Param edition body rest.EditionFormData true "Edition fields"
// @Success 200 {object} rest.Envelope{data=rest.Edition}
// @Failure 400,404,500 {object} rest.Envelope
// @Router /api/editions/{id} [put]
func (h *EditionHandler) UpdateEdition(c echo.Context) error {
	id, err := h.editionID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, msgInvalidID)
	}

	var form EditionFormData
	if err := c.Bind(&form); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, msgInvalidBody)
	}

	edition, err := h.m.UpdateEdition(c.Request().Context(), id, form.ToModel())
	if err != nil {
		return h.handleManagerError(c, err, msgUpdateEdition)
	}

	return c.JSON(http.StatusOK, Envelope{Success: true, Data: NewEdition(*edition), Message: msgEditionUpdated})
}

// DeleteEdition handles DELETE /api/editions/:id
// @Summary Delete edition
// @Tags editions
// @Produce json
// @Param id path int true "Edition ID"
// @Success 200 {object} rest.Envelope{data=rest.Edition}
// @Failure 400,404,500 {object} rest.Envelope
// @Router /api/editions/{id} [delete]
func (h *EditionHandler) DeleteEdition(c echo.Context) error {
	id, err := h.editionID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, msgInvalidID)
	}

	edition, err := h.m.DeleteEdition(c.Request().Context(), id)
	if err != nil {
		return h.handleManagerError(c, err, msgDeleteEdition)
	}

	return c.JSON(http.StatusOK, Envelope{Success: true, Data: NewEdition(*edition), Message: msgEditionDeleted})
}

// Categories handles GET /api/categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} rest.Envelope{data=[]string}
// @Router /api/categories [get]
func (h *EditionHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: catalog.Categories()})
}
