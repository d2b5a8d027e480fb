package api

import (
	"errors"
	"log/slog"
	"net/http"

	reqdto "guri24/internal/handler/dto/request"
	resdto "guri24/internal/handler/dto/response"
	"guri24/internal/handler/httperr"
	"guri24/internal/handler/middleware"
	"guri24/internal/handler/validation"
	"guri24/internal/usecase/commands"
	"guri24/internal/usecase/queries"
	"guri24/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	cmds commands.PropertyCommands
	q    queries.PropertyQueries
}

func NewPropertyHandler(cmds commands.PropertyCommands, q queries.PropertyQueries) *PropertyHandler {
	return &PropertyHandler{cmds: cmds, q: q}
}

// @Summary List properties
// @Description Published listings, newest first. Staff may filter by status.
// @Tags properties
// @Produce json
// @Param type query string false "house, apartment, villa, land or commercial"
// @Param purpose query string false "sale, rent or stay"
// @Param status query string false "draft, published or archived (staff only)"
// @Param min_price query string false "Minimum price"
// @Param max_price query string false "Maximum price"
// @Param location query string false "Location substring"
// @Param min_bedrooms query int false "Minimum bedrooms"
// @Param search query string false "Search in title and description"
// @Param page query int false "Page, from 1"
// @Param page_size query int false "Page size, 1..100"
// @Success 200 {object} resdto.PropertyListResponse
// @Failure 400 {object} httperr.Response
// @Router /properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	var req reqdto.ListPropertiesQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", validation.Describe(err))
		return
	}
	filter, err := req.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid price filter", nil)
		return
	}

	page, err := h.q.List(c.Request.Context(), filter, middleware.OptionalRole(c))
	if err != nil {
		httperr.Unavailable(c, err)
		return
	}

	res, err := resdto.FromPropertyPage(page)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get property by slug
// @Description Counts as a view of the listing
// @Tags properties
// @Produce json
// @Param slug path string true "Property slug"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 404 {object} httperr.Response
// @Router /properties/{slug} [get]
func (h *PropertyHandler) GetBySlug(c *gin.Context) {
	view, err := h.q.GetBySlug(c.Request.Context(), c.Param("slug"), middleware.OptionalRole(c))
	if err != nil {
		abortPropertyLookup(c, err)
		return
	}

	if err := h.cmds.RecordView(c.Request.Context(), view.ID); err != nil {
		slog.Warn("failed to record property view", "property_id", view.ID.String(), "error", err.Error())
	} else {
		view.Views++
	}

	h.respond(c, view)
}

// @Summary Get property by ID
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/id/{id} [get]
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, middleware.OptionalRole(c))
	if err != nil {
		abortPropertyLookup(c, err)
		return
	}
	h.respond(c, view)
}

// @Summary Create property
// @Description Agents and above. Status defaults to draft.
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePropertyRequest true "Listing"
// @Success 201 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	agentID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrUnauthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validation.Describe(err))
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), in, agentID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidProperty):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property data", nil)
		case errors.Is(err, commands.ErrSlugExhausted):
			httperr.AbortWithError(c, http.StatusConflict, err, "Too many listings share this title", nil)
		default:
			httperr.Unavailable(c, err)
		}
		return
	}

	res, err := resdto.FromPropertyView(view)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Update property
// @Description Partial update by the listing agent or staff. A new title moves the slug.
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param request body reqdto.UpdatePropertyRequest true "Changed fields"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /properties/{id} [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property ID format", nil)
		return
	}

	var req reqdto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validation.Describe(err))
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), id, in, actor)
	if err != nil {
		abortOwnedWrite(c, err)
		return
	}
	h.respond(c, view)
}

// @Summary Archive property
// @Description Takes the listing off the catalog. Bookings keep referring to it.
// @Tags properties
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Archive(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property ID format", nil)
		return
	}

	if err := h.cmds.Archive(c.Request.Context(), id, actor); err != nil {
		abortOwnedWrite(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Record a view
// @Tags properties
// @Param id path string true "Property ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /properties/{id}/view [post]
func (h *PropertyHandler) RecordView(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property ID format", nil)
		return
	}

	if err := h.cmds.RecordView(c.Request.Context(), id); err != nil {
		httperr.Unavailable(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func abortOwnedWrite(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrPropertyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
	case errors.Is(err, commands.ErrNotPropertyOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Only the listing agent can change this property", nil)
	case errors.Is(err, commands.ErrInvalidProperty):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property data", nil)
	case errors.Is(err, commands.ErrSlugExhausted):
		httperr.AbortWithError(c, http.StatusConflict, err, "Too many listings share this title", nil)
	default:
		httperr.Unavailable(c, err)
	}
}

// currentActor reads the principal set by RequireAuth.
func currentActor(c *gin.Context) (shared.Actor, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return shared.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return shared.Actor{}, false
	}
	return shared.Actor{ID: id, Role: role}, true
}

func (h *PropertyHandler) respond(c *gin.Context, view *queries.PropertyView) {
	res, err := resdto.FromPropertyView(view)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func abortPropertyLookup(c *gin.Context, err error) {
	if errors.Is(err, queries.ErrPropertyNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
		return
	}
	httperr.Unavailable(c, err)
}
