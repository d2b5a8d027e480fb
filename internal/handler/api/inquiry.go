package api

import (
	"errors"
	"net/http"

	reqdto "guri24/internal/handler/dto/request"
	resdto "guri24/internal/handler/dto/response"
	"guri24/internal/handler/httperr"
	"guri24/internal/handler/middleware"
	"guri24/internal/handler/validation"
	"guri24/internal/usecase/commands"
	"guri24/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InquiryHandler struct {
	cmds commands.InquiryCommands
	q    queries.InquiryQueries
}

func NewInquiryHandler(cmds commands.InquiryCommands, q queries.InquiryQueries) *InquiryHandler {
	return &InquiryHandler{cmds: cmds, q: q}
}

// @Summary Send an inquiry
// @Description Contact the listing agent about a property. Signing in is optional.
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body reqdto.CreateInquiryRequest true "Inquiry"
// @Success 201 {object} resdto.InquiryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /inquiries [post]
func (h *InquiryHandler) Create(c *gin.Context) {
	var req reqdto.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validation.Describe(err))
		return
	}

	var senderID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		senderID = &id
	}

	view, err := h.cmds.Create(c.Request.Context(), req.ToInput(), senderID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidInquiry):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid inquiry data", nil)
		case errors.Is(err, commands.ErrPropertyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
		case errors.Is(err, commands.ErrAccountGone):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Account no longer exists", nil)
		default:
			httperr.Unavailable(c, err)
		}
		return
	}

	h.respond(c, http.StatusCreated, view)
}

// @Summary My inquiries
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.InquiryResponse
// @Failure 401 {object} httperr.Response
// @Router /inquiries [get]
func (h *InquiryHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrUnauthenticated, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListMine(c.Request.Context(), userID)
	h.respondList(c, views, err)
}

// @Summary Received inquiries
// @Description Inquiries about the caller's own listings
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.InquiryResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /inquiries/received [get]
func (h *InquiryHandler) ListReceived(c *gin.Context) {
	agentID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrUnauthenticated, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListReceived(c.Request.Context(), agentID)
	h.respondList(c, views, err)
}

// @Summary Get inquiry
// @Description Visible to the sender, the listing agent and staff
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Success 200 {object} resdto.InquiryResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /inquiries/{id} [get]
func (h *InquiryHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid inquiry ID format", nil)
		return
	}

	view, err := h.q.Get(c.Request.Context(), id, actor.ID, actor.Role)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInquiryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Inquiry not found", nil)
		case errors.Is(err, queries.ErrInquiryForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to view this inquiry", nil)
		default:
			httperr.Unavailable(c, err)
		}
		return
	}

	h.respond(c, http.StatusOK, view)
}

// @Summary Update inquiry status
// @Description The listing agent or staff
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Param request body reqdto.UpdateInquiryStatusRequest true "New status"
// @Success 200 {object} resdto.InquiryResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /inquiries/{id}/status [patch]
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid inquiry ID format", nil)
		return
	}

	var req reqdto.UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validation.Describe(err))
		return
	}

	view, err := h.cmds.UpdateStatus(c.Request.Context(), id, req.Status, actor)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidInquiry):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid inquiry status", nil)
		case errors.Is(err, commands.ErrInquiryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Inquiry not found", nil)
		case errors.Is(err, commands.ErrInquiryForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to manage this inquiry", nil)
		default:
			httperr.Unavailable(c, err)
		}
		return
	}

	h.respond(c, http.StatusOK, view)
}

func (h *InquiryHandler) respond(c *gin.Context, status int, view *queries.InquiryView) {
	res, err := resdto.FromInquiryView(view)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(status, res)
}

func (h *InquiryHandler) respondList(c *gin.Context, views []*queries.InquiryView, err error) {
	if err != nil {
		httperr.Unavailable(c, err)
		return
	}
	res, err := resdto.FromInquiryViews(views)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
