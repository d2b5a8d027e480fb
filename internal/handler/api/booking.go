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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Book a stay
// @Description Admit a booking for a short-stay property. Instants must carry an explicit offset and are stored as naive UTC.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrUnauthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validation.Describe(err))
		return
	}

	view, err := h.cmds.AttemptBooking(c.Request.Context(), req.ToInput(userID))
	if err != nil {
		abortAdmission(c, err)
		return
	}

	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func abortAdmission(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrPropertyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
	case errors.Is(err, commands.ErrNotBookable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Property is not available for short stays", nil)
	case errors.Is(err, commands.ErrInvalidInstant):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be ISO-8601 instants with an explicit offset", nil)
	case errors.Is(err, commands.ErrInvalidRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-out must be after check-in", nil)
	case errors.Is(err, commands.ErrPastDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-in cannot be in the past", nil)
	case errors.Is(err, commands.ErrInvalidGuestCount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Guest count must be at least 1", nil)
	case errors.Is(err, commands.ErrPriceOutOfRange):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Total price for this stay exceeds the supported amount", nil)
	case errors.Is(err, commands.ErrAccountGone):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Account no longer exists", nil)
	case errors.Is(err, commands.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Property is already booked for these dates", nil)
	case errors.Is(err, commands.ErrUnavailable):
		httperr.Unavailable(c, err)
	default:
		httperr.Internal(c, err)
	}
}

// @Summary My bookings
// @Description Bookings of the caller, newest check-in first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings/me [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrUnauthenticated, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Unavailable(c, err)
		return
	}

	res, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get booking
// @Description A booking owned by the caller
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.q.GetForUser(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.Unavailable(c, err)
		return
	}

	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Property availability
// @Description Confirmed stays that have not ended yet
// @Tags bookings
// @Produce json
// @Param property_id path string true "Property ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/property/{property_id}/availability [get]
func (h *BookingHandler) Availability(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("property_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property ID format", nil)
		return
	}

	view, err := h.q.Availability(c.Request.Context(), propertyID)
	if err != nil {
		if errors.Is(err, queries.ErrPropertyNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
			return
		}
		httperr.Unavailable(c, err)
		return
	}

	res, err := resdto.FromAvailabilityView(view)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
