//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"guri24/internal/handler/api"
	reqdto "guri24/internal/handler/dto/request"
	resdto "guri24/internal/handler/dto/response"
	"guri24/internal/handler/middleware"
	"guri24/internal/handler/validation"
	"guri24/internal/pkg/errs"
	"guri24/internal/testutil"
	"guri24/internal/testutil/builder"
	"guri24/internal/testutil/httptest"
	commandsmock "guri24/internal/testutil/mock/commands"
	queriesmock "guri24/internal/testutil/mock/queries"
	"guri24/internal/usecase/commands"
	"guri24/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupSuite() {
	s.Require().NoError(validation.Register())
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.userID = uuid.New()
	handler := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	authed := s.router.Group("", func(c *gin.Context) {
		c.Set("user_id", s.userID)
	})
	authed.POST("/bookings", handler.Create)
	authed.GET("/bookings/me", handler.ListMine)
	authed.GET("/bookings/:id", handler.Get)
	s.router.GET("/bookings/property/:property_id/availability", handler.Availability)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) validRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		PropertyID: uuid.New(),
		CheckIn:    "2024-06-05T00:00:00Z",
		CheckOut:   "2024-06-07T00:00:00Z",
		GuestCount: 2,
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	s.Run("success: 201 with the admitted booking", func() {
		req := s.validRequest()
		view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.PropertyID = req.PropertyID
			b.UserID = s.userID
			b.CheckIn = time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
			b.CheckOut = time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)
			b.TotalCents = 9000000
		}).BuildView()
		s.mockCommands.EXPECT().AttemptBooking(gomock.Any(), req.ToInput(s.userID)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", req, "")

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("2024-06-05T00:00:00", res.CheckIn)
		s.Equal("2024-06-07T00:00:00", res.CheckOut)
		s.Equal("90000.00", res.TotalPrice)
		s.Equal("confirmed", res.Status)
	})

	s.Run("error: 400 on invalid request bodies", func() {
		cases := map[string]func(map[string]any){
			"missing property_id":   testutil.Field("property_id", nil),
			"naive check_in":        testutil.Field("check_in", "2024-06-05T00:00:00"),
			"date-only check_out":   testutil.Field("check_out", "2024-06-07"),
			"zero guests":           testutil.Field("guest_count", 0),
			"negative guests":       testutil.Field("guest_count", -1),
			"malformed property_id": testutil.Field("property_id", "not-a-uuid"),
		}
		for name, mutate := range cases {
			s.Run(name, func() {
				body := testutil.DtoMap(s.T(), s.validRequest(), mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps admission rejections", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{"not found", commands.ErrPropertyNotFound, http.StatusNotFound, "Property not found"},
			{"not bookable", commands.ErrNotBookable, http.StatusUnprocessableEntity, "not available for short stays"},
			{"invalid range", commands.ErrInvalidRange, http.StatusBadRequest, "Check-out must be after check-in"},
			{"past date", commands.ErrPastDate, http.StatusBadRequest, "in the past"},
			{"invalid instant", commands.ErrInvalidInstant, http.StatusBadRequest, "explicit offset"},
			{"price out of range", errs.Mark(errors.New("total price exceeds the supported amount"), commands.ErrPriceOutOfRange), http.StatusUnprocessableEntity, "exceeds the supported amount"},
			{"account gone", errs.Mark(errors.New("fk violation"), commands.ErrAccountGone), http.StatusUnauthorized, "no longer exists"},
			{"conflict", commands.ErrBookingConflict, http.StatusConflict, "already booked"},
			{"marked conflict", errs.Mark(errors.New("exclusion_violation"), commands.ErrBookingConflict), http.StatusConflict, "already booked"},
			{"unavailable", errs.Mark(errors.New("connection refused"), commands.ErrUnavailable), http.StatusServiceUnavailable, "temporarily unavailable"},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				req := s.validRequest()
				s.mockCommands.EXPECT().AttemptBooking(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", req, "")

				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).Return([]*queries.BookingView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/me", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("success: lists the caller's bookings", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.UserID = s.userID }).BuildView(),
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.UserID = s.userID }).BuildView(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/me", nil, "")

		var res []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res, 2)
		s.Equal(views[0].ID, res[0].ID)
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success: owner", func() {
		view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.UserID = s.userID }).BuildView()
		s.mockQueries.EXPECT().GetForUser(gomock.Any(), s.userID, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(view.ID, res.ID)
	})

	s.Run("error: 404 for someone else's booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetForUser(gomock.Any(), s.userID, id).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestAvailability() {
	propertyID := uuid.New()
	path := "/bookings/property/" + propertyID.String() + "/availability"

	s.Run("success: booked intervals as naive UTC", func() {
		in := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().Availability(gomock.Any(), propertyID).Return(&queries.AvailabilityView{
			PropertyID:  propertyID,
			BookedDates: []queries.StayInterval{{CheckIn: in, CheckOut: in.Add(96 * time.Hour)}},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{
			"property_id": "`+propertyID.String()+`",
			"booked_dates": [{"check_in": "2024-06-01T00:00:00", "check_out": "2024-06-05T00:00:00"}]
		}`, rec.Body.String())
	})

	s.Run("error: unknown property", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), propertyID).Return(nil, queries.ErrPropertyNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Property not found")
	})
}
