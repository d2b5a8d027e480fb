package components

import (
	"guri24/internal/handler"
	"guri24/internal/handler/api"
	"guri24/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewPropertyHandler,
		api.NewInquiryHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, bookings *api.BookingHandler, properties *api.PropertyHandler, inquiries *api.InquiryHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Booking: bookings, Property: properties, Inquiry: inquiries}
		},
	),
	fx.Invoke(handler.NewRouter),
)
