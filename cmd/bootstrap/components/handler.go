package components

import (
	"field-booking/internal/handler"
	"field-booking/internal/handler/api"
	"field-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewPricingHandler,
		api.NewHoldHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	availability *api.AvailabilityHandler,
	pricing *api.PricingHandler,
	hold *api.HoldHandler,
	booking *api.BookingHandler,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Pricing:      pricing,
		Hold:         hold,
		Booking:      booking,
	}
}
