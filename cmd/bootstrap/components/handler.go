package components

import (
	"orbital-booking/internal/handler"
	"orbital-booking/internal/handler/api"
	"orbital-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewReviewHandler,
		api.NewRouteHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	reservation *api.ReservationHandler,
	review *api.ReviewHandler,
	route *api.RouteHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Reservation: reservation,
		Review:      review,
		Route:       route,
		Admin:       admin,
	}
}
