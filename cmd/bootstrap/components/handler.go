package components

import (
	"github.com/venkatbala210/hotel-management-system/internal/handler"
	"github.com/venkatbala210/hotel-management-system/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingFlowHandler,
		api.NewLookupHandler,
		api.NewProfileHandler,
		api.NewDashboardHandler,
	),
	fx.Invoke(handler.NewRouter),
)
