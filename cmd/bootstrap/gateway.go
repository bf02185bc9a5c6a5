package bootstrap

import (
	"github.com/venkatbala210/hotel-management-system/internal/gateway"
	"github.com/venkatbala210/hotel-management-system/internal/usecase"

	"go.uber.org/fx"
)

// One client instance serves every port; the circuit breaker state has to be
// shared across all upstream calls.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			gateway.NewClient,
			fx.As(new(usecase.RoomGateway)),
			fx.As(new(usecase.BookingGateway)),
			fx.As(new(usecase.PaymentGateway)),
			fx.As(new(usecase.UserGateway)),
		),
	),
)
