package bootstrap

import (
	"github.com/venkatbala210/hotel-management-system/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	GatewayModule,
	RuntimeModule,
	components.UseCaseModule,
	components.HandlerModule,
)
