package bootstrap

import (
	"github.com/venkatbala210/hotel-management-system/internal/pkg/clock"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/timer"

	"go.uber.org/fx"
)

var RuntimeModule = fx.Module("runtime",
	fx.Provide(
		clock.NewRealClock,
		timer.NewScheduler,
	),
)
