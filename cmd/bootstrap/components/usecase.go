package components

import (
	"github.com/venkatbala210/hotel-management-system/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewAvailabilityQueries,
		usecase.NewBookingWorkflow,
		usecase.NewBookingLookup,
		usecase.NewProfileQueries,
		usecase.NewDashboardQueries,
		usecase.NewAuthProxy,
	),
)
