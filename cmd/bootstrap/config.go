package bootstrap

import (
	"github.com/venkatbala210/hotel-management-system/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.GatewayConfig { return cfg.Gateway },
		func(cfg config.Config) config.WorkflowConfig { return cfg.Workflow },
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
	),
)
