package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, gateway URL, etc.)
// - default: Values common across all environments (timeouts, display timers)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Gateway  GatewayConfig
	CORS     CORSConfig
	Log      LogConfig
	Cookie   CookieConfig
	Workflow WorkflowConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type GatewayConfig struct {
	BaseURL          string        `envconfig:"GATEWAY_BASE_URL" required:"true"`
	Timeout          time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"10s"`
	BreakerThreshold int64         `envconfig:"GATEWAY_BREAKER_THRESHOLD" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// WorkflowConfig holds the display timers the booking screens run on:
// transient banners clear after ErrorDisplay, the post-booking return to the
// room list fires after NavigationDelay, and abandoned flows are swept after
// FlowTTL.
type WorkflowConfig struct {
	ErrorDisplay    time.Duration `envconfig:"WORKFLOW_ERROR_DISPLAY" default:"5s"`
	NavigationDelay time.Duration `envconfig:"WORKFLOW_NAVIGATION_DELAY" default:"10s"`
	FlowTTL         time.Duration `envconfig:"WORKFLOW_FLOW_TTL" default:"30m"`
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments inject variables directly
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Gateway: GatewayConfig{
			BaseURL:          "http://localhost:15050",
			Timeout:          2 * time.Second,
			BreakerThreshold: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Workflow: WorkflowConfig{
			ErrorDisplay:    5 * time.Second,
			NavigationDelay: 10 * time.Second,
			FlowTTL:         30 * time.Minute,
		},
	}
}
