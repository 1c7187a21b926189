package config

import (
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", true),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                           utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                          utils.GetEnvString("APP_PORT", "8080"),
			Version:                       utils.GetEnvString("APP_VERSION", "v1"),
			Address:                       utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			EndpointPrefix:                utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			Timezone:                      utils.GetEnvString("APP_TIMEZONE", "UTC"),
			CORSAllowedOrigins:            utils.GetEnvString("APP_CORS_ALLOWED_ORIGINS", "*"),
			MaxRequests:                   utils.GetEnvInt("APP_MAX_REQUEST", 120),
			MaxTimeRequestsPerSeconds:     utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			MutationsPerSecond:            utils.GetEnvInt("APP_MUTATIONS_PER_SECOND", 2),
			ShutdownTimeoutInSeconds:      utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:       utils.GetEnvInt("APP_REQUEST_TIMEOUT", 30),
			SessionExpiredTimeInHours:     utils.GetEnvInt("APP_SESSION_EXPIRED_TIME_IN_HOURS", 12),
			ViewModelIdleTimeoutInMinutes: utils.GetEnvInt("APP_VIEW_MODEL_IDLE_TIMEOUT_IN_MINUTES", 30),
			LoginMaxAttempts:              utils.GetEnvInt("APP_LOGIN_MAX_ATTEMPTS", 5),
			LoginWindowInSeconds:          utils.GetEnvInt("APP_LOGIN_WINDOW_IN_SECONDS", 60),
			HolidayRefreshCronSpec:        utils.GetEnvString("HOLIDAY_REFRESH_CRON_SPEC", "@daily"),
			HolidayCacheTTLInHours:        utils.GetEnvInt("HOLIDAY_CACHE_TTL_IN_HOURS", 24),
			EventsEnabled:                 utils.GetEnvBool("APP_EVENTS_ENABLED", false),
		},
		SchedulingAPI: SchedulingAPI{
			BaseUrl:              utils.GetEnvString("SCHEDULING_API_BASE_URL", "http://localhost:8000/api"),
			HTTPTimeoutInSeconds: utils.GetEnvInt("SCHEDULING_API_HTTP_TIMEOUT", 15),
			ServiceToken:         utils.GetEnvString("SCHEDULING_API_SERVICE_TOKEN", ""),
		},
	}
}
