package config

type (
	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
	}
	Redis struct {
		// Enabled false keeps sessions in process memory and turns off the
		// holiday cache, the refresh worker and login throttling.
		Enabled  bool
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
)

type (
	InternalConfig struct {
		App           App
		SchedulingAPI SchedulingAPI
	}

	App struct {
		Env                           string
		Port                          string
		Version                       string
		Address                       string
		EndpointPrefix                string
		// Timezone is the zone calendar days are computed in.
		Timezone                      string
		CORSAllowedOrigins            string
		MaxRequests                   int
		MaxTimeRequestsPerSeconds     int
		MutationsPerSecond            int
		ShutdownTimeoutInSeconds      int
		RequestTimeoutInSeconds       int
		SessionExpiredTimeInHours     int
		ViewModelIdleTimeoutInMinutes int
		LoginMaxAttempts              int
		LoginWindowInSeconds          int
		HolidayRefreshCronSpec        string
		HolidayCacheTTLInHours        int
		EventsEnabled                 bool
	}

	SchedulingAPI struct {
		BaseUrl              string
		HTTPTimeoutInSeconds int
		// ServiceToken authenticates background jobs. Without it the holiday
		// refresh worker does not start.
		ServiceToken string
	}
)
