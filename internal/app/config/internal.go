package config

type InternalConfig struct {
	App            App               `mapstructure:"app"`
	PatientService AppPatientService `mapstructure:"patient_service"`
	Breaker        AppBreaker        `mapstructure:"breaker"`
	Locker         AppLocker         `mapstructure:"locker"`
	Events         AppEvents         `mapstructure:"events"`
}

type App struct {
	Env                       string `mapstructure:"env"`
	Port                      string `mapstructure:"port"`
	Version                   string `mapstructure:"version"`
	Timezone                  string `mapstructure:"timezone"`
	EndpointPrefix            string `mapstructure:"endpoint_prefix"`
	MaxRequests               int    `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds int    `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds  int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds   int    `mapstructure:"request_timeout_in_seconds"`
	RunMigrations             bool   `mapstructure:"run_migrations"`
}

// AppPatientService configures the outbound client used by every service that
// has to resolve a patient it does not own.
type AppPatientService struct {
	BaseUrl              string  `mapstructure:"base_url"`
	TimeoutInSeconds     int     `mapstructure:"timeout_in_seconds"`
	MaxRequestsPerSecond float64 `mapstructure:"max_requests_per_second"`
	Burst                int     `mapstructure:"burst"`
}

type AppBreaker struct {
	Name                 string  `mapstructure:"name"`
	ConsecutiveFailures  uint32  `mapstructure:"consecutive_failures"`
	MinimumRequests      uint32  `mapstructure:"minimum_requests"`
	FailureRatio         float64 `mapstructure:"failure_ratio"`
	IntervalInSeconds    int     `mapstructure:"interval_in_seconds"`
	OpenTimeoutInSeconds int     `mapstructure:"open_timeout_in_seconds"`
	HalfOpenMaxRequests  uint32  `mapstructure:"half_open_max_requests"`
}

type AppLocker struct {
	Enabled             bool `mapstructure:"enabled"`
	ExpirationInSeconds int  `mapstructure:"expiration_in_seconds"`
}

type AppEvents struct {
	Enabled  bool   `mapstructure:"enabled"`
	Exchange string `mapstructure:"exchange"`
}
