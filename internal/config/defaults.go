package config

import "github.com/spf13/viper"

// Default values for configuration
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = false

	DefaultAirQualityBaseURL = "https://api.airvisual.com/v2/nearest_city"

	DefaultLocationStatsSchedule = "0 */15 * * * *"

	DefaultMetricsEnabled = false
	DefaultMetricsAddress = ":9090"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", DefaultLogLevel)
	v.SetDefault("logger.json", DefaultLogJSON)

	v.SetDefault("air_quality.base_url", DefaultAirQualityBaseURL)
	v.SetDefault("air_quality.timeout", 0)

	v.SetDefault("scheduler.tasks", map[string]any{
		"location_stats": map[string]any{
			"enabled":  true,
			"schedule": DefaultLocationStatsSchedule,
		},
	})

	v.SetDefault("metrics.enabled", DefaultMetricsEnabled)
	v.SetDefault("metrics.address", DefaultMetricsAddress)
}
