package configs

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	NameModeInstance = "instance"
	NameModeShared   = "shared"

	DistrictsModeStored    = "stored"
	DistrictsModeDiscarded = "discarded"
)

type EnvConfig struct {
	ApplicationName   string
	LogLevel          string
	NameMode          string
	DistrictsMode     string
	DistrictSeparator string
	MessagesFilePath  string
}

var Env *EnvConfig

func init() {
	Env = Load()
}

// Load reads the configuration from the environment, applying defaults
func Load() *EnvConfig {
	v := viper.New()
	v.AutomaticEnv()

	return &EnvConfig{
		ApplicationName:   getStringOrDefault(v, "APPLICATION_NAME", "city-weather"),
		LogLevel:          getStringOrDefault(v, "LOG_LEVEL", "info"),
		NameMode:          strings.ToLower(getStringOrDefault(v, "CITY_NAME_MODE", NameModeInstance)),
		DistrictsMode:     strings.ToLower(getStringOrDefault(v, "CITY_DISTRICTS_MODE", DistrictsModeStored)),
		DistrictSeparator: getStringOrDefault(v, "CITY_DISTRICT_SEPARATOR", ","),
		MessagesFilePath:  v.GetString("MESSAGES_FILE_PATH"),
	}
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
