package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string

	Port         string
	LogLevel     string
	GinMode      string
	APIJWTSecret string
}

// Load reads configuration from the environment. Call godotenv.Load first
// to pick up a .env file.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3001")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "debug")

	return &Config{
		TwilioAccountSID:  v.GetString("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   v.GetString("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber: v.GetString("TWILIO_PHONE_NUMBER"),
		Port:              v.GetString("PORT"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		GinMode:           v.GetString("GIN_MODE"),
		APIJWTSecret:      v.GetString("API_JWT_SECRET"),
	}
}

// Validate reports every missing provider setting at once.
func (c *Config) Validate() error {
	var missing []string
	if c.TwilioAccountSID == "" {
		missing = append(missing, "TWILIO_ACCOUNT_SID")
	}
	if c.TwilioAuthToken == "" {
		missing = append(missing, "TWILIO_AUTH_TOKEN")
	}
	if c.TwilioPhoneNumber == "" {
		missing = append(missing, "TWILIO_PHONE_NUMBER")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c *Config) AuthEnabled() bool {
	return c.APIJWTSecret != ""
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
