package notifier

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Enabled    bool          `envconfig:"SMS_NOTIFICATIONS_ENABLED" default:"false"`
	AccountSID string        `envconfig:"TWILIO_ACCOUNT_SID"`
	AuthToken  string        `envconfig:"TWILIO_AUTH_TOKEN"`
	FromNumber string        `envconfig:"TWILIO_FROM_NUMBER"`
	ToNumber   string        `envconfig:"TWILIO_TO_NUMBER"`
	BaseURL    string        `envconfig:"TWILIO_BASE_URL" default:"https://api.twilio.com"`
	Timeout    time.Duration `envconfig:"TWILIO_TIMEOUT" default:"10s"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}
