package connectors

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	APIKey        string        `envconfig:"BFX_API_KEY"`
	APISecret     string        `envconfig:"BFX_API_SECRET"`
	PublicBaseURL string        `envconfig:"BFX_PUBLIC_BASE_URL" default:"https://api-pub.bitfinex.com"`
	AuthBaseURL   string        `envconfig:"BFX_AUTH_BASE_URL" default:"https://api.bitfinex.com"`
	Timeout       time.Duration `envconfig:"BFX_TIMEOUT" default:"15s"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}
