package analyzer

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ExpectationsFile string `envconfig:"EXPECTATIONS_FILE" default:"expectations.json"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}
