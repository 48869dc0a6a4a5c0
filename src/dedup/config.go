package dedup

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Backend      string `envconfig:"DEDUP_BACKEND" default:"memory"` // Expected to hold "memory", "sqlite" or "postgres"
	DSN          string `envconfig:"DEDUP_DSN" default:"signaltrader.db"`
	GormLogLevel int    `envconfig:"GORM_LOG_LEVEL" default:"2"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}
