package llm

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Model   string        `envconfig:"MODEL" default:"groq:llama-3.3-70b-versatile"`
	APIKey  string        `envconfig:"LLM_API_KEY"`
	BaseURL string        `envconfig:"LLM_BASE_URL"`
	Timeout time.Duration `envconfig:"LLM_TIMEOUT" default:"60s"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}
