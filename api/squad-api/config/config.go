package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ServerConfig carries everything the squad server needs at startup.
type ServerConfig struct {
	URI           string `mapstructure:"uri" validate:"required"`
	ASRServiceURL string `mapstructure:"asr_service_url" validate:"required"`
	NLPServiceURL string `mapstructure:"nlp_service_url" validate:"required"`
	TTSServiceURL string `mapstructure:"tts_service_url" validate:"required"`
	// Recognition model forwarded in every ASR configuration; empty keeps
	// the downstream default.
	ASRModelName      string `mapstructure:"asr_model_name"`
	Threads           int    `mapstructure:"threads" validate:"gt=0"`
	ContextsPerThread int    `mapstructure:"contexts_per_thread" validate:"gt=0"`
	Channels          int    `mapstructure:"channels" validate:"gt=0"`
	HealthURI         string `mapstructure:"health_uri"`
	LogLevel          string `mapstructure:"log_level"`
}

// Load parses command-line flags (environment variables override defaults,
// flags override both) and validates the result.
func Load(args []string) (*ServerConfig, error) {
	flags := pflag.NewFlagSet("speechsquad-server", pflag.ContinueOnError)
	flags.String("uri", "0.0.0.0:1337", "listen address for the speech squad service")
	flags.String("asr_service_url", "asr.riva.svc:50051", "url for the riva asr endpoint")
	flags.String("nlp_service_url", "nlp.riva.svc:50051", "url for the riva nlp endpoint")
	flags.String("tts_service_url", "tts.riva.svc:50051", "url for the riva tts endpoint")
	flags.String("asr_model_name", "", "recognition model name passed through to asr")
	flags.Int("threads", 10, "number of stream worker slots per context bucket")
	flags.Int("contexts_per_thread", 100, "maximum concurrent contexts allowed per worker slot")
	flags.Int("channels", 50, "number of persistent channels per downstream service")
	flags.String("health_uri", "0.0.0.0:8080", "listen address for the health endpoints")
	flags.String("log_level", "info", "minimum log level")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	var config ServerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshalling server config: %w", err)
	}
	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("validating server config: %w", err)
	}
	return &config, nil
}
