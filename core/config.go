package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Debug    bool
	TestMode bool
	Env      string // DEV (default), TEST, QA, PROD
	Build    string
	AppName  string

	// remote API gateway
	GatewayBaseURL string
	RequestTimeout time.Duration

	// list views
	PageSize int

	RollbarToken string
}

// NewConfig loads configuration from the environment,
// with config/.env.<env> loaded first if it exists.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Darasa")
	conf.SetDefault("gatewayBaseUrl", "http://localhost:8080")
	conf.SetDefault("requestTimeout", 15*time.Second)
	conf.SetDefault("pageSize", 5)

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:          conf.GetBool("debug"),
		TestMode:       conf.GetBool("testMode"),
		Env:            env,
		Build:          conf.GetString("build"),
		AppName:        conf.GetString("appName"),
		GatewayBaseURL: conf.GetString("gatewayBaseUrl"),
		RequestTimeout: conf.GetDuration("requestTimeout"),
		PageSize:       conf.GetInt("pageSize"),
		RollbarToken:   conf.GetString("rollbarToken"),
	}
}
