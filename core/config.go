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

// Config carries all runtime settings for the SDK and the CLI.
type Config struct {
	Debug    bool
	TestMode bool
	AppName  string
	Env      string
	Build    string

	API struct {
		BaseURL string
		Timeout time.Duration
	}

	Cache struct {
		StaleTime time.Duration
	}

	// SessionFile is where the authenticated session is persisted
	// between runs.
	SessionFile string

	RollbarToken string
}

// NewConfig loads configuration from defaults, an optional config/.env.<env>
// file and environment variables prefixed with the current env name.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "TutorLink")
	v.SetDefault("build", "dev")
	v.SetDefault("apiBaseURL", "http://localhost:3000/api")
	v.SetDefault("apiTimeout", 30*time.Second)
	v.SetDefault("cacheStaleTime", 5*time.Minute)
	v.SetDefault("sessionFile", defaultSessionFile())
	v.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		AppName:      v.GetString("appName"),
		Env:          env,
		Build:        v.GetString("build"),
		SessionFile:  v.GetString("sessionFile"),
		RollbarToken: v.GetString("rollbarToken"),
	}
	conf.API.BaseURL = strings.TrimRight(v.GetString("apiBaseURL"), "/")
	conf.API.Timeout = v.GetDuration("apiTimeout")
	conf.Cache.StaleTime = v.GetDuration("cacheStaleTime")
	return conf
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tutorlink-session.json"
	}
	return filepath.Join(home, ".tutorlink", "session.json")
}
