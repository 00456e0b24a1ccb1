package config

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Server struct {
	BaseURL string        `yaml:"base_url" env:"POS_SERVER_URL" env-default:"http://localhost:8080/api"`
	Timeout time.Duration `yaml:"timeout" env:"POS_SERVER_TIMEOUT" env-default:"15s"`
}

type Session struct {
	// StateDir is where the terminal keeps its two credential files
	// (session token and cached user profile).
	StateDir string `yaml:"state_dir" env:"POS_STATE_DIR" env-default:".pos-terminal"`
}

type Metrics struct {
	// Addr exposes the Prometheus endpoint when non-empty, e.g. ":9091".
	Addr string `yaml:"addr" env:"POS_METRICS_ADDR" env-default:""`
}

type Config struct {
	Env     string  `yaml:"env" env:"ENV" env-default:"production"`
	Server  Server  `yaml:"server"`
	Session Session `yaml:"session"`
	Metrics Metrics `yaml:"metrics"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "path to the config file")

		flag.Parse()

		configPath = *flags

	}

	var cfg Config

	if configPath == "" {
		// No file is fine; everything has an env default.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("can not read config from environment: %s", err.Error())
		}

		cfg.Server.BaseURL = strings.TrimRight(cfg.Server.BaseURL, "/")

		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	cfg.Server.BaseURL = strings.TrimRight(cfg.Server.BaseURL, "/")

	return &cfg
}
