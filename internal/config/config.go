package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel     string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	TickInterval int     `yaml:"tick-interval-ms" env:"TICK_INTERVAL_MS" env-default:"10"`
	Elo          Elo     `yaml:"elo"`
	Storage      Storage `yaml:"storage"`
	Live         Live    `yaml:"live"`
}

type Elo struct {
	Iterations int     `yaml:"iterations" env:"ELO_ITERATIONS" env-default:"50"`
	KFactor    float64 `yaml:"k-factor" env:"ELO_K_FACTOR" env-default:"16"`
}

type Storage struct {
	SQLitePath string `yaml:"sqlite-path" env:"SQLITE_PATH" env-default:""`
}

type Live struct {
	Enabled bool  `yaml:"enabled" env:"LIVE_ENABLED" env-default:"false"`
	Redis   Redis `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - loads the config file if it exists, falling back to environment
// variables and defaults when it does not.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			panic(fmt.Errorf("unable to load config file: %w", err))
		}
		return config
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to read environment config: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
