package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"*"`
	}

	Database struct {
		URL             string `env:"DATABASE_URL,required"`
		MaxOpenConns    int    `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
		MaxIdleConns    int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
		ConnMaxLifetime int    `env:"DB_CONN_MAX_LIFETIME_MINUTES" envDefault:"30"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Telegram struct {
		// Not required at parse time: a deployment without a token still
		// serves channel reads, and the giveaway flow reports the missing
		// credential per request.
		BotToken string `env:"TELEGRAM_API_TOKEN"`
	}
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// Ignore a missing .env file; in production the variables
		// are set directly in the environment.
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
