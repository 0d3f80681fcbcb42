package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Telegram struct {
		Token string `env:"TELEGRAM_TOKEN" env-description:"bot token used to resolve file ids"`
	}
	Loader struct {
		Timeout           time.Duration `env:"LOADER_TIMEOUT" env-default:"30s"`
		CacheSize         int           `env:"LOADER_CACHE_SIZE" env-default:"256"`
		RequestsPerSecond int           `env:"LOADER_RPS" env-default:"10"`
		Burst             int           `env:"LOADER_BURST" env-default:"5"`
		MaxRetries        uint64        `env:"LOADER_MAX_RETRIES" env-default:"3"`
		UserAgent         string        `env:"LOADER_USER_AGENT" env-default:"inline-bot-layout/1.0"`
	}
	Results struct {
		FeedPath   string `env:"RESULTS_FEED_PATH" env-default:"./results.json"`
		ForceThumb bool   `env:"RESULTS_FORCE_THUMB" env-default:"false"`
	}
	Map struct {
		ThumbURLTemplate string `env:"MAP_THUMB_URL_TEMPLATE" env-default:"https://staticmap.openstreetmap.de/staticmap.php?center=%f,%f&zoom=15&size=100x100"`
	}
	Avatar struct {
		CacheSize int `env:"AVATAR_CACHE_SIZE" env-default:"64"`
	}
	Audit struct {
		Interval time.Duration `env:"AUDIT_INTERVAL" env-default:"1m"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
