package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string `yaml:"env" env:"APP_ENV" env-default:"prod"`
	Dev      bool   `yaml:"dev" env:"DEV" env-default:"false"`
	Telegram struct {
		ApiKey  string `yaml:"api_key" env:"TELEGRAM_API_KEY" env-default:""`
		AdminId int64  `yaml:"admin_id" env:"TELEGRAM_ADMIN_ID" env-default:"0"`
		Enabled bool   `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"false"`
	} `yaml:"telegram"`
	Mongo struct {
		Uri string `yaml:"uri" env:"MONGODB_URI" env-default:""`
	} `yaml:"mongo"`
	Agendor struct {
		ApiKey  string        `yaml:"api_key" env:"AGENDOR_TOKEN" env-default:""`
		BaseURL string        `yaml:"base_url" env:"AGENDOR_BASE_URL" env-default:"https://api.agendor.com.br/v3"`
		Timeout time.Duration `yaml:"timeout" env:"AGENDOR_TIMEOUT" env-default:"15s"`
	} `yaml:"agendor"`
	Listen struct {
		BindIP  string        `yaml:"bind_ip" env:"LISTEN_BIND_IP" env-default:"0.0.0.0"`
		Port    string        `yaml:"port" env:"LISTEN_PORT" env-default:"8000"`
		ApiKey  string        `yaml:"key" env:"SERVICE_TOKEN" env-default:""`
		Timeout time.Duration `yaml:"timeout" env:"LISTEN_TIMEOUT" env-default:"30s"`
	} `yaml:"listen"`
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	once.Do(func() {
		conf, err := Load(path)
		if err != nil {
			desc, _ := cleanenv.GetDescription(&Config{}, nil)
			log.Fatal(fmt.Errorf("%s; %s", err, desc))
		}
		instance = conf
	})
	return instance
}

// Load reads the YAML file at path when it exists and the environment
// otherwise. Environment variables override file values.
func Load(path string) (*Config, error) {
	conf := &Config{}

	var err error
	if _, statErr := os.Stat(path); path != "" && statErr == nil {
		err = cleanenv.ReadConfig(path, conf)
	} else {
		err = cleanenv.ReadEnv(conf)
	}
	if err != nil {
		return nil, err
	}

	if conf.Dev {
		conf.Env = "dev"
	}
	if err = conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) Validate() error {
	if c.Agendor.ApiKey == "" {
		return errors.New("agendor api key (AGENDOR_TOKEN) is required")
	}
	if c.Listen.ApiKey == "" {
		return errors.New("service token (SERVICE_TOKEN) is required")
	}
	if c.Agendor.Timeout <= 0 {
		return errors.New("agendor timeout must be positive")
	}
	return nil
}
