package config

import (
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	RuntimePath string `env:"TERM_RUNTIME_PATH"`

	DataServiceURL string        `env:"DATA_SERVICE_URL" envDefault:"http://localhost:1738"`
	RequestTimeout time.Duration `env:"DATA_SERVICE_TIMEOUT" envDefault:"10s"`
	// Wait for the data service before accepting commands
	WaitForService bool `env:"DATA_SERVICE_WAIT" envDefault:"false"`

	// Transport Flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"true"`
}

func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	if c.RuntimePath == "" {
		c.RuntimePath = GetRuntimePath()
	}
	return c, nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDataServiceURL() string {
	return c.DataServiceURL
}

func (c AppConfig) GetRequestTimeout() time.Duration {
	return c.RequestTimeout
}

func (c AppConfig) GetLogPath() string {
	return filepath.Join(c.RuntimePath, "term.log")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}

func (c AppConfig) IsCLISelected() bool {
	return c.EnableCLI
}
