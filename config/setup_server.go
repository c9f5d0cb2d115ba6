package config

import (
	"fmt"
	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultAuthHost    = "account-d.docusign.com"
	defaultAPIBaseURL  = "https://demo.docusign.net/restapi/v2.1"
	defaultScope       = "signature impersonation"
	defaultTimeout     = "30s"
	defaultDownloadTTL = 900
	defaultTokenSafety = 300
)

type AppConfig struct {
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	ServerAddr     string         `yaml:"serverAddr"`
	S3Config       S3Config       `yaml:"s3Config"`
	FormFill       FormFillConfig `yaml:"formFill"`
	ESign          ESignConfig    `yaml:"esign"`
	TTL            TTL            `yaml:"TTL"`
}

// LoadConfig : читает YAML, подставляя переменные окружения вида ${NAME}
func LoadConfig(path string) (*AppConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(file))), &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.ServerAddr == "" {
		c.ServerAddr = ":8080"
	}
	if c.ESign.AuthHost == "" {
		c.ESign.AuthHost = defaultAuthHost
	}
	if c.ESign.APIBaseURL == "" {
		c.ESign.APIBaseURL = defaultAPIBaseURL
	}
	if c.ESign.Scope == "" {
		c.ESign.Scope = defaultScope
	}
	if c.ESign.Timeout == "" {
		c.ESign.Timeout = defaultTimeout
	}
	if c.FormFill.Timeout == "" {
		c.FormFill.Timeout = defaultTimeout
	}
	if c.TTL.DownloadURL <= 0 {
		c.TTL.DownloadURL = defaultDownloadTTL
	}
	if c.TTL.TokenSafety <= 0 {
		c.TTL.TokenSafety = defaultTokenSafety
	}
	// PEM-ключ в переменной окружения обычно хранится с экранированными переводами строк
	c.ESign.PrivateKey = strings.ReplaceAll(c.ESign.PrivateKey, `\n`, "\n")
	c.FormFill.BaseURL = strings.TrimRight(c.FormFill.BaseURL, "/")
	c.ESign.APIBaseURL = strings.TrimRight(c.ESign.APIBaseURL, "/")
}

func (c *AppConfig) validate() error {
	if _, err := time.ParseDuration(c.ESign.Timeout); err != nil {
		return fmt.Errorf("неверный esign.timeout: %w", err)
	}
	if _, err := time.ParseDuration(c.FormFill.Timeout); err != nil {
		return fmt.Errorf("неверный formFill.timeout: %w", err)
	}
	return nil
}

// ESignTimeout : таймаут HTTP-клиента провайдера подписи
func (c *AppConfig) ESignTimeout() time.Duration {
	d, _ := time.ParseDuration(c.ESign.Timeout)
	return d
}

func (c *AppConfig) FormFillTimeout() time.Duration {
	d, _ := time.ParseDuration(c.FormFill.Timeout)
	return d
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
