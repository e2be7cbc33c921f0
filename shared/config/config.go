package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// Environment variables that take precedence over private.yaml / public.yaml.
const (
	EnvJwtKey     = "JWT_KEY"
	EnvPgPassword = "PG_PASSWORD"
	EnvPort       = "PORT"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpAddr       string        `yaml:"http_addr" validate:"required"`
	LogLevel       string        `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogJSON        bool          `yaml:"log_json"`
	HTTPS          bool          `yaml:"https"` // enables HSTS
	AllowedOrigins []string      `yaml:"allowed_origins"`
	BcryptCost     int           `yaml:"bcrypt_cost" validate:"min=4,max=31"`
	ReadTimeout    time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout   time.Duration `yaml:"write_timeout" validate:"gt=0"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required,min=1,max=65535"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname" validate:"required"`
	SSLMode  string `yaml:"sslmode"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key" validate:"required"`
	Pg     Pg     `yaml:"pg"`
}

// DSN builds a lib/pq connection string.
func (p Pg) DSN() string {
	sslMode := p.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Dbname, sslMode)
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func loadPath(configPath string, output interface{}) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file does not exist: %s", configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Public.HttpAddr == "" {
		c.Public.HttpAddr = ":8080"
	}
	if c.Public.LogLevel == "" {
		c.Public.LogLevel = "info"
	}
	if c.Public.BcryptCost == 0 {
		c.Public.BcryptCost = 10 // bcrypt.DefaultCost
	}
	if c.Public.ReadTimeout == 0 {
		c.Public.ReadTimeout = 5 * time.Second
	}
	if c.Public.WriteTimeout == 0 {
		c.Public.WriteTimeout = 10 * time.Second
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvJwtKey); v != "" {
		c.Private.JwtKey = v
	}
	if v := os.Getenv(EnvPgPassword); v != "" {
		c.Private.Pg.Password = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		c.Public.HttpAddr = ":" + v
	}
}

// Load reads public.yaml and private.yaml from configFolder, applies
// environment overrides and defaults, then validates the result.
func Load(configFolder string) (*Config, error) {
	var public Public
	if err := loadPath(path.Join(configFolder, "public.yaml"), &public); err != nil {
		return nil, err
	}

	var private Private
	if err := loadPath(path.Join(configFolder, "private.yaml"), &private); err != nil {
		return nil, err
	}

	cfg := &Config{Public: public, Private: private}
	cfg.applyEnv()
	cfg.applyDefaults()

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func MustLoad(configFolder string) *Config {
	cfg, err := Load(configFolder)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}
