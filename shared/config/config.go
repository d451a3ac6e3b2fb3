package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Http        Http      `yaml:"http" validate:"required"`
	Log         Log       `yaml:"log"`
	PgPool      PgPool    `yaml:"pg_pool"`
	RateLimit   RateLimit `yaml:"rate_limit"`
	CorsOrigins []string  `yaml:"cors_origins"`
}

type Http struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// Https enables Strict-Transport-Security on responses.
	Https bool `yaml:"https"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// PgPool overrides the default connection pool sizes; zero values keep the defaults.
type PgPool struct {
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// RateLimit throttles thread and comment creation per user.
// Zero WritesPerMinute disables it.
type RateLimit struct {
	WritesPerMinute float64 `yaml:"writes_per_minute" validate:"gte=0"`
	Burst           int     `yaml:"burst" validate:"gte=0"`
}

type Private struct {
	Pg     Pg     `yaml:"pg" validate:"required"`
	JwtKey string `yaml:"jwt_key" validate:"required"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

// DSN returns the lib/pq connection string.
func (p Pg) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Dbname)
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.UnmarshalStrict(configFile, output)
	if err != nil {
		panic("can't unmarshal config file: " + err.Error())
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		panic("invalid config: " + err.Error())
	}
	return cfg
}
