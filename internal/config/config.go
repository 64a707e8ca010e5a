package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string     `yaml:"env" env:"ENV" env-default:"local" validate:"oneof=local dev prod"`
	FrontendURL string     `yaml:"frontend_url" env:"FRONTEND_URL" env-default:"http://localhost:5173"`
	HTTPServer  HTTPServer `yaml:"http_server"`
	Storage     Storage    `yaml:"storage"`
	Database    Database   `yaml:"database"`
	Mongo       Mongo      `yaml:"mongo"`
	Redis       Redis      `yaml:"redis"`
	Session     Session    `yaml:"session"`
	OAuth       OAuth      `yaml:"oauth"`
	Auth        Auth       `yaml:"auth"`
	Teams       Teams      `yaml:"teams"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8000"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres" validate:"oneof=postgres mongo"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"synergy"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Mongo struct {
	URI      string        `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	Database string        `yaml:"database" env:"MONGO_DATABASE" env-default:"synergy"`
	Timeout  time.Duration `yaml:"timeout" env:"MONGO_TIMEOUT" env-default:"10s"`
}

type Redis struct {
	Address  string `yaml:"address" env:"REDIS_URL" env-default:"redis://localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Session struct {
	CookieName string        `yaml:"cookie_name" env:"SESSION_COOKIE" env-default:"session_id"`
	TTL        time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"24h"`
	Secure     bool          `yaml:"secure" env:"SESSION_SECURE" env-default:"true"`
}

type OAuth struct {
	ClientID      string `yaml:"client_id" env:"CLIENT_ID"`
	ClientSecret  string `yaml:"client_secret" env:"CLIENT_SECRET"`
	TenantID      string `yaml:"tenant_id" env:"TENANT_ID" env-default:"organizations"`
	RedirectURL   string `yaml:"redirect_url" env:"OAUTH_REDIRECT_URL" env-default:"http://localhost:8000/api/auth"`
	AllowedDomain string `yaml:"allowed_domain" env:"ALLOWED_DOMAIN" env-default:"iiitb.ac.in" validate:"required"`
}

type Auth struct {
	AdminEmail    string        `yaml:"admin_email" env:"ADMIN_EMAIL" env-default:"synergy@iiitb.ac.in" validate:"required,email"`
	TokenSecret   string        `yaml:"token_secret" env:"SECRET_KEY" validate:"required"`
	TokenTTL      time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"60m" validate:"gt=0"`
	SecretCodeKey string        `yaml:"secret_code_key" env:"SECRET_CODE_KEY" validate:"required"`
}

type Teams struct {
	MaxMembers int `yaml:"max_members" env:"TEAM_MAX_MEMBERS" env-default:"3" validate:"min=1"`
	// Deadline freezes team composition; zero means no deadline.
	Deadline time.Time `yaml:"deadline" env:"TEAM_DEADLINE" env-layout:"2006-01-02T15:04:05Z07:00"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		log.Fatal("config path is empty")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// fetchConfigPath prefers the -config flag over the CONFIG_PATH env variable.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
