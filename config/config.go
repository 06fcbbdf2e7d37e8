package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

const EnvProduction = "production"

type AppConfig struct {
	Name    string        `yaml:"name"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Session SessionConfig `yaml:"session"`
	CORS    CORSConfig    `yaml:"cors"`
	Metrics MetricsConfig `yaml:"metrics"`

	// TokenSecret is only ever read from ACCESS_TOKEN_SECRET.
	TokenSecret string `yaml:"-"`
}

type ServerConfig struct {
	Port                  int    `yaml:"port"`
	Environment           string `yaml:"environment"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type MongoConfig struct {
	URI                   string `yaml:"uri"`
	Database              string `yaml:"database"`
	ConnectTimeoutSeconds int    `yaml:"connect_timeout_seconds"`

	// EnforceWishlistUnique creates a unique (blogId, wishListUserEmail) index so that
	// two concurrent adds for the same pair cannot both insert.
	EnforceWishlistUnique bool `yaml:"enforce_wishlist_unique"`
}

type SessionConfig struct {
	CookieName string `yaml:"cookie_name"`
	TTLHours   int    `yaml:"ttl_hours"`
	Issuer     string `yaml:"issuer"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// IsProduction reports whether cookies and gin should run in production mode.
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, EnvProduction)
}

var config *AppConfig

func InitApp() {
	c, err := Load(GetBasePath())
	if err != nil {
		panic(err)
	}
	config = c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// Load reads .env and config.yaml from baseDir, applies defaults and then
// environment overrides.
func Load(baseDir string) (*AppConfig, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load(filepath.Join(baseDir, ENV_FILE))

	c := Default()
	data, err := os.ReadFile(filepath.Join(baseDir, CONFIG_FILE))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", CONFIG_FILE, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", CONFIG_FILE, err)
	}

	applyEnv(&c)
	fillDefaults(&c)

	if c.TokenSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}
	return &c, nil
}

// Default returns the configuration used for any key config.yaml leaves out.
func Default() AppConfig {
	return AppConfig{
		Name: "blog-nest",
		Server: ServerConfig{
			Port:                  5000,
			Environment:           "development",
			RequestTimeoutSeconds: 15,
		},
		Logging: LoggingConfig{Level: "info"},
		Mongo: MongoConfig{
			URI:                   "mongodb://localhost:27017",
			Database:              "blognest",
			ConnectTimeoutSeconds: 10,
			EnforceWishlistUnique: true,
		},
		Session: SessionConfig{
			CookieName: "token",
			TTLHours:   30 * 24,
			Issuer:     "blog-nest",
		},
		CORS:    CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		Metrics: MetricsConfig{Enabled: false, Path: "/metrics"},
	}
}

func applyEnv(c *AppConfig) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		c.Server.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MONGO_DB_NAME"); v != "" {
		c.Mongo.Database = v
	}

	// An explicit URI wins over the Atlas credentials pair.
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Mongo.URI = v
	} else if user, pass := os.Getenv("DB_USER"), os.Getenv("DB_PASS"); user != "" && pass != "" {
		c.Mongo.URI = atlasURI(user, pass)
	}

	c.TokenSecret = os.Getenv("ACCESS_TOKEN_SECRET")
}

func fillDefaults(c *AppConfig) {
	d := Default()
	if c.Server.Port <= 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Server.RequestTimeoutSeconds <= 0 {
		c.Server.RequestTimeoutSeconds = d.Server.RequestTimeoutSeconds
	}
	if c.Mongo.ConnectTimeoutSeconds <= 0 {
		c.Mongo.ConnectTimeoutSeconds = d.Mongo.ConnectTimeoutSeconds
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = d.Session.CookieName
	}
	if c.Session.TTLHours <= 0 {
		c.Session.TTLHours = d.Session.TTLHours
	}
	if c.Session.Issuer == "" {
		c.Session.Issuer = d.Session.Issuer
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = d.Metrics.Path
	}
}

func atlasURI(user, pass string) string {
	return fmt.Sprintf(
		"mongodb+srv://%s@cluster0.bmhyihx.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0",
		url.UserPassword(user, pass).String(),
	)
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
