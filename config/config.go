// Package config loads the service configuration from an optional YAML file
// with environment-variable overrides. Every setting has a development
// default; production deployments are expected to override the secrets.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

// Config holds every runtime setting of the service. It is constructed once at
// process start and injected explicitly; there are no global singletons.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port        int    `json:"port" yaml:"port"`
		FrontendURL string `json:"frontendUrl" yaml:"frontendUrl"`
	} `json:"http" yaml:"http"`

	Postgres Postgres `json:"postgres" yaml:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Token struct {
		AccessTTL      time.Duration `json:"accessTtl" yaml:"accessTtl"`
		RefreshTTL     time.Duration `json:"refreshTtl" yaml:"refreshTtl"`
		SetPasswordTTL time.Duration `json:"setPasswordTtl" yaml:"setPasswordTtl"`
	} `json:"token" yaml:"token"`

	Mail Mail `json:"mail" yaml:"mail"`
}

// Log defines logger output settings.
type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// Postgres defines the database connection settings.
type Postgres struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	DBName   string `json:"dbName" yaml:"dbName"`
	SSLMode  string `json:"sslMode" yaml:"sslMode"`
}

// Mail defines the SMTP credentials and sender identity.
type Mail struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, "production")
}

// New loads the configuration for the fx container.
func New() (*Config, error) {
	return Load("config", "config", "../config", "../../config")
}

// Load reads <name>.yaml from the search paths (if present), applies
// environment-variable overrides, and fills in development defaults.
func Load(name string, searchIn ...string) (*Config, error) {
	cfg := new(Config)
	koanfInstance := koanf.New(".")

	if configFile, found := findConfigFile(name, searchIn); found {
		if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", name)
		}
	}

	existing := koanfInstance.Raw()

	// Env vars override file values: POSTGRES_PASSWORD -> postgres.password,
	// SECRETKEY_ACCESS -> secretKey.access, and so on.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existing), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	applyDefaults(cfg)

	return cfg, nil
}

func findConfigFile(name string, searchIn []string) (string, bool) {
	searchPaths := []string{defaultPath}
	if pwd, err := os.Getwd(); err == nil {
		for _, path := range searchIn {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

// applyDefaults fills every unset field with its non-production default.
func applyDefaults(cfg *Config) {
	setIfEmpty(&cfg.Env.Env, "development")
	setIfEmpty(&cfg.Env.ServiceName, "siakad-auth")
	setIfEmpty(&cfg.Env.Log.Level, "info")

	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 3000
	}
	setIfEmpty(&cfg.HTTP.FrontendURL, "http://localhost:5173")

	setIfEmpty(&cfg.Postgres.Host, "localhost")
	if cfg.Postgres.Port == 0 {
		cfg.Postgres.Port = 5432
	}
	setIfEmpty(&cfg.Postgres.Username, "postgres")
	setIfEmpty(&cfg.Postgres.DBName, "siakad")
	setIfEmpty(&cfg.Postgres.SSLMode, "disable")

	setIfEmpty(&cfg.SecretKey.Access, "dev_access_secret")
	setIfEmpty(&cfg.SecretKey.Refresh, "dev_refresh_secret")

	if cfg.Token.AccessTTL == 0 {
		cfg.Token.AccessTTL = 15 * time.Minute
	}
	if cfg.Token.RefreshTTL == 0 {
		cfg.Token.RefreshTTL = 7 * 24 * time.Hour
	}
	if cfg.Token.SetPasswordTTL == 0 {
		cfg.Token.SetPasswordTTL = time.Hour
	}

	setIfEmpty(&cfg.Mail.Host, "smtp.gmail.com")
	if cfg.Mail.Port == 0 {
		cfg.Mail.Port = 587
	}
}

func setIfEmpty(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}

// canonicalizeEnvKey converts ENV_VAR_NAME into a koanf path, aligning each
// segment with existing YAML keys so POSTGRES_SSLMODE maps onto
// postgres.sslMode rather than postgres.sslmode.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	for key, value := range current {
		if !strings.EqualFold(key, segment) {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}
