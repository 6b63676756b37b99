package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "SITE"

type Config struct {
	Addr        string        `mapstructure:"addr"`
	ContentPath string        `mapstructure:"content_path"`
	Locale      string        `mapstructure:"locale"`
	SiteName    string        `mapstructure:"site_name"`
	EnableHSTS  bool          `mapstructure:"enable_hsts"`
	CORSOrigins []string      `mapstructure:"cors_origins"`
	Log         LogConfig     `mapstructure:"log"`
	Contact     ContactConfig `mapstructure:"contact"`
	HTTP        HTTPConfig    `mapstructure:"http"`

	// PortfolioCategories are offered as filters even when no project uses them.
	PortfolioCategories []string `mapstructure:"portfolio_categories"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ContactConfig throttles inquiry submissions per client address.
type ContactConfig struct {
	RateRPS   float64 `mapstructure:"rate_rps"`
	RateBurst int     `mapstructure:"rate_burst"`
}

type HTTPConfig struct {
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":4002")
	v.SetDefault("content_path", "")
	v.SetDefault("locale", "en-US")
	v.SetDefault("site_name", "CRE8DIGI")
	v.SetDefault("enable_hsts", false)
	v.SetDefault("cors_origins", []string{})
	v.SetDefault("portfolio_categories", []string{
		"Web Development", "App Development", "Branding", "SEO", "UI/UX Design", "Video Production",
	})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("contact.rate_rps", 1.0)
	v.SetDefault("contact.rate_burst", 5)
	v.SetDefault("http.read_timeout", 5*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("http.max_body_bytes", int64(1<<20))
}

// Load reads defaults, then the optional config file, then SITE_* variables.
// An empty path looks for site.yaml in the working directory and carries on
// without it; an explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("site")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr is required")
	}
	if c.Contact.RateRPS <= 0 || c.Contact.RateBurst <= 0 {
		return errors.New("config: contact rate limit must be positive")
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		return errors.New("config: http.max_body_bytes must be positive")
	}
	return nil
}
