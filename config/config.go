package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	Port          int    `mapstructure:"PORT"`           // e.g., 3000
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // defaults to ":<PORT>"
	AppEnv        string `mapstructure:"APP_ENV"`        // "production" switches gin to release mode
	PublicURL     string `mapstructure:"PUBLIC_URL"`     // base for download links, e.g., "https://aura.example.com"

	// Remote generation (optional; local templates are used when no key is set)
	OpenAIKey       string        `mapstructure:"OPENAI_API_KEY"`    // API key for OpenAI, preferred when both keys are set
	OpenAIModel     string        `mapstructure:"OPENAI_MODEL"`      // e.g., "gpt-4o", "gpt-4o-mini"
	AnthropicKey    string        `mapstructure:"ANTHROPIC_API_KEY"` // API key for Anthropic
	AnthropicModel  string        `mapstructure:"ANTHROPIC_MODEL"`   // e.g., "claude-sonnet-4-5"
	RemoteTimeout   time.Duration `mapstructure:"REMOTE_TIMEOUT"`    // per-request limit, e.g., "45s"
	RemoteMaxTokens int           `mapstructure:"REMOTE_MAX_TOKENS"` // completion budget per site

	// Project storage
	StoreDriver string `mapstructure:"STORE_DRIVER"` // "memory" or "sqlite"
	DataDir     string `mapstructure:"DATA_DIR"`     // directory holding aura.db for the sqlite driver
	MaxProjects int    `mapstructure:"MAX_PROJECTS"` // oldest projects are dropped beyond this count
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 3000)
	v.SetDefault("SERVER_ADDRESS", "")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PUBLIC_URL", "")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_MODEL", "gpt-4o")
	v.SetDefault("ANTHROPIC_API_KEY", "")
	v.SetDefault("ANTHROPIC_MODEL", "claude-sonnet-4-5")
	v.SetDefault("REMOTE_TIMEOUT", 45*time.Second)
	v.SetDefault("REMOTE_MAX_TOKENS", 4000)
	v.SetDefault("STORE_DRIVER", "memory")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("MAX_PROJECTS", 1000)
}

// LoadConfig reads configuration from config.yaml in path (if present) and
// environment variables, which take precedence.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)     // Path to look for the config file in
	v.SetConfigName("config") // Name of config file (without extension)
	v.SetConfigType("yaml")
	setDefaults(v) // AutomaticEnv only resolves keys viper already knows
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Info: config file ('config.yaml') not found, relying on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Info: using configuration file: %s", v.ConfigFileUsed())
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Derived values
	config.StoreDriver = strings.ToLower(strings.TrimSpace(config.StoreDriver))
	if config.ServerAddress == "" {
		config.ServerAddress = fmt.Sprintf(":%d", config.Port)
	}
	if config.PublicURL == "" {
		config.PublicURL = fmt.Sprintf("http://localhost:%d", config.Port)
	}
	config.PublicURL = strings.TrimRight(config.PublicURL, "/")

	if err = config.Validate(); err != nil {
		return Config{}, err
	}

	if config.OpenAIKey == "" && config.AnthropicKey == "" {
		log.Println("WARN: no OPENAI_API_KEY or ANTHROPIC_API_KEY set, sites will be generated from local templates only.")
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d: must be between 1 and 65535", c.Port)
	}
	switch c.StoreDriver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q: must be memory or sqlite", c.StoreDriver)
	}
	if c.MaxProjects <= 0 {
		return fmt.Errorf("invalid MAX_PROJECTS %d: must be positive", c.MaxProjects)
	}
	if c.RemoteTimeout <= 0 {
		return fmt.Errorf("invalid REMOTE_TIMEOUT %s: must be positive", c.RemoteTimeout)
	}
	if c.RemoteMaxTokens <= 0 {
		return fmt.Errorf("invalid REMOTE_MAX_TOKENS %d: must be positive", c.RemoteMaxTokens)
	}
	if c.StoreDriver == "sqlite" && c.DataDir == "" {
		return errors.New("DATA_DIR is required when STORE_DRIVER is sqlite")
	}
	return nil
}
