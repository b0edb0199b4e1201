package config

import (
	"os"

	"press-start/internal/input"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

type Config struct {
	App     AppConfig
	Log     LogConfig
	Console ConsoleConfig
	Catalog CatalogConfig
}

type AppConfig struct {
	Env string
}

type LogConfig struct {
	Level  string
	Output string
}

type ConsoleConfig struct {
	Encoding input.Encoding
	Color    bool
}

type CatalogConfig struct {
	Locale         language.Tag
	CurrencySymbol string
	Seed           bool
}

// Load reads configuration from the environment and DefaultEnvFile
func Load() (*Config, error) {
	return LoadFile(DefaultEnvFile)
}

// LoadFile reads configuration from the environment and the given .env
// file. Environment variables take precedence over the file; a missing
// file is not an error.
func LoadFile(envFile string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_OUTPUT", "stderr")
	v.SetDefault("CONSOLE_ENCODING", string(input.EncodingAuto))
	v.SetDefault("CONSOLE_COLOR", true)
	v.SetDefault("CATALOG_LOCALE", "pt-BR")
	v.SetDefault("CATALOG_CURRENCY_SYMBOL", "R$")
	v.SetDefault("CATALOG_SEED", false)

	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			for key, value := range values {
				v.SetDefault(key, value)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, errors.Wrapf(err, "read %s", envFile)
		}
	}

	encoding, err := input.ParseEncoding(v.GetString("CONSOLE_ENCODING"))
	if err != nil {
		return nil, errors.Wrap(err, "CONSOLE_ENCODING")
	}

	locale, err := language.Parse(v.GetString("CATALOG_LOCALE"))
	if err != nil {
		return nil, errors.Wrap(err, "CATALOG_LOCALE")
	}

	return &Config{
		App: AppConfig{
			Env: v.GetString("APP_ENV"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Output: v.GetString("LOG_OUTPUT"),
		},
		Console: ConsoleConfig{
			Encoding: encoding,
			Color:    v.GetBool("CONSOLE_COLOR"),
		},
		Catalog: CatalogConfig{
			Locale:         locale,
			CurrencySymbol: v.GetString("CATALOG_CURRENCY_SYMBOL"),
			Seed:           v.GetBool("CATALOG_SEED"),
		},
	}, nil
}
