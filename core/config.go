package core

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		AppName      string `mapstructure:"appName"`
		Env          string `mapstructure:"env"`
		Debug        bool   `mapstructure:"debug"`
		TestMode     bool   `mapstructure:"testMode"`
		LogLevel     string `mapstructure:"logLevel"`
		RollbarToken string `mapstructure:"rollbarToken"`
		Build        string `mapstructure:"build"`

		Database DatabaseConfig `mapstructure:"database"`
		Slip     SlipConfig     `mapstructure:"slip"`
	}

	DatabaseConfig struct {
		Engine      string `mapstructure:"engine"`
		Host        string `mapstructure:"host"`
		Port        int    `mapstructure:"port"`
		Name        string `mapstructure:"name"`
		User        string `mapstructure:"user"`
		Password    string `mapstructure:"password"`
		DisableTLS  bool   `mapstructure:"disableTLS"`
		AutoMigrate bool   `mapstructure:"autoMigrate"`
	}

	SlipConfig struct {
		Title           string `mapstructure:"title"`
		OutputDir       string `mapstructure:"outputDir"`
		LogoPath        string `mapstructure:"logoPath"`
		OpenViewer      bool   `mapstructure:"openViewer"`
		ShowLogoOnStart bool   `mapstructure:"showLogoOnStart"`
	}
)

func (dbc DatabaseConfig) Address() string {
	return net.JoinHostPort(dbc.Host, strconv.Itoa(dbc.Port))
}

func setDefaults(v *viper.Viper) {
	v.SetTypeByDefaultValue(true)
	v.SetDefault("appName", "KCA")
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("logLevel", "info")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("build", "dev")

	v.SetDefault("database.engine", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "kca_results")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.disableTLS", true)
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("slip.title", "KCA UNIVERSITY")
	v.SetDefault("slip.outputDir", "ResultSlips")
	v.SetDefault("slip.logoPath", filepath.Join("assets", "logo.png"))
	v.SetDefault("slip.openViewer", true)
	v.SetDefault("slip.showLogoOnStart", true)
}

// NewConfig loads the configuration from defaults, the optional `config/.env.<env>` file
// and the environment (prefixed with the upper-cased env name, eg. DEV_DATABASE_HOST).
func NewConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetDefault("env", env)
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}
	v.AutomaticEnv()

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if conf.Database.Name == "" {
		return nil, fmt.Errorf("config: database name is required")
	}
	if conf.Slip.OutputDir == "" {
		return nil, fmt.Errorf("config: slip output directory is required")
	}
	return &conf, nil
}
