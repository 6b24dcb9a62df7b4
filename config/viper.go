package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const serverURLKey = Section + ".serverUrl"

type Config struct {
	ServerURL string      `toml:"serverUrl" mapstructure:"serverUrl"`
	Serve     ServeConfig `toml:"serve" mapstructure:"serve"`
}

type ServeConfig struct {
	Host    string   `toml:"host" mapstructure:"host"`
	Port    int      `toml:"port" mapstructure:"port"`
	RPM     int      `toml:"rpm" mapstructure:"rpm"`
	APIKeys []string `toml:"api_keys" mapstructure:"api_keys"`
}

// Loader reads settings from scratch on every Load call, nothing is cached
// between invocations.
type Loader struct {
	File  string
	Flags *pflag.FlagSet
}

func (l *Loader) Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("serve.host", "127.0.0.1")
	v.SetDefault("serve.port", DefaultServePort)
	v.SetDefault("serve.rpm", DefaultServeRPM)
	v.SetDefault("serve.api_keys", []string{})

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only answers for keys viper already knows about.
	if err := v.BindEnv(serverURLKey, "SLICER_RUNNER_SERVERURL"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}
	if l.Flags != nil {
		if f := l.Flags.Lookup("server-url"); f != nil {
			if err := v.BindPFlag(serverURLKey, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag: %w", err)
			}
		}
	}

	file := l.File
	if file == "" {
		file = "config.toml"
	}
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		if l.File != "" || !isNotFound(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		slog.Debug("no config file, using env and flags only", "file", file)
	}

	// Read key by key: UnmarshalKey on a table skips defaults and env.
	c := &Config{
		ServerURL: v.GetString(serverURLKey),
		Serve: ServeConfig{
			Host:    v.GetString("serve.host"),
			Port:    v.GetInt("serve.port"),
			RPM:     v.GetInt("serve.rpm"),
			APIKeys: v.GetStringSlice("serve.api_keys"),
		},
	}
	slog.Debug("config loaded", "server_url", c.ServerURL, "serve_port", c.Serve.Port)
	return c, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// ServerURL loads the settings and returns the configured endpoint.
func (l *Loader) ServerURL() (string, error) {
	c, err := l.Load()
	if err != nil {
		return "", err
	}
	return c.ServerURL, nil
}
