package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Channel selects one notification channel type plus its optional
// properties (e.g. the email From address).
type Channel struct {
	Type       string            `yaml:"type" envconfig:"TYPE"`
	Properties map[string]string `yaml:",inline"`
}

type Config struct {
	LogLevel string    `yaml:"log_level" envconfig:"LOG_LEVEL"`
	Channels []Channel `yaml:"channels"`
}

// DefaultChannels returns the built-in channel set.
func DefaultChannels() []Channel {
	return []Channel{
		{Type: "email"},
		{Type: "sms"},
		{Type: "push"},
		{Type: "whatsapp"},
		{Type: "telegram"},
	}
}

// Load reads path if it exists and applies ENV overrides. A missing file
// is not an error; defaults cover anything unset.
func Load(path string) (*Config, error) {
	cfg := &Config{
		LogLevel: "info",
		Channels: DefaultChannels(),
	}
	file, err := os.Open(path)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
			return nil, err
		}
	}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
