// Package config loads the assistant configuration from file,
// environment and defaults.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Config is the read-only configuration consumed at startup.
type Config struct {
	// Mode selects the recognizer: online, offline or auto.
	Mode     string            `mapstructure:"mode"`
	Apps     map[string]string `mapstructure:"apps"`     // app name -> executable path
	Contacts map[string]string `mapstructure:"contacts"` // contact name -> phone number
	Links    Links             `mapstructure:"links"`
	Speech   Speech            `mapstructure:"speech"`
	Chat     Chat              `mapstructure:"chat"`
	Chime    string            `mapstructure:"chime"` // mp3 played before listening
	Logging  Logging           `mapstructure:"logging"`
}

// Links are the fixed destinations commands resolve to.
type Links struct {
	Profile     string `mapstructure:"profile"`      // LinkedIn profile URL
	Repository  string `mapstructure:"repository"`   // "open my repository"
	Project     string `mapstructure:"project"`      // github project page
	ProjectName string `mapstructure:"project_name"` // word that selects the project page
	Music       string `mapstructure:"music"`        // "play music" destination
}

type Speech struct {
	WhisperModel string  `mapstructure:"whisper_model"` // ggml model path for the local engine
	Language     string  `mapstructure:"language"`
	OnlineModel  string  `mapstructure:"online_model"` // OpenAI transcription model
	DuckFactor   float64 `mapstructure:"duck_factor"`  // playback volume factor while listening
}

type Chat struct {
	Model string `mapstructure:"model"` // OpenAI chat model for the fallback
}

type Logging struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// Load reads the configuration. With an empty path the usual spots are
// searched: ./kaju.yaml, ~/.config/kaju/kaju.yaml. A missing file is
// fine; defaults and KAJU_* env vars carry the day.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("mode", "auto")
	v.SetDefault("links.repository", "https://github.com/kaju-ai/kaju")
	v.SetDefault("links.project", "https://github.com/kaju-ai/kaju")
	v.SetDefault("links.project_name", "kaju")
	v.SetDefault("links.music", "https://music.youtube.com")
	v.SetDefault("speech.whisper_model", "third_party/whisper.cpp/models/ggml-base.en.bin")
	v.SetDefault("speech.language", "en")
	v.SetDefault("speech.online_model", "whisper-1")
	v.SetDefault("speech.duck_factor", 0.3)
	v.SetDefault("chat.model", "gpt-5-nano")
	v.SetDefault("chime", "chime.mp3")
	v.SetDefault("logging.level", "info")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("kaju")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/kaju")
	}

	v.SetEnvPrefix("KAJU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Info("no config file found, using defaults")
	} else {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	switch cfg.Mode {
	case "online", "offline", "auto":
	default:
		return nil, fmt.Errorf("invalid mode %q (want online, offline or auto)", cfg.Mode)
	}

	return &cfg, nil
}
