package config

import (
	"errors"
	"fmt"

	"github.com/f8wq/TFL-Manager/model"
	"github.com/spf13/viper"
)

// ErrMissingSetting is returned when a required setting is empty.
var ErrMissingSetting = errors.New("missing required setting")

// Cfg is the configuration loaded at startup. It is not modified afterwards.
var Cfg model.Config

// LoadConfig reads ./config.yaml (if present) and the environment into Cfg.
func LoadConfig() (err error) {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	cfg, err := Load(v)
	if err != nil {
		return
	}
	Cfg = cfg
	return
}

// Load applies defaults and environment bindings to v, reads its config file
// and validates the result. A missing config file is not an error.
func Load(v *viper.Viper) (model.Config, error) {
	var cfg model.Config

	v.SetDefault("recordBot.approver_role", "record perms")
	v.SetDefault("recordBot.store", "memory")
	v.SetDefault("keepalive.http_addr", ":8080")
	v.AutomaticEnv()
	if err := v.BindEnv("TOKEN", "DISCORD_BOT_TOKEN", "TOKEN"); err != nil {
		return cfg, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validate(cfg model.Config) error {
	switch {
	case cfg.Token == "":
		return fmt.Errorf("%w: TOKEN", ErrMissingSetting)
	case cfg.RecordBot.ApprovalChannelID == "":
		return fmt.Errorf("%w: recordBot.approval_channel_id", ErrMissingSetting)
	case cfg.RecordBot.FinalChannelID == "":
		return fmt.Errorf("%w: recordBot.final_channel_id", ErrMissingSetting)
	case cfg.RecordBot.ApproverRole == "":
		return fmt.Errorf("%w: recordBot.approver_role", ErrMissingSetting)
	}
	switch cfg.RecordBot.Store {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("unknown store %q", cfg.RecordBot.Store)
	}
	return nil
}
