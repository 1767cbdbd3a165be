package envconfig

import "github.com/caarlos0/env/v11"

type settingsEnv struct {
	// Empty means "derive from the user config dir".
	Path string `env:"SETTINGS_PATH"`
}

type settings struct {
	raw settingsEnv
}

func NewSettingsConfig() (*settings, error) {
	var raw settingsEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &settings{raw: raw}, nil
}

func (cfg *settings) Path() string { return cfg.raw.Path }
