package envconfig

import "github.com/caarlos0/env/v11"

type catalogEnv struct {
	Path string `env:"CATALOG_PATH" envDefault:"assets/materials_order.json"`
}

type catalog struct {
	raw catalogEnv
}

func NewCatalogConfig() (*catalog, error) {
	var raw catalogEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &catalog{raw: raw}, nil
}

func (cfg *catalog) Path() string { return cfg.raw.Path }
