package envconfig

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

type documentsEnv struct {
	TemplatesDir string `env:"TEMPLATES_DIR" envDefault:"assets"`
	OutputDir    string `env:"ORDER_OUTPUT_DIR"`
}

type documents struct {
	raw documentsEnv
}

func NewDocumentsConfig() (*documents, error) {
	var raw documentsEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &documents{raw: raw}, nil
}

func (cfg *documents) TemplatesDir() string { return cfg.raw.TemplatesDir }

// OutputDir is the transient location generated PDFs land in. Defaults to a
// per-tool directory under the OS temp dir, mirroring the app cache dir the
// files originally lived in.
func (cfg *documents) OutputDir() string {
	if cfg.raw.OutputDir != "" {
		return cfg.raw.OutputDir
	}
	return filepath.Join(os.TempDir(), "materiel")
}
