// Package preview hands a generated file to the system document viewer.
package preview

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/pkg/errors"

	"github.com/proxionix/unit-tools/pkg/logger"
)

type Launcher struct{}

func NewLauncher() *Launcher { return &Launcher{} }

func (l *Launcher) Open(ctx context.Context, path string) error {
	const op = "share.preview.Open"

	name, args := openerFor(runtime.GOOS, path)
	logger.Debug(ctx, "opening document",
		logger.String("path", path),
		logger.String("opener", name),
	)

	if err := exec.CommandContext(ctx, name, args...).Run(); err != nil {
		return errors.Wrap(err, op)
	}
	return nil
}

func openerFor(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}
