// Package email hands a generated file to the system mail composer.
package email

import (
	"context"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/proxionix/unit-tools/pkg/logger"
)

type Composer struct {
	recipient string
	subject   string
	body      string
}

func NewComposer(recipient, subject, body string) *Composer {
	return &Composer{recipient: recipient, subject: subject, body: body}
}

// Compose opens the default mail client with the document attached and the
// warehouse recipient, subject and body prefilled. The user still reviews
// and sends the message themselves.
func (c *Composer) Compose(ctx context.Context, attachmentPath string) error {
	const op = "share.email.Compose"

	logger.Debug(ctx, "composing order email",
		logger.String("recipient", c.recipient),
		logger.String("attachment", attachmentPath),
	)

	cmd := exec.CommandContext(ctx, "xdg-email",
		"--utf8",
		"--subject", c.subject,
		"--body", c.body,
		"--attach", attachmentPath,
		c.recipient,
	)
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, op)
	}
	return nil
}
