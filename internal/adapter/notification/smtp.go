package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/api-sage/bank-back-office/internal/logger"
)

type SMTPNotifier struct {
	addr string
	from string
}

func NewSMTPNotifier(addr string, from string) *SMTPNotifier {
	return &SMTPNotifier{
		addr: strings.TrimSpace(addr),
		from: strings.TrimSpace(from),
	}
}

func (n *SMTPNotifier) Send(ctx context.Context, to string, subject string, body string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	msg := strings.Join([]string{
		"From: " + n.from,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(n.addr, nil, n.from, []string{to}, []byte(msg)); err != nil {
		logger.Error("smtp notifier send failed", err, logger.Fields{
			"to":      to,
			"subject": subject,
		})
		return fmt.Errorf("send notification: %w", err)
	}

	logger.Info("smtp notifier send success", logger.Fields{
		"to":      to,
		"subject": subject,
	})

	return nil
}
