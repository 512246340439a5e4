package service

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
)

// CodeSender delivers a confirmation code to the address a user signed up
// with. Delivery happens synchronously inside the sign-up request; a failure
// propagates to the caller.
type CodeSender interface {
	Send(ctx context.Context, email, code string) error
}

type smtpCodeSender struct {
	host string
	port int
	from string
}

func NewSMTPCodeSender(host string, port int, from string) CodeSender {
	return &smtpCodeSender{host: host, port: port, from: from}
}

func (s *smtpCodeSender) Send(ctx context.Context, email, code string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Your titlehub access code\r\n\r\n%s, keep it in secret\r\n",
		s.from, email, code,
	)
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	if err := smtp.SendMail(addr, nil, s.from, []string{email}, []byte(msg)); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	return nil
}

// logCodeSender writes the code to the log instead of sending mail. Used in
// development where no SMTP relay is available.
type logCodeSender struct {
	logger *slog.Logger
}

func NewLogCodeSender(logger *slog.Logger) CodeSender {
	return &logCodeSender{logger: logger}
}

func (s *logCodeSender) Send(ctx context.Context, email, code string) error {
	s.logger.Info("confirmation code issued", "email", email, "code", code)
	return nil
}
