package smtp

import (
	"context"
	"fmt"
	"strings"

	"github.com/JMURv/device-sessions/internal/config"
	"github.com/JMURv/device-sessions/internal/dto"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type EmailServer struct {
	server       string
	port         int
	user         string
	pass         string
	admin        string
	serverConfig config.ServerConfig
}

func New(conf config.Config) *EmailServer {
	return &EmailServer{
		server:       conf.Email.Server,
		port:         conf.Email.Port,
		user:         conf.Email.User,
		pass:         conf.Email.Pass,
		admin:        conf.Email.Admin,
		serverConfig: conf.Server,
	}
}

func (s *EmailServer) GetMessageBase(subject, toEmail string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	return m
}

// SendRevocationSummary mails the outcome of a bulk revocation to the
// operator who triggered it, with the admin address in copy when set.
func (s *EmailServer) SendRevocationSummary(
	_ context.Context,
	to string,
	res dto.BatchResult,
) error {
	m := s.GetMessageBase("Session revocation summary", to)
	if s.admin != "" && s.admin != to {
		m.SetHeader("Cc", s.admin)
	}

	body := fmt.Sprintf(
		"%s\n\nSucceeded: %d\nFailed: %d\n",
		res.Message, res.Successes, res.Failures,
	)
	if len(res.Errors) > 0 {
		body += "\nErrors:\n" + strings.Join(res.Errors, "\n") + "\n"
	}

	m.SetBody("text/plain", body)
	return s.Send(m)
}

func (s *EmailServer) Send(m *gomail.Message) error {
	d := gomail.NewDialer(s.server, s.port, s.user, s.pass)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error(
			"Failed to send an email",
			zap.Error(err),
		)
		return err
	}
	return nil
}
