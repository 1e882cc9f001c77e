package mailer

import (
	"fmt"
	"net/smtp"
	"sensus-service/internal/app/config"
	"strings"
)

type SMTPClient struct {
	Host   string
	Port   int
	Sender string
	Auth   smtp.Auth
}

func NewSMTPClient(driverConfig *config.DriverConfig, sender string) *SMTPClient {
	var auth smtp.Auth
	if driverConfig.SMTP.Username != "" {
		auth = smtp.PlainAuth("", driverConfig.SMTP.Username, driverConfig.SMTP.Password, driverConfig.SMTP.Host)
	}
	return &SMTPClient{
		Host:   driverConfig.SMTP.Host,
		Port:   driverConfig.SMTP.Port,
		Sender: sender,
		Auth:   auth,
	}
}

// Send delivers a plain text message over a fresh SMTP connection.
func (c *SMTPClient) Send(to, subject, body string) error {
	var message strings.Builder
	fmt.Fprintf(&message, "From: %s\r\n", c.Sender)
	fmt.Fprintf(&message, "To: %s\r\n", to)
	fmt.Fprintf(&message, "Subject: %s\r\n", subject)
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	message.WriteString(body)

	address := fmt.Sprintf("%s:%d", c.Host, c.Port)
	return smtp.SendMail(address, c.Auth, c.Sender, []string{to}, []byte(message.String()))
}
