package email

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/orris-inc/setracker/internal/shared/config"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for ticket links (e.g., "http://localhost:8080")
}

func SMTPConfigFrom(cfg config.EmailConfig) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
		BaseURL:     cfg.BaseURL,
	}
}

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type OwnerAssignedMessage struct {
	To           string
	OwnerName    string
	TicketNumber string
	Title        string
	TicketType   string
	Priority     string
	ProjectName  string
}

type SMTPEmailService struct {
	config SMTPConfig
	sender Sender
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	return NewEmailService(config, gomail.NewDialer(config.Host, config.Port, config.Username, config.Password))
}

func NewEmailService(config SMTPConfig, sender Sender) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		sender: sender,
	}
}

func (s *SMTPEmailService) SendOwnerAssignedEmail(msg OwnerAssignedMessage) error {
	ticketURL := s.TicketURL(msg.TicketNumber)

	subject := fmt.Sprintf("[%s] You now own: %s", msg.TicketNumber, msg.Title)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Hello %s,</h2>
			<p>You have been made the owner of %s <strong>%s</strong> in project %s.</p>
			<p><strong>%s</strong></p>
			<p>Priority: %s</p>
			<p><a href="%s">Open ticket</a></p>
		</body>
		</html>
	`,
		html.EscapeString(msg.OwnerName),
		html.EscapeString(msg.TicketType),
		html.EscapeString(msg.TicketNumber),
		html.EscapeString(msg.ProjectName),
		html.EscapeString(msg.Title),
		html.EscapeString(msg.Priority),
		ticketURL,
	)

	plainBody := fmt.Sprintf(`
Hello %s,

You have been made the owner of %s %s in project %s.

%s
Priority: %s

%s
	`, msg.OwnerName, msg.TicketType, msg.TicketNumber, msg.ProjectName, msg.Title, msg.Priority, ticketURL)

	return s.sendEmail(msg.To, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) TicketURL(number string) string {
	return fmt.Sprintf("%s/tickets/%s", s.config.BaseURL, number)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
