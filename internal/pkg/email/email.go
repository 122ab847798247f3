package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// Service defines the interface for email dispatch. Delivery is
// fire-and-forget from the caller's perspective: a failed send is logged,
// never retried here, and never affects an already-committed admission.
type Service interface {
	SendAdmissionEmail(toEmail, toName, studentID, username, tempPassword string, totalDue float64) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// SMTPService implements Service over plain SMTP
type SMTPService struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPService creates a new SMTP-backed email service
func NewSMTPService(config SMTPConfig, logger zerolog.Logger) Service {
	return &SMTPService{
		config: config,
		logger: logger,
	}
}

// SendAdmissionEmail sends the welcome email with the new student's login
// credentials and total fees due.
func (s *SMTPService) SendAdmissionEmail(toEmail, toName, studentID, username, tempPassword string, totalDue float64) error {
	// If credentials are not configured, log the message instead (development mode)
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("studentId", studentID).
			Str("username", username).
			Msg("SMTP credentials not configured - admission email not sent. Credentials logged for testing.")
		return nil
	}

	subject := "Welcome to CollegeHub - Your Admission Details"

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Welcome, %s!</h2>
				<p>Your admission has been processed. Your student number is <strong>%s</strong>.</p>

				<p>You can log in to the student portal with the following credentials:</p>
				<ul>
					<li>Username: <strong>%s</strong></li>
					<li>Temporary password: <strong>%s</strong></li>
				</ul>
				<p>Please change your password on first login.</p>

				<p>Your total fees due are <strong>%.2f</strong>. Individual fee items and due
				dates are available on your portal under Fees.</p>

				<p>Best regards,<br>The CollegeHub Registry</p>
			</div>
		</body>
		</html>
	`, toName, studentID, username, tempPassword, totalDue)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// sendHTMLEmail sends an HTML email
func (s *SMTPService) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail),
		"To":           toEmail,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if s.config.UseTLS {
		tlsConfig := &tls.Config{
			ServerName: s.config.Host,
		}

		conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
		if err != nil {
			s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
			return fmt.Errorf("failed to connect to SMTP server: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, s.config.Host)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to create SMTP client")
			return fmt.Errorf("failed to create SMTP client: %w", err)
		}
		defer client.Quit()

		if err = client.Auth(auth); err != nil {
			s.logger.Error().Err(err).Msg("SMTP authentication failed")
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}

		if err = client.Mail(s.config.FromEmail); err != nil {
			return fmt.Errorf("failed to set sender: %w", err)
		}
		if err = client.Rcpt(toEmail); err != nil {
			return fmt.Errorf("failed to set recipient: %w", err)
		}

		w, err := client.Data()
		if err != nil {
			return fmt.Errorf("failed to get data writer: %w", err)
		}
		if _, err = w.Write([]byte(message)); err != nil {
			return fmt.Errorf("failed to write email message: %w", err)
		}
		if err = w.Close(); err != nil {
			return fmt.Errorf("failed to close data writer: %w", err)
		}

		return nil
	}

	if err := smtp.SendMail(
		serverAddress,
		auth,
		s.config.FromEmail,
		[]string{toEmail},
		[]byte(message),
	); err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
