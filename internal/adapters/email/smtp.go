package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"mime"
	"mime/multipart"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"
)

type smtpMailer struct {
	config      SMTPConfig
	fromAddress string
	fromName    string
	logger      *slog.Logger
}

func newSMTPMailer(config MailerConfig, logger *slog.Logger) *smtpMailer {
	return &smtpMailer{
		config:      config.SMTP,
		fromAddress: config.FromAddress,
		fromName:    config.FromName,
		logger:      logger,
	}
}

func (s *smtpMailer) Send(ctx context.Context, to, subject, html, text string) error {
	msg, err := buildMessage(sender(s.fromName, s.fromAddress), to, subject, html, text)
	if err != nil {
		return fmt.Errorf("build message: %w", err)
	}

	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("connect to SMTP server: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer func() { _ = client.Close() }()

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{
			ServerName: s.config.Host,
			MinVersion: tls.VersionTLS12,
		}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("start TLS: %w", err)
		}
	}

	if s.config.Password != "" {
		username := s.config.Username
		if username == "" {
			username = s.fromAddress
		}
		auth := smtp.PlainAuth("", username, s.config.Password, s.config.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err := client.Mail(s.fromAddress); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("open data writer: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write email body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close data writer: %w", err)
	}
	if err := client.Quit(); err != nil {
		return fmt.Errorf("quit SMTP connection: %w", err)
	}

	s.logger.InfoContext(ctx, "email sent via SMTP", "to", to)
	return nil
}

// headerNewlines folds CR and LF in header values into spaces.
var headerNewlines = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// buildMessage renders an RFC 5322 message. With both bodies set it is multipart/alternative.
// Header values never carry line breaks; the subject is RFC 2047 encoded when needed.
func buildMessage(from, to, subject, html, text string) ([]byte, error) {
	if strings.ContainsAny(to, "\r\n") {
		return nil, fmt.Errorf("invalid recipient %q", to)
	}
	if strings.ContainsAny(from, "\r\n") {
		return nil, fmt.Errorf("invalid sender %q", from)
	}

	var msg bytes.Buffer
	header := func(k, v string) { fmt.Fprintf(&msg, "%s: %s\r\n", k, v) }
	header("From", from)
	header("To", (&mail.Address{Address: to}).String())
	header("Subject", mime.QEncoding.Encode("UTF-8", headerNewlines.Replace(subject)))
	header("Date", time.Now().UTC().Format(time.RFC1123Z))
	header("MIME-Version", "1.0")

	switch {
	case html != "" && text != "":
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		header("Content-Type", "multipart/alternative; boundary="+mw.Boundary())
		msg.WriteString("\r\n")
		for _, part := range []struct{ contentType, content string }{
			{"text/plain; charset=UTF-8", text},
			{"text/html; charset=UTF-8", html},
		} {
			pw, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {part.contentType}})
			if err != nil {
				return nil, err
			}
			if _, err := pw.Write([]byte(part.content)); err != nil {
				return nil, err
			}
		}
		if err := mw.Close(); err != nil {
			return nil, err
		}
		msg.Write(body.Bytes())
	case html != "":
		header("Content-Type", "text/html; charset=UTF-8")
		msg.WriteString("\r\n")
		msg.WriteString(html)
	default:
		header("Content-Type", "text/plain; charset=UTF-8")
		msg.WriteString("\r\n")
		msg.WriteString(text)
	}
	return msg.Bytes(), nil
}
