package mailer

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
)

type SMTPMailer struct {
	Host     string
	Port     int
	From     string
	FromName string
	User     string
	Pass     string
	UseTLS   bool // implicit TLS (port 465); false = plain/STARTTLS
}

func NewSMTPMailer(host string, port int, from, fromName, user, pass string, useTLS bool) *SMTPMailer {
	return &SMTPMailer{
		Host:     strings.TrimSpace(host),
		Port:     port,
		From:     strings.TrimSpace(from),
		FromName: strings.TrimSpace(fromName),
		User:     strings.TrimSpace(user),
		Pass:     strings.TrimSpace(pass),
		UseTLS:   useTLS,
	}
}

// sanitizeHeader removes CR and LF so caller-supplied values cannot
// terminate a header line and smuggle extra headers into the message.
func sanitizeHeader(v string) string {
	v = strings.ReplaceAll(v, "\r", "")
	v = strings.ReplaceAll(v, "\n", "")
	return strings.TrimSpace(v)
}

// message assembles the wire-format message. Header values are
// sanitized here, and the subject is RFC 2047 encoded when it carries
// non-ASCII text.
func (s *SMTPMailer) message(toEmail, subject, html string) []byte {
	toEmail = sanitizeHeader(toEmail)
	var buf bytes.Buffer
	from := s.From
	if name := sanitizeHeader(s.FromName); name != "" {
		from = fmt.Sprintf("%s <%s>", name, s.From)
	}
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", toEmail)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", sanitizeHeader(subject)))
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: text/html; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n", html)
	return buf.Bytes()
}

func (s *SMTPMailer) Send(toEmail, toName, subject, html string) (string, error) {
	toEmail = sanitizeHeader(toEmail)
	if toEmail == "" {
		return "", fmt.Errorf("invalid recipient: empty address")
	}

	msg := s.message(toEmail, subject, html)
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)

	// Local catcher (e.g. Mailpit on 1025): no auth, no TLS
	if !s.UseTLS && s.User == "" {
		return "", smtp.SendMail(addr, nil, s.From, []string{toEmail}, msg)
	}

	var auth smtp.Auth
	if s.User != "" {
		auth = smtp.PlainAuth("", s.User, s.Pass, s.Host)
	}

	// SendMail negotiates STARTTLS when the server advertises it
	if err := smtp.SendMail(addr, auth, s.From, []string{toEmail}, msg); err == nil {
		return "", nil
	} else if !s.UseTLS {
		return "", err
	}

	// Implicit TLS fallback (port 465)
	tlsCfg := &tls.Config{ServerName: s.Host}
	conn, err := tls.Dial("tcp", addr, tlsCfg)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		return "", err
	}
	defer c.Quit()

	if auth != nil {
		if err := c.Auth(auth); err != nil {
			return "", err
		}
	}
	if err := c.Mail(s.From); err != nil {
		return "", err
	}
	if err := c.Rcpt(toEmail); err != nil {
		return "", err
	}
	w, err := c.Data()
	if err != nil {
		return "", err
	}
	if _, err := w.Write(msg); err != nil {
		return "", err
	}
	return "", w.Close()
}
