// Package mailer abstracts outbound email delivery behind a single Send
// capability with interchangeable transports: direct SMTP relay,
// the MailerSend transactional API, and a dev transport that only logs.
// The transport is selected once at startup from configuration.
package mailer

type Service interface {
	// Send delivers one message and returns the transport's message ID
	// when it reports one. Timeouts are the transport's own; callers do
	// not add an extra wait.
	Send(toEmail, toName, subject, html string) (string, error)
}
