package mailer

import "strings"

// Kind buckets a transport error so the HTTP layer can map it to a
// status and user-facing message without leaking raw transport text.
type Kind int

const (
	KindUnclassified Kind = iota
	KindAuth
	KindQuota
	KindInvalidRecipient
	KindUnavailable
)

// Classification is by case-insensitive substring match against the
// transport's error message; SMTP relays and HTTP APIs expose no common
// structured error codes, the wording is the only portable signal.
var kindKeywords = []struct {
	kind     Kind
	keywords []string
}{
	{KindAuth, []string{"invalid login", "authentication failed", "invalid credentials"}},
	{KindQuota, []string{"daily limit", "rate limit"}},
	{KindInvalidRecipient, []string{"invalid email", "invalid recipient"}},
	{KindUnavailable, []string{"too many requests", "connection refused", "econnrefused"}},
}

// Classify maps a transport error to its Kind. A nil error or an
// unrecognized message is KindUnclassified.
func Classify(err error) Kind {
	if err == nil {
		return KindUnclassified
	}
	msg := strings.ToLower(err.Error())
	for _, entry := range kindKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(msg, kw) {
				return entry.kind
			}
		}
	}
	return KindUnclassified
}
