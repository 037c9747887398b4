package contact

import "fmt"

// Validation messages shown to form users. The site audience is
// Vietnamese, so these stay localized; API-level messages are English.
const (
	MsgNameRequired  = "Vui lòng nhập họ tên"
	MsgNameMinLength = "Họ tên phải có ít nhất 2 ký tự"
	MsgNameMaxLength = "Họ tên không được vượt quá 50 ký tự"

	MsgEmailRequired = "Vui lòng nhập email"
	MsgEmailInvalid  = "Email không hợp lệ"

	MsgMessageRequired = "Vui lòng nhập tin nhắn"
)

// MsgMessageMaxLength renders the message-length error with the
// configured limit.
func MsgMessageMaxLength(max int) string {
	return fmt.Sprintf("Tin nhắn không được vượt quá %d ký tự", max)
}

// API response messages (client-facing, never raw transport errors).
const (
	MsgSubmitSuccess    = "Email sent successfully"
	MsgSubmitPartial    = "Email sent successfully, but the confirmation email could not be delivered"
	MsgInvalidJSON      = "Invalid request format. Please send valid JSON."
	MsgValidationFailed = "Validation failed. Please check your input."
	MsgOriginRejected   = "Origin not allowed"
	MsgRateLimited      = "Too many requests. Please try again later."
	MsgConfigError      = "Server configuration error"
	MsgSendFailed       = "Failed to send email. Please try again in a moment."
	MsgTransportAuth    = "Email service authentication error. Please contact the site owner."
	MsgTransportQuota   = "Email service has reached daily limit. Please try again tomorrow."
	MsgBadRecipient     = "Invalid recipient email address."
	MsgTransportBusy    = "Email service is temporarily unavailable. Please try again later."
)
