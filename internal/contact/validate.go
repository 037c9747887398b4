package contact

import (
	"regexp"
	"strings"
)

// RFC-5322-ish address shape; the structural rules below tighten it
// further.
var emailShape = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

const (
	nameMinLength  = 2
	nameMaxLength  = 50
	emailMaxLength = 254
	localMaxLength = 64
)

// Validate trims and checks a submission. On success the returned map is
// empty and req holds the normalized fields. On failure the map carries
// one localized message per invalid field; rules are checked in order
// and the first violated rule wins.
func Validate(req *SubmitRequest, messageMax int) map[string]string {
	errs := make(map[string]string)

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	req.Phone = strings.TrimSpace(req.Phone)

	switch nameLen := len([]rune(req.Name)); {
	case nameLen == 0:
		errs["name"] = MsgNameRequired
	case nameLen < nameMinLength:
		errs["name"] = MsgNameMinLength
	case nameLen > nameMaxLength:
		errs["name"] = MsgNameMaxLength
	}

	if req.Email == "" {
		errs["email"] = MsgEmailRequired
	} else if !validEmail(req.Email) {
		errs["email"] = MsgEmailInvalid
	}

	switch msgLen := len([]rune(req.Message)); {
	case msgLen == 0:
		errs["message"] = MsgMessageRequired
	case msgLen > messageMax:
		errs["message"] = MsgMessageMaxLength(messageMax)
	}

	// Phone is optional and unrestricted.

	return errs
}

// validEmail applies the address-shape regexp plus the stricter
// structural rules: total length, no consecutive dots, no leading or
// trailing '.'/'-', and local-part length and dot placement.
func validEmail(email string) bool {
	if len(email) > emailMaxLength {
		return false
	}
	if strings.Contains(email, "..") {
		return false
	}
	if strings.HasPrefix(email, ".") || strings.HasPrefix(email, "-") ||
		strings.HasSuffix(email, ".") || strings.HasSuffix(email, "-") {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	local := email[:at]
	if len(local) > localMaxLength {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}

	return emailShape.MatchString(email)
}
