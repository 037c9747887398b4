// Package contact implements the contact-form domain: the submission
// type, field validation, HTML escaping and the two outbound email
// templates (admin notification and guest confirmation).
package contact

// SubmitRequest is the expected JSON body for POST /api/contact.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Phone   string `json:"phone,omitempty"`
}

// Email is a rendered outbound message, built fresh per send and not
// retained after dispatch.
type Email struct {
	Subject string
	HTML    string
}
