package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/phungtienthanh/portfolio-api/internal/contact"
	"github.com/phungtienthanh/portfolio-api/internal/http/response"
	"github.com/phungtienthanh/portfolio-api/internal/platform/mailer"
	"github.com/phungtienthanh/portfolio-api/internal/ratelimit"
	"github.com/phungtienthanh/portfolio-api/pkg/logger"
)

// ContactPreflight handles OPTIONS /api/contact. A rejected origin gets
// a bare 403; an allowed one gets the CORS headers and an empty body.
func (h *Handlers) ContactPreflight(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")

	if !h.guard.IsAllowed(origin) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	h.guard.Apply(w, origin)
	response.WriteJSON(w, http.StatusOK, struct{}{})
}

// Contact handles POST /api/contact: origin check, per-IP rate limit,
// configuration check, body parsing, validation, then the two email
// sends (admin notification first, guest confirmation second). Every
// outcome carries the CORS headers derived from the request origin.
func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	clientIP := ratelimit.ClientKey(r)
	h.guard.Apply(w, origin)

	log := logger.WithContext(r.Context()).With("client_ip", clientIP)

	if !h.guard.IsAllowed(origin) {
		response.Error(w, http.StatusForbidden, contact.MsgOriginRejected)
		return
	}

	if h.limiter.Limited(clientIP, h.cfg.RateLimit.ContactForm, h.cfg.RateLimit.Window) {
		log.Warn("rate limit exceeded")
		response.Error(w, http.StatusTooManyRequests, contact.MsgRateLimited)
		return
	}

	if !h.cfg.Mail.Ready() {
		log.Error("contact form misconfigured", "provider", h.cfg.Mail.Provider)
		response.Error(w, http.StatusInternalServerError, contact.MsgConfigError)
		return
	}

	var req contact.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, contact.MsgInvalidJSON)
		return
	}

	if fieldErrs := contact.Validate(&req, h.cfg.Contact.MessageMax); len(fieldErrs) > 0 {
		response.ErrorWithDetails(w, http.StatusBadRequest, contact.MsgValidationFailed, fieldErrs)
		return
	}

	escaped := contact.EscapeHTML(req.Message)

	notification := contact.AdminNotification(req.Name, req.Email, escaped, req.Phone)
	if notification.Subject == "" || notification.HTML == "" {
		log.Error("failed to generate admin email template")
		response.Error(w, http.StatusInternalServerError, contact.MsgSendFailed)
		return
	}

	if _, err := h.mailer.Send(h.cfg.Mail.AdminEmail, "", notification.Subject, notification.HTML); err != nil {
		log.Error("admin notification failed", "error", err)
		h.writeSendError(w, err)
		return
	}

	// The admin already has the message past this point, so a failed
	// confirmation still counts as a delivered submission.
	confirmation := contact.GuestConfirmation(req.Name)
	if confirmation.Subject == "" || confirmation.HTML == "" {
		log.Error("failed to generate guest email template")
		response.Success(w, contact.MsgSubmitPartial)
		return
	}

	if _, err := h.mailer.Send(req.Email, req.Name, confirmation.Subject, confirmation.HTML); err != nil {
		log.Error("guest confirmation failed", "error", err, "to", req.Email)
		response.Success(w, contact.MsgSubmitPartial)
		return
	}

	log.Info("contact email sent", "from", req.Email)
	response.Success(w, contact.MsgSubmitSuccess)
}

// writeSendError maps a classified transport failure to the HTTP
// response. Raw transport text never reaches the client; it is logged
// by the caller.
func (h *Handlers) writeSendError(w http.ResponseWriter, err error) {
	switch mailer.Classify(err) {
	case mailer.KindAuth:
		response.Error(w, http.StatusServiceUnavailable, contact.MsgTransportAuth)
	case mailer.KindQuota:
		response.Error(w, http.StatusServiceUnavailable, contact.MsgTransportQuota)
	case mailer.KindInvalidRecipient:
		response.Error(w, http.StatusBadRequest, contact.MsgBadRecipient)
	case mailer.KindUnavailable:
		response.Error(w, http.StatusTooManyRequests, contact.MsgTransportBusy)
	default:
		response.Error(w, http.StatusInternalServerError, contact.MsgSendFailed)
	}
}
