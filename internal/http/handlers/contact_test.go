package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phungtienthanh/portfolio-api/internal/http/cors"
	"github.com/phungtienthanh/portfolio-api/internal/http/response"
	"github.com/phungtienthanh/portfolio-api/internal/ratelimit"
	"github.com/phungtienthanh/portfolio-api/pkg/config"
)

// ---------- Mocks ----------

type sentEmail struct {
	to      string
	name    string
	subject string
	html    string
}

type mockMailer struct {
	mu     sync.Mutex
	sent   []sentEmail
	err    error
	failOn int // 1-based index of the send that fails; 0 = every send fails when err is set
}

func (m *mockMailer) Send(toEmail, toName, subject, html string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentEmail{to: toEmail, name: toName, subject: subject, html: html})
	if m.err != nil && (m.failOn == 0 || len(m.sent) == m.failOn) {
		return "", m.err
	}
	return "mock-id", nil
}

func (m *mockMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

// ---------- Helpers ----------

const allowedOrigin = "http://localhost:3000"

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test"},
		Mail: config.MailConfig{
			Provider:   config.ProviderDev,
			FromEmail:  "noreply@test.local",
			FromName:   "Portfolio",
			AdminEmail: "admin@test.local",
		},
		CORS:      config.CORSConfig{AllowedOrigins: []string{allowedOrigin}},
		RateLimit: config.RateLimitConfig{ContactForm: 5, Window: time.Minute},
		Contact:   config.ContactConfig{MessageMax: 1000},
	}
}

func newTestHandlers(cfg *config.Config) (*Handlers, *mockMailer) {
	m := &mockMailer{}
	h := New(cfg, m, ratelimit.NewStore(), cors.NewGuard(cfg.CORS.AllowedOrigins))
	return h, m
}

func postContact(h *Handlers, body, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	h.Contact(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

const validBody = `{"name":"Thanh","email":"thanh@example.com","message":"Xin chào!","phone":"0123456789"}`

// ---------- POST /api/contact ----------

func TestContactSuccessSendsTwoEmailsInOrder(t *testing.T) {
	h, m := newTestHandlers(testConfig())

	rec := postContact(h, validBody, allowedOrigin)

	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Email sent successfully", env.Message)

	require.Equal(t, 2, m.sentCount())
	admin, guest := m.sent[0], m.sent[1]
	assert.Equal(t, "admin@test.local", admin.to, "admin notification goes out first")
	assert.Contains(t, admin.subject, "Thanh")
	assert.Contains(t, admin.html, "0123456789")
	assert.Equal(t, "thanh@example.com", guest.to, "guest confirmation goes out second")
	assert.Equal(t, "Thanh", guest.name)
}

func TestContactEscapesMessageInAdminEmail(t *testing.T) {
	h, m := newTestHandlers(testConfig())

	body := `{"name":"Thanh","email":"thanh@example.com","message":"<script>alert('x')</script>"}`
	rec := postContact(h, body, allowedOrigin)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 2, m.sentCount())
	assert.NotContains(t, m.sent[0].html, "<script>")
	assert.Contains(t, m.sent[0].html, "&lt;script&gt;")
}

func TestContactRejectedOrigin(t *testing.T) {
	h, m := newTestHandlers(testConfig())

	rec := postContact(h, validBody, "https://evil.example")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Origin not allowed", env.Error)
	assert.Equal(t, 0, m.sentCount(), "no dispatch on rejected origin")
	assert.Equal(t, "", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestContactMissingOriginAllowed(t *testing.T) {
	h, m := newTestHandlers(testConfig())

	rec := postContact(h, validBody, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, m.sentCount())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestContactRateLimitedBeforeValidation(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.ContactForm = 2
	h, m := newTestHandlers(cfg)

	for i := 0; i < 2; i++ {
		rec := postContact(h, validBody, allowedOrigin)
		require.Equal(t, http.StatusOK, rec.Code, "request %d within the window", i+1)
	}

	// Third request carries a body that would fail validation; the 429
	// must win because the limiter runs first.
	rec := postContact(h, `{"name":"A"}`, allowedOrigin)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Too many requests. Please try again later.", env.Error)
	assert.Equal(t, 4, m.sentCount(), "no extra sends after the limit")
	assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"), "CORS headers present on errors")
}

func TestContactSeparateClientsHaveSeparateBuckets(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.ContactForm = 1
	h, _ := newTestHandlers(cfg)

	first := postContact(h, validBody, allowedOrigin)
	require.Equal(t, http.StatusOK, first.Code)
	second := postContact(h, validBody, allowedOrigin)
	require.Equal(t, http.StatusTooManyRequests, second.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validBody))
	req.Header.Set("Origin", allowedOrigin)
	req.Header.Set("X-Real-IP", "198.51.100.9")
	rec := httptest.NewRecorder()
	h.Contact(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, "a different client IP is not limited")
}

func TestContactMissingConfiguration(t *testing.T) {
	cfg := testConfig()
	cfg.Mail.AdminEmail = ""
	h, m := newTestHandlers(cfg)

	rec := postContact(h, validBody, allowedOrigin)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Server configuration error", env.Error)
	assert.Equal(t, 0, m.sentCount())
}

func TestContactMalformedJSON(t *testing.T) {
	h, m := newTestHandlers(testConfig())

	rec := postContact(h, `{"name": "Thanh",`, allowedOrigin)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Invalid request format. Please send valid JSON.", env.Error)
	assert.Equal(t, 0, m.sentCount())
}

func TestContactValidationFailure(t *testing.T) {
	h, m := newTestHandlers(testConfig())

	rec := postContact(h, `{"name":"A","email":"a..b@c.com","message":"hi"}`, allowedOrigin)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation failed. Please check your input.", env.Error)
	assert.NotEmpty(t, env.Details["name"])
	assert.NotEmpty(t, env.Details["email"])
	assert.Equal(t, 0, m.sentCount())
}

func TestContactTransportErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		sendErr    string
		wantStatus int
		wantError  string
	}{
		{"auth", "535 invalid login", http.StatusServiceUnavailable, "Email service authentication error. Please contact the site owner."},
		{"quota", "sender exceeded daily limit", http.StatusServiceUnavailable, "Email service has reached daily limit. Please try again tomorrow."},
		{"bad recipient", "550 invalid recipient", http.StatusBadRequest, "Invalid recipient email address."},
		{"unavailable", "connect: connection refused", http.StatusTooManyRequests, "Email service is temporarily unavailable. Please try again later."},
		{"unclassified", "smtp went sideways", http.StatusInternalServerError, "Failed to send email. Please try again in a moment."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandlers(testConfig())
			m.err = errors.New(tt.sendErr)

			rec := postContact(h, validBody, allowedOrigin)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantError, env.Error)
			assert.Equal(t, 1, m.sentCount(), "pipeline stops at the failed admin send")
			assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestContactGuestSendFailureIsPartialSuccess(t *testing.T) {
	h, m := newTestHandlers(testConfig())
	m.err = errors.New("mailbox gone")
	m.failOn = 2

	rec := postContact(h, validBody, allowedOrigin)

	assert.Equal(t, http.StatusOK, rec.Code, "admin was notified, the submission succeeded")
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Contains(t, env.Message, "confirmation email could not be delivered")
	assert.Equal(t, 2, m.sentCount())
}

// ---------- OPTIONS /api/contact ----------

func TestContactPreflightAllowed(t *testing.T) {
	h, _ := newTestHandlers(testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", allowedOrigin)
	rec := httptest.NewRecorder()
	h.ContactPreflight(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestContactPreflightRejected(t *testing.T) {
	h, _ := newTestHandlers(testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	h.ContactPreflight(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Body.String())
}

