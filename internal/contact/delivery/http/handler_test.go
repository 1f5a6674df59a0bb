package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aarikaaura/storefront/internal/contact"
	"github.com/aarikaaura/storefront/internal/contact/mailer"
)

type recordingMailer struct {
	sent []mailer.Mail
	err  error
}

func (m *recordingMailer) Send(_ context.Context, mail mailer.Mail) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, mail)
	return nil
}

func newRouter(m mailer.Mailer, businessTo string) *mux.Router {
	relay := contact.NewRelay(m, nil, businessTo)
	router := mux.NewRouter()
	NewContactHandler(relay).RegisterRoutes(router)
	return router
}

func postContact(router *mux.Router, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitSuccess(t *testing.T) {
	rm := &recordingMailer{}
	router := newRouter(rm, "orders@aarikaaura.com")

	rec := postContact(router, `{
		"name": "Priya Sharma",
		"email": "priya@example.com",
		"subject": "Sizing question",
		"message": "Does the palazzo set run true to size?"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, rm.sent, 2)
}

func TestSubmitValidationFailure(t *testing.T) {
	rm := &recordingMailer{}
	router := newRouter(rm, "orders@aarikaaura.com")

	rec := postContact(router, `{
		"name": "Priya Sharma",
		"email": "not-an-email",
		"subject": "Hello",
		"message": "hi"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "email")
	assert.Empty(t, rm.sent)
}

func TestSubmitMalformedBody(t *testing.T) {
	router := newRouter(&recordingMailer{}, "orders@aarikaaura.com")

	rec := postContact(router, `{broken`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitNotConfigured(t *testing.T) {
	router := newRouter(&recordingMailer{}, "")

	rec := postContact(router, `{
		"name": "Priya Sharma",
		"email": "priya@example.com",
		"subject": "Hello",
		"message": "hi"
	}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Email service not configured. Please try again later.", resp.Error)
}
