package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// These cover the binding layer only: every case here must be rejected
// before any query runs.

func postJSON(handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST(path, handler)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePatientRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "{{{"},
		{"missing hn", `{"first_name":"สมชาย","last_name":"ใจดี"}`},
		{"missing name", `{"hn":"HN001234"}`},
	}

	for _, tc := range cases {
		w := postJSON(CreatePatient, "/patients", tc.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.name)
	}
}

func TestCreateAppointmentRejectsBadType(t *testing.T) {
	body := `{"patient_id":1,"appointment_date":"2025-06-15T09:00:00Z","appointment_type":"surgery"}`
	w := postJSON(CreateAppointment, "/appointments", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDocumentLinkRejectsBadURL(t *testing.T) {
	body := `{"title":"Standing orders","url":"not-a-url","category":"standing_order"}`
	w := postJSON(CreateDocumentLink, "/document-links", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateLabResultRequiresResults(t *testing.T) {
	body := `{"patient_id":1,"test_type":"CBC","test_date":"2025-06-15"}`
	w := postJSON(CreateLabResult, "/lab-results", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	body := `{"email":"x@ward.local","password":"secret123","first_name":"X","last_name":"Y","role":"superadmin"}`
	w := postJSON(CreateUser, "/users", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
