package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "radar/pkg/errors"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "not found",
			err:          apperrors.NotFound("Session"),
			expectedCode: http.StatusNotFound,
			expectedBody: apperrors.CodeNotFound,
		},
		{
			name:         "unavailable",
			err:          apperrors.Unavailable("Lead data"),
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: "Lead data is temporarily unavailable",
		},
		{
			name:         "plain error is hidden",
			err:          errors.New("secret connection string"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			if rec.Code != tt.expectedCode {
				t.Errorf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.expectedBody) {
				t.Errorf("expected body to contain %q, got %s", tt.expectedBody, rec.Body.String())
			}
			if strings.Contains(rec.Body.String(), "secret") {
				t.Error("internal error text must not leak")
			}
		})
	}
}

func TestWriteCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteCreated(rec, map[string]string{"session_id": "abc"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var body struct {
		Data map[string]string `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Data["session_id"] != "abc" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		City string `json:"city"`
	}

	tests := []struct {
		name        string
		body        string
		wantDecoded bool
		wantErr     bool
	}{
		{name: "empty body", body: "", wantDecoded: false},
		{name: "valid object", body: `{"city":"Almenara"}`, wantDecoded: true},
		{name: "malformed", body: `{"city":`, wantErr: true},
		{name: "unknown field", body: `{"town":"x"}`, wantErr: true},
		{name: "two objects", body: `{"city":"a"}{"city":"b"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var p payload
			decoded, err := DecodeJSON(req, &p)

			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if decoded != tt.wantDecoded {
				t.Errorf("DecodeJSON() decoded = %v, want %v", decoded, tt.wantDecoded)
			}
			if err != nil && !apperrors.IsAppError(err) {
				t.Errorf("expected AppError, got %T", err)
			}
		})
	}
}

func TestQueryParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?city=%20Almenara%20", nil)
	if got := QueryParam(req, "city"); got != "Almenara" {
		t.Errorf("QueryParam() = %q", got)
	}
}
