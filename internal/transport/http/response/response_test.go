package response

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sparcom/backend/internal/domain"
	appctx "github.com/sparcom/backend/internal/pkg/context"
)

func mustDecode(t *testing.T, b []byte, dst any) {
	t.Helper()
	if err := json.NewDecoder(bytes.NewReader(b)).Decode(dst); err != nil {
		t.Fatalf("decode json: %v, body=%q", err, string(b))
	}
}

func newReqWithBody(t *testing.T, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type decodeDst struct {
	A string `json:"a"`
	B int    `json:"b"`
}

func TestDecodeJSON_OK(t *testing.T) {
	req := newReqWithBody(t, `{"a":"x","b":1}`)

	var dst decodeDst
	if err := DecodeJSON(req, &dst); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if dst.A != "x" || dst.B != 1 {
		t.Fatalf("unexpected dst: %+v", dst)
	}
}

func TestDecodeJSON_InvalidJSON(t *testing.T) {
	req := newReqWithBody(t, `{"a":"x",`)

	var dst decodeDst
	if err := DecodeJSON(req, &dst); !domain.Is(err, "invalid_json") {
		t.Fatalf("expected invalid_json, got %v", err)
	}
}

func TestDecodeJSON_MultipleJSONValues(t *testing.T) {
	req := newReqWithBody(t, `{}{}`)

	var dst map[string]any
	if err := DecodeJSON(req, &dst); !domain.Is(err, "invalid_json") {
		t.Fatalf("expected invalid_json, got %v", err)
	}
}

func TestWriteError_DomainError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req = req.WithContext(appctx.WithRequestID(req.Context(), "req-123"))

	rr := httptest.NewRecorder()
	WriteError(rr, req, domain.ErrMissingField("email"))

	res := rr.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}

	var body ErrorBody
	mustDecode(t, rr.Body.Bytes(), &body)

	if body.Error.Code != "missing_field" {
		t.Fatalf("expected missing_field, got %q", body.Error.Code)
	}
	if body.Error.Meta["field"] != "email" {
		t.Fatalf("expected meta.field=email, got %+v", body.Error.Meta)
	}
	if body.Error.RequestID != "req-123" {
		t.Fatalf("expected request id, got %q", body.Error.RequestID)
	}
}

type plainErr string

func (e plainErr) Error() string { return string(e) }

func TestWriteError_NonDomainErrorHidesDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rr := httptest.NewRecorder()

	WriteError(rr, req, plainErr("connection refused to 10.0.0.3"))

	if rr.Result().StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Result().StatusCode)
	}
	if strings.Contains(rr.Body.String(), "10.0.0.3") {
		t.Fatalf("internal detail leaked: %q", rr.Body.String())
	}
}

func TestStatusFromKind_Mapping(t *testing.T) {
	cases := []struct {
		kind domain.ErrKind
		want int
	}{
		{domain.KindValidation, http.StatusBadRequest},
		{domain.KindAuth, http.StatusUnauthorized},
		{domain.KindForbidden, http.StatusForbidden},
		{domain.KindNotFound, http.StatusNotFound},
		{domain.KindConflict, http.StatusConflict},
		{domain.KindRateLimited, http.StatusTooManyRequests},
		{domain.KindInfrastructure, http.StatusServiceUnavailable},
		{domain.KindInternal, http.StatusInternalServerError},
		{"unknown", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := statusFromKind(tc.kind); got != tc.want {
			t.Fatalf("kind=%q expected %d got %d", tc.kind, tc.want, got)
		}
	}
}

func TestOK_WrapsEnvelope(t *testing.T) {
	rr := httptest.NewRecorder()
	OK(rr, map[string]any{"x": 1})

	if rr.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Result().StatusCode)
	}

	var env Envelope
	mustDecode(t, rr.Body.Bytes(), &env)
	m, ok := env.Data.(map[string]any)
	if !ok || m["x"] != float64(1) {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestCreated_Writes201(t *testing.T) {
	rr := httptest.NewRecorder()
	Created(rr, map[string]any{"y": "z"})

	if rr.Result().StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Result().StatusCode)
	}
}
