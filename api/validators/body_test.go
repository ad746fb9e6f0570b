package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/storelinkhq/storelink-backend/pkg/errors"
)

type decodeTarget struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

func newBodyRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestDecodeJSONBody(t *testing.T) {
	t.Run("ignores unknown keys", func(t *testing.T) {
		var dest decodeTarget
		err := DecodeJSONBody(newBodyRequest(`{"name":"Linkway","storeId":"abc-123"}`), &dest)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dest.Name != "Linkway" {
			t.Fatalf("known field not decoded: %+v", dest)
		}
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		var dest decodeTarget
		err := DecodeJSONBody(newBodyRequest(`{"name":`), &dest)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("runs struct validation", func(t *testing.T) {
		var dest decodeTarget
		err := DecodeJSONBody(newBodyRequest(`{"name":"Linkway","email":"not-an-email"}`), &dest)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}
