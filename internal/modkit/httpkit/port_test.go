package httpkit_test

import (
	stderrs "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"daydash/internal/modkit/httpkit"
	perr "daydash/internal/platform/errors"
)

func TestPortParse(t *testing.T) {
	ok := httpkit.NewPortFunc(func(token string) (string, error) {
		if token == "good" {
			return "user-1", nil
		}
		return "", stderrs.New("bad token")
	})

	cases := []struct {
		name    string
		header  string
		wantUID string
		wantErr bool
	}{
		{"missing header", "", "", true},
		{"wrong scheme", "Token good", "", true},
		{"bare scheme", "Bearer", "", true},
		{"happy path", "Bearer good", "user-1", false},
		{"lowercase scheme", "bearer good", "user-1", false},
		{"extra whitespace", "  Bearer   good  ", "user-1", false},
		{"parser rejects", "Bearer evil", "", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if c.header != "" {
				r.Header.Set("Authorization", c.header)
			}
			uid, err := ok.Parse(r)
			if c.wantErr {
				if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
					t.Fatalf("expected unauthorized, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if uid != c.wantUID {
				t.Fatalf("Parse uid = %q, want %q", uid, c.wantUID)
			}
		})
	}
}

func TestPortNilParserRejects(t *testing.T) {
	p := httpkit.NewPortFunc(nil)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer anything")
	if _, err := p.Parse(r); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("expected unauthorized with nil parser, got %v", err)
	}
}
