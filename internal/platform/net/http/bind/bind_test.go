package bind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "daydash/internal/platform/errors"
	"daydash/internal/platform/net/http/bind"
)

type slotPayload struct {
	Day   string `json:"day" validate:"required,weekday"`
	Start string `json:"start" validate:"required,clock"`
}

func parseSlot(t *testing.T, body string) (slotPayload, error) {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return bind.ParseJSON[slotPayload](r)
}

func TestParseJSONClockTag(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		valid bool
	}{
		{"happy path", `{"day":"Monday","start":"10:15"}`, true},
		{"no colon", `{"day":"Monday","start":"1015"}`, false},
		{"non numeric", `{"day":"Monday","start":"ab:cd"}`, false},
		// shape only: out-of-range values pass and normalize downstream
		{"out of range passes", `{"day":"Monday","start":"99:99"}`, true},
		{"padded halves pass", `{"day":"Monday","start":" 9: 5"}`, true},
		{"negative hour", `{"day":"Monday","start":"-1:30"}`, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parseSlot(t, c.body)
			if c.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !c.valid && !perr.IsCode(err, perr.ErrorCodeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestParseJSONWeekdayTag(t *testing.T) {
	cases := []struct {
		name  string
		day   string
		valid bool
	}{
		{"capitalized", "Wednesday", true},
		{"lowercase", "saturday", true},
		{"shouting", "SUNDAY", true},
		{"abbreviation", "Wed", false},
		{"not a day", "Caturday", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parseSlot(t, `{"day":"`+c.day+`","start":"08:00"}`)
			if c.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !c.valid && !perr.IsCode(err, perr.ErrorCodeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestParseJSONRejectsUnknownFields(t *testing.T) {
	_, err := parseSlot(t, `{"day":"Monday","start":"10:15","bogus":1}`)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected json error for unknown field, got %v", err)
	}
}

func TestParseJSONEmptyBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	if _, err := bind.ParseJSON[slotPayload](r); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected json error for empty body, got %v", err)
	}
}
