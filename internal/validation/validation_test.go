package validation

import (
	"strings"
	"testing"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "a@x.com", false},
		{"valid with dots", "first.last@example.co", false},
		{"empty", "", true},
		{"missing at", "ax.com", true},
		{"missing domain", "a@", true},
		{"display name form", "A B <a@x.com>", true},
		{"too long", strings.Repeat("a", 250) + "@x.com", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Email("email", tc.value)
			if (err != nil) != tc.wantErr {
				t.Errorf("Email(%q) error = %v, wantErr %v", tc.value, err, tc.wantErr)
			}
		})
	}
}

func TestRequiredText(t *testing.T) {
	if err := RequiredText("full_name", "", MaxNameLen); err == nil {
		t.Error("expected error for empty required field")
	}
	if err := RequiredText("full_name", "  ", MaxNameLen); err == nil {
		t.Error("expected error for whitespace-only required field")
	}
	if err := RequiredText("full_name", strings.Repeat("x", MaxNameLen+1), MaxNameLen); err == nil {
		t.Error("expected error for oversized field")
	}
	if err := RequiredText("full_name", "A B", MaxNameLen); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestOptionalText(t *testing.T) {
	if err := OptionalText("message", "", MaxRequestMsgLen); err != nil {
		t.Errorf("empty optional field should pass, got %v", err)
	}
	if err := OptionalText("message", strings.Repeat("x", MaxRequestMsgLen+1), MaxRequestMsgLen); err == nil {
		t.Error("expected error for oversized optional field")
	}
}

func TestPassword(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "Sunrise99", false},
		{"too short", "Ab1", true},
		{"no uppercase", "sunrise99", true},
		{"no lowercase", "SUNRISE99", true},
		{"no digit", "SunriseNow", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Password(tc.value)
			if (err != nil) != tc.wantErr {
				t.Errorf("Password(%q) error = %v, wantErr %v", tc.value, err, tc.wantErr)
			}
		})
	}
}

func TestSanitizeText(t *testing.T) {
	got := SanitizeText("<script>alert(1)</script>hello ")
	if got != "hello" {
		t.Errorf("expected script stripped, got %q", got)
	}

	got = SanitizeText("plain text stays")
	if got != "plain text stays" {
		t.Errorf("plain text mangled: %q", got)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := Email("email", "")
	vErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if vErr.Field != "email" || vErr.Message == "" {
		t.Errorf("unexpected error contents: %+v", vErr)
	}
}
