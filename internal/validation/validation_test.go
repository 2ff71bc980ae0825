package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"valid https", "https://example.com", true, ""},
		{"valid http", "http://example.com", true, ""},
		{"valid with path", "https://example.com/path/to/page", true, ""},
		{"valid with query", "https://x.com/user/status/1948307961157206419?s=20", true, ""},
		{"valid with port", "https://example.com:8080", true, ""},
		{"empty string", "", false, "URL is required"},
		{"javascript scheme", "javascript:alert(1)", false, "URL must use http:// or https:// scheme"},
		{"data scheme", "data:text/html,<script>alert(1)</script>", false, "URL must use http:// or https:// scheme"},
		{"file scheme", "file:///etc/passwd", false, "URL must use http:// or https:// scheme"},
		{"ftp scheme", "ftp://example.com", false, "URL must use http:// or https:// scheme"},
		{"no scheme", "example.com", false, "URL must use http:// or https:// scheme"},
		{"relative url", "/path/to/page", false, "URL must use http:// or https:// scheme"},
		{"uppercase scheme", "HTTPS://example.com", true, ""},
		{"scheme only", "https://", false, "URL must have a valid host"},
		{"bad escape", "https://example.com/%zz", false, "Invalid URL format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if !valid && msg != tt.wantMsg {
				t.Errorf("ValidateURL(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}

type testRequest struct {
	Name string   `json:"name" validate:"required,max=5"`
	Link string   `json:"link" validate:"required,weburl"`
	Kind string   `json:"kind" validate:"required,oneof=a b"`
	Tags []string `json:"tags" validate:"max=2,dive,required"`
	Note string   `json:"note" validate:"max=4,maxbytes=4"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		req        testRequest
		wantFields map[string]string
	}{
		{
			name: "valid",
			req:  testRequest{Name: "ok", Link: "https://example.com", Kind: "a", Tags: []string{"x"}},
		},
		{
			name:       "missing name",
			req:        testRequest{Link: "https://example.com", Kind: "a"},
			wantFields: map[string]string{"name": "is required"},
		},
		{
			name:       "name too long",
			req:        testRequest{Name: "toolong", Link: "https://example.com", Kind: "b"},
			wantFields: map[string]string{"name": "must not exceed 5 characters"},
		},
		{
			name:       "bad link",
			req:        testRequest{Name: "ok", Link: "javascript:alert(1)", Kind: "a"},
			wantFields: map[string]string{"link": "must be a valid http or https URL"},
		},
		{
			name:       "bad kind",
			req:        testRequest{Name: "ok", Link: "https://example.com", Kind: "c"},
			wantFields: map[string]string{"kind": "must be one of: a b"},
		},
		{
			name:       "empty tag element",
			req:        testRequest{Name: "ok", Link: "https://example.com", Kind: "a", Tags: []string{"x", ""}},
			wantFields: map[string]string{"tags[1]": "is required"},
		},
		{
			name: "multibyte note within byte limit",
			req:  testRequest{Name: "ok", Link: "https://example.com", Kind: "a", Note: "éé"},
		},
		{
			name:       "multibyte note over byte limit",
			req:        testRequest{Name: "ok", Link: "https://example.com", Kind: "a", Note: "ééé"},
			wantFields: map[string]string{"note": "must not exceed 4 bytes"},
		},
		{
			name:       "too many tags",
			req:        testRequest{Name: "ok", Link: "https://example.com", Kind: "a", Tags: []string{"x", "y", "z"}},
			wantFields: map[string]string{"tags": "must not contain more than 2 items"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *Error", err)
			}
			for field, msg := range tt.wantFields {
				if got := verr.Fields[field]; got != msg {
					t.Errorf("Fields[%q] = %q, want %q (all: %v)", field, got, msg, verr.Fields)
				}
			}
			if !strings.HasPrefix(verr.Error(), "validation failed") {
				t.Errorf("Error() = %q", verr.Error())
			}
		})
	}
}
