package store

import (
	"errors"
	"testing"
)

func TestValidateHref(t *testing.T) {
	tests := []struct {
		name    string
		href    string
		wantErr error
	}{
		{name: "https url", href: "https://example.com/", wantErr: nil},
		{name: "http url", href: "http://example.com/path?q=1", wantErr: nil},
		{name: "non-http scheme", href: "ftp://example.com/file", wantErr: nil},

		{name: "empty", href: "", wantErr: ErrHrefRequired},
		{name: "whitespace only", href: "   ", wantErr: ErrHrefRequired},
		{name: "relative path", href: "/just/a/path", wantErr: ErrHrefInvalid},
		{name: "bare hostname", href: "example.com", wantErr: ErrHrefInvalid},
		{name: "garbage", href: "://nope", wantErr: ErrHrefInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHref(tt.href)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateHref(%q) = %v, want nil", tt.href, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateHref(%q) = %v, want %v", tt.href, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTagTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{name: "simple", title: "golang", wantErr: nil},
		{name: "with spaces inside", title: "reading list", wantErr: nil},

		{name: "empty", title: "", wantErr: ErrTitleRequired},
		{name: "whitespace only", title: "  \t", wantErr: ErrTitleRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTagTitle(tt.title)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateTagTitle(%q) = %v, want nil", tt.title, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTagTitle(%q) = %v, want %v", tt.title, err, tt.wantErr)
			}
		})
	}
}
