package store

import (
	"errors"
	"net/url"
	"strings"
)

var (
	// ErrHrefRequired is returned when a bookmark draft has no href.
	ErrHrefRequired = errors.New("href is required")

	// ErrHrefInvalid is returned when a bookmark href is not an absolute URL.
	ErrHrefInvalid = errors.New("href must be an absolute URL")

	// ErrTitleRequired is returned when a tag draft has no title.
	ErrTitleRequired = errors.New("title is required")
)

// ValidateHref checks that href is present and parses as an absolute URL.
// It does NOT check reachability; a dead link is still a valid bookmark.
func ValidateHref(href string) error {
	if strings.TrimSpace(href) == "" {
		return ErrHrefRequired
	}
	u, err := url.Parse(href)
	if err != nil || !u.IsAbs() {
		return ErrHrefInvalid
	}
	return nil
}

// ValidateTagTitle checks that a tag title is non-empty after trimming.
func ValidateTagTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	return nil
}
