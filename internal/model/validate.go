package model

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Validation mirrors the bounds the forum UI enforced upstream. The store
// itself accepts whatever it is given; these helpers exist for callers that
// accept free-form input.

var ErrInvalid = errors.New("invalid")

// ValidateProfile checks nickname length (1-50 characters).
func ValidateProfile(p Profile) error {
	n := utf8.RuneCountInString(p.Nickname)
	if n < 1 || n > 50 {
		return fmt.Errorf("%w: nickname must be 1-50 characters", ErrInvalid)
	}
	return nil
}

// ValidatePost checks title (1-200), non-empty content, and category.
func ValidatePost(p Post) error {
	n := utf8.RuneCountInString(p.Title)
	if n < 1 || n > 200 {
		return fmt.Errorf("%w: title must be 1-200 characters", ErrInvalid)
	}
	if p.Content == "" {
		return fmt.Errorf("%w: content must not be empty", ErrInvalid)
	}
	if !ValidCategory(p.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalid, p.Category)
	}
	return nil
}

// ValidateComment checks for non-empty content and a post reference.
func ValidateComment(c Comment) error {
	if c.Content == "" {
		return fmt.Errorf("%w: content must not be empty", ErrInvalid)
	}
	if c.PostID == "" {
		return fmt.Errorf("%w: missing post reference", ErrInvalid)
	}
	return nil
}

// ValidateMicroFeed checks content length (1-280 characters).
func ValidateMicroFeed(m MicroFeed) error {
	n := utf8.RuneCountInString(m.Content)
	if n < 1 || n > 280 {
		return fmt.Errorf("%w: content must be 1-280 characters", ErrInvalid)
	}
	return nil
}

// ValidateCartItem checks for a quantity of at least 1.
func ValidateCartItem(i CartItem) error {
	if i.ItemID == "" {
		return fmt.Errorf("%w: missing item reference", ErrInvalid)
	}
	if i.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalid)
	}
	return nil
}
