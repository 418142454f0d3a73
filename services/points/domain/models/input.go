package models

import (
	"fmt"
	"math"
	"net/mail"
	"strconv"
	"strings"

	pointsdomain "github.com/ghuser/ecopoints/services/points/domain"
)

// RawPointInput is a registration request as it arrives over the wire:
// every field is a string, whether it came from a form or JSON.
type RawPointInput struct {
	Name      string
	Email     string
	Whatsapp  string
	Latitude  string
	Longitude string
	City      string
	UF        string
	Items     string
	Image     string
}

// PointInput is a parsed and validated registration request.
type PointInput struct {
	Name      string
	Email     string
	Whatsapp  string
	Latitude  float64
	Longitude float64
	City      string
	UF        UF
	ItemIDs   ItemIDs
	Image     string
}

// ValidationError lists every problem found in one request. It matches
// ErrValidationFailed, and ErrMissingImage / ErrInvalidItemList when those
// problems are among the ones found.
type ValidationError struct {
	Problems []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return pointsdomain.ErrValidationFailed.Error() + ": " + strings.Join(msgs, "; ")
}

// Unwrap exposes ErrValidationFailed and each problem to errors.Is.
func (e *ValidationError) Unwrap() []error {
	return append([]error{pointsdomain.ErrValidationFailed}, e.Problems...)
}

// ParsePointInput is the parse-and-validate boundary for registration. It
// touches no store; a non-nil error is always a *ValidationError.
func ParsePointInput(raw RawPointInput) (PointInput, error) {
	var (
		in       PointInput
		problems []error
	)
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	in.Name = strings.TrimSpace(raw.Name)
	if in.Name == "" {
		fail("name is required")
	}

	in.Email = strings.TrimSpace(raw.Email)
	if in.Email == "" {
		fail("email is required")
	} else if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		fail("email %q is not a valid address", in.Email)
	}

	in.Whatsapp = strings.TrimSpace(raw.Whatsapp)
	if in.Whatsapp == "" {
		fail("whatsapp is required")
	} else if !isDigits(in.Whatsapp) {
		fail("whatsapp must contain only digits")
	}

	var err error
	if in.Latitude, err = parseCoordinate(raw.Latitude, 90); err != nil {
		fail("latitude: %w", err)
	}
	if in.Longitude, err = parseCoordinate(raw.Longitude, 180); err != nil {
		fail("longitude: %w", err)
	}

	in.City = strings.TrimSpace(raw.City)
	if in.City == "" {
		fail("city is required")
	}

	if in.UF, err = NewUF(raw.UF); err != nil {
		fail("%w", err)
	}

	if in.ItemIDs, err = ParseItemIDs(raw.Items); err != nil {
		fail("%w: %w", pointsdomain.ErrInvalidItemList, err)
	}

	in.Image = strings.TrimSpace(raw.Image)
	if in.Image == "" {
		fail("%w", pointsdomain.ErrMissingImage)
	}

	if len(problems) > 0 {
		return PointInput{}, &ValidationError{Problems: problems}
	}
	return in, nil
}

func parseCoordinate(s string, limit float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if v < -limit || v > limit {
		return 0, fmt.Errorf("%v is outside [-%v, %v]", v, limit, limit)
	}
	return v, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
