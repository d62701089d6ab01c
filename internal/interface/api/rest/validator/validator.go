package validator

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"resume-evaluator-api/internal/interface/api/rest/dto/user"
)

const maxNameLen = 64

var ErrInvalidID = errors.New("invalid id")

// ParseID accepts positive integer path ids.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ParseLimit returns 0 for an empty value so the service default applies.
func ParseLimit(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	l, err := strconv.Atoi(s)
	if err != nil || l < 0 {
		return 0, errors.New("invalid limit")
	}
	return l, nil
}

// ValidateProfile checks a create request; requireEmail is false for partial updates.
func ValidateProfile(r user.Request, requireEmail bool) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))
	switch {
	case email == "" && requireEmail:
		errs["email"] = "email is required"
	case email != "":
		if _, err := mail.ParseAddress(email); err != nil {
			errs["email"] = "invalid email format"
		}
	}

	names := map[string]string{
		"first_name":  r.FirstName,
		"middle_name": r.MiddleName,
		"last_name":   r.LastName,
	}
	for field, v := range names {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if utf8.RuneCountInString(v) > maxNameLen {
			errs[field] = "must be at most 64 characters"
		} else if !isHumanName(v) {
			errs[field] = nameCharsMessage
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

const nameCharsMessage = "allowed characters: letters, space, '-', ''', '.'"

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' || r == '.' {
			continue
		}
		return false
	}
	return true
}
