// Package validation holds the field rules shared by every request path.
// Both the HTTP layer and any form layer are expected to call these instead
// of keeping their own copies.
package validation

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Errors maps a field name to the message explaining why it was rejected.
// It implements error so services can return it directly.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const specialChars = `!@#$%^&*(),.?":{}|<>`

// Name requires 20-60 characters. Lengths count characters, not bytes, so
// non-ASCII names are measured the way a form field measures them. Returns ""
// when valid.
func Name(name string) string {
	if n := utf8.RuneCountInString(name); n < 20 || n > 60 {
		return "Name must be 20-60 characters."
	}
	return ""
}

func Email(email string) string {
	if !emailPattern.MatchString(email) {
		return "Invalid email address."
	}
	return ""
}

func Address(address string) string {
	if address == "" || utf8.RuneCountInString(address) > 400 {
		return "Address must be less than 400 characters."
	}
	return ""
}

// Password requires 8-16 characters with at least one uppercase letter and
// one character from the special set. No other character classes are checked.
func Password(password string) string {
	if n := utf8.RuneCountInString(password); n < 8 || n > 16 {
		return "Password must be 8-16 chars, include 1 uppercase and 1 special character."
	}
	if !strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") ||
		!strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") ||
		!strings.ContainsAny(password, specialChars) {
		return "Password must be 8-16 chars, include 1 uppercase and 1 special character."
	}
	return ""
}

// Role allows only the self-selectable roles. Admin is never selectable.
func Role(role string) string {
	if role != "user" && role != "owner" {
		return "Role must be user or owner."
	}
	return ""
}

func Rating(value int) string {
	if value < 1 || value > 5 {
		return "Rating must be 1-5."
	}
	return ""
}

func StoreName(name string) string {
	if name == "" {
		return "Store name required."
	}
	return ""
}

// Registration checks every signup field and reports all failures at once.
func Registration(name, email, address, password, role string) Errors {
	errs := Errors{}
	if msg := Name(name); msg != "" {
		errs["name"] = msg
	}
	if msg := Email(email); msg != "" {
		errs["email"] = msg
	}
	if msg := Address(address); msg != "" {
		errs["address"] = msg
	}
	if msg := Password(password); msg != "" {
		errs["password"] = msg
	}
	if msg := Role(role); msg != "" {
		errs["role"] = msg
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// NewPassword is the rule applied to a replacement password.
func NewPassword(password string) Errors {
	if msg := Password(password); msg != "" {
		return Errors{"newPassword": msg}
	}
	return nil
}

// Store checks the add-store form fields.
func Store(name, address string, rating int) Errors {
	errs := Errors{}
	if msg := StoreName(name); msg != "" {
		errs["name"] = msg
	}
	if msg := Address(address); msg != "" {
		errs["address"] = msg
	}
	if msg := Rating(rating); msg != "" {
		errs["rating"] = msg
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
