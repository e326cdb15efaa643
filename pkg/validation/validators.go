package validation

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upperRegex   = regexp.MustCompile(`[A-Z]`)
	lowerRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex   = regexp.MustCompile(`[0-9]`)
	specialRegex = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// ValidateEmail checks the basic shape local@domain.tld.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// PasswordResult reports which of the five password rules failed. The
// rules are checked independently so the caller can show every
// violation at once.
type PasswordResult struct {
	Valid  bool
	Errors []string
}

func ValidatePassword(password string) PasswordResult {
	var errs []string

	if utf8.RuneCountInString(password) < 8 {
		errs = append(errs, "Le mot de passe doit contenir au moins 8 caractères")
	}
	if !upperRegex.MatchString(password) {
		errs = append(errs, "Le mot de passe doit contenir au moins une majuscule")
	}
	if !lowerRegex.MatchString(password) {
		errs = append(errs, "Le mot de passe doit contenir au moins une minuscule")
	}
	if !digitRegex.MatchString(password) {
		errs = append(errs, "Le mot de passe doit contenir au moins un chiffre")
	}
	if !specialRegex.MatchString(password) {
		errs = append(errs, "Le mot de passe doit contenir au moins un caractère spécial")
	}

	return PasswordResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateName accepts trimmed lengths of 2 to 50 characters.
func ValidateName(name string) bool {
	n := len([]rune(strings.TrimSpace(name)))
	return n >= 2 && n <= 50
}

// ValidateURL accepts the empty string (the URL fields are optional)
// and otherwise requires an absolute URL with a scheme and host.
func ValidateURL(raw string) bool {
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func ValidateRequired(value string) bool {
	return strings.TrimSpace(value) != ""
}
