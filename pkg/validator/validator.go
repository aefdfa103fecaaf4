package validator

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	if _, exists := v[field]; !exists {
		v[field] = message
	}
}

// Step is one check in a validation pipeline. Steps record failures in errs.
type Step func(errs ValidationErrors)

// Run executes steps in order and returns every failure found.
func Run(steps ...Step) ValidationErrors {
	errs := make(ValidationErrors)
	for _, step := range steps {
		step(errs)
	}
	return errs
}

var nameRegex = regexp.MustCompile(`^\p{L}+$`)

func Name(field, value string) Step {
	return func(errs ValidationErrors) {
		value = strings.TrimSpace(value)
		if value == "" {
			errs.Add(field, "Name is required")
		} else if len(value) > 100 {
			errs.Add(field, "Name is too long")
		} else if !nameRegex.MatchString(value) {
			errs.Add(field, "Name can only contain letters")
		}
	}
}

func Email(field, value string) Step {
	return func(errs ValidationErrors) {
		value = strings.TrimSpace(value)
		if value == "" {
			errs.Add(field, "Email is required")
			return
		}
		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Address != value {
			errs.Add(field, "Invalid email address")
			return
		}
		_, domain, _ := strings.Cut(value, "@")
		if !strings.Contains(domain, ".") || strings.HasSuffix(domain, ".") {
			errs.Add(field, "Invalid email address")
		}
	}
}

func Username(field, value string) Step {
	return func(errs ValidationErrors) {
		value = strings.TrimSpace(value)
		if value == "" {
			errs.Add(field, "Username is required")
		} else if len(value) > 50 {
			errs.Add(field, "Username is too long")
		}
	}
}

func Required(field, value, message string) Step {
	return func(errs ValidationErrors) {
		if strings.TrimSpace(value) == "" {
			errs.Add(field, message)
		}
	}
}

func Password(field, value string) Step {
	return func(errs ValidationErrors) {
		validatePassword(field, value, errs)
	}
}

func Matches(field, value, other, message string) Step {
	return func(errs ValidationErrors) {
		if value != other {
			errs.Add(field, message)
		}
	}
}

func ValidateSignup(firstName, lastName, username, email, password, confirmPassword string) ValidationErrors {
	return Run(
		Name("first_name", firstName),
		Name("last_name", lastName),
		Username("username", username),
		Email("email", email),
		Password("password", password),
		Matches("confirm_password", confirmPassword, password, "Passwords do not match"),
	)
}

func ValidateLogin(username, password string) ValidationErrors {
	return Run(
		Required("username", username, "Username is required"),
		Required("password", password, "Password is required"),
	)
}

func validatePassword(field, password string, errs ValidationErrors) {
	if len(password) < 8 {
		errs.Add(field, "Password must be at least 8 characters")
		return
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsDigit(ch):
			hasDigit = true
		case unicode.IsPunct(ch) || unicode.IsSymbol(ch):
			hasSpecial = true
		}
	}

	missing := []string{}
	if !hasUpper {
		missing = append(missing, "one uppercase letter")
	}
	if !hasLower {
		missing = append(missing, "one lowercase letter")
	}
	if !hasDigit {
		missing = append(missing, "one number")
	}
	if !hasSpecial {
		missing = append(missing, "one special character")
	}

	if len(missing) > 0 {
		errs.Add(field, fmt.Sprintf("Password must contain at least %s", strings.Join(missing, ", ")))
	}
}
