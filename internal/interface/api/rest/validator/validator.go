package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	domain "shelter-admin-api/internal/domain/person"
	"shelter-admin-api/internal/interface/api/rest/dto/auth"
	"shelter-admin-api/internal/interface/api/rest/dto/medication"
	"shelter-admin-api/internal/interface/api/rest/dto/person"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
)

var (
	e164Re = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)
)

func ValidatePage(page string) (int, error) {
	p := 1
	if page != "" {
		p, err := strconv.Atoi(page)
		if err != nil || p < 1 {
			return p, errors.New("invalid page")
		}
		return p, nil
	}

	return p, nil
}

func ParseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}

func ValidateRoleFilter(s string) (*domain.Role, error) {
	if s == "" {
		return nil, nil
	}
	role := domain.Role(strings.ToUpper(strings.TrimSpace(s)))
	if !role.Valid() {
		return nil, errors.New("role must be ADMIN or USER")
	}
	return &role, nil
}

func ValidateCreatePerson(r person.Request) map[string]string {
	errs := make(map[string]string)

	// Normalize
	email := strings.ToLower(strings.TrimSpace(r.Email))
	name := strings.TrimSpace(r.Name)
	phone := strings.TrimSpace(r.Phone)

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	// name (required + length + allowed chars)
	if name == "" {
		errs["name"] = "name is required"
	} else if l := utf8.RuneCountInString(name); l < 2 || l > 64 {
		errs["name"] = "name length must be 2-64 characters"
	} else if !isHumanName(name) {
		errs["name"] = "allowed characters: letters, space, '-', '''"
	}

	// password (required + length)
	if r.Password == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(r.Password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}

	// role (required + enum)
	if r.Role == "" {
		errs["role"] = "role is required"
	} else if !domain.Role(r.Role).Valid() {
		errs["role"] = "role must be ADMIN or USER"
	}

	// identity document (optional pair)
	if r.DocumentValue != "" && !domain.DocumentKind(r.DocumentKind).Valid() {
		errs["document_kind"] = "document_kind must be DNI, PASSPORT or FOREIGNER_ID"
	}

	// phone (optional)
	if phone != "" && !e164Re.MatchString(phone) {
		errs["phone"] = "must be a plain international number (e.g., +33788888888)"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateUpdatePerson(r person.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		if email == "" {
			errs["email"] = "email cannot be empty"
		} else if _, err := mail.ParseAddress(email); err != nil {
			errs["email"] = "invalid email format"
		}
	}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			errs["name"] = "name cannot be empty"
		} else if l := utf8.RuneCountInString(name); l < 2 || l > 64 {
			errs["name"] = "name length must be 2-64 characters"
		} else if !isHumanName(name) {
			errs["name"] = "allowed characters: letters, space, '-', '''"
		}
	}
	if r.Password != nil {
		if l := utf8.RuneCountInString(*r.Password); l < minPasswordLen || l > maxPasswordLen {
			errs["password"] = "password length must be 8-72 characters"
		}
	}
	if r.Role != nil && !domain.Role(*r.Role).Valid() {
		errs["role"] = "role must be ADMIN or USER"
	}
	if r.DocumentKind != nil && !domain.DocumentKind(*r.DocumentKind).Valid() {
		errs["document_kind"] = "document_kind must be DNI, PASSPORT or FOREIGNER_ID"
	}
	if r.Phone != nil {
		if phone := strings.TrimSpace(*r.Phone); phone != "" && !e164Re.MatchString(phone) {
			errs["phone"] = "must be a plain international number (e.g., +33788888888)"
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(r.Password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateMedication(r medication.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "name is required"
	} else if utf8.RuneCountInString(r.Name) > 128 {
		errs["name"] = "name length must be at most 128 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
