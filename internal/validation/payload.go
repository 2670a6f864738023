package validation

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"userdir-backend/internal/models"
)

// Patterns mirror the ones the frontend validates against: a basic
// local@domain.tld email shape and ISO YYYY-MM-DD dates. The date pattern is
// shape-only; calendar validity is checked during normalization.
var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Payload is the client-supplied subset of a User (everything but the id),
// after shape validation but before normalization. It cannot be constructed
// from outside this package: the only way to obtain one is ValidatePayload,
// so downstream code never re-inspects raw input.
type Payload struct {
	FirstName     string
	LastName      string
	Email         string
	DOB           string
	ImageURL      string
	AcceptedTerms bool
	Bio           *string
}

// FieldErrors maps a payload field to what is wrong with it. A nil map means
// the payload is valid.
type FieldErrors map[string]string

// Fields returns the offending field names in a stable order.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Message renders a single client-facing error line.
func (fe FieldErrors) Message() string {
	return "Missing or invalid fields in user payload: " + strings.Join(fe.Fields(), ", ")
}

// ValidatePayload decides whether body structurally matches the user payload
// contract. It returns the typed payload on success, or the per-field
// problems on failure, never both. No side effects.
func ValidatePayload(body []byte) (*Payload, FieldErrors) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, FieldErrors{"body": "must be a JSON object"}
	}

	errs := FieldErrors{}
	p := &Payload{}

	p.FirstName = requireString(raw, "firstName", errs)
	if _, bad := errs["firstName"]; !bad && p.FirstName == "" {
		errs["firstName"] = "must not be empty"
	}
	p.LastName = requireString(raw, "lastName", errs)
	if _, bad := errs["lastName"]; !bad && p.LastName == "" {
		errs["lastName"] = "must not be empty"
	}

	p.Email = requireString(raw, "email", errs)
	if _, bad := errs["email"]; !bad && !emailPattern.MatchString(p.Email) {
		errs["email"] = "must be a valid email address"
	}

	p.DOB = requireString(raw, "dob", errs)
	if _, bad := errs["dob"]; !bad && !isoDatePattern.MatchString(p.DOB) {
		errs["dob"] = "must be a YYYY-MM-DD date"
	}

	p.ImageURL = requireString(raw, "imageUrl", errs)

	// Decoding into pointers below distinguishes JSON null from a real
	// value: null leaves the pointer nil instead of silently keeping the
	// zero value, and null is wrong-typed for every field.
	if msg, ok := raw["acceptedTerms"]; !ok {
		errs["acceptedTerms"] = "is required"
	} else {
		var b *bool
		if err := json.Unmarshal(msg, &b); err != nil || b == nil {
			errs["acceptedTerms"] = "must be a boolean"
		} else {
			p.AcceptedTerms = *b
		}
	}

	// bio is optional; absent is fine, but when present (including null) it
	// must be a string.
	if msg, ok := raw["bio"]; ok {
		var bio *string
		if err := json.Unmarshal(msg, &bio); err != nil || bio == nil {
			errs["bio"] = "must be a string"
		} else {
			p.Bio = bio
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return p, nil
}

func requireString(raw map[string]json.RawMessage, key string, errs FieldErrors) string {
	msg, ok := raw[key]
	if !ok {
		errs[key] = "is required"
		return ""
	}
	var s *string
	if err := json.Unmarshal(msg, &s); err != nil || s == nil {
		errs[key] = "must be a string"
		return ""
	}
	return *s
}

// Normalized is a payload ready for storage: email lowercased, dob parsed
// into a date value.
type Normalized struct {
	FirstName     string
	LastName      string
	Email         string
	DOB           models.Date
	ImageURL      string
	AcceptedTerms bool
	Bio           *string
}

// Normalize lowercases the email and parses the dob. It is only reachable
// through a validated Payload and must not be applied to anything else.
// A pattern-valid but calendar-invalid dob (e.g. month 13) fails here.
func (p *Payload) Normalize() (Normalized, error) {
	dob, err := models.ParseDate(p.DOB)
	if err != nil {
		return Normalized{}, err
	}
	return Normalized{
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Email:         strings.ToLower(p.Email),
		DOB:           dob,
		ImageURL:      p.ImageURL,
		AcceptedTerms: p.AcceptedTerms,
		Bio:           p.Bio,
	}, nil
}

// User builds the full record from a normalized payload and an id. Zero id
// means "not assigned yet" and is filled in by the storage backend.
func (n Normalized) User(id int) models.User {
	return models.User{
		ID:            id,
		FirstName:     n.FirstName,
		LastName:      n.LastName,
		Email:         n.Email,
		DOB:           n.DOB,
		ImageURL:      n.ImageURL,
		AcceptedTerms: n.AcceptedTerms,
		Bio:           n.Bio,
	}
}
