package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBody(t *testing.T, mutate func(m map[string]interface{})) []byte {
	t.Helper()
	m := map[string]interface{}{
		"firstName":     "Jane",
		"lastName":      "Doe",
		"email":         "JANE@X.COM",
		"dob":           "1990-01-01",
		"imageUrl":      "http://x/y.jpg",
		"acceptedTerms": true,
		"bio":           "hello",
	}
	if mutate != nil {
		mutate(m)
	}
	body, err := json.Marshal(m)
	require.NoError(t, err)
	return body
}

func TestValidatePayload_Valid(t *testing.T) {
	p, errs := ValidatePayload(validBody(t, nil))
	require.Nil(t, errs)
	require.NotNil(t, p)
	assert.Equal(t, "Jane", p.FirstName)
	assert.Equal(t, "JANE@X.COM", p.Email) // not normalized yet
	require.NotNil(t, p.Bio)
	assert.Equal(t, "hello", *p.Bio)
}

func TestValidatePayload_OptionalBio(t *testing.T) {
	p, errs := ValidatePayload(validBody(t, func(m map[string]interface{}) {
		delete(m, "bio")
	}))
	require.Nil(t, errs)
	assert.Nil(t, p.Bio)

	// present-but-empty is distinct from absent
	p, errs = ValidatePayload(validBody(t, func(m map[string]interface{}) {
		m["bio"] = ""
	}))
	require.Nil(t, errs)
	require.NotNil(t, p.Bio)
	assert.Equal(t, "", *p.Bio)
}

func TestValidatePayload_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m map[string]interface{})
		field  string
	}{
		{"missing firstName", func(m map[string]interface{}) { delete(m, "firstName") }, "firstName"},
		{"empty firstName", func(m map[string]interface{}) { m["firstName"] = "" }, "firstName"},
		{"empty lastName", func(m map[string]interface{}) { m["lastName"] = "" }, "lastName"},
		{"numeric email", func(m map[string]interface{}) { m["email"] = 42 }, "email"},
		{"email without domain", func(m map[string]interface{}) { m["email"] = "jane@" }, "email"},
		{"email with spaces", func(m map[string]interface{}) { m["email"] = "ja ne@x.com" }, "email"},
		{"missing dob", func(m map[string]interface{}) { delete(m, "dob") }, "dob"},
		{"empty dob", func(m map[string]interface{}) { m["dob"] = "" }, "dob"},
		{"dob wrong order", func(m map[string]interface{}) { m["dob"] = "01-01-1990" }, "dob"},
		{"imageUrl non-string", func(m map[string]interface{}) { m["imageUrl"] = 7 }, "imageUrl"},
		{"imageUrl null", func(m map[string]interface{}) { m["imageUrl"] = nil }, "imageUrl"},
		{"acceptedTerms missing", func(m map[string]interface{}) { delete(m, "acceptedTerms") }, "acceptedTerms"},
		{"acceptedTerms truthy string", func(m map[string]interface{}) { m["acceptedTerms"] = "true" }, "acceptedTerms"},
		{"acceptedTerms null", func(m map[string]interface{}) { m["acceptedTerms"] = nil }, "acceptedTerms"},
		{"firstName null", func(m map[string]interface{}) { m["firstName"] = nil }, "firstName"},
		{"bio null", func(m map[string]interface{}) { m["bio"] = nil }, "bio"},
		{"bio numeric", func(m map[string]interface{}) { m["bio"] = 5 }, "bio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, errs := ValidatePayload(validBody(t, tt.mutate))
			assert.Nil(t, p)
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidatePayload_NotAnObject(t *testing.T) {
	for _, body := range []string{`null`, `[]`, `"x"`, `{`} {
		p, errs := ValidatePayload([]byte(body))
		assert.Nil(t, p, body)
		assert.NotNil(t, errs, body)
	}
}

func TestFieldErrorsMessage(t *testing.T) {
	_, errs := ValidatePayload(validBody(t, func(m map[string]interface{}) {
		delete(m, "dob")
		m["email"] = 42
	}))
	require.NotNil(t, errs)
	assert.Equal(t, "Missing or invalid fields in user payload: dob, email", errs.Message())
}

func TestNormalize(t *testing.T) {
	p, errs := ValidatePayload(validBody(t, nil))
	require.Nil(t, errs)

	n, err := p.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", n.Email)
	assert.Equal(t, "1990-01-01", n.DOB.String())

	u := n.User(7)
	assert.Equal(t, 7, u.ID)
	assert.Equal(t, "jane@x.com", u.Email)
}

// The dob shape check is pattern-only; a calendar-impossible date passes
// validation and is only rejected at normalization.
func TestNormalize_CalendarInvalidDOB(t *testing.T) {
	p, errs := ValidatePayload(validBody(t, func(m map[string]interface{}) {
		m["dob"] = "2024-13-40"
	}))
	require.Nil(t, errs)

	_, err := p.Normalize()
	assert.Error(t, err)
}
