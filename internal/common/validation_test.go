package common

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator().
		Field("name", "", Required).
		Field("id", "not-a-uuid", UUID)

	require.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 2)
	assert.Contains(t, v.ErrorMessage(), "name")
	assert.Contains(t, v.ErrorMessage(), "must be a valid UUID")
	assert.Error(t, v.Error())
}

func TestValidatorPasses(t *testing.T) {
	v := NewValidator().
		Field("name", "Santos, Maria", Required).
		Field("id", uuid.NewString(), UUID).
		Field("school_year", "2024-2025", SchoolYear)

	assert.False(t, v.HasErrors())
	assert.NoError(t, v.Error())
	assert.Empty(t, v.ErrorMessage())
}

func TestRequired(t *testing.T) {
	assert.Nil(t, Required("f", "value"))
	assert.NotNil(t, Required("f", ""))
	assert.NotNil(t, Required("f", "   "))
	assert.NotNil(t, Required("f", nil))

	s := "ok"
	assert.Nil(t, Required("f", &s))
	var empty *string
	assert.NotNil(t, Required("f", empty))
}

func TestSchoolYear(t *testing.T) {
	assert.Nil(t, SchoolYear("sy", "2024-2025"))
	// optional unless paired with Required
	assert.Nil(t, SchoolYear("sy", ""))

	assert.NotNil(t, SchoolYear("sy", "2024"))
	assert.NotNil(t, SchoolYear("sy", "24-25"))
	assert.NotNil(t, SchoolYear("sy", "2024/2025"))
	assert.NotNil(t, SchoolYear("sy", 2024))
}

func TestLengthRules(t *testing.T) {
	short := func(f string, v interface{}) *ValidationError { return MinLength(f, v, 3) }
	long := func(f string, v interface{}) *ValidationError { return MaxLength(f, v, 5) }

	v := NewValidator().
		Field("code", "ab", short).
		Field("code", "abcdef", long)
	assert.Len(t, v.Errors(), 2)

	v = NewValidator().
		Field("code", "abcd", short).
		Field("code", "abcd", long)
	assert.False(t, v.HasErrors())
}
