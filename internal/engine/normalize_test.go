package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"messy punctuation", "  dela   cruz, JUAN!!", "Dela Cruz, Juan", true},
		{"keeps name punctuation", "MA. TERESA DELA CRUZ-SANTOS", "Ma. Teresa Dela Cruz-Santos", true},
		{"digits stripped", "Juan 123 Dela Cruz", "Juan Dela Cruz", true},
		{"too short after cleanup", "4", "", false},
		{"empty", "   ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeName(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	got, ok := NormalizeDate("Date Issued: 06/15/2024 (rev)")
	require.True(t, ok)
	assert.Equal(t, "06/15/2024", got)

	got, ok = NormalizeDate("15-06-24")
	require.True(t, ok)
	assert.Equal(t, "15-06-24", got)

	_, ok = NormalizeDate("June fifteen")
	assert.False(t, ok)
}

func TestNormalizePhone(t *testing.T) {
	got, ok := NormalizePhone("contact: 09171234567 (mobile)")
	require.True(t, ok)
	assert.Equal(t, "09171234567", got)

	got, ok = NormalizePhone("+63 9171234567")
	require.True(t, ok)
	assert.Equal(t, "+639171234567", got)

	got, ok = NormalizePhone("0917-123-4567")
	require.True(t, ok)
	assert.Equal(t, "09171234567", got)

	_, ok = NormalizePhone("local 123")
	assert.False(t, ok)
}

func TestNormalizeEmail(t *testing.T) {
	got, ok := NormalizeEmail("Email: Juan.DelaCruz@School.EDU.ph ")
	require.True(t, ok)
	assert.Equal(t, "juan.delacruz@school.edu.ph", got)

	_, ok = NormalizeEmail("no at sign here")
	assert.False(t, ok)
}

func TestNormalizeGovID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"sss ten digits reformatted", "SSS NO. 34-5678901-2", "34-5678901-2", true},
		{"sss bare digits", "3456789012", "34-5678901-2", true},
		{"philhealth twelve digits", "PhilHealth 123456789012", "12-345678901-2", true},
		{"odd count kept unformatted", "123456", "123456", true},
		{"too few digits", "1-2", "", false},
		{"no digits", "pending", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeGovID(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeProgram(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"full name to code", "Bachelor of Science in Information Technology", "BSIT"},
		{"most specific name wins", "BACHELOR OF SCIENCE IN COMPUTER SCIENCE", "BSCS"},
		{"short name", "Computer Science", "BSCS"},
		{"bare code kept", "Course: BSOA", "BSOA"},
		{"free text passes through", "General Education", "General Education"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeProgram(tt.raw)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := NormalizeProgram("  ")
	assert.False(t, ok)
}

func TestNormalizeYearLevel(t *testing.T) {
	got, ok := NormalizeYearLevel("3rd Year")
	require.True(t, ok)
	assert.Equal(t, "3", got)

	_, ok = NormalizeYearLevel("Fifth")
	assert.False(t, ok)
}

func TestNormalizeSection(t *testing.T) {
	got, ok := NormalizeSection("2 - A")
	require.True(t, ok)
	assert.Equal(t, "A", got)

	got, ok = NormalizeSection("B")
	require.True(t, ok)
	assert.Equal(t, "B", got)

	_, ok = NormalizeSection("")
	assert.False(t, ok)
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"clock text passes through", "7:30 AM", "7:30 AM", true},
		{"serial third of a day", "0.3333333333333333", "8:00 AM", true},
		{"serial noon", "0.5", "12:00 PM", true},
		{"serial midnight", "0", "12:00 AM", true},
		{"serial end of day", "0.9993055555555556", "11:59 PM", true},
		{"out of range", "1.5", "", false},
		{"not a number", "soon", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeTime(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDecimal(t *testing.T) {
	got, ok := NormalizeDecimal("21 units")
	require.True(t, ok)
	assert.Equal(t, "21", got)

	got, ok = NormalizeDecimal("GWA 1.75")
	require.True(t, ok)
	assert.Equal(t, "1.75", got)

	_, ok = NormalizeDecimal("incomplete")
	assert.False(t, ok)
}

func TestNormalizersAreIdempotent(t *testing.T) {
	type pair struct {
		n   Normalizer
		raw string
	}
	pairs := []pair{
		{NormalizeName, "dela cruz, juan"},
		{NormalizePhone, "09171234567"},
		{NormalizeEmail, "a@b.ph"},
		{NormalizeGovID, "3456789012"},
		{NormalizeProgram, "BSIT"},
		{NormalizeDecimal, "1.75"},
	}
	for _, p := range pairs {
		once, ok := p.n(p.raw)
		require.True(t, ok)
		twice, ok := p.n(once)
		require.True(t, ok)
		assert.Equal(t, once, twice)
	}
}
