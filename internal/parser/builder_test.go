package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTicker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"five digit trailing zero", "72030", "7203.T"},
		{"four digit", "7203", "7203.T"},
		{"five digit no trailing zero", "72035", "72035.T"},
		{"empty", "", ""},
		{"placeholder", "－", ""},
		{"whitespace", "  7203  ", "7203.T"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatTicker(tt.in))
		})
	}
}

func TestDeriveQuarter(t *testing.T) {
	t.Parallel()

	fyEnd := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filing time.Time
		want   int
	}{
		// Fiscal year Apr 2024 - Mar 2025, filings inside the year.
		{"q1 filing", time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC), 1},
		{"q2 filing", time.Date(2024, 11, 12, 0, 0, 0, 0, time.UTC), 2},
		{"q3 filing", time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC), 3},
		// DEI pointing at the just-closed year: filing after the stated
		// year end rolls the start forward a year.
		{"q1 filing next cycle", time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC), 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := deriveQuarter(tt.filing, fyEnd)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestDeriveQuarter_OutOfRange(t *testing.T) {
	t.Parallel()

	fyEnd := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	// Too early for any quarterly filing window.
	assert.Nil(t, deriveQuarter(time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC), fyEnd))
	assert.Nil(t, deriveQuarter(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), fyEnd))
}

func TestCoalesce(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", coalesce("a", "b"))
	assert.Equal(t, "b", coalesce("", "b"))
	assert.Equal(t, "", coalesce("", ""))

	one := int64(1)
	two := int64(2)
	assert.Equal(t, &one, coalesceInt(&one, &two))
	assert.Equal(t, &two, coalesceInt(nil, &two))
	assert.Nil(t, coalesceInt(nil, nil))
}

func TestDateOf(t *testing.T) {
	t.Parallel()

	in := time.Date(2026, 2, 2, 15, 4, 5, 123, time.UTC)
	assert.Equal(t, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), dateOf(in))
}
