package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsCoverageActive(t *testing.T) {
	enrollee := &Enrollee{
		Status:        EnrolleeStatusActive,
		CoverageStart: date(2025, 1, 1),
		CoverageEnd:   date(2025, 12, 31),
	}

	t.Run("inside window", func(t *testing.T) {
		assert.True(t, enrollee.IsCoverageActive(date(2025, 6, 15)))
	})

	t.Run("start date is inclusive", func(t *testing.T) {
		assert.True(t, enrollee.IsCoverageActive(date(2025, 1, 1)))
	})

	t.Run("end date is inclusive", func(t *testing.T) {
		assert.True(t, enrollee.IsCoverageActive(date(2025, 12, 31)))
	})

	t.Run("day before start", func(t *testing.T) {
		assert.False(t, enrollee.IsCoverageActive(date(2024, 12, 31)))
	})

	t.Run("day after end", func(t *testing.T) {
		assert.False(t, enrollee.IsCoverageActive(date(2026, 1, 1)))
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		lastMoment := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
		assert.True(t, enrollee.IsCoverageActive(lastMoment))
	})

	t.Run("suspended is never active", func(t *testing.T) {
		suspended := &Enrollee{
			Status:        EnrolleeStatusSuspended,
			CoverageStart: date(2025, 1, 1),
			CoverageEnd:   date(2025, 12, 31),
		}
		assert.False(t, suspended.IsCoverageActive(date(2025, 6, 15)))
	})

	t.Run("terminated is never active", func(t *testing.T) {
		terminated := &Enrollee{
			Status:        EnrolleeStatusTerminated,
			CoverageStart: date(2025, 1, 1),
			CoverageEnd:   date(2025, 12, 31),
		}
		assert.False(t, terminated.IsCoverageActive(date(2025, 6, 15)))
	})
}

func TestFormatEnrolleeID(t *testing.T) {
	assert.Equal(t, "HL-241210-0001", FormatEnrolleeID(date(2024, 12, 10), 1))
	assert.Equal(t, "HL-250101-0042", FormatEnrolleeID(date(2025, 1, 1), 42))
	assert.Equal(t, "HL-250101-12345", FormatEnrolleeID(date(2025, 1, 1), 12345))
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2025, 3, 14, 15, 9, 26, 535, time.UTC)
	assert.Equal(t, date(2025, 3, 14), DateOnly(ts))
}

func TestFullName(t *testing.T) {
	enrollee := &Enrollee{FirstName: "Ada", LastName: "Obi"}
	assert.Equal(t, "Ada Obi", enrollee.FullName())
}
