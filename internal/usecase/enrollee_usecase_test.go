package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportRowsCountsAndRowNumbers(t *testing.T) {
	rows := []map[string]string{
		{"first_name": "Ada"},
		{"first_name": "bad"},
		{"first_name": "Ngozi"},
	}

	result := importRows(rows, func(row map[string]string) error {
		if row["first_name"] == "bad" {
			return errors.New("plan not found")
		}
		return nil
	})

	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Equal(t, "plan not found", result.Errors[0].Error)
}

func TestImportRowsCapsErrorList(t *testing.T) {
	var rows []map[string]string
	for i := 0; i < 25; i++ {
		rows = append(rows, map[string]string{"n": fmt.Sprintf("%d", i)})
	}

	result := importRows(rows, func(row map[string]string) error {
		return errors.New("boom")
	})

	assert.Equal(t, 25, result.TotalRows)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 25, result.Failed)
	assert.Len(t, result.Errors, maxBulkErrors)
}

func TestImportRowsAllSucceed(t *testing.T) {
	rows := []map[string]string{{"a": "1"}, {"a": "2"}}

	result := importRows(rows, func(row map[string]string) error { return nil })

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Errors)
}

func TestRowToCreateRequest(t *testing.T) {
	row := map[string]string{
		"enrollee_id":    "",
		"first_name":     "Ada",
		"last_name":      "Obi",
		"dob":            "1991-05-20",
		"gender":         "F",
		"phone":          "+2348012345678",
		"email":          "ada@example.com",
		"national_id":    "NIN123",
		"address":        `{"street":"1 Marina Rd","city":"Lagos"}`,
		"plan_code":      "GOLD",
		"status":         "ACTIVE",
		"coverage_start": "2025-01-01",
		"coverage_end":   "2025-12-31",
	}

	req := rowToCreateRequest(row)

	assert.Equal(t, "Ada", req.FirstName)
	assert.Equal(t, "GOLD", req.PlanCode)
	assert.Equal(t, "2025-12-31", req.CoverageEnd)
	assert.Equal(t, "Lagos", req.Address["city"])
}

func TestParseAddress(t *testing.T) {
	t.Run("json object", func(t *testing.T) {
		addr := parseAddress(`{"city":"Abuja"}`)
		assert.Equal(t, "Abuja", addr["city"])
	})

	t.Run("plain string", func(t *testing.T) {
		addr := parseAddress("12 Allen Avenue, Ikeja")
		assert.Equal(t, "12 Allen Avenue, Ikeja", addr["street"])
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, parseAddress(""))
	})
}

func TestParseDate(t *testing.T) {
	parsed, err := parseDate("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), parsed)

	_, err = parseDate("15/06/2025")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}
