package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	csvData := "First_Name, last_name,phone\nAda,Obi,0801\nNgozi,Eze,0802\n"

	headers, rows, err := Read("staff.csv", strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, []string{"first_name", "last_name", "phone"}, headers)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ada", rows[0]["first_name"])
	assert.Equal(t, "Eze", rows[1]["last_name"])
}

func TestReadCSVPadsShortRows(t *testing.T) {
	csvData := "first_name,last_name,phone\nAda,Obi\n"

	_, rows, err := Read("staff.csv", strings.NewReader(csvData))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0]["phone"])
}

func TestReadRejectsUnknownExtension(t *testing.T) {
	_, _, err := Read("staff.pdf", strings.NewReader("data"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadRejectsEmptyFile(t *testing.T) {
	_, _, err := Read("staff.csv", strings.NewReader(""))
	assert.Error(t, err)
}

func TestHasColumns(t *testing.T) {
	headers := []string{"first_name", "last_name", "phone", "extra"}

	assert.True(t, HasColumns(headers, []string{"first_name", "phone"}))
	assert.False(t, HasColumns(headers, []string{"first_name", "dob"}))
	assert.True(t, HasColumns(headers, nil))
}
