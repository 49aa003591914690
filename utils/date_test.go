package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDateParam(t *testing.T) {
	got, err := ParseDateParam("", "2024-06-01")
	assert.NoError(t, err)
	assert.Equal(t, "2024-06-01", got)

	got, err = ParseDateParam("2024-12-31", "2024-06-01")
	assert.NoError(t, err)
	assert.Equal(t, "2024-12-31", got)

	_, err = ParseDateParam("31/12/2024", "")
	assert.Error(t, err)
	_, err = ParseDateParam("2024-02-30", "")
	assert.Error(t, err)
}

func TestTodayFormat(t *testing.T) {
	_, err := ParseDateParam(Today(), "")
	assert.NoError(t, err)
}
