package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("connaught_place"))
	assert.NoError(t, ValidateID("stop-12.a"))
	assert.Error(t, ValidateID(""), "empty id should fail")
	assert.Error(t, ValidateID("bad id"), "spaces should fail")
	assert.Error(t, ValidateID("<script>"), "html should fail")
}

func TestValidateCoordinates(t *testing.T) {
	assert.NoError(t, ValidateLatitude(28.6315))
	assert.Error(t, ValidateLatitude(91.0))
	assert.Error(t, ValidateLatitude(-91.0))
	assert.NoError(t, ValidateLongitude(77.2167))
	assert.Error(t, ValidateLongitude(181.0))
	assert.Error(t, ValidateLongitude(-181.0))
}

func TestValidateDistance(t *testing.T) {
	assert.NoError(t, ValidateDistance(4.5))
	assert.Error(t, ValidateDistance(0))
	assert.Error(t, ValidateDistance(-1.0))
	assert.Error(t, ValidateDistance(1500.0))
}

func TestValidateMultiplier(t *testing.T) {
	assert.NoError(t, ValidateMultiplier(1.8))
	assert.Error(t, ValidateMultiplier(0))
	assert.Error(t, ValidateMultiplier(-0.5))
	assert.Error(t, ValidateMultiplier(11.0))
}

func TestValidateHour(t *testing.T) {
	assert.NoError(t, ValidateHour(0, false))
	assert.NoError(t, ValidateHour(23, false))
	assert.Error(t, ValidateHour(24, false))
	assert.NoError(t, ValidateHour(24, true), "window ends may use 24")
	assert.Error(t, ValidateHour(-1, true))
	assert.Error(t, ValidateHour(25, true))
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate(""))
	assert.NoError(t, ValidateDate("2024-12-15"))
	assert.Error(t, ValidateDate("15-12-2024"))
	assert.Error(t, ValidateDate("not-a-date"))
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "hello", SanitizeInput("  hello  "))
	assert.Equal(t, "alert(1)", SanitizeInput("<script>alert(1)</script>"))
}

func TestValidateLocationParams(t *testing.T) {
	assert.Nil(t, ValidateLocationParams("connaught_place", 28.6315, 77.2167))

	fieldErrors := ValidateLocationParams("", 95.0, 200.0)
	assert.Contains(t, fieldErrors, "id")
	assert.Contains(t, fieldErrors, "lat")
	assert.Contains(t, fieldErrors, "lon")
}
