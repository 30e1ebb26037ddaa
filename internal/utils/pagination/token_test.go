package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeDateBasedToken(t *testing.T) {
	// Standard timestamp with sub-second precision
	fetchedAt := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeDateBasedToken(fetchedAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeDateBasedToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, fetchedAt, decoded, "Date should match after decode")

	// Zero time round-trips too
	zeroToken := EncodeDateBasedToken(time.Time{})
	decodedZero, err := DecodeDateBasedToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, time.Time{}, decodedZero, "Zero time should match after decode")

	// Current time survives nanosecond precision
	now := time.Now().UTC()
	decodedNow, err := DecodeDateBasedToken(EncodeDateBasedToken(now))
	assert.NoError(t, err, "Decoding current time should not return an error")
	assert.True(t, now.Equal(decodedNow), "Current time should match after decode")
}

func TestDecodeDateBasedTokenErrors(t *testing.T) {
	_, err := DecodeDateBasedToken("not-valid-base64!!!")
	assert.Error(t, err, "Invalid base64 should return an error")

	// Valid base64 but not a timestamp
	_, err = DecodeDateBasedToken("bm90LWEtZGF0ZQ==")
	assert.Error(t, err, "Non-date payload should return an error")
}
