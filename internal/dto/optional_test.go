package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptionalAbsentFieldStaysUnset(t *testing.T) {
	var req UpdateBookmarkRequest
	err := json.Unmarshal([]byte(`{"title": "New title"}`), &req)
	assert.NoError(t, err)

	assert.True(t, req.Title.Set)
	assert.True(t, req.Title.Valid)
	assert.Equal(t, "New title", req.Title.Value)

	assert.False(t, req.Read.Set)
	assert.False(t, req.Url.Set)
}

func TestOptionalExplicitNullIsSetButInvalid(t *testing.T) {
	var req UpdateBookmarkRequest
	err := json.Unmarshal([]byte(`{"read": null, "meta": null}`), &req)
	assert.NoError(t, err)

	assert.True(t, req.Read.Set)
	assert.False(t, req.Read.Valid)
	assert.True(t, req.Meta.Set)
	assert.False(t, req.Meta.Valid)
}

func TestOptionalIdPresenceDetected(t *testing.T) {
	var req UpdateBookmarkRequest
	err := json.Unmarshal([]byte(`{"id": "7f9c24e5-2f2c-4a2f-9d53-1f5f67d2b333"}`), &req)
	assert.NoError(t, err)
	assert.True(t, req.Id.Set)
}

func TestTimestampParsesOffsetToUTC(t *testing.T) {
	var ts Timestamp
	err := json.Unmarshal([]byte(`"2017-01-01T01:20:13+02:00"`), &ts)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2016, 12, 31, 23, 20, 13, 0, time.UTC), ts.Time)
}

func TestTimestampParsesNumericOffset(t *testing.T) {
	var ts Timestamp
	err := json.Unmarshal([]byte(`"2017-01-01T01:20:13+0200"`), &ts)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2016, 12, 31, 23, 20, 13, 0, time.UTC), ts.Time)
}

func TestTimestampParsesNaiveAsUTC(t *testing.T) {
	var ts Timestamp
	err := json.Unmarshal([]byte(`"2016-11-06T01:31:15"`), &ts)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2016, 11, 6, 1, 31, 15, 0, time.UTC), ts.Time)
}

func TestTimestampEmptyStringIsZero(t *testing.T) {
	var ts Timestamp
	err := json.Unmarshal([]byte(`""`), &ts)
	assert.NoError(t, err)
	assert.True(t, ts.IsZero())
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	err := json.Unmarshal([]byte(`"yesterday"`), &ts)
	assert.Error(t, err)
}
