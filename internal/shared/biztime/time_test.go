package biztime

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMillisRoundTrip(t *testing.T) {
	now := NowUTC()
	assert.True(t, now.Equal(FromMillis(ToMillis(now))))

	assert.Nil(t, ToMillisPtr(nil))
	assert.Nil(t, FromMillisPtr(nil))

	ms := int64(1700000000123)
	got := FromMillisPtr(&ms)
	if assert.NotNil(t, got) {
		assert.Equal(t, time.UTC, got.Location())
		assert.Equal(t, ms, *ToMillisPtr(got))
	}
}

func TestNowUTC_MillisecondPrecision(t *testing.T) {
	now := NowUTC()
	assert.Zero(t, now.Nanosecond()%int(time.Millisecond))
}

func TestToBizTimezone(t *testing.T) {
	require.NoError(t, Init("Asia/Tokyo"))

	at := time.Date(2025, 3, 1, 23, 30, 0, 0, time.UTC)
	local := ToBizTimezone(at)
	assert.Equal(t, "Asia/Tokyo", local.Location().String())
	assert.Equal(t, 2, local.Day())
	assert.True(t, local.Equal(at))

	assert.Nil(t, ToBizTimezonePtr(nil))
	if got := ToBizTimezonePtr(&at); assert.NotNil(t, got) {
		assert.Equal(t, 8, got.Hour())
	}
}
