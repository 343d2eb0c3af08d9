package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowUTC(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 9, 30, 0, 0, time.FixedZone("UTC-5", -5*60*60))
	restore := SetClock(func() time.Time { return fixed })

	now := NowUTC()
	assert.Equal(t, time.UTC, now.Location())
	assert.True(t, now.Equal(fixed))

	restore()
	assert.WithinDuration(t, time.Now(), NowUTC(), time.Second)
}
