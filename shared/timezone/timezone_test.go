package timezone_test

import (
	"stayfinder/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.NotNil(t, now.Location())
}

func TestFormatKeepsInstant(t *testing.T) {
	instant := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	formatted := timezone.Format(instant, time.RFC3339)
	parsed, err := time.Parse(time.RFC3339, formatted)

	assert.NoError(t, err)
	assert.True(t, instant.Equal(parsed))
	assert.True(t, instant.Equal(timezone.ToAppTime(instant)))
}
