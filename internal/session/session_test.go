package session

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
const iphoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"

func TestSession_Identifier(t *testing.T) {
	long := strings.Repeat("a", 64)
	s := New(long, uuid.New())
	assert.Equal(t, long[:42], s.Identifier())
	assert.Len(t, s.Identifier(), 42)

	short := New("abc", uuid.New())
	assert.Equal(t, "abc", short.Identifier())
}

func TestSession_UpdateTrace(t *testing.T) {
	s := New(strings.Repeat("s", 50), uuid.New())

	trace, ok := s.UpdateTrace(chromeUA, "192.168.1.10")
	require.True(t, ok)
	assert.Equal(t, "Windows", trace.Platform)
	assert.Equal(t, "Chrome", trace.Browser)
	assert.Equal(t, "192.168.1.10", trace.IPAddress)
	assert.Equal(t, trace.FirstActivity, trace.LastActivity)

	first := trace.FirstActivity
	time.Sleep(5 * time.Millisecond)

	trace, ok = s.UpdateTrace(iphoneUA, "10.0.0.1")
	require.True(t, ok)
	assert.Equal(t, "iPhone", trace.Platform)
	assert.Equal(t, "Safari", trace.Browser)
	assert.Equal(t, "10.0.0.1", trace.IPAddress)
	assert.Equal(t, first, trace.FirstActivity, "first activity must never move")
	assert.True(t, trace.LastActivity.After(first))
}

func TestSession_UpdateTrace_Unknowns(t *testing.T) {
	s := New("sid-unknown", uuid.New())

	trace, ok := s.UpdateTrace("definitely-not-a-browser", "127.0.0.1")
	require.True(t, ok)
	assert.Equal(t, "Unknown", trace.Platform)
	assert.Equal(t, "Unknown", trace.Browser)
}

func TestSession_UpdateTrace_NoMetadata(t *testing.T) {
	s := New("sid-empty", uuid.New())

	trace, ok := s.UpdateTrace("", "")
	assert.False(t, ok)
	assert.True(t, trace.IsZero())
	assert.True(t, s.Trace.IsZero(), "failed update must not leave a partial trace")
}
