package core

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventFireStopsAtFirstHandler(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()

	var calls []string
	EventRegister(EVENT_CODE_KEY_PRESSED, func(ctx EventContext) bool {
		calls = append(calls, "first")
		return true
	})
	EventRegister(EVENT_CODE_KEY_PRESSED, func(ctx EventContext) bool {
		calls = append(calls, "second")
		return false
	})

	handled := EventFire(EventContext{Type: EVENT_CODE_KEY_PRESSED, Data: &KeyEvent{KeyCode: KEY_A}})
	assert.True(t, handled)
	assert.Equal(t, []string{"first"}, calls)
}

func TestEventUnregister(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()

	fired := 0
	id := EventRegister(EVENT_CODE_RESIZED, func(ctx EventContext) bool {
		fired++
		return false
	})
	EventFire(EventContext{Type: EVENT_CODE_RESIZED})
	assert.True(t, EventUnregister(EVENT_CODE_RESIZED, id))
	assert.False(t, EventUnregister(EVENT_CODE_RESIZED, id))
	EventFire(EventContext{Type: EVENT_CODE_RESIZED})
	assert.Equal(t, 1, fired)
}

func TestEventsBeforeInitialize(t *testing.T) {
	assert.Equal(t, -1, EventRegister(EVENT_CODE_RESIZED, func(EventContext) bool { return true }))
	assert.False(t, EventFire(EventContext{Type: EVENT_CODE_RESIZED}))
}

func TestInputKeyTransitionsFireOnce(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()
	require.NoError(t, InputInitialize())
	defer InputShutdown()

	pressed := 0
	EventRegister(EVENT_CODE_KEY_PRESSED, func(ctx EventContext) bool {
		pressed++
		return false
	})

	InputProcessKey(KEY_W, true)
	InputProcessKey(KEY_W, true)
	assert.Equal(t, 1, pressed)
	assert.True(t, InputIsKeyDown(KEY_W))
	assert.False(t, InputWasKeyDown(KEY_W))

	InputUpdate(0.016)
	assert.True(t, InputWasKeyDown(KEY_W))

	InputProcessMouseMove(10, 4)
	dx, dy := InputGetMouseDelta()
	assert.Equal(t, int32(10), dx)
	assert.Equal(t, int32(4), dy)
}

func TestClockElapsedSeconds(t *testing.T) {
	base := time.Unix(100, 0)
	current := base
	c := &Clock{now: func() time.Time { return current }}

	c.Update()
	assert.Zero(t, c.Elapsed())

	c.Start()
	current = base.Add(1500 * time.Millisecond)
	c.Update()
	assert.InDelta(t, 1.5, c.Elapsed(), 1e-9)

	c.Stop()
	current = base.Add(3 * time.Second)
	c.Update()
	assert.InDelta(t, 1.5, c.Elapsed(), 1e-9)
}

func TestMetricsAverages(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < int(AVG_COUNT); i++ {
		m.Update(0.010)
	}
	assert.InDelta(t, 10.0, m.FrameTime(), 1e-6)
	assert.Zero(t, m.FPS())

	for i := 0; i < 80; i++ {
		m.Update(0.010)
	}
	assert.InDelta(t, 100.0, m.FPS(), 1.0)
}

func TestLogLevelText(t *testing.T) {
	var lvl LogLevel
	require.NoError(t, lvl.UnmarshalText([]byte("Warn")))
	assert.Equal(t, WarnLevel, lvl)

	err := lvl.UnmarshalText([]byte("loud"))
	assert.True(t, errors.Is(err, ErrUnknownName))

	text, err := ErrorLevel.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "error", string(text))
}

func TestLoggerLevelAndFields(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	SetLogLevel(InfoLevel)
	defer func() {
		SetLogOutput(os.Stderr)
		SetLogLevel(DebugLevel)
	}()

	LogDebug("hidden")
	LogInfo("texture loaded", "name", "brick", "width", 64)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "texture loaded")
	assert.Contains(t, out, "name=brick")
	assert.Contains(t, out, "width=64")
}
