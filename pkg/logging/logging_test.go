package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		raw    string
		want   zerolog.Level
		wantOK bool
	}{
		{"", zerolog.InfoLevel, false},
		{"trace", zerolog.TraceLevel, true},
		{"DEBUG", zerolog.DebugLevel, true},
		{" info ", zerolog.InfoLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.InfoLevel, false},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := ParseLevel(tc.raw)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	runtime := DefaultConfig(ProfileRuntime)
	assert.Equal(t, zerolog.InfoLevel, runtime.Level)
	assert.True(t, runtime.Timestamp)

	test := DefaultConfig(ProfileTest)
	assert.Equal(t, zerolog.DebugLevel, test.Level)
	assert.False(t, test.Timestamp)
	assert.True(t, test.NoColor)
}

func TestBuild(t *testing.T) {
	var buf bytes.Buffer
	logger := Build(Config{Level: zerolog.WarnLevel, NoColor: true, Output: &buf})

	logger.Info().Msg("hidden")
	logger.Warn().Str("kind", "guid").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "kind=guid")
	assert.Contains(t, out, "app=tdswire")
}

func TestNew_EnvOverride(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	logger := New(ProfileRuntime, "debug")
	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())
}

func TestNew_LevelArgument(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	assert.Equal(t, zerolog.DebugLevel, New(ProfileRuntime, "debug").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(ProfileRuntime, "bogus").GetLevel())
	assert.Equal(t, zerolog.DebugLevel, New(ProfileTest, "").GetLevel())
}
