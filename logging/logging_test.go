package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(config.Logging{Level: "debug"}, &buf)

	l.Debug().Int("expanded", 6).Msg("search finished")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "search finished", entry["message"])
	assert.EqualValues(t, 6, entry["expanded"])
	assert.Contains(t, entry, "time")
}

func TestNew_LevelFallback(t *testing.T) {
	for _, level := range []string{"", "chatty"} {
		var buf bytes.Buffer
		l := logging.New(config.Logging{Level: level}, &buf)

		l.Debug().Msg("hidden")
		assert.Zero(t, buf.Len(), "level %q should fall back to info", level)
		l.Info().Msg("shown")
		assert.NotZero(t, buf.Len())
	}
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(config.Logging{Level: "info", Pretty: true}, &buf)

	l.Info().Str("algorithm", "a*").Msg("done")
	out := buf.String()
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "algorithm=")
	assert.False(t, json.Valid(buf.Bytes()))
}
