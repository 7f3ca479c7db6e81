package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, "debug", false)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	For("auth").Info().Str("username", "vk").Msg("admin logged in")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "auth", line["component"])
	assert.Equal(t, "vk", line["username"])
	assert.Equal(t, "admin logged in", line["message"])
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, "chatty", false)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	For("ws").Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	For("ws").Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
