package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vukan322/streakcard/internal/logging"
)

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := logging.New(&buf, "DEBUG", "json")
	require.NoError(t, err)

	logger.Debug("fetched", "user", "octo")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "fetched", record["msg"])
	assert.Equal(t, "octo", record["user"])
	assert.Equal(t, "streakcard", record["service"])
}

func TestNew_TextFiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := logging.New(&buf, "warn", "")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNew_DefaultsToInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := logging.New(&buf, "", "text")
	require.NoError(t, err)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := logging.New(&bytes.Buffer{}, "loud", "text")
	require.Error(t, err)

	_, err = logging.New(&bytes.Buffer{}, "info", "xml")
	require.ErrorIs(t, err, logging.ErrUnknownFormat)
}
