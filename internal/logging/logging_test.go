package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/viewstate"
)

func TestLog_FromWriter(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	log, err := logging.New().FromWriter(buff).Make()
	require.NoError(t, err)
	require.Equal(t, 0, buff.Len())

	log.Logger.Info().Msg("Test")
	require.Contains(t, buff.String(), "Test")
	require.Contains(t, buff.String(), `"time"`)
	assert.Empty(t, log.Path())
	assert.NoError(t, log.Close())
}

func TestLog_LevelFilters(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	log, err := logging.New().FromWriter(buff).WithLevel("WARN").Make()
	require.NoError(t, err)

	log.Logger.Info().Msg("hidden")
	log.Logger.Warn().Msg("shown")
	assert.NotContains(t, buff.String(), "hidden")
	assert.Contains(t, buff.String(), "shown")

	_, err = logging.New().WithLevel("loud").Make()
	require.Error(t, err)
}

func TestLog_FromPathCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "roster.log")
	log, err := logging.New().FromPath(path).Make()
	require.NoError(t, err)
	assert.Equal(t, path, log.Path())

	log.Logger.Info().Str("k", "v").Msg("to file")
	require.NoError(t, log.Close())
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

type auditLine struct {
	Level     string   `json:"level"`
	Component string   `json:"component"`
	Action    string   `json:"action"`
	Count     int      `json:"count"`
	IDs       []string `json:"ids"`
	Message   string   `json:"message"`
}

func TestAuditSink_MarkViewed(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	log, err := logging.New().FromWriter(buff).Make()
	require.NoError(t, err)

	var sink viewstate.AuditSink = logging.NewAuditSink(log.Logger)
	sink.MarkViewed(true, []string{"1", "2"})

	var line auditLine
	require.NoError(t, json.Unmarshal(buff.Bytes(), &line))
	assert.Equal(t, "info", line.Level)
	assert.Equal(t, "audit", line.Component)
	assert.Equal(t, "mark_viewed", line.Action)
	assert.Equal(t, 2, line.Count)
	assert.Equal(t, []string{"1", "2"}, line.IDs)
	assert.Equal(t, "Marking viewed", line.Message)

	buff.Reset()
	sink.MarkViewed(false, []string{"7"})
	require.NoError(t, json.Unmarshal(buff.Bytes(), &line))
	assert.Equal(t, "mark_unviewed", line.Action)
	assert.Equal(t, "Marking unviewed", line.Message)
}

func TestNop(t *testing.T) {
	log := logging.Nop()
	log.Logger.Info().Msg("nothing")
	assert.NoError(t, log.Close())
}
