package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry), scanner.Text())
		entries = append(entries, entry)
	}
	return entries
}

// Property: production logs are structured JSON carrying the message
func TestProperty_ProductionLogsAreStructured(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every production entry is a JSON object with level and message", prop.ForAll(
		func(message string, id int) bool {
			path := filepath.Join(t.TempDir(), "catalog.log")

			log, err := New("production", WithOutput(path))
			if err != nil {
				t.Logf("FAIL: Failed to create logger: %v", err)
				return false
			}
			log.Info(message, zap.Int("id", id))
			_ = log.Sync()

			entries := readEntries(t, path)
			if len(entries) != 1 {
				return false
			}
			entry := entries[0]

			return entry["level"] == "info" &&
				entry["msg"] == message &&
				entry["id"] == float64(id)
		},
		gen.AlphaString(),
		gen.IntRange(0, 100000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestNew_LevelFiltersEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.log")

	log, err := New("production", WithOutput(path), WithLevel("warn"))
	require.NoError(t, err)

	log.Info("Product registered")
	log.Warn("Product not found for update")
	require.NoError(t, log.Sync())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "Product not found for update", entries[0]["msg"])
}

func TestNew_ErrorEntriesCarryStacktrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.log")

	log, err := New("production", WithOutput(path))
	require.NoError(t, err)

	log.Error("Panic recovered", zap.String("action", "List all products"))
	require.NoError(t, log.Sync())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0], "stacktrace")
	assert.Contains(t, entries[0], "caller")
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New("development", WithLevel("loud"))
	assert.Error(t, err)
}

func TestNewWithDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	assert.NotNil(t, NewWithDefaults())
}
