package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func parseLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v\nraw: %s", err, buf.String())
	}
	return entry
}

func TestJSONFieldNames(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info("hello world")

	entry := parseLine(t, &buf)
	if entry["message"] != "hello world" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if entry["timestamp"] == nil {
		t.Error("timestamp field missing")
	}
}

func TestWarnLevelRenamed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf)

	log.Warn("careful")

	entry := parseLine(t, &buf)
	if entry["level"] != "warning" {
		t.Errorf("level = %v, want warning", entry["level"])
	}
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("error", &buf)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("hidden")

	if buf.Len() != 0 {
		t.Errorf("sub-error output should be suppressed, got %s", buf.String())
	}

	log.Error("visible")
	if buf.Len() == 0 {
		t.Error("error output should be emitted")
	}
}

func TestChainedFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithModule("dialogue").
		WithUserID("user1").
		WithRequestID("req-42").
		WithError(errors.New("boom")).
		WithField("intent", "greetings").
		Info("handled")

	entry := parseLine(t, &buf)
	if entry["module"] != "dialogue" {
		t.Errorf("module = %v", entry["module"])
	}
	if entry["user_id"] != "user1" {
		t.Errorf("user_id = %v", entry["user_id"])
	}
	if entry["request_id"] != "req-42" {
		t.Errorf("request_id = %v", entry["request_id"])
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v", entry["error"])
	}
	if entry["intent"] != "greetings" {
		t.Errorf("intent = %v", entry["intent"])
	}
}

func TestFormattedHelpers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Infof("handled %d messages for %s", 3, "user1")

	entry := parseLine(t, &buf)
	if entry["message"] != "handled 3 messages for user1" {
		t.Errorf("message = %v", entry["message"])
	}
}
