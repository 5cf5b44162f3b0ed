package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInit_JSONFormat(t *testing.T) {
	old := Log
	t.Cleanup(func() { Log = old })

	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Output: &buf})

	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Log.GetLevel())
	}
	Log.WithField("level_number", 2).Debug("level built")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "level built" {
		t.Errorf("msg = %v, want level built", entry["msg"])
	}
}

func TestInit_InvalidLevelFallsBackToInfo(t *testing.T) {
	old := Log
	t.Cleanup(func() { Log = old })

	var buf bytes.Buffer
	Init(Options{Level: "chatty", Output: &buf})
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", Log.GetLevel())
	}
	Log.Debug("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug entry written at info level")
	}
}

func TestInit_EnvFallback(t *testing.T) {
	old := Log
	t.Cleanup(func() { Log = old })

	t.Setenv("LOG_LEVEL", "warn")
	Init(Options{})
	if Log.GetLevel() != logrus.WarnLevel {
		t.Errorf("level = %v, want warn", Log.GetLevel())
	}
}
