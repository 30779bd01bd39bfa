package main

// Notes:
// - newLogger: we test level selection and the JSON formatter through the
//   lines the logger writes.

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestNewLogger - Levels and formatters
// ---------------------------------------------------------------------------

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flags     commonFlags
		wantDebug bool
		wantInfo  bool
	}{
		{"default", commonFlags{}, false, true},
		{"quiet", commonFlags{quiet: true}, false, false},
		{"verbose", commonFlags{verbose: true}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := newLogger(&buf, tt.flags)
			logger.Debug("debug line")
			logger.Info("info line")
			logger.Error("error line")

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.Contains(out, "info line"); got != tt.wantInfo {
				t.Errorf("info logged = %v, want %v", got, tt.wantInfo)
			}
			if !strings.Contains(out, "error line") {
				t.Error("error line not logged")
			}
		})
	}

	t.Run("json lines", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newLogger(&buf, commonFlags{logJSON: true})
		logger.Info("wrote map", "row", "0")

		var entry map[string]any
		if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
			t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
		}
		if entry["msg"] != "wrote map" {
			t.Errorf("msg = %v, want wrote map", entry["msg"])
		}
		if entry["row"] != "0" {
			t.Errorf("row = %v, want 0", entry["row"])
		}
		if _, ok := entry["time"]; !ok {
			t.Error("JSON line has no time field")
		}
	})
}
