package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("loaded config") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("npm view failed") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("npm view failed") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.DebugLevel), 2)

	prog.step("express")
	prog.step("lodash")
	prog.done("Checked %d packages", 2)

	out := buf.String()
	for _, want := range []string{"item=express", "n=1/2", "item=lodash", "n=2/2", "Checked 2 packages ("} {
		if !strings.Contains(out, want) {
			t.Errorf("progress output missing %q:\n%s", want, out)
		}
	}
}

func TestProgressStepsAreDebugOnly(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel), 1)

	prog.step("express")
	if buf.Len() != 0 {
		t.Errorf("step should not log at info level, got %q", buf.String())
	}
	prog.done("Checked %d packages", 1)
	if !strings.Contains(buf.String(), "Checked 1 packages") {
		t.Errorf("done should log at info level, got %q", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}
}
