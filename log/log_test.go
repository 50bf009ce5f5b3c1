package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestMake_Defaults(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level info, got %v", logger.Level())
	}

	if logger.Format() != FormatJSON {
		t.Errorf("expected default format json, got %v", logger.Format())
	}

	logger.Info("hello", slog.String("k", "v"))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v: %q", err, buf.String())
	}

	if rec["msg"] != "hello" || rec["k"] != "v" || rec["level"] != "INFO" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestLevel_Filtering(t *testing.T) {
	tests := []struct {
		level Level
		emit  func(Logger)
		want  bool
	}{
		{LevelInfo, func(l Logger) { l.Debug("m") }, false},
		{LevelDebug, func(l Logger) { l.Debug("m") }, true},
		{LevelDebug, func(l Logger) { l.Trace("m") }, false},
		{LevelTrace, func(l Logger) { l.Trace("m") }, true},
		{LevelError, func(l Logger) { l.Warn("m") }, false},
		{LevelError, func(l Logger) { l.Error("m") }, true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer

		tt.emit(Make(&buf, WithLevel(tt.level)))

		if got := buf.Len() > 0; got != tt.want {
			t.Errorf("level %v: emitted = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestTraceLevelName(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithLevel(LevelTrace)).Trace("deep")

	if !strings.Contains(buf.String(), `"level":"TRACE"`) {
		t.Errorf("trace level not named: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"trace":   LevelTrace,
		"TRACE":   LevelTrace,
		"debug":   LevelDebug,
		"Info":    LevelInfo,
		"warn":    LevelWarn,
		"error":   LevelError,
		"bogus":   DefaultLevel,
		" debug ": LevelDebug,
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("TEXT") != FormatText {
		t.Error("text not recognized")
	}

	if ParseFormat("json") != FormatJSON {
		t.Error("json not recognized")
	}

	if ParseFormat("xml") != DefaultFormat {
		t.Error("unknown format did not fall back to default")
	}
}

func TestWithTimeLayout_None(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithTimeLayout("none"), WithFormat(FormatText)).Info("x")

	if strings.Contains(buf.String(), "time=") {
		t.Errorf("timestamp not suppressed: %q", buf.String())
	}
}

func TestWrap_DoesNotMutate(t *testing.T) {
	var buf bytes.Buffer

	base := Make(&buf)
	debug := base.Wrap(WithLevel(LevelDebug))

	if base.Level() != LevelInfo || debug.Level() != LevelDebug {
		t.Errorf("levels: base %v, wrapped %v", base.Level(), debug.Level())
	}
}

func TestZeroLogger(t *testing.T) {
	var l Logger

	l.Info("dropped")
	l.With(slog.String("k", "v")).Error("dropped")

	if l.Level() != DefaultLevel {
		t.Errorf("zero logger level = %v", l.Level())
	}
}

func TestPretty_KeepsAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatText),
		WithPretty(true),
		WithTimeLayout("none"),
	).With(slog.String("component", "lang"))

	logger.Info("parsed", slog.Int("statements", 2), slog.Bool("partial", false))

	out := buf.String()
	for _, want := range []string{"component", "lang", "statements", "2", "parsed", "INFO"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q: %q", want, out)
		}
	}
}

func TestConfig_Default(t *testing.T) {
	var buf bytes.Buffer

	saved := Default()
	t.Cleanup(func() {
		defaultMu.Lock()
		defaultLog = saved
		defaultMu.Unlock()
	})

	Config(WithOutput(&buf), WithLevel(LevelDebug))
	Debug("via default")

	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger not reconfigured: %q", buf.String())
	}
}
