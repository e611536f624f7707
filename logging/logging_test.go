package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	// unknown levels fall back to info
	if parseLevel("nope") != parseLevel("info") {
		t.Error("unknown level should map to info")
	}
	if parseLevel("debug") == parseLevel("error") {
		t.Error("debug and error must differ")
	}
}

func TestJSONLoggerWritesFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: "json", Output: &buf})

	With(l.Info(), ChartType("bar"), Format("png"), File("q1.png"), Bytes(10)).Msg("exported")

	out := buf.String()
	for _, want := range []string{"exported", "chart_type", "bar", "q1.png"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestLevelFiltersDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(Config{Level: "error", Format: "json", Output: &buf})
	l.Info().Msg("hidden")
	With(l.Error(), ErrorField(errors.New("boom"))).Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("error line missing: %q", out)
	}
}
