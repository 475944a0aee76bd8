package main

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seminar/internal/deck"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	return home
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootSubcommands(t *testing.T) {
	root := newRootCmd()
	want := map[string]bool{"ssh": false, "outline": false, "config": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("expected root command to include %s", name)
		}
	}
}

func TestRootFlags(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"audience-addr", "no-notes"} {
		if root.Flags().Lookup(name) == nil {
			t.Fatalf("expected root flag --%s", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Fatalf("expected persistent flag --config")
	}
}

func TestOutline(t *testing.T) {
	out, err := runRoot(t, "outline")
	if err != nil {
		t.Fatalf("outline: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	sections := deck.Sections()
	if len(lines) != len(sections) {
		t.Fatalf("outline lines = %d, want %d", len(lines), len(sections))
	}
	if lines[0] != "01  intro  Title" {
		t.Fatalf("first line = %q", lines[0])
	}
	if lines[len(lines)-1] != "09  takeaways  Key Takeaways" {
		t.Fatalf("last line = %q", lines[len(lines)-1])
	}
}

func TestOutlineText(t *testing.T) {
	out, err := runRoot(t, "outline", "--text")
	if err != nil {
		t.Fatalf("outline --text: %v", err)
	}
	for _, want := range []string{
		"09  takeaways  Key Takeaways\n",
		"    Deterministic layers around probabilistic cores = robust, production-grade systems.\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("outline --text missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Closing line for the board") {
		t.Fatalf("outline --text leaked presenter notes")
	}
}

func TestConfigInitAndShow(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "seminar.yaml")

	out, err := runRoot(t, "config", "init", "--config", path)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("config init output %q does not name %s", out, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	if _, err := runRoot(t, "config", "init", "--config", path); err == nil {
		t.Fatalf("expected second init without --force to fail")
	}
	if _, err := runRoot(t, "config", "init", "--force", "--config", path); err != nil {
		t.Fatalf("config init --force: %v", err)
	}

	t.Setenv("SEMINAR_NARROW_WIDTH", "80")
	out, err = runRoot(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"narrow_width: 80", "show_notes: true", "service_name: seminar"} {
		if !strings.Contains(out, want) {
			t.Fatalf("config show output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigShowMissingExplicitFile(t *testing.T) {
	isolateEnv(t)
	_, err := runRoot(t, "config", "show", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestTUILoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seminar.log")
	logger, closeLog, err := tuiLogger(path)
	if err != nil {
		t.Fatalf("tuiLogger: %v", err)
	}
	logger.Info("hello", "section", "intro")
	closeLog()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("log file missing message: %q", data)
	}
}

func TestTUILoggerDiscardsWithoutFile(t *testing.T) {
	logger, closeLog, err := tuiLogger("")
	if err != nil {
		t.Fatalf("tuiLogger: %v", err)
	}
	defer closeLog()
	logger.Info("dropped")
}

func TestRedirectStdLogRestoresWriter(t *testing.T) {
	prev := log.Writer()
	var buf bytes.Buffer
	restore := redirectStdLog(&buf)
	log.Print("inside")
	restore()
	if log.Writer() != prev {
		t.Fatalf("log writer not restored")
	}
	log.SetOutput(&bytes.Buffer{})
	log.Print("outside")
	log.SetOutput(prev)
	if !strings.Contains(buf.String(), "inside") || strings.Contains(buf.String(), "outside") {
		t.Fatalf("redirected log = %q", buf.String())
	}
}
