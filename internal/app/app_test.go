package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/dshills/editcore/internal/dispatcher"
)

func newApp(t *testing.T, opts Options) *Application {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	a, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(a.Shutdown)
	return a
}

func TestRunScript(t *testing.T) {
	a := newApp(t, Options{Content: "hello world"})

	script := `
# move to "world" and insert before it
move_word_forward
insert_string "big "

dd
u
$
insert_char !
`
	if err := a.Run(strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}
	if got, want := a.Text(), "hello big world!"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
	if got := a.Journal().Len(); got != 6 {
		t.Errorf("journal has %d entries, want 6", got)
	}
}

func TestRunQuit(t *testing.T) {
	a := newApp(t, Options{Content: "abc"})

	err := a.Run(strings.NewReader("x\n: q\nx\n"))
	if !IsQuit(err) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
	if got := a.Text(); got != "bc" {
		t.Errorf("commands after quit ran: text = %q", got)
	}
}

func TestRunStopsOnError(t *testing.T) {
	a := newApp(t, Options{Content: "abc"})

	err := a.Run(strings.NewReader("x\nbogus\nx\n"))
	var serr *ScriptError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *ScriptError, got %v", err)
	}
	if serr.Line != 2 || serr.Command != "bogus" {
		t.Errorf("error at line %d (%s), want line 2 (bogus)", serr.Line, serr.Command)
	}
	if !errors.Is(err, dispatcher.ErrUnknownOperation) {
		t.Errorf("expected ErrUnknownOperation in chain, got %v", err)
	}
	if got := a.Text(); got != "bc" {
		t.Errorf("text = %q, want %q", got, "bc")
	}
}

func TestRunContinueOnError(t *testing.T) {
	a := newApp(t, Options{Content: "abc", ContinueOnError: true})

	if err := a.Run(strings.NewReader("x\ninsert_char ab\nx\n")); err != nil {
		t.Fatal(err)
	}
	if got := a.Text(); got != "c" {
		t.Errorf("text = %q, want %q", got, "c")
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line      string
		name      string
		param     string
		ok        bool
		malformed bool
	}{
		{"", "", "", false, false},
		{"   # comment", "", "", false, false},
		{"move_left", "move_left", "", true, false},
		{"insert_char  ", "insert_char", " ", true, false},
		{"find_next foo bar\r", "find_next", "foo bar", true, false},
		{`insert_string "a\nb"`, "insert_string", "a\nb", true, false},
		{`insert_string "a\q"`, "", "", false, true},
		{"  replace x with y", "replace", "x with y", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, param, ok, err := parseCommand(tt.line)
			if tt.malformed {
				if !errors.Is(err, dispatcher.ErrMalformedParameter) {
					t.Errorf("expected ErrMalformedParameter, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if name != tt.name || param != tt.param || ok != tt.ok {
				t.Errorf("got (%q, %q, %v), want (%q, %q, %v)", name, param, ok, tt.name, tt.param, tt.ok)
			}
		})
	}
}

func TestDiff(t *testing.T) {
	a := newApp(t, Options{Content: "abc\ndef"})
	if got := a.Diff("doc.txt"); got != "" {
		t.Errorf("diff before any edit = %q", got)
	}

	if err := a.Run(strings.NewReader("x\n")); err != nil {
		t.Fatal(err)
	}
	diff := a.Diff("doc.txt")
	for _, want := range []string{"--- doc.txt", "+++ doc.txt (edited)", "-abc", "+bc", " def"} {
		if !strings.Contains(diff, want) {
			t.Errorf("diff missing %q:\n%s", want, diff)
		}
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editcore.toml")
	content := `
[editor]
indentWidth = 2
lineEnding = "crlf"

[dispatcher]
async = true
metrics = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	a := newApp(t, Options{ConfigPath: path, Content: "a\nb"})
	if err := a.Run(strings.NewReader("select_all\nindent_selection\n")); err != nil {
		t.Fatal(err)
	}
	if got, want := a.Text(), "  a\r\n  b"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
	m := a.Metrics()
	if m == nil {
		t.Fatal("metrics should be enabled by the config file")
	}
	if got := m.TotalDispatches(); got != 2 {
		t.Errorf("dispatches = %d, want 2", got)
	}
}

func TestLineEndingFromConfig(t *testing.T) {
	tests := []struct {
		setting string
		content string
		want    string
	}{
		{"cr", "a\nb", "a\rb"},
		{"auto", "a\r\nb\r\n", "a\r\nb\r\n"},
		{"auto", "a\nb", "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.setting+" "+tt.content, func(t *testing.T) {
			t.Setenv("EDITCORE_LINE_ENDING", tt.setting)
			a := newApp(t, Options{Content: tt.content})
			if got := a.Text(); got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigError(t *testing.T) {
	_, err := New(Options{ConfigPath: "editcore.ini", Logger: zap.NewNop()})
	var ierr *InitError
	if !errors.As(err, &ierr) || ierr.Component != "config" {
		t.Errorf("expected config InitError, got %v", err)
	}
}

func TestStatsAndMode(t *testing.T) {
	a := newApp(t, Options{Content: "one\ntwo", Metrics: true})

	if err := a.Run(strings.NewReader("j\nl\nswitch_mode insert\n")); err != nil {
		t.Fatal(err)
	}
	stats := a.Stats()
	if stats.Line != 2 || stats.Column != 2 {
		t.Errorf("position = %d:%d, want 2:2", stats.Line, stats.Column)
	}
	if a.Mode() != "insert" {
		t.Errorf("mode = %q, want insert", a.Mode())
	}
	if a.Metrics() == nil {
		t.Fatal("Options.Metrics should enable metrics")
	}
	if got := a.Metrics().Report().Total.Changes; got != 3 {
		t.Errorf("changes = %d, want 3", got)
	}
}
