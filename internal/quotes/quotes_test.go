package quotes

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/verte-zerg/tuitype/internal/model"
)

func TestEmbeddedCoversEveryMode(t *testing.T) {
	m, err := Embedded(WithSeed(1))
	if err != nil {
		t.Fatalf("embedded: %v", err)
	}
	counts := m.CountByMode()
	for _, mode := range model.Modes {
		if counts[mode] == 0 {
			t.Fatalf("expected passages for %s mode", mode)
		}
		p, err := m.Random(mode)
		if err != nil {
			t.Fatalf("random %s: %v", mode, err)
		}
		if !mode.Contains(p.Length) {
			t.Fatalf("passage length %d outside %s bucket", p.Length, mode)
		}
		if p.Text == "" || p.Source == "" {
			t.Fatalf("expected text and source, got %+v", p)
		}
	}
}

func TestRandomNoPassage(t *testing.T) {
	m := NewManager([]model.Passage{{ID: 1, Text: "short one", Length: 9}})
	_, err := m.Random(model.ModeLong)
	if !errors.Is(err, ErrNoPassage) {
		t.Fatalf("expected ErrNoPassage, got %v", err)
	}
}

func TestRandomSkipsBucketGaps(t *testing.T) {
	m := NewManager([]model.Passage{
		{ID: 1, Text: strings.Repeat("a", 100), Length: 100},
		{ID: 2, Text: strings.Repeat("b", 300), Length: 300},
	})
	for _, mode := range model.Modes {
		if _, err := m.Random(mode); !errors.Is(err, ErrNoPassage) {
			t.Fatalf("%s: expected ErrNoPassage, got %v", mode, err)
		}
	}
}

func TestRandomStaysInBucket(t *testing.T) {
	m := NewManager([]model.Passage{
		{ID: 1, Text: "a", Length: 50},
		{ID: 2, Text: "b", Length: 150},
		{ID: 3, Text: "c", Length: 60},
	}, WithSeed(7))
	for i := 0; i < 50; i++ {
		p, err := m.Random(model.ModeShort)
		if err != nil {
			t.Fatalf("random: %v", err)
		}
		if p.ID == 2 {
			t.Fatalf("medium passage returned for short mode")
		}
	}
}

func TestByID(t *testing.T) {
	m, err := Embedded()
	if err != nil {
		t.Fatalf("embedded: %v", err)
	}
	p, ok := m.ByID(1)
	if !ok || p.ID != 1 {
		t.Fatalf("expected passage 1, got %+v %v", p, ok)
	}
	if _, ok := m.ByID(-1); ok {
		t.Fatalf("expected missing id")
	}
}

func TestParseJSONArray(t *testing.T) {
	got, err := Parse([]byte(`[{"text":" hello there ","source":"me"},{"text":""}]`), ".json", "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 passage, got %d", len(got))
	}
	if got[0].Text != "hello there" || got[0].Length != 11 || got[0].ID != 1 {
		t.Fatalf("unexpected passage %+v", got[0])
	}
}

func TestParseYAML(t *testing.T) {
	doc := `language: english
quotes:
  - id: 4
    text: Clear is better than clever.
    source: Go Proverbs
  - text: Errors are values.
`
	got, err := Parse([]byte(doc), ".yaml", "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 passages, got %d", len(got))
	}
	if got[0].ID != 4 || got[1].ID != 5 {
		t.Fatalf("unexpected ids %d %d", got[0].ID, got[1].ID)
	}
	if got[1].Length != len("Errors are values.") {
		t.Fatalf("unexpected length %d", got[1].Length)
	}

	list, err := Parse([]byte("- text: one\n- text: two\n"), ".yml", "")
	if err != nil {
		t.Fatalf("parse list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 passages, got %d", len(list))
	}
}

func TestParseUnsupported(t *testing.T) {
	if _, err := Parse([]byte("x"), ".csv", ""); err == nil {
		t.Fatalf("expected error for csv")
	}
}

func TestLoadFileText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.txt")
	content := "# comment\nfirst line\n\n  second line  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 passages, got %d", len(got))
	}
	if got[1].Text != "second line" || got[1].Source != "mine" {
		t.Fatalf("unexpected passage %+v", got[1])
	}
}

func TestLoadFileZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.json.zst")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatalf("encoder: %v", err)
	}
	if _, err := enc.Write([]byte(`{"quotes":[{"id":9,"text":"compressed text","source":"zst"}]}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != 9 || got[0].Text != "compressed text" {
		t.Fatalf("unexpected passages %+v", got)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
