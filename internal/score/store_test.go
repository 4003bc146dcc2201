package score

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) (*Store, string, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "scores.json")
	return Load(path, log.New(&buf, "", 0)), path, &buf
}

func TestLoadMissingFileDefaultsToZero(t *testing.T) {
	s, _, logs := newTestStore(t)
	if s.Best(Normal) != 0 || s.Best(Hardcore) != 0 {
		t.Fatalf("expected zero bests, got normal=%d hardcore=%d", s.Best(Normal), s.Best(Hardcore))
	}
	if logs.Len() != 0 {
		t.Errorf("missing file should not be logged, got %q", logs.String())
	}
}

func TestLoadReadsBothFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte(`{"normal_best": 12, "hardcore_best": 7}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s := Load(path, log.New(&bytes.Buffer{}, "", 0))
	if s.Best(Normal) != 12 || s.Best(Hardcore) != 7 {
		t.Fatalf("got normal=%d hardcore=%d", s.Best(Normal), s.Best(Hardcore))
	}
}

func TestLoadPartialRecordKeepsGoodField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte(`{"normal_best": 9, "hardcore_best": "lots"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	s := Load(path, log.New(&logs, "", 0))
	if s.Best(Normal) != 9 {
		t.Errorf("normal best = %d, want 9", s.Best(Normal))
	}
	if s.Best(Hardcore) != 0 {
		t.Errorf("hardcore best = %d, want 0", s.Best(Hardcore))
	}
	if !strings.Contains(logs.String(), "Failed to load scores") {
		t.Errorf("expected load failure to be logged, got %q", logs.String())
	}
}

func TestLoadCorruptFileIsNonFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatal(err)
	}
	s := Load(path, log.New(&bytes.Buffer{}, "", 0))
	if s.Best(Normal) != 0 || s.Best(Hardcore) != 0 {
		t.Fatalf("corrupt file should fall back to zero")
	}
}

func TestUpdateWritesOnlyOnNewBest(t *testing.T) {
	s, path, _ := newTestStore(t)
	s.best[Normal] = 10

	s.Update(4, Normal)
	s.Update(6, Normal) // ties best, no write
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("record written without a new best")
	}

	if got := s.Update(1, Normal); got != 11 {
		t.Fatalf("current = %d, want 11", got)
	}
	if s.Best(Normal) != 11 {
		t.Fatalf("best = %d after new best", s.Best(Normal))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"normal_best":11`) {
		t.Errorf("record = %s", data)
	}
}

// The record is removed after every write so a rewrite on a non-increase
// would show up as the file coming back.
func TestBestIsMonotonic(t *testing.T) {
	s, path, _ := newTestStore(t)
	prev := 0
	for i, pts := range []int{3, 0, 5, 2, 0, 0, 7, 1} {
		if i == 4 {
			s.Reset(Hardcore)
		}
		s.Update(pts, Hardcore)
		best := s.Best(Hardcore)
		if best < prev {
			t.Fatalf("best went down: %d -> %d", prev, best)
		}
		data, err := os.ReadFile(path)
		switch {
		case best > prev && err != nil:
			t.Fatalf("update %d: new best %d not written: %v", i, best, err)
		case best > prev && !strings.Contains(string(data), fmt.Sprintf(`"hardcore_best":%d`, best)):
			t.Fatalf("update %d: record = %s, want hardcore_best %d", i, data, best)
		case best == prev && err == nil:
			t.Fatalf("update %d: record rewritten without a new best", i)
		}
		os.Remove(path)
		prev = best
	}
}

func TestResetKeepsBest(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.Update(8, Normal)
	s.Reset(Normal)
	if s.Current(Normal) != 0 {
		t.Errorf("current = %d after reset", s.Current(Normal))
	}
	if s.Best(Normal) != 8 {
		t.Errorf("best = %d after reset, want 8", s.Best(Normal))
	}
}

func TestModesAreIndependent(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.Update(5, Normal)
	s.Update(2, Hardcore)
	if s.Current(Normal) != 5 || s.Current(Hardcore) != 2 {
		t.Fatalf("normal=%d hardcore=%d", s.Current(Normal), s.Current(Hardcore))
	}
}

func TestSaveFailureIsLogged(t *testing.T) {
	var logs bytes.Buffer
	s := Load(filepath.Join(t.TempDir(), "missing-dir", "scores.json"), log.New(&logs, "", 0))
	if err := s.Save(); err == nil {
		t.Fatal("expected save into a missing directory to fail")
	}
	if !strings.Contains(logs.String(), "Failed to save scores") {
		t.Errorf("logs = %q", logs.String())
	}
}

func TestSaveOverwritesWithoutLeftovers(t *testing.T) {
	s, path, logs := newTestStore(t)
	if err := os.WriteFile(path, []byte(`{"normal_best": 1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s.Update(6, Normal)
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"normal_best":6`) {
		t.Errorf("record = %s", data)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("directory holds %v, want only the record", names)
	}
	if logs.Len() != 0 {
		t.Errorf("logs = %q", logs.String())
	}
}

func TestSaveRoundTrip(t *testing.T) {
	s, path, _ := newTestStore(t)
	s.Update(4, Normal)
	s.Update(9, Hardcore)
	r := Load(path, nil)
	if r.Best(Normal) != 4 || r.Best(Hardcore) != 9 {
		t.Fatalf("reloaded normal=%d hardcore=%d", r.Best(Normal), r.Best(Hardcore))
	}
}

func TestEmptyPathIsMemoryOnly(t *testing.T) {
	var logs bytes.Buffer
	s := Load("", log.New(&logs, "", 0))
	s.Update(3, Normal)
	if s.Best(Normal) != 3 {
		t.Fatalf("best = %d", s.Best(Normal))
	}
	if logs.Len() != 0 {
		t.Errorf("memory store logged %q", logs.String())
	}
}
