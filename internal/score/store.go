// Package score keeps the running and best scores for each mode and persists
// the best scores to a small JSON record.
package score

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
)

// record is the on-disk format. Missing fields decode as zero.
type record struct {
	NormalBest   int `json:"normal_best"`
	HardcoreBest int `json:"hardcore_best"`
}

type Store struct {
	path string
	log  *log.Logger

	current [2]int
	best    [2]int
}

// Load reads best scores from path. A missing file is not an error. Any other
// failure is logged and whatever decoded cleanly is kept. An empty path keeps
// scores in memory only.
func Load(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{path: path, log: logger}
	if err := s.load(); err != nil {
		s.log.Printf("Failed to load scores: %v", err)
	}
	return s
}

func (s *Store) load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	var r record
	// A type error on one field still fills the others.
	err = json.Unmarshal(data, &r)
	s.best[Normal] = max(r.NormalBest, 0)
	s.best[Hardcore] = max(r.HardcoreBest, 0)
	if err != nil {
		return fmt.Errorf("decode %s: %w", s.path, err)
	}
	return nil
}

// Update adds points to the running score of mode and returns the new value.
// The best score is written through to disk only when it strictly increases.
func (s *Store) Update(points int, mode Mode) int {
	i := index(mode)
	s.current[i] += points
	if s.current[i] > s.best[i] {
		s.best[i] = s.current[i]
		s.Save()
	}
	return s.current[i]
}

// Reset zeroes the running score of mode. The best score is untouched.
func (s *Store) Reset(mode Mode) {
	s.current[index(mode)] = 0
}

func (s *Store) Current(mode Mode) int { return s.current[index(mode)] }

func (s *Store) Best(mode Mode) int { return s.best[index(mode)] }

// Save overwrites the record on disk through a synced temp file and a rename,
// so readers see either the old record or the new one. Failures are logged
// and returned.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}
	data, err := json.Marshal(record{
		NormalBest:   s.best[Normal],
		HardcoreBest: s.best[Hardcore],
	})
	if err == nil {
		err = writeAtomic(s.path, data)
	}
	if err != nil {
		s.log.Printf("Failed to save scores: %v", err)
	}
	return err
}

func index(m Mode) int {
	if m == Hardcore {
		return int(Hardcore)
	}
	return int(Normal)
}
