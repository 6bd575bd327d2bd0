// Package jsonfile stores every tab group in a single JSON document.
// It needs no database engine and suits synced folders.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/tabstash/internal/domain/entity"
	"github.com/bnema/tabstash/internal/domain/repository"
	"github.com/bnema/tabstash/internal/infrastructure/persistence"
	"github.com/bnema/tabstash/internal/logging"
	"github.com/spf13/afero"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// document is the on-disk layout.
type document struct {
	Version   int                  `json:"version"`
	TabGroups []persistence.Record `json:"tabGroups"`
}

const documentVersion = 1

// Store is a repository.TabGroupRepository backed by one JSON file.
// Every write rewrites the whole document through a temp file and a rename.
type Store struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

var _ repository.TabGroupRepository = (*Store)(nil)

// New creates a store at path on fsys. The file is created on first write.
func New(fsys afero.Fs, path string) *Store {
	return &Store{fs: fsys, path: path}
}

// NewOS creates a store on the real filesystem.
func NewOS(path string) *Store {
	return New(afero.NewOsFs(), path)
}

func (s *Store) Put(ctx context.Context, group *entity.TabGroup) error {
	if group == nil {
		return errors.New("tab group cannot be nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	rec := persistence.ToRecord(group)
	replaced := false
	for i := range doc.TabGroups {
		if doc.TabGroups[i].ID == rec.ID {
			doc.TabGroups[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		doc.TabGroups = append(doc.TabGroups, rec)
	}

	logging.FromContext(ctx).Debug().
		Str("group_id", rec.ID).
		Bool("replaced", replaced).
		Msg("writing tab group document")

	return s.write(doc)
}

func (s *Store) Get(_ context.Context, id entity.TabGroupID) (*entity.TabGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, rec := range doc.TabGroups {
		if rec.ID == string(id) {
			return rec.ToEntity(), nil
		}
	}
	return nil, nil
}

func (s *Store) Delete(_ context.Context, id entity.TabGroupID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	kept := doc.TabGroups[:0]
	for _, rec := range doc.TabGroups {
		if rec.ID != string(id) {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(doc.TabGroups) {
		return nil
	}
	doc.TabGroups = kept
	return s.write(doc)
}

func (s *Store) List(_ context.Context, order repository.ListOrder) ([]*entity.TabGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	groups := make([]*entity.TabGroup, 0, len(doc.TabGroups))
	for _, rec := range doc.TabGroups {
		groups = append(groups, rec.ToEntity())
	}
	persistence.SortGroups(groups, order)
	return groups, nil
}

// load reads the document. A missing file is an empty store; an unreadable or
// undecodable one makes the store unavailable.
func (s *Store) load() (*document, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return &document{Version: documentVersion}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %w", repository.ErrUnavailable, s.path, err)
	}
	if len(data) == 0 {
		return &document{Version: documentVersion}, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", repository.ErrUnavailable, s.path, err)
	}
	return &doc, nil
}

func (s *Store) write(doc *document) error {
	doc.Version = documentVersion
	if doc.TabGroups == nil {
		doc.TabGroups = []persistence.Record{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tab group document: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("%w: create directory: %w", repository.ErrUnavailable, err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
