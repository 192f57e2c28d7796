package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

// ErrBlueprintLocked is returned when another process holds the blueprint lock.
var ErrBlueprintLocked = errors.New("blueprint is locked by another process")

const lockRetryDelay = 100 * time.Millisecond

// BlueprintStore loads and saves blueprint documents.
type BlueprintStore interface {
	Load(ctx context.Context, path m.Path) (*m.Document, error)
	Save(ctx context.Context, path m.Path, doc *m.Document) error
	// Lock takes an exclusive advisory lock guarding a read-modify-write of
	// the blueprint at path. The returned function releases it.
	Lock(ctx context.Context, path m.Path) (func() error, error)
}

// FileBlueprintStore keeps blueprints as JSON or YAML files. The format is
// chosen by extension: ".json" is JSON, anything else is YAML.
type FileBlueprintStore struct {
	fs          afero.Fs
	lockTimeout time.Duration
}

// NewFileBlueprintStore constructs a store on the host filesystem.
func NewFileBlueprintStore() *FileBlueprintStore {
	return NewFileBlueprintStoreWithFS(afero.NewOsFs())
}

// NewFileBlueprintStoreWithFS constructs a store on the given filesystem.
func NewFileBlueprintStoreWithFS(fsys afero.Fs) *FileBlueprintStore {
	return &FileBlueprintStore{
		fs:          fsys,
		lockTimeout: 10 * time.Second,
	}
}

// Load reads and decodes the blueprint at path.
func (s *FileBlueprintStore) Load(ctx context.Context, path m.Path) (*m.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, string(path))
	if err != nil {
		return nil, fmt.Errorf("read blueprint %s: %w", path, err)
	}

	doc := &m.Document{}

	if isJSON(path) {
		err = json.Unmarshal(data, doc)
	} else {
		err = yaml.Unmarshal(data, doc)
	}

	if err != nil {
		return nil, fmt.Errorf("decode blueprint %s: %w", path, err)
	}

	return doc, nil
}

// Save encodes doc and replaces the file at path atomically.
func (s *FileBlueprintStore) Save(ctx context.Context, path m.Path, doc *m.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeDocument(path, doc)
	if err != nil {
		return fmt.Errorf("encode blueprint %s: %w", path, err)
	}

	dir := filepath.Dir(string(path))
	if err := s.fs.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create blueprint dir %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(string(path))+".*")
	if err != nil {
		return fmt.Errorf("create temp blueprint: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)

		return fmt.Errorf("write temp blueprint: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("close temp blueprint: %w", err)
	}

	if err := s.fs.Rename(tmpName, string(path)); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("replace blueprint %s: %w", path, err)
	}

	return nil
}

// Lock acquires <path>.lock with flock, retrying until the lock timeout.
func (s *FileBlueprintStore) Lock(ctx context.Context, path m.Path) (func() error, error) {
	lock := flock.New(string(path) + ".lock")

	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		if lockCtx.Err() != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("%w: %s", ErrBlueprintLocked, lock.Path())
		}

		return nil, fmt.Errorf("lock blueprint %s: %w", path, err)
	}

	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrBlueprintLocked, lock.Path())
	}

	return lock.Unlock, nil
}

func isJSON(path m.Path) bool {
	return strings.EqualFold(filepath.Ext(string(path)), ".json")
}

func encodeDocument(path m.Path, doc *m.Document) ([]byte, error) {
	var buf bytes.Buffer

	if isJSON(path) {
		encoder := json.NewEncoder(&buf)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(doc); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	}

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
