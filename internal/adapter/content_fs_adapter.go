package adapter

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

// ContentFSAdapter abstracts the file reads the resolvers perform so the
// domain can be tested against an in-memory filesystem.
type ContentFSAdapter interface {
	// ReadFile loads the full content of the file at path.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)
}

// AferoContentFSAdapter reads files through an afero filesystem.
type AferoContentFSAdapter struct {
	fs afero.Fs
}

// NewContentFSAdapter wraps an existing afero filesystem.
func NewContentFSAdapter(fsys afero.Fs) *AferoContentFSAdapter {
	return &AferoContentFSAdapter{fs: fsys}
}

// NewLocalContentFSAdapter reads from the host filesystem. A root other than
// "" or "/" confines every read beneath it, which allows scanning a mounted
// image or chroot whose blueprint uses absolute in-image pathnames.
func NewLocalContentFSAdapter(root string) *AferoContentFSAdapter {
	fsys := afero.NewOsFs()
	if root != "" && filepath.Clean(root) != string(filepath.Separator) {
		fsys = afero.NewBasePathFs(fsys, root)
	}

	return NewContentFSAdapter(fsys)
}

// ReadFile loads file contents. Directories are rejected with fs.ErrInvalid.
func (a *AferoContentFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := a.fs.Stat(string(path))
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: string(path), Err: fs.ErrInvalid}
	}

	return afero.ReadFile(a.fs, string(path))
}
