// Package vfs provides the workspace-scoped virtual filesystem that shell
// builtins operate against. Every operation is keyed by a workspace ID and a
// slash-separated path relative to that workspace's root; workspaces never
// see each other's files.
package vfs

import (
	"context"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is returned when a read targets a path that doesn't exist.
var ErrNotFound = os.ErrNotExist

// Store is the filesystem collaborator used by the interpreter. All methods
// take a context because implementations may be backed by remote storage.
type Store interface {
	// ReadFile returns the content of the named file, or an error wrapping
	// ErrNotFound if it doesn't exist.
	ReadFile(ctx context.Context, workspaceID, name string) (string, error)
	// WriteFile writes content to the named file, creating intermediate
	// directories implicitly.
	WriteFile(ctx context.Context, workspaceID, name, content string) error
	// ListFiles returns the sorted entries of a directory. Directory names
	// are suffixed with "/".
	ListFiles(ctx context.Context, workspaceID, dir string) ([]string, error)
	// DeleteFile removes the named file or empty directory.
	DeleteFile(ctx context.Context, workspaceID, name string) error
	// FileExists reports whether the named file exists.
	FileExists(ctx context.Context, workspaceID, name string) (bool, error)
}

// aferoStore adapts any afero.Fs into a Store. Workspace IDs map to
// top-level directories of the backing filesystem.
type aferoStore struct {
	fs afero.Fs
}

var _ Store = (*aferoStore)(nil)

// NewStore wraps an afero filesystem as a workspace Store.
func NewStore(base afero.Fs) Store {
	return &aferoStore{fs: base}
}

// NewMemStore returns an in-memory Store. It is the default backing for
// tests and the playground.
func NewMemStore() Store {
	return NewStore(afero.NewMemMapFs())
}

// NewDirStore returns a Store rooted at a real directory. Paths outside the
// root are not reachable.
func NewDirStore(root string) Store {
	return NewStore(afero.NewBasePathFs(afero.NewOsFs(), root))
}

func (s *aferoStore) key(workspaceID, name string) string {
	name = strings.TrimPrefix(name, "/")
	return path.Join("/", workspaceID, name)
}

func (s *aferoStore) ReadFile(ctx context.Context, workspaceID, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	content, err := afero.ReadFile(s.fs, s.key(workspaceID, name))
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func (s *aferoStore) WriteFile(ctx context.Context, workspaceID, name, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := s.key(workspaceID, name)
	if err := s.fs.MkdirAll(path.Dir(key), 0755); err != nil {
		return err
	}
	return afero.WriteFile(s.fs, key, []byte(content), 0644)
}

func (s *aferoStore) ListFiles(ctx context.Context, workspaceID, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	infos, err := afero.ReadDir(s.fs, s.key(workspaceID, dir))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *aferoStore) DeleteFile(ctx context.Context, workspaceID, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.fs.Remove(s.key(workspaceID, name))
	if os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return err
}

func (s *aferoStore) FileExists(ctx context.Context, workspaceID, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	info, err := s.fs.Stat(s.key(workspaceID, name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}
