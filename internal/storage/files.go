package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/osse101/craftbench/internal/domain"
)

// FileStore holds recipe documents addressed by folder and file name.
// Write returns the logical path of the written document.
type FileStore interface {
	EnsureFolder(ctx context.Context, folder string) error
	List(ctx context.Context, folder string) ([]string, error)
	Read(ctx context.Context, folder, name string) ([]byte, error)
	Write(ctx context.Context, folder, name string, data []byte) (string, error)
}

// DiskStore keeps documents as files under a root directory.
type DiskStore struct {
	root string
}

// NewDiskStore creates a store rooted at dir.
func NewDiskStore(dir string) (*DiskStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	return &DiskStore{root: abs}, nil
}

// resolve maps a logical folder (and optional name) under the root,
// rejecting anything that would escape it.
func (d *DiskStore) resolve(folder, name string) (string, error) {
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: file name %q", domain.ErrInvalidInput, name)
	}
	logical := path.Clean("/" + filepath.ToSlash(folder))
	full := filepath.Join(d.root, filepath.FromSlash(logical), name)
	rel, err := filepath.Rel(d.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: path %q escapes data dir", domain.ErrInvalidInput, path.Join(folder, name))
	}
	return full, nil
}

func (d *DiskStore) EnsureFolder(ctx context.Context, folder string) error {
	dir, err := d.resolve(folder, "")
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, dirPerm)
}

func (d *DiskStore) List(ctx context.Context, folder string) ([]string, error) {
	dir, err := d.resolve(folder, "")
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), domain.FileExtension) {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

func (d *DiskStore) Read(ctx context.Context, folder, name string) ([]byte, error) {
	full, err := d.resolve(folder, name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path.Join(folder, name))
		}
		return nil, err
	}
	return data, nil
}

// Write replaces the file atomically through a temp file and rename.
func (d *DiskStore) Write(ctx context.Context, folder, name string, data []byte) (string, error) {
	full, err := d.resolve(folder, name)
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		return "", err
	}
	return path.Join(path.Clean("/"+filepath.ToSlash(folder)), name), nil
}
