// Package yastorage exposes a removable key volume (an SD card on the device,
// a directory on a host) through afero, so the same loader runs against the
// real filesystem and an in-memory one.
//
// Example usage:
//
//	vol, err := yastorage.Mount(afero.NewOsFs(), "/media/sd")
//	if err != nil {
//	    // err.Code() == yaerrors.CodeStorageInit
//	}
//
//	der, err := vol.Load("/public.der", yastorage.DefaultMaxFileSize)
package yastorage

import (
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/YaCodeDev/GoYaRSADemo/yaerrors"
	"github.com/spf13/afero"
)

// DefaultMaxFileSize is the capacity of a key buffer on the device.
const DefaultMaxFileSize = 2048

// Causes attached to storage failures.
var (
	ErrNotDirectory = errors.New("volume root is not a directory")
	ErrEmptyFile    = errors.New("file is empty")
	ErrFileTooLarge = errors.New("file exceeds buffer capacity")
)

// Volume is a mounted key volume. Names passed to its methods are slash
// separated and resolved against the volume root, a leading slash is optional.
type Volume struct {
	fs   afero.Fs
	root string
}

// Mount checks that root exists on fs and is a directory.
func Mount(fs afero.Fs, root string) (*Volume, yaerrors.Error) {
	if fs == nil {
		return nil, yaerrors.FromString(yaerrors.CodeStorageInit, "[STORAGE] filesystem is nil")
	}

	if root == "" {
		root = "/"
	}

	info, err := fs.Stat(root)
	if err != nil {
		return nil, yaerrors.FromError(
			yaerrors.CodeStorageInit,
			err,
			"[STORAGE] failed to mount "+root,
		)
	}

	if !info.IsDir() {
		return nil, yaerrors.FromError(
			yaerrors.CodeStorageInit,
			ErrNotDirectory,
			"[STORAGE] failed to mount "+root,
		)
	}

	return &Volume{fs: fs, root: root}, nil
}

// Root returns the directory the volume is mounted at.
func (v *Volume) Root() string {
	return v.root
}

// Size returns the size in bytes of the named file.
func (v *Volume) Size(name string) (int64, yaerrors.Error) {
	info, err := v.fs.Stat(v.resolve(name))
	if err != nil {
		return 0, yaerrors.FromError(yaerrors.CodeFileOpen, err, "[STORAGE] stat "+name)
	}

	return info.Size(), nil
}

// Load reads the whole named file. A file with more than limit bytes is rejected
// instead of being truncated, a non-positive limit disables the check.
// An empty file is an error, a key file always has content.
func (v *Volume) Load(name string, limit int64) ([]byte, yaerrors.Error) {
	file, err := v.fs.Open(v.resolve(name))
	if err != nil {
		return nil, yaerrors.FromError(yaerrors.CodeFileOpen, err, "[STORAGE] open "+name)
	}
	defer file.Close()

	var reader io.Reader = file
	if limit > 0 {
		reader = io.LimitReader(file, limit+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, yaerrors.FromError(yaerrors.CodeFileRead, err, "[STORAGE] read "+name)
	}

	if len(data) == 0 {
		return nil, yaerrors.FromError(yaerrors.CodeFileEmpty, ErrEmptyFile, "[STORAGE] load "+name)
	}

	if limit > 0 && int64(len(data)) > limit {
		return nil, yaerrors.FromError(
			yaerrors.CodeFileTooLarge,
			ErrFileTooLarge,
			fmt.Sprintf("[STORAGE] load %s: limit is %d bytes", name, limit),
		)
	}

	return data, nil
}

func (v *Volume) resolve(name string) string {
	clean := path.Clean("/" + filepath.ToSlash(name))

	return filepath.Join(v.root, filepath.FromSlash(clean))
}
