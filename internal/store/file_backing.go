package store

import (
	"errors"
	"os"
	"path/filepath"
)

const docExt = ".json"

// FileBacking persists each document as <dir>/<name>.json. Writes go through
// a temp file and rename so readers never observe a partial document.
type FileBacking struct {
	dir string
}

func NewFileBacking(dir string) *FileBacking {
	return &FileBacking{dir: dir}
}

func (fb *FileBacking) path(name string) string {
	return filepath.Join(fb.dir, name+docExt)
}

func (fb *FileBacking) Read(name string) ([]byte, bool, error) {
	path := fb.path(name)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if info.IsDir() {
		return nil, false, &DirectoryError{Path: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (fb *FileBacking) Write(name string, data []byte) error {
	path := fb.path(name)

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return &DirectoryError{Path: path}
	}

	if err := os.MkdirAll(fb.dir, 0755); err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, path)
}

// Validate is the startup health check: it ensures the storage directory is
// usable and that no known document path has been shadowed by a directory.
func (fb *FileBacking) Validate() error {
	if err := os.MkdirAll(fb.dir, 0755); err != nil {
		return err
	}

	var errs []error
	for _, name := range DocNames {
		path := fb.path(name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.IsDir() {
			errs = append(errs, &DirectoryError{Path: path})
		}
	}
	return errors.Join(errs...)
}
