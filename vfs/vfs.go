// Package vfs is the filesystem seam between the exporter and the host
// OS. The exporter never touches process-wide filesystem state; it is
// handed an FS explicitly.
package vfs

import (
	"io"
	"io/fs"
	"os"
)

type FS interface {
	Open(path string) (io.ReadCloser, error)
	Create(path string) (io.WriteCloser, error)
	Stat(path string) (fs.FileInfo, error)
}

// OS is the host filesystem.
type OS struct{}

func (OS) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (OS) Create(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func (OS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// WriteFile writes data to path, replacing any previous contents.
func WriteFile(fsys FS, path string, data []byte) error {
	f, err := fsys.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
