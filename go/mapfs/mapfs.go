// Package mapfs exposes a list of files scattered over the OS file system
// as one flat fs.FS, so files named on the command line can be handled
// like a directory.
package mapfs

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// MapFS maps names in the file system to OS paths.
type MapFS map[string]string

var _ fs.FS = (*MapFS)(nil)

// New returns a MapFS holding paths.
func New(paths ...string) MapFS {
	m := make(MapFS, len(paths))
	for _, p := range paths {
		m.Add(p)
	}
	return m
}

func (m MapFS) Open(name string) (fs.File, error) {
	if name == "." {
		var entries []fs.DirEntry
		for base, fullpath := range m {
			info, err := os.Stat(fullpath)
			if err != nil {
				continue
			}
			entries = append(entries, fileDirEntry{name: base, info: info})
		}
		return &virtualDir{entries: entries}, nil
	}

	fullpath, ok := m[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return os.Open(fullpath)
}

// Add makes path available under its base name. If that name is taken by
// another path, a numbered name ("query.2.sql") is used instead. It
// returns the name chosen.
func (m MapFS) Add(path string) string {
	base := filepath.Base(path)
	name := base
	for i := 2; ; i++ {
		existing, taken := m[name]
		if !taken || existing == path {
			break
		}
		ext := filepath.Ext(base)
		name = strings.TrimSuffix(base, ext) + "." + strconv.Itoa(i) + ext
	}
	m[name] = path
	return name
}

// Path returns the OS path behind name.
func (m MapFS) Path(name string) string {
	if p, ok := m[name]; ok {
		return p
	}
	return name
}

// virtualDir is the root directory listing every file.
type virtualDir struct {
	entries []fs.DirEntry
	pos     int
}

func (d *virtualDir) Stat() (fs.FileInfo, error) {
	return dirInfo{name: ".", mode: fs.ModeDir}, nil
}

func (d *virtualDir) Read([]byte) (int, error) {
	return 0, fmt.Errorf("read .: %w", fs.ErrInvalid)
}

func (d *virtualDir) Close() error {
	return nil
}

func (d *virtualDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if d.pos >= len(d.entries) {
		if n <= 0 {
			return nil, nil
		}
		return nil, io.EOF
	}
	if n <= 0 || d.pos+n > len(d.entries) {
		n = len(d.entries) - d.pos
	}
	entries := d.entries[d.pos : d.pos+n]
	d.pos += n
	return entries, nil
}

type fileDirEntry struct {
	name string
	info os.FileInfo
}

func (e fileDirEntry) Name() string               { return e.name }
func (e fileDirEntry) IsDir() bool                { return e.info.IsDir() }
func (e fileDirEntry) Type() fs.FileMode          { return e.info.Mode().Type() }
func (e fileDirEntry) Info() (fs.FileInfo, error) { return e.info, nil }

type dirInfo struct {
	name string
	mode fs.FileMode
}

func (d dirInfo) Name() string       { return d.name }
func (d dirInfo) Size() int64        { return 0 }
func (d dirInfo) Mode() fs.FileMode  { return d.mode }
func (d dirInfo) ModTime() time.Time { return time.Time{} }
func (d dirInfo) IsDir() bool        { return d.mode.IsDir() }
func (d dirInfo) Sys() interface{}   { return nil }
