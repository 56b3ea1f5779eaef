// Package fsutil provides small file and path helpers over an afero
// filesystem: typed read/write, directory management, listing, copy/move
// and size reporting. Path-only helpers are plain functions; everything
// touching the filesystem hangs off FS so tests can swap in a memory fs.
package fsutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// FS wraps an afero filesystem with convenience operations.
type FS struct {
	fs afero.Fs
}

// New wraps the given filesystem. A nil fs defaults to the OS filesystem.
func New(fs afero.Fs) FS {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return FS{fs: fs}
}

// NewOS returns an FS backed by the operating system filesystem.
func NewOS() FS {
	return New(nil)
}

// ReadText reads a file and returns its contents as a string.
func (f FS) ReadText(path string) (string, error) {
	data, err := f.ReadBytes(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText writes string content to a file, truncating existing content.
func (f FS) WriteText(path, content string) error {
	return afero.WriteFile(f.fs, path, []byte(content), filePermissions)
}

// ReadLines reads a text file and returns its lines. When strip is true,
// surrounding whitespace is trimmed from each line.
func (f FS) ReadLines(path string, strip bool) ([]string, error) {
	content, err := f.ReadText(path)
	if err != nil {
		return nil, err
	}

	lines := splitLines(content)
	if strip {
		for i, line := range lines {
			lines[i] = strings.TrimSpace(line)
		}
	}
	return lines, nil
}

// WriteLines joins lines with newlines and writes them to a file.
func (f FS) WriteLines(path string, lines []string) error {
	return f.WriteText(path, strings.Join(lines, "\n"))
}

// ReadJSON reads a JSON file and unmarshals it into dest.
func (f FS) ReadJSON(path string, dest interface{}) error {
	data, err := f.ReadBytes(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// WriteJSON writes data to a file as two-space indented JSON with
// non-ASCII characters preserved unescaped.
func (f FS) WriteJSON(path string, data interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return err
	}
	return afero.WriteFile(f.fs, path, bytes.TrimSuffix(buf.Bytes(), []byte("\n")), filePermissions)
}

// ReadBytes reads a file as raw bytes.
func (f FS) ReadBytes(path string) ([]byte, error) {
	return afero.ReadFile(f.fs, path)
}

// WriteBytes writes raw bytes to a file.
func (f FS) WriteBytes(path string, data []byte) error {
	return afero.WriteFile(f.fs, path, data, filePermissions)
}

// EnsureDir creates a directory and any missing ancestors.
func (f FS) EnsureDir(path string) error {
	return f.fs.MkdirAll(path, dirPermissions)
}

// EnsureParentDir creates the parent directory of a file path.
func (f FS) EnsureParentDir(path string) error {
	return f.EnsureDir(filepath.Dir(path))
}

// Exists reports whether a file or directory exists at the path.
func (f FS) Exists(path string) (bool, error) {
	return afero.Exists(f.fs, path)
}

// IsFile reports whether the path is a regular file.
func (f FS) IsFile(path string) (bool, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// IsDir reports whether the path is a directory.
func (f FS) IsDir(path string) (bool, error) {
	return afero.DirExists(f.fs, path)
}

// ListFiles lists entries in a directory whose names match a glob pattern
// ("*" matches everything). With recursive set, the whole tree under dir is
// searched. Directories whose names match are included, mirroring glob
// semantics.
func (f FS) ListFiles(dir, pattern string, recursive bool) ([]string, error) {
	if pattern == "" {
		pattern = "*"
	}

	if !recursive {
		entries, err := afero.ReadDir(f.fs, dir)
		if err != nil {
			return nil, err
		}
		matches := []string{}
		for _, entry := range entries {
			ok, err := filepath.Match(pattern, entry.Name())
			if err != nil {
				return nil, err
			}
			if ok {
				matches = append(matches, filepath.Join(dir, entry.Name()))
			}
		}
		return matches, nil
	}

	matches := []string{}
	err := afero.Walk(f.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		ok, err := filepath.Match(pattern, info.Name())
		if err != nil {
			return err
		}
		if ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// CopyFile copies a file, creating the destination's parent directories.
func (f FS) CopyFile(src, dst string) error {
	if err := f.EnsureParentDir(dst); err != nil {
		return err
	}

	in, err := f.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := f.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePermissions)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// MoveFile moves a file, creating the destination's parent directories.
// Falls back to copy-and-delete when a rename is not possible.
func (f FS) MoveFile(src, dst string) error {
	if err := f.EnsureParentDir(dst); err != nil {
		return err
	}

	if err := f.fs.Rename(src, dst); err == nil {
		return nil
	}

	if err := f.CopyFile(src, dst); err != nil {
		return err
	}
	return f.fs.Remove(src)
}

// DeleteFile removes a file. A missing file is not an error.
func (f FS) DeleteFile(path string) error {
	err := f.fs.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// DeleteDir removes a directory and all its contents. A missing directory
// is not an error.
func (f FS) DeleteDir(path string) error {
	err := f.fs.RemoveAll(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Size returns the size of a file in bytes.
func (f FS) Size(path string) (int64, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// SizeHuman returns the size of a file as a human-readable string,
// e.g. "1.5 MB".
func (f FS) SizeHuman(path string) (string, error) {
	size, err := f.Size(path)
	if err != nil {
		return "", err
	}
	return humanSize(size), nil
}

// Checksum returns the xxhash-64 digest of a file's contents as a hex
// string.
func (f FS) Checksum(path string) (string, error) {
	file, err := f.fs.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

func humanSize(size int64) string {
	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f PB", value)
}

// splitLines splits on newlines without producing a trailing empty line,
// matching the usual splitlines behavior.
func splitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}

// Ext returns the file extension including the dot (".txt", ".gz").
func Ext(path string) string {
	return filepath.Ext(path)
}

// Stem returns the file name without its extension.
func Stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Name returns the file name with its extension.
func Name(path string) string {
	return filepath.Base(path)
}

// Parent returns the parent directory of a path.
func Parent(path string) string {
	return filepath.Dir(path)
}

// Join joins path parts into a single path.
func Join(parts ...string) string {
	return filepath.Join(parts...)
}

// Resolve resolves a path to an absolute, cleaned path.
func Resolve(path string) (string, error) {
	return filepath.Abs(path)
}
