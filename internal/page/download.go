package page

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Download copies the file behind a resume link into dir under the link's
// forced filename. It goes through a temporary file that is renamed into
// place and removed on failure. Any failure, including a panic, is swallowed:
// the caller gets ok == false and falls back to showing the href.
func Download(link *Link, dir string) (path string, ok bool) {
	defer func() {
		if recover() != nil {
			path, ok = "", false
		}
	}()
	if link == nil || link.Href == "" {
		return "", false
	}
	name := link.Filename
	if name == "" {
		name = filepath.Base(link.Href)
	}
	path, err := fetch(link.Href, dir, name)
	if err != nil {
		return "", false
	}
	return path, true
}

func fetch(href, dir, name string) (string, error) {
	src, err := os.Open(href)
	if err != nil {
		return "", err
	}
	defer src.Close()

	tmp, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return "", fmt.Errorf("copy %s: %w", href, err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	dst := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", err
	}
	return dst, nil
}
