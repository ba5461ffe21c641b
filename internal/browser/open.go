// Package browser opens rendered pages in the default browser.
package browser

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Open opens the given URL in the default browser.
func Open(url string) error {
	cmd, err := command(runtime.GOOS, url)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }() // reap zombie process
	return nil
}

// OpenFile opens a local file as a file:// URL.
func OpenFile(path string) error {
	url, err := FileURL(path)
	if err != nil {
		return err
	}
	return Open(url)
}

// FileURL returns the file:// URL of path resolved against the working directory.
func FileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

func command(goos, url string) (*exec.Cmd, error) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url), nil
	case "darwin":
		return exec.Command("open", url), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", url), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
