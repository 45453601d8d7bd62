package runtimepath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoRuntimeDir is returned when no per-user runtime directory exists.
var ErrNoRuntimeDir = errors.New("XDG_RUNTIME_DIR is not set and /run/user/<uid> does not exist")

// DefaultDisplay is the socket name used when WAYLAND_DISPLAY is unset.
const DefaultDisplay = "wayland-0"

// Dir returns the runtime directory holding compositor sockets. Priority:
// 1) XDG_RUNTIME_DIR (if set)
// 2) /run/user/<uid> (if present)
func Dir() (string, error) {
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return runtimeDir, nil
	}

	runUserDir := fmt.Sprintf("/run/user/%d", os.Getuid())
	if info, err := os.Stat(runUserDir); err == nil && info.IsDir() {
		return runUserDir, nil
	}
	return "", ErrNoRuntimeDir
}

// WaylandSocket resolves the compositor socket path. An absolute
// WAYLAND_DISPLAY is used as is; a name is joined with the runtime dir.
func WaylandSocket() (string, error) {
	name := os.Getenv("WAYLAND_DISPLAY")
	if name == "" {
		name = DefaultDisplay
	}
	if filepath.IsAbs(name) {
		return name, nil
	}

	runtimeDir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(runtimeDir, name), nil
}
