package provisioner

import (
	"errors"
	"fmt"
)

// ErrPackageManager is returned when the package backend is missing,
// unreachable, or cannot resolve a package name.
var ErrPackageManager = errors.New("package manager error")

// ErrFilesystem is returned on permission, disk-space, or path-conflict
// failures (e.g. the target is a file where a directory is expected).
var ErrFilesystem = errors.New("filesystem error")

// ErrConfigWrite is returned when file content could not be written. It is a
// specialization of ErrFilesystem: errors.Is(err, ErrFilesystem) holds for
// config-write failures.
var ErrConfigWrite = fmt.Errorf("%w: config write error", ErrFilesystem)
