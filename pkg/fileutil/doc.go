// Package fileutil provides utilities for file and path operations.
//
// This package contains low-level utilities for reading from and writing to
// files, along with path helpers used across the provisioner.
//
// Key functionality:
//   - File writing: TryWriteFile
//   - Path operations: ExpandHomePath
//
// This package has no dependencies on other fmaa packages and provides
// reusable file I/O primitives.
package fileutil
