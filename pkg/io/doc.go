// Package io provides utilities for input and output operations related to
// configuration management.
//
// Subpackages:
//   - configmanager: Manifest loading with layered precedence
//   - generator: Typed YAML generation
//   - scaffolder: Project scaffolding and manifest generation
//
// For low-level file I/O operations (writing, path expansion), see the
// fileutil package.
package io
