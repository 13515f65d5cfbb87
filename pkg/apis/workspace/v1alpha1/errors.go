package v1alpha1

import "errors"

// ErrInvalidAPIVersion is returned when the manifest declares an unsupported apiVersion.
var ErrInvalidAPIVersion = errors.New("invalid apiVersion")

// ErrInvalidKind is returned when the manifest declares an unsupported kind.
var ErrInvalidKind = errors.New("invalid kind")

// ErrEmptyRoot is returned when the manifest has no root directory.
var ErrEmptyRoot = errors.New("workspace root is empty")

// ErrAmbiguousStep is returned when a step declares more than one payload kind.
var ErrAmbiguousStep = errors.New("step declares more than one of packages, directories, file")

// ErrEmptyStep is returned when a step declares no payload at all.
var ErrEmptyStep = errors.New("step declares none of packages, directories, file")

// ErrEmptyPackageName is returned when a packages step contains a blank name.
var ErrEmptyPackageName = errors.New("package name is empty")

// ErrInvalidPath is returned when a directory or file path escapes the root
// or is empty.
var ErrInvalidPath = errors.New("invalid path")

// ErrInvalidFileMode is returned when a file mode string is not valid octal
// permission bits.
var ErrInvalidFileMode = errors.New("invalid file mode")
