package pkgmgr

import "context"

// Fake is a recording Manager for tests.
type Fake struct {
	// Backend is the name reported by Name. Defaults to "fake".
	Backend string

	// Unavailable makes Available report false and Install fail with
	// ErrManagerUnavailable.
	Unavailable bool

	// InstallErr is returned by Install when set.
	InstallErr error

	// Installed records every package name passed to Install, in order.
	Installed []string

	// Calls counts Install invocations.
	Calls int
}

var _ Manager = (*Fake)(nil)

// Name returns the configured backend name.
func (f *Fake) Name() string {
	if f.Backend == "" {
		return "fake"
	}

	return f.Backend
}

// Available reports the configured availability.
func (f *Fake) Available() bool {
	return !f.Unavailable
}

// Install records the request and returns the configured error, if any.
func (f *Fake) Install(_ context.Context, packages []string) error {
	f.Calls++

	if f.Unavailable {
		return ErrManagerUnavailable
	}

	if f.InstallErr != nil {
		return f.InstallErr
	}

	f.Installed = append(f.Installed, packages...)

	return nil
}
