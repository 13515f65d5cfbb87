// Package di wires shared dependencies into a samber/do injector so commands
// and tests can swap implementations.
package di

import (
	"github.com/samber/do/v2"
)

// Injector aliases the do injector to keep call sites decoupled from the
// library import path.
type Injector = do.Injector

// Provider registers one dependency with the injector.
type Provider func(Injector) error

// Runtime holds the dependency injector shared by all commands.
type Runtime struct {
	Injector Injector
}

// New constructs a runtime from the given providers. Provider registration
// does not touch external systems, so errors only occur with misconfigured
// providers.
func New(providers ...Provider) *Runtime {
	injector := do.New()

	for _, provide := range providers {
		err := provide(injector)
		if err != nil {
			panic("di: provider registration failed: " + err.Error())
		}
	}

	return &Runtime{Injector: injector}
}
