package di

import (
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/Aff245/fmaa-bdi-v1/pkg/svc/pkgmgr"
	"github.com/Aff245/fmaa-bdi-v1/pkg/svc/provisioner"
	"github.com/Aff245/fmaa-bdi-v1/pkg/utils/timer"
)

// Dependency resolvers.

// ResolveTimer retrieves the timer dependency from the injector with
// consistent error handling.
func ResolveTimer(injector Injector) (timer.Timer, error) {
	tmr, err := do.Invoke[timer.Timer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve timer dependency: %w", err)
	}

	return tmr, nil
}

// ResolvePackageManager retrieves the package manager backend from the
// injector with consistent error handling.
func ResolvePackageManager(injector Injector) (pkgmgr.Manager, error) {
	manager, err := do.Invoke[pkgmgr.Manager](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve package manager dependency: %w", err)
	}

	return manager, nil
}

// ResolveRunnerFactory retrieves the provisioner runner factory from the
// injector with consistent error handling.
func ResolveRunnerFactory(injector Injector) (provisioner.Factory, error) {
	factory, err := do.Invoke[provisioner.Factory](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve runner factory dependency: %w", err)
	}

	return factory, nil
}

// Handler decorators.

// WithTimer decorates a handler to automatically resolve the timer
// dependency. This higher-order function simplifies command handlers that
// need timer access.
func WithTimer(
	handler func(cmd *cobra.Command, injector Injector, tmr timer.Timer) error,
) func(cmd *cobra.Command, injector Injector) error {
	return func(cmd *cobra.Command, injector Injector) error {
		tmr, err := ResolveTimer(injector)
		if err != nil {
			return err
		}

		return handler(cmd, injector, tmr)
	}
}
