package di

import (
	"github.com/samber/do/v2"

	"github.com/Aff245/fmaa-bdi-v1/pkg/svc/pkgmgr"
	"github.com/Aff245/fmaa-bdi-v1/pkg/svc/provisioner"
	"github.com/Aff245/fmaa-bdi-v1/pkg/utils/timer"
)

// Dependency providers.

// NewRuntime constructs the shared runtime container used by the root command
// and tests. It registers default implementations for the timer, the package
// manager backend, and the provisioner runner factory.
func NewRuntime() *Runtime {
	return New(
		provideTimer,
		providePackageManager,
		provideRunnerFactory,
	)
}

// provideTimer registers the timer dependency with the injector.
func provideTimer(i Injector) error {
	do.Provide(i, func(Injector) (timer.Timer, error) {
		return timer.New(), nil
	})

	return nil
}

// providePackageManager registers the platform package manager backend.
func providePackageManager(i Injector) error {
	do.Provide(i, func(Injector) (pkgmgr.Manager, error) {
		return pkgmgr.NewTermuxManager(), nil
	})

	return nil
}

// provideRunnerFactory registers the provisioner runner factory dependency.
func provideRunnerFactory(i Injector) error {
	do.Provide(i, func(Injector) (provisioner.Factory, error) {
		return provisioner.DefaultFactory{}, nil
	})

	return nil
}
