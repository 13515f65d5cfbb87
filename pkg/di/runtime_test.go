package di_test

import (
	"testing"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aff245/fmaa-bdi-v1/pkg/di"
	"github.com/Aff245/fmaa-bdi-v1/pkg/svc/pkgmgr"
	"github.com/Aff245/fmaa-bdi-v1/pkg/utils/timer"
)

func TestNewRuntimeResolvesDefaults(t *testing.T) {
	t.Parallel()

	runtime := di.NewRuntime()

	tmr, err := di.ResolveTimer(runtime.Injector)
	require.NoError(t, err)
	assert.NotNil(t, tmr)

	manager, err := di.ResolvePackageManager(runtime.Injector)
	require.NoError(t, err)
	assert.NotNil(t, manager)

	factory, err := di.ResolveRunnerFactory(runtime.Injector)
	require.NoError(t, err)
	assert.NotNil(t, factory.Create(nil))
}

func TestOverridePackageManager(t *testing.T) {
	t.Parallel()

	runtime := di.NewRuntime()
	fake := &pkgmgr.Fake{Backend: "test-backend"}

	do.Override(runtime.Injector, func(di.Injector) (pkgmgr.Manager, error) {
		return fake, nil
	})

	manager, err := di.ResolvePackageManager(runtime.Injector)
	require.NoError(t, err)
	assert.Equal(t, "test-backend", manager.Name())
}

func TestResolveFailsOnEmptyInjector(t *testing.T) {
	t.Parallel()

	runtime := di.New()

	_, err := di.ResolveTimer(runtime.Injector)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolve timer dependency")
}

func TestWithTimerResolvesTimer(t *testing.T) {
	t.Parallel()

	runtime := di.NewRuntime()

	var captured timer.Timer

	handler := di.WithTimer(func(_ *cobra.Command, _ di.Injector, tmr timer.Timer) error {
		captured = tmr

		return nil
	})

	err := handler(&cobra.Command{}, runtime.Injector)
	require.NoError(t, err)
	assert.NotNil(t, captured)
}
