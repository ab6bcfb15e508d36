package wiring

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photostreak/streak-service/internal/adapters/lock"
	"github.com/photostreak/streak-service/internal/adapters/stores/guarded"
	"github.com/photostreak/streak-service/internal/domain/group"
	"github.com/photostreak/streak-service/internal/platform/config"
	"github.com/photostreak/streak-service/internal/platform/telemetry"
	"github.com/photostreak/streak-service/internal/ports"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("local", config.WithConfigDir(filepath.Join("..", "..", "configs")))
	require.NoError(t, err)
	cfg.Store.Driver = config.StoreMemory
	cfg.Scheduler.Lock.Driver = config.LockNone
	return cfg
}

func newInjector(t *testing.T, cfg *config.Config) do.Injector {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue[*telemetry.Metrics](injector, nil)
	Register(injector, cfg, logger)
	return injector
}

func TestRegister_MemoryGraph(t *testing.T) {
	injector := newInjector(t, testConfig(t))

	groups := do.MustInvoke[ports.GroupService](injector)
	created, err := groups.CreateGroup(context.Background(), &group.Group{
		Name:      "Morning crew",
		Members:   []string{"u1", "u2"},
		CreatedBy: "u1",
	})
	require.NoError(t, err)

	streaks := do.MustInvoke[ports.StreakService](injector)
	res, err := streaks.Evaluate(context.Background(), created.ID, "u1")
	require.NoError(t, err)
	assert.False(t, res.AllPosted)
	assert.False(t, res.Credited)

	reset := do.MustInvoke[ports.ResetService](injector)
	out, err := reset.RunReset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, out.ProcessedGroups)

	backend := do.MustInvoke[*Backend](injector)
	assert.Equal(t, "store-memory", backend.Checker.Name())

	_, isLocal := do.MustInvoke[ports.RunLock](injector).(*lock.LocalLock)
	assert.True(t, isLocal)
}

func TestRegister_SQLiteIsGuardedAndClosed(t *testing.T) {
	cfg := testConfig(t)
	cfg.Store.Driver = config.StoreSQLite
	cfg.Store.DSN = filepath.Join(t.TempDir(), "streaks.db")
	injector := newInjector(t, cfg)

	backend := do.MustInvoke[*Backend](injector)
	_, isGuarded := backend.Store.(*guarded.Store)
	assert.True(t, isGuarded)
	assert.Equal(t, "store-sqlite", backend.Checker.Name())
	require.NoError(t, backend.Checker.HealthCheck(context.Background()))

	require.NoError(t, do.MustInvoke[*Lifecycle](injector).Close(context.Background()))
}

func TestRegister_UnknownDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.Store.Driver = "cassandra"
	injector := newInjector(t, cfg)

	_, err := do.Invoke[ports.GroupStore](injector)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cassandra")
}

func TestLifecycle_ClosesInReverseAndJoinsErrors(t *testing.T) {
	var order []string
	lc := &Lifecycle{}
	lc.OnClose("first", func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	lc.OnClose("second", func(context.Context) error {
		order = append(order, "second")
		return errors.New("boom")
	})

	err := lc.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closing second: boom")
	assert.Equal(t, []string{"second", "first"}, order)

	// Closers run once.
	require.NoError(t, lc.Close(context.Background()))
	assert.Len(t, order, 2)
}

func TestInitTelemetry_Disabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Telemetry.Enabled = false

	tel, err := InitTelemetry(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, tel.Metrics)
	assert.NoError(t, tel.Shutdown(context.Background()))
}
