package lifecycle_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autoload/internal/adapters/fs"
	"go.trai.ch/autoload/internal/adapters/host"
	"go.trai.ch/autoload/internal/adapters/snapshot"
	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports/mocks"
	"go.trai.ch/autoload/internal/engine/lifecycle"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	ctrl     *gomock.Controller
	write    func(path, content string)
	runtime  *host.Runtime
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	exits    []int
	logger   *mocks.MockLogger
	sink     *mocks.MockLogSink
	provider *mocks.MockSharedCacheProvider
	deps     lifecycle.Deps
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	// Runs before the controller verifies its expectations.
	t.Cleanup(lifecycle.Deactivate)

	mem := memfs.New()
	f := &fixture{
		ctrl:     ctrl,
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		logger:   mocks.NewMockLogger(ctrl),
		sink:     mocks.NewMockLogSink(ctrl),
		provider: mocks.NewMockSharedCacheProvider(ctrl),
	}
	f.write = func(path, content string) {
		require.NoError(t, util.WriteFile(mem, path, []byte(content), 0o644))
	}
	f.runtime = host.New(
		host.WithStdout(f.stdout),
		host.WithStderr(f.stderr),
		host.WithExit(func(code int) { f.exits = append(f.exits, code) }),
	)
	f.deps = lifecycle.Deps{
		Host:           f.runtime,
		Prober:         fs.NewProber(mem),
		Includer:       fs.NewIncluder(mem),
		Snapshots:      snapshot.NewStore(),
		SharedProvider: f.provider,
		Logger:         f.logger,
		Sink:           f.sink,
	}
	return f
}

func snapshotConfig(t *testing.T, paths ...string) domain.Config {
	t.Helper()
	return domain.Config{
		Paths: paths,
		TTL:   time.Hour,
		Tier:  domain.SnapshotTier(filepath.Join(t.TempDir(), "autoload_cache.yaml")),
	}
}

func TestActivate_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(lifecycle.Deactivate)

	mockHost := mocks.NewMockHost(ctrl)
	mockHost.EXPECT().Register(lifecycle.HookID, gomock.Any()).Times(1)
	mockHost.EXPECT().OnShutdown(gomock.Any()).Times(1)
	mockHost.EXPECT().Unregister(lifecycle.HookID).Times(1)

	deps := lifecycle.Deps{
		Host:           mockHost,
		Prober:         mocks.NewMockFileProber(ctrl),
		Includer:       mocks.NewMockIncluder(ctrl),
		Snapshots:      mocks.NewMockSnapshotStore(ctrl),
		SharedProvider: mocks.NewMockSharedCacheProvider(ctrl),
		Logger:         mocks.NewMockLogger(ctrl),
		Sink:           mocks.NewMockLogSink(ctrl),
	}

	first, err := lifecycle.Activate(domain.Config{Paths: []string{"/A"}, Tier: domain.NoTier()}, deps)
	require.NoError(t, err)
	second, err := lifecycle.Activate(domain.Config{Paths: []string{"/B"}, Tier: domain.NoTier()}, deps)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, []string{"/A" + string(filepath.Separator)}, second.Paths(), "second activation ignores its arguments")

	lifecycle.Deactivate()
}

func TestActivate_MissingDependency(t *testing.T) {
	t.Cleanup(lifecycle.Deactivate)

	h, err := lifecycle.Activate(domain.Config{}, lifecycle.Deps{})

	require.ErrorContains(t, err, domain.ErrMissingDependency.Error())
	assert.Nil(t, h)
}

func TestActivate_PathOrder(t *testing.T) {
	f := newFixture(t)
	f.write("/A/Foo.php", "A")
	f.write("/B/Foo.php", "B")

	h, err := lifecycle.Activate(domain.Config{Paths: []string{"/A", "/B"}, Tier: domain.NoTier()}, f.deps)
	require.NoError(t, err)

	assert.Equal(t, "/B/Foo.php", h.Resolve("", "Foo", "").Path(), "the last configured path wins")
	assert.Equal(t, []string{"/A/Foo.php", "/B/Foo.php"}, h.ResolveAll("", "Foo", "").Paths())

	h.AddPaths("/C")
	assert.Equal(t, "/C/", h.Paths()[0])
}

func TestSnapshot_RoundTrip(t *testing.T) {
	f := newFixture(t)
	f.write("/a/Foo.php", "<?php")
	cfg := snapshotConfig(t, "/a")

	h, err := lifecycle.Activate(cfg, f.deps)
	require.NoError(t, err)

	assert.Equal(t, "/a/Foo.php", h.Resolve("", "Foo", "").Path())
	assert.False(t, h.Resolve("", "Bar", "").Found())

	require.NoError(t, f.runtime.Run(func() error { return nil }))
	require.FileExists(t, cfg.Tier.Path)

	// Restart with an empty filesystem: the snapshot alone must answer.
	lifecycle.Forget()
	restarted := newFixture(t)
	h, err = lifecycle.Activate(cfg, restarted.deps)
	require.NoError(t, err)

	assert.Equal(t, "/a/Foo.php", h.Resolve("", "Foo", "").Path())
	assert.False(t, h.Resolve("", "Bar", "").Found())
	stats := h.Stats()
	assert.InDelta(t, 0, stats["scan/hit"]+stats["scan/miss"], 0, "seeded entries need no scan")
}

func TestSnapshot_NotRewrittenWhenClean(t *testing.T) {
	f := newFixture(t)
	store := mocks.NewMockSnapshotStore(f.ctrl)
	store.EXPECT().Load("/cache.yaml", time.Hour).Return(map[string]domain.Resolution{
		"Foo.php": domain.Found("/a/Foo.php"),
	}, nil)
	store.EXPECT().Remove("/cache.yaml").Return(nil).AnyTimes()
	f.deps.Snapshots = store

	h, err := lifecycle.Activate(domain.Config{Paths: []string{"/a"}, TTL: time.Hour, Tier: domain.SnapshotTier("/cache.yaml")}, f.deps)
	require.NoError(t, err)
	assert.True(t, h.Resolve("", "Foo", "").Found())

	h.Finalize()
}

func TestSnapshot_TTLExpiry(t *testing.T) {
	f := newFixture(t)
	cfg := snapshotConfig(t, "/a")

	require.NoError(t, snapshot.NewStore().Save(cfg.Tier.Path, map[string]domain.Resolution{
		"Foo.php": domain.Found("/stale/Foo.php"),
	}))
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(cfg.Tier.Path, old, old))

	f.write("/a/Foo.php", "<?php")
	h, err := lifecycle.Activate(cfg, f.deps)
	require.NoError(t, err)

	assert.Equal(t, "/a/Foo.php", h.Resolve("", "Foo", "").Path())
	assert.InDelta(t, 1, h.Stats()["scan/hit"], 0, "an expired snapshot forces a scan")
	assert.NoFileExists(t, cfg.Tier.Path)
}

func TestSnapshot_CorruptIsDiscarded(t *testing.T) {
	f := newFixture(t)
	cfg := snapshotConfig(t, "/a")
	require.NoError(t, os.WriteFile(cfg.Tier.Path, []byte("version: [\n"), 0o600))

	f.logger.EXPECT().Warn(gomock.Any())

	h, err := lifecycle.Activate(cfg, f.deps)
	require.NoError(t, err)

	assert.False(t, h.Resolve("", "Foo", "").Found())
	assert.NoFileExists(t, cfg.Tier.Path)
}

func TestFinalize_PersistFailureIsSwallowed(t *testing.T) {
	tests := []struct {
		name string
		save func(string, map[string]domain.Resolution) error
	}{
		{
			name: "error",
			save: func(string, map[string]domain.Resolution) error { return errors.New("disk full") },
		},
		{
			name: "panic",
			save: func(string, map[string]domain.Resolution) error { panic("corrupt state") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			store := mocks.NewMockSnapshotStore(f.ctrl)
			store.EXPECT().Load(gomock.Any(), gomock.Any()).Return(map[string]domain.Resolution{}, nil)
			store.EXPECT().Save("/cache.yaml", gomock.Any()).DoAndReturn(tt.save)
			store.EXPECT().Remove("/cache.yaml").Return(nil).MinTimes(1)
			f.deps.Snapshots = store

			f.logger.EXPECT().Warn(gomock.Any())
			f.sink.EXPECT().Write(gomock.Any())

			h, err := lifecycle.Activate(domain.Config{Paths: []string{"/a"}, Tier: domain.SnapshotTier("/cache.yaml")}, f.deps)
			require.NoError(t, err)
			h.Resolve("", "Foo", "")

			f.runtime.ReportError(domain.HostError{Severity: domain.SeverityError, Message: "boom", File: "/a/x.php", Line: 1})
			h.Finalize()

			assert.Equal(t, []int{1}, f.exits, "the fatal check runs even when persisting failed")
		})
	}
}

func TestFinalize_FatalCleanupSnapshot(t *testing.T) {
	f := newFixture(t)
	f.write("/a/Foo.php", "<?php")
	cfg := snapshotConfig(t, "/a")

	require.NoError(t, snapshot.NewStore().Save(cfg.Tier.Path, map[string]domain.Resolution{}))

	_, err := lifecycle.Activate(cfg, f.deps)
	require.NoError(t, err)

	f.sink.EXPECT().Write("Parse: syntax error, unexpected '}' in /a/Foo.php on line 12")

	err = f.runtime.Run(func() error {
		require.True(t, f.runtime.Load(`Foo`))
		f.runtime.ReportError(domain.HostError{
			Severity: domain.SeverityParse,
			Message:  "syntax error, unexpected '}'",
			File:     "/a/Foo.php",
			Line:     12,
		})
		return nil
	})
	require.NoError(t, err)

	assert.NoFileExists(t, cfg.Tier.Path)
	assert.Equal(t, []int{1}, f.exits)
	assert.Empty(t, f.stderr.String(), "the sink carries the only copy of the diagnostic")
	assert.Empty(t, f.stdout.String(), "pending output is discarded")
}

func TestFinalize_FatalCleanupConsoleLogging(t *testing.T) {
	f := newFixture(t)
	cfg := domain.Config{
		Paths:   []string{"/a"},
		Tier:    domain.NoTier(),
		Logging: domain.Logging{Enabled: true},
	}

	_, err := lifecycle.Activate(cfg, f.deps)
	require.NoError(t, err)

	f.sink.EXPECT().Write("Error: kaboom in /a/Foo.php on line 3")

	require.NoError(t, f.runtime.Run(func() error {
		f.runtime.ReportError(domain.HostError{
			Severity: domain.SeverityError,
			Message:  "kaboom",
			File:     "/a/Foo.php",
			Line:     3,
		})
		return nil
	}))

	assert.Equal(t, []int{1}, f.exits)
	assert.Empty(t, f.stderr.String())
}

func TestFinalize_FatalCleanupSharedWithLogging(t *testing.T) {
	f := newFixture(t)
	shared := mocks.NewMockSharedCache(f.ctrl)
	f.provider.EXPECT().Open("/tmp/shared", "app:").Return(shared, nil)

	shared.EXPECT().Fetch("Foo.php").Return(nil, false)
	shared.EXPECT().Delete("Foo.php")
	shared.EXPECT().Add("Foo.php", []byte("null\n"), domain.DefaultTTL).Return(true)
	shared.EXPECT().Clear().MinTimes(1)
	f.sink.EXPECT().Write(gomock.Any())

	cfg := domain.Config{
		Paths:   []string{"/a"},
		Tier:    domain.SharedTier("app:", "/tmp/shared"),
		Logging: domain.Logging{Enabled: true, File: "/tmp/autoload.log"},
	}
	h, err := lifecycle.Activate(cfg, f.deps)
	require.NoError(t, err)

	err = f.runtime.Run(func() error {
		h.Resolve("", "Foo", "")
		panic("kaboom")
	})
	require.Error(t, err)

	assert.Equal(t, []int{1}, f.exits)
	assert.Equal(t, "Error: kaboom - see log\n", f.stderr.String())
}

func TestFinalize_NonFatalErrorKeepsCaches(t *testing.T) {
	f := newFixture(t)
	f.write("/a/Foo.php", "<?php")
	cfg := snapshotConfig(t, "/a")

	h, err := lifecycle.Activate(cfg, f.deps)
	require.NoError(t, err)
	h.Resolve("", "Foo", "")

	f.runtime.ReportError(domain.HostError{Severity: domain.SeverityWarning, Message: "deprecated"})
	require.NoError(t, f.runtime.Run(func() error { return nil }))

	assert.Empty(t, f.exits)
	assert.FileExists(t, cfg.Tier.Path)
}

func TestFinalize_RunsOnce(t *testing.T) {
	f := newFixture(t)
	store := mocks.NewMockSnapshotStore(f.ctrl)
	store.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, nil)
	store.EXPECT().Save("/cache.yaml", gomock.Any()).Return(nil).Times(1)
	store.EXPECT().Remove("/cache.yaml").Return(nil).AnyTimes()
	f.deps.Snapshots = store

	h, err := lifecycle.Activate(domain.Config{Paths: []string{"/a"}, Tier: domain.SnapshotTier("/cache.yaml")}, f.deps)
	require.NoError(t, err)
	h.Resolve("", "Foo", "")

	h.Finalize()
	h.Finalize()
}

func TestDeactivate(t *testing.T) {
	f := newFixture(t)
	f.write("/a/Foo.php", "<?php")
	cfg := snapshotConfig(t, "/a")
	require.NoError(t, snapshot.NewStore().Save(cfg.Tier.Path, map[string]domain.Resolution{}))

	h, err := lifecycle.Activate(cfg, f.deps)
	require.NoError(t, err)
	h.Resolve("", "Foo", "")

	lifecycle.Deactivate()

	assert.NoFileExists(t, cfg.Tier.Path)
	assert.Empty(t, h.Paths())
	assert.False(t, f.runtime.Load("Foo"), "the hook is unregistered")

	require.NoError(t, f.runtime.Run(func() error { return nil }))
	assert.NoFileExists(t, cfg.Tier.Path, "finalize is a no-op after deactivate")

	again, err := lifecycle.Activate(cfg, f.deps)
	require.NoError(t, err)
	assert.NotSame(t, h, again)
}

func TestDeactivate_ClearsSharedTier(t *testing.T) {
	f := newFixture(t)
	shared := mocks.NewMockSharedCache(f.ctrl)
	f.provider.EXPECT().Open("", "app:").Return(shared, nil)
	shared.EXPECT().Clear()

	_, err := lifecycle.Activate(domain.Config{Tier: domain.SharedTier("app:", "")}, f.deps)
	require.NoError(t, err)

	lifecycle.Deactivate()
}

func TestActivate_SharedUnavailable(t *testing.T) {
	f := newFixture(t)
	f.write("/a/Foo.php", "<?php")
	f.provider.EXPECT().Open("", "app:").Return(nil, errors.New("read-only filesystem"))
	f.logger.EXPECT().Warn(gomock.Any())

	h, err := lifecycle.Activate(domain.Config{Paths: []string{"/a"}, Tier: domain.SharedTier("app:", "")}, f.deps)
	require.NoError(t, err)

	assert.Equal(t, domain.TierNone, h.Config().Tier.Kind)
	assert.True(t, h.Resolve("", "Foo", "").Found())
}

func TestLoad_ClassNames(t *testing.T) {
	f := newFixture(t)
	f.write("/src/App/Http/Kernel.php", "kernel;")
	f.write("/lib/Vendor/Package/Thing.php", "thing;")

	h, err := lifecycle.Activate(domain.Config{Paths: []string{"/src", "/lib"}, Tier: domain.NoTier()}, f.deps)
	require.NoError(t, err)

	require.NoError(t, f.runtime.Run(func() error {
		assert.True(t, h.Load(`\App\Http\Kernel`))
		assert.True(t, f.runtime.Load("Vendor_Package_Thing"))
		assert.False(t, h.Load("Missing"))
		return nil
	}))

	assert.Equal(t, "kernel;thing;", f.stdout.String())
}

func TestInclude(t *testing.T) {
	f := newFixture(t)
	f.write("/a/config/app.php", "app;")
	f.write("/abs/bootstrap.php", "boot;")

	h, err := lifecycle.Activate(domain.Config{Paths: []string{"/a"}, Tier: domain.NoTier()}, f.deps)
	require.NoError(t, err)

	var unresolved []string
	require.NoError(t, f.runtime.Run(func() error {
		unresolved = h.Include("config", "", "/abs/bootstrap.php", "app", "db")
		return nil
	}))

	assert.Equal(t, []string{"db"}, unresolved)
	assert.Equal(t, "boot;app;", f.stdout.String())
}

func TestInclude_Extension(t *testing.T) {
	f := newFixture(t)
	f.write("/a/config/settings.inc", "inc;")
	f.write("/a/config/settings.php", "php;")

	h, err := lifecycle.Activate(domain.Config{Paths: []string{"/a"}, Tier: domain.NoTier()}, f.deps)
	require.NoError(t, err)

	require.NoError(t, f.runtime.Run(func() error {
		assert.Empty(t, h.Include("config", ".inc", "settings"))
		assert.Empty(t, h.Include("config", "", "settings"))
		return nil
	}))

	assert.Equal(t, "inc;php;", f.stdout.String())
}

func TestInclude_RelativeFile(t *testing.T) {
	f := newFixture(t)
	f.deps.Prober = fs.NewOSProber()
	f.deps.Includer = fs.NewOSIncluder()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "config"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "config", "app.php"), []byte("app;"), 0o600))
	t.Chdir(dir)

	h, err := lifecycle.Activate(domain.Config{Paths: []string{dir}, Tier: domain.NoTier()}, f.deps)
	require.NoError(t, err)

	var unresolved []string
	require.NoError(t, f.runtime.Run(func() error {
		unresolved = h.Include("", "", "src/config/app.php")
		return nil
	}))

	assert.Empty(t, unresolved)
	assert.Equal(t, "app;", f.stdout.String())
}

func TestIncludeFunctions(t *testing.T) {
	f := newFixture(t)
	f.write("/a/functions/_a.php", "a;")
	f.write("/b/functions/_b.php", "b;")
	f.write("/b/functions/skip.php", "skip;")
	f.write("/b/helpers/h_c.php", "c;")

	h, err := lifecycle.Activate(domain.Config{Paths: []string{"/a", "/b"}, Tier: domain.NoTier()}, f.deps)
	require.NoError(t, err)

	var defaults, custom int
	require.NoError(t, f.runtime.Run(func() error {
		defaults = h.IncludeFunctions("", "")
		custom = h.IncludeFunctions("helpers", "h_")
		return nil
	}))

	assert.Equal(t, 2, defaults)
	assert.Equal(t, 1, custom)
	assert.Equal(t, "b;a;c;", f.stdout.String())
}
