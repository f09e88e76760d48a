package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autoload/internal/adapters/config"
	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600))
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func TestLoad_Defaults(t *testing.T) {
	root := t.TempDir()

	cfg, err := newLoader(t).Load(root)
	require.NoError(t, err)

	assert.Equal(t, config.Defaults(root), cfg)
	assert.Equal(t, []string{root}, cfg.Paths)
	assert.Equal(t, domain.DefaultTTL, cfg.TTL)
	assert.Equal(t, ".php", cfg.Extension)
	assert.Equal(t, domain.SnapshotTier(filepath.Join(root, ".autoload", "autoload_cache.yaml")), cfg.Tier)
	assert.False(t, cfg.Logging.Enabled)
}

func TestLoad_FullFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "lib"), 0o750))
	writeConfig(t, root, `version: "1"
ttl: 3600
extension: .inc
paths:
  - src
  - lib
  - /opt/shared
cache:
  snapshot:
    path: var/cache.yaml
logging: var/autoload.log
`)

	cfg, err := newLoader(t).Load(root)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, time.Hour, cfg.TTL)
	assert.Equal(t, ".inc", cfg.Extension)
	assert.Equal(t, []string{filepath.Join(root, "src"), filepath.Join(root, "lib"), "/opt/shared"}, cfg.Paths)
	assert.Equal(t, domain.SnapshotTier(filepath.Join(root, "var", "cache.yaml")), cfg.Tier)
	assert.Equal(t, domain.Logging{Enabled: true, File: filepath.Join(root, "var", "autoload.log")}, cfg.Logging)
}

func TestLoad_Discovery(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "extension: .inc\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	cfg, err := newLoader(t).Load(nested)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, ".inc", cfg.Extension)
	assert.Equal(t, []string{root}, cfg.Paths)
}

func TestLoad_ConfiguredRoot(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "root: app\n")

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "app"), cfg.Root)
	assert.Equal(t, domain.DefaultSnapshotPath(filepath.Join(dir, "app")), cfg.Tier.Path)
}

func TestLoad_Tiers(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    func(root string) domain.Tier
	}{
		{
			name:    "shared with default dir",
			content: "cache:\n  shared:\n    prefix: \"app:\"\n",
			want:    func(string) domain.Tier { return domain.SharedTier("app:", "") },
		},
		{
			name:    "shared with relative dir",
			content: "cache:\n  shared:\n    prefix: \"app:\"\n    dir: tmp/shared\n",
			want: func(root string) domain.Tier {
				return domain.SharedTier("app:", filepath.Join(root, "tmp", "shared"))
			},
		},
		{
			name:    "disabled",
			content: "cache:\n  disabled: true\n",
			want:    func(string) domain.Tier { return domain.NoTier() },
		},
		{
			name:    "shared without prefix",
			content: "cache:\n  shared:\n    dir: shared\n",
			want:    func(root string) domain.Tier { return domain.SnapshotTier(domain.DefaultSnapshotPath(root)) },
		},
		{
			name:    "shared without prefix next to snapshot",
			content: "cache:\n  shared:\n    dir: shared\n  snapshot:\n    path: cache.yaml\n",
			want:    func(root string) domain.Tier { return domain.SnapshotTier(filepath.Join(root, "cache.yaml")) },
		},
		{
			name:    "snapshot without path",
			content: "cache:\n  snapshot: {}\n",
			want:    func(root string) domain.Tier { return domain.SnapshotTier(domain.DefaultSnapshotPath(root)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeConfig(t, root, tt.content)

			cfg, err := newLoader(t).Load(root)
			require.NoError(t, err)
			assert.Equal(t, tt.want(root), cfg.Tier)
		})
	}
}

func TestLoad_Logging(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    func(root string) domain.Logging
	}{
		{
			name:    "true uses default log file",
			content: "logging: true\n",
			want: func(root string) domain.Logging {
				return domain.Logging{Enabled: true, File: domain.DefaultLogPath(root)}
			},
		},
		{
			name:    "false",
			content: "logging: false\n",
			want:    func(string) domain.Logging { return domain.Logging{} },
		},
		{
			name:    "absolute path",
			content: "logging: /var/log/autoload.log\n",
			want: func(string) domain.Logging {
				return domain.Logging{Enabled: true, File: "/var/log/autoload.log"}
			},
		},
		{
			name:    "null",
			content: "logging:\n",
			want:    func(string) domain.Logging { return domain.Logging{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeConfig(t, root, tt.content)

			cfg, err := newLoader(t).Load(root)
			require.NoError(t, err)
			assert.Equal(t, tt.want(root), cfg.Logging)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
	}{
		{
			name:        "invalid yaml",
			content:     "paths: [src\n",
			expectedErr: domain.ErrConfigParseFailed,
		},
		{
			name:        "conflicting tiers",
			content:     "cache:\n  shared:\n    prefix: app\n  snapshot:\n    path: cache.yaml\n",
			expectedErr: domain.ErrConflictingTiers,
		},
		{
			name:        "disabled with shared",
			content:     "cache:\n  disabled: true\n  shared:\n    prefix: app\n",
			expectedErr: domain.ErrConflictingTiers,
		},
		{
			name:        "negative ttl",
			content:     "ttl: -1\n",
			expectedErr: domain.ErrInvalidTTL,
		},
		{
			name:        "logging list",
			content:     "logging: [a, b]\n",
			expectedErr: domain.ErrConfigParseFailed,
		},
		{
			name:        "logging number",
			content:     "logging: 3\n",
			expectedErr: domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeConfig(t, root, tt.content)

			cfg, err := newLoader(t).Load(root)

			require.Error(t, err)
			require.ErrorContains(t, err, tt.expectedErr.Error())
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_WarnsAboutMissingPaths(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "version: \"2\"\npaths:\n  - missing\n")

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(2)

	cfg, err := config.NewLoader(mockLogger).Load(root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "missing")}, cfg.Paths)
}

func TestLoad_SharedWithoutPrefixWarns(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "cache:\n  shared:\n    dir: shared\n")

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("shared cache has no prefix and stays disabled")

	cfg, err := config.NewLoader(mockLogger).Load(root)
	require.NoError(t, err)
	assert.Equal(t, domain.TierSnapshot, cfg.Tier.Kind)
}
