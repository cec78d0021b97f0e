package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderAppliesDefaults verifies that building with no
// configs yields the documented defaults.
func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultVaultDir, cfg.App.VaultDir)
	assert.Equal(t, filepath.Join(DefaultVaultDir, ".temp"), cfg.App.TempDir)
	assert.Equal(t, DefaultVaultDir, cfg.App.LogDir)
	assert.Equal(t, 30*time.Second, cfg.App.ViewCleanupDelay)
	assert.Equal(t, 200, cfg.Search.Limit)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, 5*time.Minute, cfg.Search.CacheTTL)
	assert.Equal(t, filepath.Join(DefaultVaultDir, "catalog.db"), cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.Server.HTTPAddress)
}

// TestBuild_DerivedPathsFollowVaultDir verifies that temp dir, log dir and
// DSN defaults are derived from a configured vault dir.
func TestBuild_DerivedPathsFollowVaultDir(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{VaultDir: "/srv/vault"}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/srv/vault", ".temp"), cfg.App.TempDir)
	assert.Equal(t, "/srv/vault", cfg.App.LogDir)
	assert.Equal(t, filepath.Join("/srv/vault", "catalog.db"), cfg.Storage.DB.DSN)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{VaultDir: "from-env"}, Search: Search{Limit: 10}},
		&StructuredConfig{App: App{VaultDir: "from-flags"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-flags", cfg.App.VaultDir)
	assert.Equal(t, 10, cfg.Search.Limit)
}

// TestBuild_ValidationFailure verifies that invalid merged values are
// reported through the validation sentinels.
func TestBuild_ValidationFailure(t *testing.T) {
	tests := []struct {
		name string
		cfg  *StructuredConfig
		want error
	}{
		{
			name: "negative cleanup delay",
			cfg:  &StructuredConfig{App: App{ViewCleanupDelay: -time.Second}},
			want: ErrInvalidAppConfigs,
		},
		{
			name: "negative limit",
			cfg:  &StructuredConfig{Search: Search{Limit: -1}},
			want: ErrInvalidSearchConfigs,
		},
		{
			name: "in-memory catalog",
			cfg:  &StructuredConfig{Storage: Storage{DB: DB{DSN: ":memory:"}}},
			want: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_AppendsOneConfig(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_VAULT_DIR": "env-vault"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-vault", b.configs[0].App.VaultDir)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SEARCH_LIMIT": "lots"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-v", "flag-vault"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-vault", b.configs[0].App.VaultDir)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-search-limit", "x"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"vault_dir": "json-vault"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-vault", b.configs[1].App.VaultDir)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"vault_dir": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"vault_dir": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[2].App.VaultDir)
}

// ── GetStructuredConfig / GetServerConfig ─────────────────────────────────────

// TestGetStructuredConfig_Priority verifies env < flags < JSON.
func TestGetStructuredConfig_Priority(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"search": map[string]any{"limit": 42},
	})
	setEnvVars(t, map[string]string{
		"APP_VAULT_DIR": "env-vault",
		"SEARCH_LIMIT":  "5",
		"APP_TEMP_DIR":  "env-temp",
	})

	cfg, err := GetStructuredConfig([]string{"-v", "flag-vault", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "flag-vault", cfg.App.VaultDir)
	assert.Equal(t, "env-temp", cfg.App.TempDir)
	assert.Equal(t, 42, cfg.Search.Limit)
}

func TestGetServerConfig_RequiresAddress(t *testing.T) {
	clearEnvVars(t)

	_, err := GetServerConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)

	cfg, err := GetServerConfig([]string{"-a", "127.0.0.1:8080"})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddress)
}
