package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/masthead/internal/log"
)

func TestSaveCatalog_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveCatalog(path, CatalogConfig{FrequentThreshold: 5}))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	require.Equal(t, 5, v.GetInt("catalog.frequent_threshold"))
}

func TestSaveCatalog_PreservesOtherSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	require.NoError(t, SaveCatalog(path, CatalogConfig{FrequentThreshold: 9}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	require.Contains(t, content, "# Write a debug log")
	require.Contains(t, content, "frequent_threshold: 9")
	require.NotContains(t, content, "frequent_threshold: 2")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9, cfg.Catalog.FrequentThreshold)
	require.Equal(t, Defaults().Log, cfg.Log)
}

func TestSaveCatalog_AppendsMissingSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug # verbose\n"), 0600))

	require.NoError(t, SaveCatalog(path, CatalogConfig{FrequentThreshold: 1}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "level: debug # verbose")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Catalog.FrequentThreshold)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestSaveCatalog_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := SaveCatalog(path, CatalogConfig{FrequentThreshold: -2})
	require.Error(t, err)
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestSaveCatalog_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unclosed"), 0600))

	err := SaveCatalog(path, CatalogConfig{FrequentThreshold: 1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing config")
}

func TestSaveCatalog_ReplacesScalarSection(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(nil) })

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog: 3\n"), 0600))

	require.NoError(t, SaveCatalog(path, CatalogConfig{FrequentThreshold: 3}))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Catalog.FrequentThreshold)
	require.Contains(t, buf.String(), "[WARN] [config] catalog section is not a mapping")
}
