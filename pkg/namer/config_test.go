package namer_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namer/pkg/namer"
)

func clearNamerEnv(t *testing.T) {
	t.Helper()
	keys := []string{"NAMER_STRATEGY", "NAMER_DEFAULT_FILENAME", "NAMER_DEFAULT_EXTENSION", "NAMER_OPTIONS_FILE"}
	for _, k := range keys {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := namer.DefaultConfig()

	assert.Equal(t, namer.StrategyRandom, cfg.DefaultStrategy)
	assert.Equal(t, "file", cfg.DefaultFilename)
	assert.Equal(t, "txt", cfg.DefaultExtension)
	assert.Equal(t, namer.Options{namer.KeyLength: 16}, cfg.Options[namer.StrategyRandom])
	assert.Equal(t, namer.Options{namer.KeyPrefix: "onym_"}, cfg.Options[namer.StrategyPrefix])
	assert.Equal(t, namer.Options{namer.KeySuffix: "_onym"}, cfg.Options[namer.StrategySuffix])
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearNamerEnv(t)

	cfg, err := namer.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, namer.DefaultConfig(), cfg)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearNamerEnv(t)
	t.Setenv("NAMER_STRATEGY", " Slug ")
	t.Setenv("NAMER_DEFAULT_EXTENSION", "md")
	t.Setenv("NAMER_OPTIONS_FILE", "testdata/options.yaml")

	cfg, err := namer.LoadConfig("testdata/namer.env")
	require.NoError(t, err)

	assert.Equal(t, namer.StrategySlug, cfg.DefaultStrategy)
	assert.Equal(t, "upload", cfg.DefaultFilename)
	assert.Equal(t, "md", cfg.DefaultExtension)

	assert.Equal(t, 24, cfg.Options[namer.StrategyRandom][namer.KeyLength])
	assert.Equal(t, "_", cfg.Options[namer.StrategySlug][namer.KeySeparator])

	hash := cfg.Options[namer.StrategyHash]
	assert.Equal(t, "sha1", hash[namer.KeyAlgorithm])
	length, ok := hash[namer.KeyLength]
	assert.True(t, ok)
	assert.Nil(t, length)

	got, err := namer.New(cfg).Make(namer.WithName("Hello World"))
	require.NoError(t, err)
	assert.Equal(t, "hello_world.md", got)

	got, err = namer.New(cfg).Make(namer.WithName("test"), namer.WithStrategy(namer.StrategyHash))
	require.NoError(t, err)
	assert.Equal(t, "a94a8fe5ccb19ba61c4c0873d391e987982fbbd3.md", got)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing env file", func(t *testing.T) {
		clearNamerEnv(t)
		_, err := namer.LoadConfig("testdata/missing.env")
		assert.ErrorIs(t, err, namer.ErrLoadingConfig)
	})

	t.Run("missing options file", func(t *testing.T) {
		clearNamerEnv(t)
		t.Setenv("NAMER_OPTIONS_FILE", "testdata/missing.yaml")
		_, err := namer.LoadConfig()
		assert.ErrorIs(t, err, namer.ErrLoadingConfig)
	})
}
