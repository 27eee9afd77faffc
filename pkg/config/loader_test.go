package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namer/pkg/config"
)

type fileEnvConfig struct {
	String     string   `env:"TEST_CFG_STRING"`
	Int        int      `env:"TEST_CFG_INT"`
	List       []string `env:"TEST_CFG_LIST" envSeparator:","`
	Quoted     string   `env:"TEST_CFG_QUOTED"`
	OnlySecond string   `env:"TEST_CFG_ONLY_SECOND"`
}

type defaultsConfig struct {
	Strategy string `env:"TEST_CFG_STRATEGY" envDefault:"random"`
	Length   int    `env:"TEST_CFG_LENGTH" envDefault:"16"`
}

type requiredConfig struct {
	Required string `env:"TEST_CFG_REQUIRED,required"`
}

// unsetEnv clears keys now and after the test, since LoadEnv writes to the process environment.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_CFG_STRATEGY", "uuid")
	t.Setenv("TEST_CFG_LENGTH", "8")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "uuid", cfg.Strategy)
	assert.Equal(t, 8, cfg.Length)
}

func TestLoad_DefaultValues(t *testing.T) {
	unsetEnv(t, "TEST_CFG_STRATEGY", "TEST_CFG_LENGTH")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "random", cfg.Strategy)
	assert.Equal(t, 16, cfg.Length)
}

func TestLoad_MissingRequired(t *testing.T) {
	unsetEnv(t, "TEST_CFG_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	assert.Panics(t, func() { config.MustLoad(cfg) })
}

func TestLoadEnv_CustomPath(t *testing.T) {
	unsetEnv(t, "TEST_CFG_STRING", "TEST_CFG_INT", "TEST_CFG_LIST", "TEST_CFG_QUOTED", "TEST_CFG_ONLY_SECOND")

	require.NoError(t, config.LoadEnv("testdata/.env.custom"))

	var cfg fileEnvConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.String)
	assert.Equal(t, 1234, cfg.Int)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.List)
	assert.Equal(t, "quoted value", cfg.Quoted)
}

func TestLoadEnv_FirstFileWins(t *testing.T) {
	unsetEnv(t, "TEST_CFG_STRING", "TEST_CFG_INT", "TEST_CFG_LIST", "TEST_CFG_QUOTED", "TEST_CFG_ONLY_SECOND")

	require.NoError(t, config.LoadEnv("testdata/.env.custom", "testdata/.env.second"))

	var cfg fileEnvConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.String)
	assert.Equal(t, "unique", cfg.OnlySecond)
}

func TestLoadEnv_ExistingEnvWins(t *testing.T) {
	unsetEnv(t, "TEST_CFG_INT", "TEST_CFG_LIST", "TEST_CFG_QUOTED")
	t.Setenv("TEST_CFG_STRING", "from_process")

	require.NoError(t, config.LoadEnv("testdata/.env.custom"))
	assert.Equal(t, "from_process", os.Getenv("TEST_CFG_STRING"))
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv("testdata/non_existent_file.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrReadingFile)
	assert.Panics(t, func() { config.MustLoadEnv("testdata/non_existent_file.env") })
}

func TestLoadYAML(t *testing.T) {
	t.Run("options file", func(t *testing.T) {
		var opts map[string]map[string]any
		require.NoError(t, config.LoadYAML("testdata/options.yaml", &opts))

		assert.Equal(t, 24, opts["random"]["length"])
		assert.Equal(t, "sha1", opts["hash"]["algorithm"])

		v, ok := opts["hash"]["length"]
		assert.True(t, ok, "null keys must be kept")
		assert.Nil(t, v)
	})

	t.Run("missing file", func(t *testing.T) {
		var opts map[string]any
		assert.ErrorIs(t, config.LoadYAML("testdata/missing.yaml", &opts), config.ErrReadingFile)
	})

	t.Run("broken file", func(t *testing.T) {
		var opts map[string]any
		assert.ErrorIs(t, config.LoadYAML("testdata/broken.yaml", &opts), config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var opts *map[string]any
		assert.ErrorIs(t, config.LoadYAML("testdata/options.yaml", opts), config.ErrNilPointer)
	})
}
