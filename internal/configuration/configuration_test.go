package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malonaz/urlreader/api"
	"github.com/malonaz/urlreader/internal/i18n"
)

func clearEnvironment(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "")
	t.Setenv(EnvViteAPIBaseURL, "")
	t.Setenv(EnvLanguage, "")
	t.Setenv("LANG", "en_US.UTF-8")
}

func TestParseInitializesDefaultConfig(t *testing.T) {
	clearEnvironment(t)
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	config, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, api.DefaultBaseURL, config.APIBaseURL)
	assert.Equal(t, 10*time.Second, config.Timeout())
	assert.Equal(t, api.ModelAzureOpenAI, config.Model())
	assert.Equal(t, i18n.English, config.Locale())
	assert.Equal(t, 3030, config.Web.Port)

	_, err = os.Stat(path)
	require.NoError(t, err)

	baseURL, err := config.ResolveAPIBaseURL()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", baseURL)
}

func TestParseFillsMissingFields(t *testing.T) {
	clearEnvironment(t)
	path := filepath.Join(t.TempDir(), "config.json")
	bytes, err := json.Marshal(map[string]any{"default_model": "deepseek", "language": "zh"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, bytes, 0644))

	config, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, api.ModelDeepseek, config.Model())
	assert.Equal(t, i18n.Chinese, config.Locale())
	assert.Equal(t, 10, config.RequestTimeout)
	assert.Equal(t, "http://localhost:8080", config.BackendHost)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	clearEnvironment(t)
	t.Setenv(EnvViteAPIBaseURL, "https://vite.example/api")
	t.Setenv(EnvLanguage, "ZH")

	config, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "https://vite.example/api", config.APIBaseURL)
	assert.Equal(t, i18n.Chinese, config.Locale())

	t.Setenv(EnvAPIBaseURL, "https://reader.example/v1")
	config, err = Default()
	require.NoError(t, err)
	baseURL, err := config.ResolveAPIBaseURL()
	require.NoError(t, err)
	assert.Equal(t, "https://reader.example/v1", baseURL)
}

func TestInvalidValues(t *testing.T) {
	clearEnvironment(t)
	t.Setenv(EnvLanguage, "fr")
	_, err := Default()
	require.Error(t, err)

	clearEnvironment(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"default_model":"gpt-4"}`), 0644))
	_, err = Parse(path)
	require.Error(t, err)

	config := &Config{APIBaseURL: "/api", BackendHost: "localhost"}
	_, err = config.ResolveAPIBaseURL()
	require.Error(t, err)
}

func TestLoadDotenv(t *testing.T) {
	const loaded, preset = "URLREADER_TEST_DOTENV_LOADED", "URLREADER_TEST_DOTENV_PRESET"
	t.Setenv(preset, "from environment")
	t.Cleanup(func() { os.Unsetenv(loaded) })

	path := filepath.Join(t.TempDir(), ".env")
	content := loaded + "=from dotenv\n" + preset + "=from dotenv\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	require.NoError(t, loadDotenv(path))
	assert.Equal(t, "from dotenv", os.Getenv(loaded))
	assert.Equal(t, "from environment", os.Getenv(preset), "the environment wins over .env")

	require.NoError(t, loadDotenv(filepath.Join(t.TempDir(), "missing.env")))
}
