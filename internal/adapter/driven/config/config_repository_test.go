package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/diillson/savings-post-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile_TOML(t *testing.T) {
	path := writeFile(t, "savings.toml", `
input = "data/ledger.json"
output_dir = "build"
image_width = 800
image_height = 1200
report_type = ["csv", "pdf"]
`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)

	require.NoError(t, err)
	assert.Equal(t, "data/ledger.json", cfg.Input)
	assert.Equal(t, "build", cfg.OutputDir)
	assert.Equal(t, 800, cfg.ImageWidth)
	assert.Equal(t, 1200, cfg.ImageHeight)
	assert.Equal(t, []string{"csv", "pdf"}, cfg.ReportType)
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := writeFile(t, "savings.yml", `
image_model: turbo
caption_language: tr
s3_bucket: my-bucket
thumbnail_width: 250
`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)

	require.NoError(t, err)
	assert.Equal(t, "turbo", cfg.ImageModel)
	assert.Equal(t, "tr", cfg.CaptionLanguage)
	assert.Equal(t, "my-bucket", cfg.S3Bucket)
	assert.Equal(t, 250, cfg.ThumbnailWidth)
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := writeFile(t, "savings.json", `{"image_timeout": "30s", "region": "eu-central-1"}`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)

	require.NoError(t, err)
	assert.Equal(t, "30s", cfg.ImageTimeout)
	assert.Equal(t, "eu-central-1", cfg.Region)
}

func TestLoadConfigFile_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "savings.ini", "input=x")

	_, err := NewConfigRepository().LoadConfigFile(path)

	assert.ErrorIs(t, err, types.ErrUnsupportedConfigFormat)
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := NewConfigRepository().LoadConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadConfigFile_Directory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "conf.toml")
	require.NoError(t, os.Mkdir(dir, 0o755))

	_, err := NewConfigRepository().LoadConfigFile(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}
