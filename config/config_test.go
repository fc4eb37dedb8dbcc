package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kevin-chtw/tw_paipu/config"
	"github.com/kevin-chtw/tw_paipu/paipu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "jp", cfg.Lang)
	assert.Equal(t, 500, cfg.DelayMS)
	assert.Equal(t, "info", cfg.Level)
}

func Test_LoadYaml(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "paipu.yaml")
	content := `
lang: en
showFu: true
kiriage: true
delayMs: 200
outputDir: /tmp/out
log:
  level: debug
roomNames:
  216: "王座の間"
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	cfg, err := config.Load(file)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Lang)
	assert.True(t, cfg.ShowFu)
	assert.True(t, cfg.Kiriage)
	assert.Equal(t, 200, cfg.DelayMS)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "王座の間", cfg.RoomNameTable()[216])

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, paipu.LangEN, opts.Lang)
	assert.True(t, opts.ShowFu)
	assert.True(t, opts.Kiriage)
}

func Test_OptionsRejectsUnknownLang(t *testing.T) {
	cfg := config.Default()
	cfg.Lang = "fr"
	_, err := cfg.Options()
	assert.Error(t, err)
}
