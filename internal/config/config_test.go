// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pppaal/saju-astro-chat-sub036/internal/config"
	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
	"github.com/pppaal/saju-astro-chat-sub036/relations"
	"github.com/pppaal/saju-astro-chat-sub036/window"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// TestLoad_Defaults loads with no file present.
func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	c, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Seoul", c.Timezone)
	assert.Equal(t, "4", c.Relations.ClashMode)
	assert.Equal(t, "day", c.Relations.Gongmang)
	assert.True(t, c.Relations.SelfPunish)
	assert.Equal(t, window.DefaultCacheSize, c.Window.CacheSize)

	table, err := c.Conditions()
	require.NoError(t, err)
	assert.Len(t, table, window.NumEvents)
}

// TestLoad_FileAndEnv checks file values and environment precedence.
func TestLoad_FileAndEnv(t *testing.T) {
	cond := writeFile(t, "cond.yaml", "exam:\n  stars: {화개: 9}\n")
	path := writeFile(t, "saju.yaml", `
timezone: UTC
relations:
  clash_mode: "5"
  gongmang: both
  transform_note: true
window:
  parallelism: 2
  conditions_file: `+cond+`
`)
	t.Setenv("SAJU_WINDOW_CACHE_SIZE", "16")

	c, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "UTC", c.Timezone)
	assert.Equal(t, 2, c.Window.Parallelism)
	assert.Equal(t, 16, c.Window.CacheSize)

	opts, err := c.RelationOptions()
	require.NoError(t, err)
	fp, err := lexicon.ParseFourPillars("戊子 壬子 甲寅 己巳")
	require.NoError(t, err)
	hits := relations.Analyze(fp, opts...)
	assert.True(t, relations.ContainsKind(hits, relations.KindHeavenlyClash), "mode 5 adds 戊壬")

	table, err := c.Conditions()
	require.NoError(t, err)
	assert.Equal(t, 9, table.For(window.EventExam).Stars[lexicon.StarCanopy])
	assert.Len(t, c.WindowOptions(), 2)
}

// TestLoad_Invalid covers the validation sentinel and a missing explicit file.
func TestLoad_Invalid(t *testing.T) {
	path := writeFile(t, "saju.yaml", "relations:\n  clash_mode: \"7\"\n")
	_, err := config.Load(viper.New(), path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	path = writeFile(t, "saju.yaml", "timezone: Mars/Olympus\n")
	_, err = config.Load(viper.New(), path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
