package tabbar

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tabbar.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
item_width = 12
infinite_scrolling = false
fade_duration = "75ms"

[item_insets]
left = 1
right = 2

[title_insets]
left = 1
right = 1
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 12.0, cfg.ItemWidth)
	require.False(t, cfg.InfiniteScrolling)
	require.Equal(t, 75*time.Millisecond, cfg.FadeDuration.Std())
	require.Equal(t, 3.0, cfg.ItemInsets.Horizontal())
	require.Equal(t, 2.0, cfg.TitleInsets.Horizontal())
	// Untouched fields keep their defaults.
	require.Equal(t, 64.0, cfg.DefaultItemWidth)
	require.Equal(t, 500*time.Millisecond, cfg.SelectDuration.Std())
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"default width", "default_item_width = 0"},
		{"recenter fraction", "recenter_fraction = 0.5"},
		{"content multiplier", "content_multiplier = 1"},
		{"deceleration", "deceleration_distance = -1"},
		{"duration", `scroll_duration = "-1s"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadConfigSyntaxError(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "item_width = ="))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadConfig(writeConfig(t, `fade_duration = "soon"`))
	require.Error(t, err)
}

func TestEffectiveItemWidth(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 64.0, cfg.EffectiveItemWidth())
	cfg.ItemWidth = -3
	require.Equal(t, 64.0, cfg.EffectiveItemWidth())
	cfg.ItemWidth = 20
	require.Equal(t, 20.0, cfg.EffectiveItemWidth())
}

func TestDurationText(t *testing.T) {
	text, err := Duration(1500 * time.Millisecond).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "1.5s", string(text))

	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("250ms")))
	require.Equal(t, 250*time.Millisecond, d.Std())
}
