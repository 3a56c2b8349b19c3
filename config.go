package tabbar

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/xqrs/tabbar/geom"
)

// Config holds every tunable of a tab bar. The layout mode is not part of it;
// it is always derived from the item count and the viewport width.
type Config struct {
	// ItemWidth is the width of one item. Zero or negative values select
	// DefaultItemWidth.
	ItemWidth float64 `toml:"item_width"`
	// DefaultItemWidth is used when ItemWidth is not set.
	DefaultItemWidth float64 `toml:"default_item_width"`
	// InfiniteScrolling makes the bar wrap around when its items do not fit.
	// With it disabled the bar scrolls between its first and last item.
	InfiniteScrolling bool `toml:"infinite_scrolling"`
	// Compact stretches items across the whole viewport in static layout.
	// Otherwise static items keep their width and are centered.
	Compact bool `toml:"compact"`

	// ItemInsets pads the scrolling area inside the bar's bounds.
	ItemInsets geom.Insets `toml:"item_insets"`
	// TitleInsets pads titles inside their items. Renderers only.
	TitleInsets geom.Insets `toml:"title_insets"`

	// FadeDuration is the length of each half of the fade that replaces the
	// visible items after SetItems(..., true).
	FadeDuration Duration `toml:"fade_duration"`
	// SelectDuration is the length of the selection transition. DidSelect
	// fires when it completes.
	SelectDuration Duration `toml:"select_duration"`
	// ScrollDuration is the length of programmatic scrolls.
	ScrollDuration Duration `toml:"scroll_duration"`
	// DecelerationDuration and DecelerationDistance shape flicks.
	DecelerationDuration Duration `toml:"deceleration_duration"`
	DecelerationDistance float64  `toml:"deceleration_distance"`

	// RecenterFraction is the distance from the content midpoint, as a
	// fraction of the content width, that triggers recentering.
	RecenterFraction float64 `toml:"recenter_fraction"`
	// ContentMultiplier sizes the infinite content area as a multiple of the
	// natural width of all items.
	ContentMultiplier float64 `toml:"content_multiplier"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		DefaultItemWidth:     64,
		InfiniteScrolling:    true,
		Compact:              true,
		FadeDuration:         Duration(150 * time.Millisecond),
		SelectDuration:       Duration(500 * time.Millisecond),
		ScrollDuration:       Duration(300 * time.Millisecond),
		DecelerationDuration: Duration(400 * time.Millisecond),
		DecelerationDistance: 4,
		RecenterFraction:     0.25,
		ContentMultiplier:    4,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. A missing file is not
// an error; the defaults are returned as they are.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that values are in range.
func (c Config) Validate() error {
	switch {
	case c.DefaultItemWidth <= 0:
		return fmt.Errorf("%w: default_item_width must be positive, got %v", ErrInvalidConfig, c.DefaultItemWidth)
	case c.RecenterFraction <= 0 || c.RecenterFraction >= 0.5:
		return fmt.Errorf("%w: recenter_fraction must be in (0, 0.5), got %v", ErrInvalidConfig, c.RecenterFraction)
	case c.ContentMultiplier < 2:
		return fmt.Errorf("%w: content_multiplier must be at least 2, got %v", ErrInvalidConfig, c.ContentMultiplier)
	case c.DecelerationDistance < 0:
		return fmt.Errorf("%w: deceleration_distance must not be negative, got %v", ErrInvalidConfig, c.DecelerationDistance)
	case c.FadeDuration < 0 || c.SelectDuration < 0 || c.ScrollDuration < 0 || c.DecelerationDuration < 0:
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	}
	return nil
}

// EffectiveItemWidth returns ItemWidth if positive, DefaultItemWidth
// otherwise.
func (c Config) EffectiveItemWidth() float64 {
	if c.ItemWidth > 0 {
		return c.ItemWidth
	}
	return c.DefaultItemWidth
}

// Duration is a time.Duration written as a string ("150ms") in TOML files.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}
