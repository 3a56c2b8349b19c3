package tabbar

import "errors"

// ErrInvalidConfig is returned, wrapped with the offending field, when a
// configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid tab bar configuration")
