package namer

import (
	"maps"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Option keys recognized by the built-in strategies.
const (
	KeyLength    = "length"
	KeyFormat    = "format"
	KeyNumber    = "number"
	KeyAlgorithm = "algorithm"
	KeyPrefix    = "prefix"
	KeySuffix    = "suffix"
	KeySeparator = "separator"
)

// Options holds per-strategy settings. Values are strings, integers or nil.
// A nil value means "use the strategy default", the same as an absent key.
type Options map[string]any

// Clone returns a shallow copy of o. A nil map stays nil.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	return maps.Clone(o)
}

// merge overlays override on top of base. Keys present in override win,
// including keys explicitly set to nil.
func merge(base, override Options) Options {
	out := make(Options, len(base)+len(override))
	maps.Copy(out, base)
	maps.Copy(out, override)
	return out
}

// value returns the raw value for key, reporting false when the key is absent or nil.
func (o Options) value(key string) (any, bool) {
	v, ok := o[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// String returns the value for key as a string.
// It reports false when the key is absent, nil or not convertible.
func (o Options) String(key string) (string, bool) {
	v, ok := o.value(key)
	if !ok {
		return "", false
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}
	return s, true
}

// Int returns the value for key as an int.
// Decimal strings such as "8" or "010" are accepted, which keeps values read
// from env vars and YAML usable. It reports false when the key is absent, nil
// or not convertible.
func (o Options) Int(key string) (int, bool) {
	v, ok := o.value(key)
	if !ok {
		return 0, false
	}
	if s, isStr := v.(string); isStr {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, false
		}
		return i, true
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, false
	}
	return i, true
}

// stringOr returns the string value for key or def.
func (o Options) stringOr(key, def string) string {
	if s, ok := o.String(key); ok {
		return s
	}
	return def
}

// intOr returns the int value for key or def.
func (o Options) intOr(key string, def int) int {
	if i, ok := o.Int(key); ok {
		return i
	}
	return def
}
