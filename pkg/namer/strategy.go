package namer

import (
	"slices"
	"strings"
)

// Strategy names a filename generation algorithm.
type Strategy string

const (
	StrategyOriginal  Strategy = "original"
	StrategyDefault   Strategy = "default"
	StrategyRandom    Strategy = "random"
	StrategyUUID      Strategy = "uuid"
	StrategyTimestamp Strategy = "timestamp"
	StrategyDate      Strategy = "date"
	StrategyPrefix    Strategy = "prefix"
	StrategySuffix    Strategy = "suffix"
	StrategyNumbered  Strategy = "numbered"
	StrategySlug      Strategy = "slug"
	StrategyHash      Strategy = "hash"
)

// String implements fmt.Stringer.
func (s Strategy) String() string { return string(s) }

// ParseStrategy normalizes a strategy name. The second return value reports
// whether the name is one of the registered strategies.
func ParseStrategy(s string) (Strategy, bool) {
	st := Strategy(strings.ToLower(strings.TrimSpace(s)))
	_, ok := registry[st]
	return st, ok
}

// strategyFunc computes the raw base name for a strategy.
// Affixes and the extension are applied by the caller.
type strategyFunc func(n *Namer, name string, opts Options) (string, error)

// registry maps every known strategy to its implementation.
// Adding a strategy means adding an entry here.
var registry = map[Strategy]strategyFunc{
	StrategyOriginal:  passThrough,
	StrategyDefault:   passThrough,
	StrategyRandom:    randomBase,
	StrategyUUID:      uuidBase,
	StrategyTimestamp: timestampBase,
	StrategyDate:      dateBase,
	StrategyPrefix:    prefixBase,
	StrategySuffix:    suffixBase,
	StrategyNumbered:  numberedBase,
	StrategySlug:      slugBase,
	StrategyHash:      hashBase,
}

// lookup returns the implementation for s, falling back to pass-through
// for unknown names.
func lookup(s Strategy) (strategyFunc, bool) {
	if fn, ok := registry[s]; ok {
		return fn, true
	}
	return passThrough, false
}

// Strategies returns all registered strategy names in sorted order.
func Strategies() []Strategy {
	out := make([]Strategy, 0, len(registry))
	for s := range registry {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// affixes reports which composer affixes apply to a strategy.
// Pass-through strategies keep the name unchanged. The prefix and suffix
// strategies consume their namesake option themselves.
func affixes(s Strategy, known bool) (usePrefix, useSuffix bool) {
	if !known {
		return false, false
	}
	switch s {
	case StrategyOriginal, StrategyDefault:
		return false, false
	case StrategyPrefix:
		return false, true
	case StrategySuffix:
		return true, false
	default:
		return true, true
	}
}
