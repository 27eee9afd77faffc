// Package namer generates storage filenames from an original name, an
// extension and a naming strategy.
//
// A Namer is built once from a Config holding the default strategy, filename,
// extension and per-strategy default options. Each call to Make resolves the
// effective strategy and options, runs the strategy and returns a plain
// string. The package never touches the file system.
//
// # Strategies
//
//   - random: alphanumeric string of "length" characters (default 16)
//   - uuid: version 4 UUID
//   - timestamp: "<now>_<name>", "format" defaults to Y-m-d_H-i-s
//   - date: "<today>_<name>", "format" defaults to Y-m-d
//   - prefix: "<prefix><name>", the "prefix" option is required
//   - suffix: "<name><suffix>", the "suffix" option is required
//   - numbered: "<name><separator><number>", defaults "_" and 1
//   - slug: slugified name joined by "separator" (default "-")
//   - hash: hex digest of the name using "algorithm" (default sha256),
//     optionally truncated to "length"
//   - original, default and any unknown name: "<name>" unchanged
//
// Date formats use PHP-style characters (Y, m, d, H, i, s, ...). A backslash
// escapes the following character.
//
// # Option precedence
//
// Make overlays call options on the configured options of the chosen
// strategy. Call keys win, including keys set to nil: a nil value resets the
// key to the strategy's built-in default rather than to the configured one.
// The per-strategy methods (Random, UUID, Timestamp, ...) skip the
// configuration layer and use exactly the options they are given.
//
// # Affixes
//
// Every strategy except the pass-through ones wraps its result with the
// optional "prefix" and "suffix" options before the extension is appended.
// The prefix and suffix strategies consume their namesake option themselves,
// so for them only the other affix is applied.
//
// # Usage
//
//	import "github.com/dmitrymomot/namer/pkg/namer"
//
//	n := namer.New(namer.DefaultConfig(), namer.WithLogger(log))
//
//	name, err := n.Make(
//		namer.WithName("Quarterly Report"),
//		namer.WithExtension("pdf"),
//		namer.WithStrategy(namer.StrategySlug),
//	)
//	// name == "quarterly-report.pdf"
//
//	name, err = n.Hash("avatar", "png", namer.Options{namer.KeyAlgorithm: "md5"})
//
// # Error Handling
//
// The only caller-facing failure is ErrInvalidOption: the prefix or suffix
// strategy without its required option, or an unsupported hash algorithm.
// Use errors.Is to detect it. Missing or unusable values for every other
// option fall back to the built-in defaults.
//
// # Configuration
//
// LoadConfig reads NAMER_STRATEGY, NAMER_DEFAULT_FILENAME,
// NAMER_DEFAULT_EXTENSION and NAMER_OPTIONS_FILE (a YAML mapping of strategy
// name to options) on top of DefaultConfig.
package namer
