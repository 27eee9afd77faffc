// Package slug converts arbitrary text into lowercase, separator-joined
// slugs suitable for filenames and URLs.
//
// Diacritics are folded to ASCII using Unicode canonical decomposition from
// golang.org/x/text ("Café" becomes "cafe"), any run of characters that are
// not ASCII letters or digits collapses into a single separator, and
// separators never lead or trail the result.
//
// # Usage
//
//	import "github.com/dmitrymomot/namer/pkg/slug"
//
//	slug.Make("Test File Name")                      // "test-file-name"
//	slug.Make("Über Größe", slug.Separator("_"))     // "uber_grose"
//	slug.Make("Hello World", slug.Lowercase(false))  // "Hello-World"
//	slug.Make("A very long title", slug.MaxLength(6)) // "a-very"
//
// All functions are safe for concurrent use.
package slug
