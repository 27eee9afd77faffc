// Package file provides helpers for handling the names of uploaded files.
//
// It never opens, reads or writes files. The helpers clean untrusted client
// filenames (path traversal, Windows separators, null bytes) and split them
// into a name and an extension so that callers can compute a storage name.
//
// # Usage
//
//	import "github.com/dmitrymomot/namer/pkg/file"
//
//	safe := file.SanitizeFilename(fh.Filename) // "../x/My File.PDF" -> "My File.PDF"
//	name, ext := file.SplitName(safe)           // "My File", "pdf"
package file
