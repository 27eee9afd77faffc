package file

import (
	"path/filepath"
	"strings"
)

// SanitizeFilename removes path components and null bytes from an untrusted
// filename. Returns "unnamed" for empty or special directory references.
//
// Example:
//
//	safe := file.SanitizeFilename("../../../etc/passwd")  // "passwd"
//	safe = file.SanitizeFilename("C:\\Windows\\file.txt") // "file.txt"
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}

// SplitName splits a filename into its name and extension. The extension is
// returned without the leading dot and lowercased. Dot-files such as
// ".gitignore" have no extension.
//
// Example:
//
//	name, ext := file.SplitName("Holiday Photo.JPG") // "Holiday Photo", "jpg"
//	name, ext = file.SplitName("archive.tar.gz")     // "archive.tar", "gz"
func SplitName(filename string) (name, ext string) {
	e := filepath.Ext(filename)
	if e == "" || e == filename {
		return filename, ""
	}
	return strings.TrimSuffix(filename, e), strings.ToLower(strings.TrimPrefix(e, "."))
}
