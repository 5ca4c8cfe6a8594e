package constants

import "strings"

// AllowedExtensions holds the allowed upload file extensions for extraction.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"xlsx": {},
	"csv":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt checks if a file extension is in the allowed set.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}
