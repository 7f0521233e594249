package shared

import (
	"regexp"
	"strings"
)

// DefaultFilename is the stem used when a title sanitizes to nothing.
const DefaultFilename string = "playlist"

var unsafeChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeFilename removes characters that are not allowed in file names on common filesystems
// (< > : " / \ | ? *) and trims surrounding whitespace.
//
// Empty results fall back to [DefaultFilename]. SanitizeFilename(SanitizeFilename(s)) == SanitizeFilename(s).
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(unsafeChars.ReplaceAllString(name, ""))
	if name == "" {
		return DefaultFilename
	}
	return name
}
