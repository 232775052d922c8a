package download

import (
	"regexp"
	"strings"
)

// illegalChars are characters not allowed in filenames on common filesystems.
var illegalChars = regexp.MustCompile(`[<>:"/\\|?*\x00]`)

// multiSpace matches runs of whitespace.
var multiSpace = regexp.MustCompile(`\s+`)

// SanitizeFilename makes an indexer-provided torrent name safe to use as
// a local filename. Path separators and other illegal characters become
// spaces, so a hostile name cannot escape the target directory.
func SanitizeFilename(name string) string {
	name = illegalChars.ReplaceAllString(name, " ")
	name = multiSpace.ReplaceAllString(name, " ")
	return strings.Trim(name, " .")
}
