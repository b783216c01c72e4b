package ingest

import (
	"path/filepath"
	"strings"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
)

// AllowedPath reports whether the path looks like an ingestable workbook.
// Office lock files (~$Name.xlsx) are excluded; they appear whenever a
// sheet is open in Excel and vanish on close.
func AllowedPath(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, "~$") {
		return false
	}
	ext := constants.NormalizeExt(filepath.Ext(path))
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
