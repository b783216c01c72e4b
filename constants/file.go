package constants

import (
	"sort"
	"strings"
)

// AllowedExtensions holds the spreadsheet formats the ingest layer accepts.
// excelize reads the whole OOXML family; legacy .xls sheets are re-saved as
// .xlsx by the office staff before drop-off.
var AllowedExtensions = map[string]struct{}{
	"xlsx": {},
	"xlsm": {},
	"xltx": {},
	"xltm": {},
}

// ExtensionNames returns the allowed extensions as a sorted slice.
func ExtensionNames() []string {
	names := make([]string, 0, len(AllowedExtensions))
	for ext := range AllowedExtensions {
		names = append(names, ext)
	}
	sort.Strings(names)
	return names
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
