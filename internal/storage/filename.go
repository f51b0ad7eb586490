package storage

import (
	"regexp"

	"github.com/osse101/craftbench/internal/domain"
)

var specialSymbols = regexp.MustCompile(domain.SpecialSymbolsPattern)

// SanitizeFileName replaces every special symbol in name with "_" and
// appends the .json extension. "my file.v2" becomes "my_file_v2.json".
func SanitizeFileName(name string) string {
	return specialSymbols.ReplaceAllString(name, "_") + domain.FileExtension
}
