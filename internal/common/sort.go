// internal/common/sort.go
package common

import (
	"sort"

	"ridehr/internal/report"
)

// LessReport defines a stable order for reports (for --sort).
func LessReport(a, b report.Report) bool {
	if a.SourceFile != b.SourceFile {
		return a.SourceFile < b.SourceFile
	}
	return a.ID < b.ID
}

// SortReports orders reports deterministically.
func SortReports(list []report.Report) {
	sort.Slice(list, func(i, j int) bool { return LessReport(list[i], list[j]) })
}
