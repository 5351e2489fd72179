package report

import (
	"sort"

	"github.com/cory-johannsen/tf2stats/internal/stats"
)

// ClassGroup is the run of stats belonging to one class.
type ClassGroup struct {
	Class stats.Class
	Stats []stats.ClassStat
}

// GroupByClass orders stats by class, keeping the input order within a class,
// and splits them into one group per class present. The input is not modified.
//
// Postcondition: groups are in ascending class order, none is empty, and the
// total number of stats equals len(in).
func GroupByClass(in []stats.ClassStat) []ClassGroup {
	sorted := make([]stats.ClassStat, len(in))
	copy(sorted, in)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Class < sorted[j].Class })

	var groups []ClassGroup
	for _, s := range sorted {
		if n := len(groups); n == 0 || groups[n-1].Class != s.Class {
			groups = append(groups, ClassGroup{Class: s.Class})
		}
		last := &groups[len(groups)-1]
		last.Stats = append(last.Stats, s)
	}
	return groups
}
