package stats

import "strings"

// MissingDescription is returned when no catalog entry matches a stat.
const MissingDescription = "null"

// Placeholder is the generic class token used in catalog names and descriptions.
const Placeholder = "Class"

// Resolver attaches catalog descriptions to classified stats.
type Resolver struct {
	catalog *Catalog
}

// NewResolver constructs a Resolver over catalog. A nil catalog behaves as empty.
func NewResolver(catalog *Catalog) *Resolver {
	if catalog == nil {
		catalog = EmptyCatalog()
	}
	return &Resolver{catalog: catalog}
}

// NormalizeClassName replaces every occurrence of className in fullName with
// the generic placeholder, e.g. "Soldier.accum.iKills" -> "Class.accum.iKills".
func NormalizeClassName(fullName, className string) string {
	if className == "" {
		return fullName
	}
	return strings.ReplaceAll(fullName, className, Placeholder)
}

// SubstituteClassName replaces the placeholder in text with className.
func SubstituteClassName(text, className string) string {
	return strings.ReplaceAll(text, Placeholder, className)
}

// DescribeClassStat returns the description for a class stat. Mode does not
// affect the lookup.
func (r *Resolver) DescribeClassStat(s ClassStat) string {
	name := s.ClassName()
	desc, ok := r.catalog.Match(NormalizeClassName(s.FullName, name))
	if !ok {
		return MissingDescription
	}
	return SubstituteClassName(desc, name)
}

// DescribeAchievement returns the description stored under the exact stat name.
func (r *Resolver) DescribeAchievement(s AchievementStat) string {
	if desc, ok := r.catalog.Lookup(s.Name); ok {
		return desc
	}
	return MissingDescription
}

// Describe fills in the description of rec in place. Map records carry no
// description and are left untouched.
func (r *Resolver) Describe(rec *Record) {
	switch rec.Kind {
	case KindPvP, KindCoop:
		rec.Class.Description = r.DescribeClassStat(*rec.Class)
	case KindAchievement:
		rec.Achievement.Description = r.DescribeAchievement(*rec.Achievement)
	}
}
