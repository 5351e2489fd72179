// Package stats classifies raw Steam user stats into typed class, map and
// achievement records and resolves their human-readable descriptions.
package stats

import (
	"errors"
	"fmt"
)

// ErrUnknownClass is returned when a class name is not one of the playable classes.
var ErrUnknownClass = errors.New("unknown class")

// ErrUnknownGameMode is returned when a map prefix is not a known game mode.
var ErrUnknownGameMode = errors.New("unknown game mode")

// RawStat is a single name/value pair as received from the API.
type RawStat struct {
	Name  string
	Value int
}

// Class identifies the character class a stat belongs to. ClassAny is the
// generic aggregate bucket the API reports as "Class".
type Class int

const (
	ClassAny Class = iota
	ClassScout
	ClassSoldier
	ClassPyro
	ClassDemoman
	ClassHeavy
	ClassEngineer
	ClassMedic
	ClassSniper
	ClassSpy
)

var classNames = [...]string{
	ClassAny:      "Class",
	ClassScout:    "Scout",
	ClassSoldier:  "Soldier",
	ClassPyro:     "Pyro",
	ClassDemoman:  "Demoman",
	ClassHeavy:    "Heavy",
	ClassEngineer: "Engineer",
	ClassMedic:    "Medic",
	ClassSniper:   "Sniper",
	ClassSpy:      "Spy",
}

// Classes lists every class in report order.
func Classes() []Class {
	out := make([]Class, len(classNames))
	for i := range classNames {
		out[i] = Class(i)
	}
	return out
}

// String returns the name the API uses for the class.
func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// ParseClass maps an API class name to its Class.
//
// Postcondition: Returns ErrUnknownClass (wrapped) for any name outside the enumeration.
func ParseClass(name string) (Class, error) {
	for i, n := range classNames {
		if n == name {
			return Class(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, name)
}

// Aggregation is how the game accumulates a class stat.
type Aggregation int

const (
	// Accumulated stats are lifetime totals ("accum").
	Accumulated Aggregation = iota
	// Maximum stats are single-life bests ("max").
	Maximum
)

func (a Aggregation) String() string {
	if a == Maximum {
		return "max"
	}
	return "accum"
}

func parseAggregation(s string) Aggregation {
	if s == "max" {
		return Maximum
	}
	return Accumulated
}

// Mode separates competitive play from Mann vs. Machine co-op.
type Mode int

const (
	ModePvP Mode = iota
	ModeCoop
)

func (m Mode) String() string {
	if m == ModeCoop {
		return "coop"
	}
	return "pvp"
}

// GameMode is the map prefix that identifies a map's objective type.
type GameMode string

const (
	GameModeArena GameMode = "arena"
	GameModeCP    GameMode = "cp"
	GameModeCTF   GameMode = "ctf"
	GameModeKOTH  GameMode = "koth"
	GameModePL    GameMode = "pl"
	GameModePLR   GameMode = "plr"
	GameModeSD    GameMode = "sd"
)

var gameModeNames = map[GameMode]string{
	GameModeArena: "Arena",
	GameModeCP:    "Capture Point",
	GameModeCTF:   "Capture the Flag",
	GameModeKOTH:  "King of the Hill",
	GameModePL:    "Payload",
	GameModePLR:   "Payload Race",
	GameModeSD:    "Special Delivery",
}

// ParseGameMode validates a map prefix.
func ParseGameMode(prefix string) (GameMode, error) {
	gm := GameMode(prefix)
	if _, ok := gameModeNames[gm]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownGameMode, prefix)
	}
	return gm, nil
}

// DisplayName returns the human-readable game mode name, or the raw prefix
// when unknown.
func (g GameMode) DisplayName() string {
	if n, ok := gameModeNames[g]; ok {
		return n
	}
	return string(g)
}

// ClassStat is a per-class combat or co-op statistic.
type ClassStat struct {
	FullName    string
	Class       Class
	ShortName   string
	Description string
	Value       int
	Mode        Mode
	Aggregation Aggregation
}

// ClassName returns the API spelling of the stat's class.
func (s ClassStat) ClassName() string { return s.Class.String() }

// MapStat is cumulative playtime on one map.
type MapStat struct {
	MapName         string
	GameMode        GameMode
	PlayTimeSeconds int
}

// AchievementStat is a counter tied to an in-game achievement.
type AchievementStat struct {
	Name        string
	Description string
	Value       int
}

// Kind tags which payload a Record carries.
type Kind int

const (
	KindPvP Kind = iota
	KindCoop
	KindMap
	KindAchievement
)

func (k Kind) String() string {
	switch k {
	case KindPvP:
		return "pvp"
	case KindCoop:
		return "coop"
	case KindMap:
		return "map"
	case KindAchievement:
		return "achievement"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Record is the result of classifying one RawStat. Exactly one of Class,
// Map or Achievement is non-nil, selected by Kind.
type Record struct {
	Kind        Kind
	Class       *ClassStat
	Map         *MapStat
	Achievement *AchievementStat
}

// Collection holds every classified stat of one player in API order.
type Collection struct {
	PvP          []ClassStat
	Coop         []ClassStat
	Maps         []MapStat
	Achievements []AchievementStat
}

// Add appends r to the slice matching its kind.
func (c *Collection) Add(r Record) {
	switch r.Kind {
	case KindPvP:
		c.PvP = append(c.PvP, *r.Class)
	case KindCoop:
		c.Coop = append(c.Coop, *r.Class)
	case KindMap:
		c.Maps = append(c.Maps, *r.Map)
	case KindAchievement:
		c.Achievements = append(c.Achievements, *r.Achievement)
	}
}

// Len returns the total number of classified stats.
func (c *Collection) Len() int {
	return len(c.PvP) + len(c.Coop) + len(c.Maps) + len(c.Achievements)
}
