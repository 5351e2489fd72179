package stats

import (
	"fmt"
	"regexp"

	"go.uber.org/zap"
)

const classAlternation = `(Class|Scout|Soldier|Pyro|Demoman|Heavy|Engineer|Medic|Sniper|Spy)`

type rule struct {
	kind    Kind
	pattern *regexp.Regexp
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{KindPvP, regexp.MustCompile(`^` + classAlternation + `\.(accum|max)\.i([a-zA-Z]+)$`)},
	{KindCoop, regexp.MustCompile(`^` + classAlternation + `\.mvm\.(accum|max)\.i([a-zA-Z]+)$`)},
	{KindMap, regexp.MustCompile(`^((arena|cp|ctf|koth|pl|plr|sd)_[a-zA-Z0-9_]+)\.accum\.iPlayTime$`)},
	{KindAchievement, regexp.MustCompile(`^TF_.*_STAT$`)},
}

// Classifier turns raw stats into typed records with descriptions attached.
// It holds no mutable state and may be reused across inputs.
type Classifier struct {
	resolver *Resolver
	logger   *zap.Logger
}

// NewClassifier constructs a Classifier.
//
// Precondition: resolver must be non-nil. A nil logger discards output.
func NewClassifier(resolver *Resolver, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{resolver: resolver, logger: logger}
}

// ClassifyOne matches raw against the rule table. The boolean is false when
// no rule matches; the stat is then meant to be dropped.
func (c *Classifier) ClassifyOne(raw RawStat) (Record, bool, error) {
	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(raw.Name)
		if m == nil {
			continue
		}
		rec, err := build(r.kind, m, raw.Value)
		if err != nil {
			return Record{}, false, fmt.Errorf("classifying %q: %w", raw.Name, err)
		}
		c.resolver.Describe(&rec)
		return rec, true, nil
	}
	return Record{}, false, nil
}

// Classify classifies every stat in order. Stats without a name or without a
// matching rule are skipped.
//
// Postcondition: Returns a non-nil Collection whose Len never exceeds len(raw), or a non-nil error.
func (c *Classifier) Classify(raw []RawStat) (*Collection, error) {
	col := &Collection{}
	for _, s := range raw {
		if s.Name == "" {
			continue
		}
		rec, ok, err := c.ClassifyOne(s)
		if err != nil {
			return nil, err
		}
		if !ok {
			c.logger.Debug("dropping unclassified stat", zap.String("stat", s.Name))
			continue
		}
		c.logRecord(rec)
		col.Add(rec)
	}
	return col, nil
}

func build(kind Kind, m []string, value int) (Record, error) {
	switch kind {
	case KindPvP, KindCoop:
		class, err := ParseClass(m[1])
		if err != nil {
			return Record{}, err
		}
		mode := ModePvP
		if kind == KindCoop {
			mode = ModeCoop
		}
		return Record{Kind: kind, Class: &ClassStat{
			FullName:    m[0],
			Class:       class,
			ShortName:   m[3],
			Value:       value,
			Mode:        mode,
			Aggregation: parseAggregation(m[2]),
		}}, nil
	case KindMap:
		gm, err := ParseGameMode(m[2])
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: kind, Map: &MapStat{
			MapName:         m[1],
			GameMode:        gm,
			PlayTimeSeconds: value,
		}}, nil
	case KindAchievement:
		return Record{Kind: kind, Achievement: &AchievementStat{
			Name:  m[0],
			Value: value,
		}}, nil
	default:
		return Record{}, fmt.Errorf("unhandled kind %s", kind)
	}
}

func (c *Classifier) logRecord(rec Record) {
	switch rec.Kind {
	case KindPvP, KindCoop:
		c.logger.Debug("classified class stat",
			zap.Stringer("mode", rec.Class.Mode),
			zap.String("class", rec.Class.ClassName()),
			zap.String("stat", rec.Class.ShortName),
			zap.Int("value", rec.Class.Value),
			zap.String("description", rec.Class.Description),
		)
	case KindMap:
		c.logger.Debug("classified map stat",
			zap.String("map", rec.Map.MapName),
			zap.String("game_mode", string(rec.Map.GameMode)),
			zap.Int("play_time", rec.Map.PlayTimeSeconds),
		)
	case KindAchievement:
		c.logger.Debug("classified achievement stat",
			zap.String("stat", rec.Achievement.Name),
			zap.Int("value", rec.Achievement.Value),
			zap.String("description", rec.Achievement.Description),
		)
	}
}
