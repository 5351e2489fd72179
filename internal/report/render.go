// Package report renders classified player stats as a Markdown document.
package report

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/cory-johannsen/tf2stats/internal/stats"
)

//go:embed templates/*.md.tmpl
var embedded embed.FS

const (
	tmplClassHeader = "class_header.md.tmpl"
	tmplPvP         = "class_stats_pvp.md.tmpl"
	tmplCoop        = "class_stats_mvm.md.tmpl"
	tmplMap         = "map_stats.md.tmpl"
	tmplAchievement = "achievement_stats.md.tmpl"
)

var templateNames = []string{tmplClassHeader, tmplPvP, tmplCoop, tmplMap, tmplAchievement}

// playTimeStat is the short name whose value is a duration in seconds.
const playTimeStat = "PlayTime"

type classHeaderData struct {
	Class string
}

type classStatData struct {
	Class       string
	ShortName   string
	Description string
	Value       string
}

type mapStatData struct {
	MapName        string
	GameMode       string
	GameModePrefix string
	PlayTime       string
}

type achievementStatData struct {
	Name        string
	Description string
	Value       int
}

// Renderer turns a stats.Collection into Markdown.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates. When templatesDir is non-empty,
// any file in it named like an embedded template replaces that template.
//
// Postcondition: Returns a non-nil Renderer or a non-nil error.
func NewRenderer(templatesDir string) (*Renderer, error) {
	t, err := template.New("report").ParseFS(embedded, "templates/*.md.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing embedded templates: %w", err)
	}
	if templatesDir == "" {
		return &Renderer{tmpl: t}, nil
	}
	for _, name := range templateNames {
		path := filepath.Join(templatesDir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", path, err)
		}
		if _, err := t.New(name).Parse(string(data)); err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", path, err)
		}
	}
	return &Renderer{tmpl: t}, nil
}

// Render produces the full report for player: header, PvP, MvM, maps and
// achievements, in that order. Only the PvP heading is level three.
//
// Precondition: col must be non-nil.
func (r *Renderer) Render(player string, col *stats.Collection) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "## TF2 Statistics for %s\n\n---\n", player)

	b.WriteString("### PvP\n\n")
	if err := r.renderClassSection(&b, tmplPvP, col.PvP); err != nil {
		return nil, err
	}

	b.WriteString("---\n\n## MvM\n\n")
	if err := r.renderClassSection(&b, tmplCoop, col.Coop); err != nil {
		return nil, err
	}

	b.WriteString("---\n\n## Maps\n\n")
	for _, m := range col.Maps {
		if err := r.line(&b, tmplMap, mapStatData{
			MapName:        m.MapName,
			GameMode:       m.GameMode.DisplayName(),
			GameModePrefix: string(m.GameMode),
			PlayTime:       FormatPlayTime(m.PlayTimeSeconds, false),
		}); err != nil {
			return nil, err
		}
	}

	b.WriteString("---\n\n## Achievements\n\n")
	for _, a := range col.Achievements {
		if err := r.line(&b, tmplAchievement, achievementStatData{
			Name:        a.Name,
			Description: a.Description,
			Value:       a.Value,
		}); err != nil {
			return nil, err
		}
	}
	return b.Bytes(), nil
}

func (r *Renderer) renderClassSection(b *bytes.Buffer, name string, in []stats.ClassStat) error {
	for _, g := range GroupByClass(in) {
		if err := r.line(b, tmplClassHeader, classHeaderData{Class: g.Class.String()}); err != nil {
			return err
		}
		for _, s := range g.Stats {
			if err := r.line(b, name, classStatData{
				Class:       s.ClassName(),
				ShortName:   s.ShortName,
				Description: s.Description,
				Value:       classStatValue(s),
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// line executes one template and appends its output as a single line.
func (r *Renderer) line(b *bytes.Buffer, name string, data any) error {
	var out strings.Builder
	if err := r.tmpl.ExecuteTemplate(&out, name, data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}
	b.WriteString(strings.TrimRight(out.String(), "\r\n"))
	b.WriteByte('\n')
	return nil
}

func classStatValue(s stats.ClassStat) string {
	if s.ShortName == playTimeStat {
		return FormatPlayTime(s.Value, true)
	}
	return strconv.Itoa(s.Value)
}

// WriteFile writes data to path, creating parent directories and replacing
// any existing file.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing report to %s: %w", path, err)
	}
	return nil
}
