package reporter_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/leighmacdonald/steamid/v2/steamid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/tf2stats/internal/report"
	"github.com/cory-johannsen/tf2stats/internal/reporter"
	"github.com/cory-johannsen/tf2stats/internal/reporter/mocks"
	"github.com/cory-johannsen/tf2stats/internal/stats"
)

const (
	testSID = steamid.SID64(76561197960287930)
	testKey = "ABCDEF0123456789"
)

var rawStats = []stats.RawStat{
	{Name: "Soldier.accum.iKills", Value: 12},
	{Name: "Scout.accum.iPlayTime", Value: 65},
	{Name: "Medic.mvm.accum.iKills", Value: 4},
	{Name: "cp_granary.accum.iPlayTime", Value: 3661},
	{Name: "TF_DEMOMAN_STICKY_STAT", Value: 2},
	{Name: "not_a_stat", Value: 1},
}

type fixture struct {
	source  *mocks.MockSource
	dir     string
	catalog string
	output  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	return &fixture{
		source:  mocks.NewMockSource(ctrl),
		dir:     dir,
		catalog: filepath.Join(dir, "stat_names.json"),
		output:  filepath.Join(dir, "out", "stats.md"),
	}
}

func (f *fixture) reporter(t *testing.T, logger *zap.Logger) *reporter.Reporter {
	t.Helper()
	renderer, err := report.NewRenderer("")
	require.NoError(t, err)
	return reporter.New(f.source, renderer, reporter.Options{
		CatalogPath:       f.catalog,
		OutputPath:        f.output,
		DefaultPlayerName: "User",
	}, logger)
}

func (f *fixture) writeCatalog(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(f.catalog, []byte(content), 0644))
}

func TestRun_WritesReport(t *testing.T) {
	f := newFixture(t)
	f.writeCatalog(t, `{"stats": [
		{"name": "Class.accum.iKills", "description": "Kills as Class"},
		{"name": "Class.accum.iPlayTime", "description": "Time played as Class"},
		{"name": "TF_DEMOMAN_STICKY_STAT", "description": "Sticky kills"}
	]}`)

	gomock.InOrder(
		f.source.EXPECT().FetchUserStats(gomock.Any(), testSID, testKey).Return(rawStats, nil),
		f.source.EXPECT().FetchPersonaName(gomock.Any(), testSID, testKey).Return("Rabscuttle", nil),
	)

	res, err := f.reporter(t, zaptest.NewLogger(t)).Run(context.Background(), testSID, testKey)
	require.NoError(t, err)
	assert.Equal(t, "Rabscuttle", res.PlayerName)
	assert.Equal(t, f.output, res.OutputPath)
	assert.Equal(t, 5, res.Collection.Len())

	data, err := os.ReadFile(f.output)
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, "## TF2 Statistics for Rabscuttle")
	assert.Contains(t, doc, "  - Time played as Scout: 01:05.00\n")
	assert.Contains(t, doc, "  - Kills as Soldier: 12\n")
	assert.Contains(t, doc, "- cp_granary (Capture Point): 01:01:01\n")
	assert.Contains(t, doc, "- Sticky kills: 2\n")
	assert.NotContains(t, doc, "not_a_stat")
}

func TestRun_MissingCatalogUsesNull(t *testing.T) {
	f := newFixture(t)
	core, logs := observer.New(zap.InfoLevel)

	f.source.EXPECT().FetchUserStats(gomock.Any(), testSID, testKey).Return(rawStats[:1], nil)
	f.source.EXPECT().FetchPersonaName(gomock.Any(), testSID, testKey).Return("Rabscuttle", nil)

	res, err := f.reporter(t, zap.New(core)).Run(context.Background(), testSID, testKey)
	require.NoError(t, err)
	require.Len(t, res.Collection.PvP, 1)
	assert.Equal(t, stats.MissingDescription, res.Collection.PvP[0].Description)
	assert.Equal(t, 1, logs.FilterMessage("description catalog not found, descriptions will be null").Len())
}

func TestRun_InvalidCatalogFails(t *testing.T) {
	f := newFixture(t)
	f.writeCatalog(t, `{"stats": [`)

	_, err := f.reporter(t, zaptest.NewLogger(t)).Run(context.Background(), testSID, testKey)
	assert.Error(t, err)
}

func TestRun_PersonaFailureFallsBack(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().FetchUserStats(gomock.Any(), testSID, testKey).Return(rawStats, nil)
	f.source.EXPECT().FetchPersonaName(gomock.Any(), testSID, testKey).Return("", errors.New("connection refused"))

	res, err := f.reporter(t, zaptest.NewLogger(t)).Run(context.Background(), testSID, testKey)
	require.NoError(t, err)
	assert.Equal(t, "User", res.PlayerName)

	data, err := os.ReadFile(f.output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## TF2 Statistics for User\n")
}

func TestRun_StatsFailureIsFatal(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("steam unavailable")
	f.source.EXPECT().FetchUserStats(gomock.Any(), testSID, testKey).Return(nil, boom)

	_, err := f.reporter(t, zaptest.NewLogger(t)).Run(context.Background(), testSID, testKey)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	_, statErr := os.Stat(f.output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_OverwritesPreviousReport(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(f.output), 0755))
	require.NoError(t, os.WriteFile(f.output, []byte("stale report"), 0644))

	f.source.EXPECT().FetchUserStats(gomock.Any(), testSID, testKey).Return(nil, nil)
	f.source.EXPECT().FetchPersonaName(gomock.Any(), testSID, testKey).Return("Rabscuttle", nil)

	_, err := f.reporter(t, zaptest.NewLogger(t)).Run(context.Background(), testSID, testKey)
	require.NoError(t, err)
	data, err := os.ReadFile(f.output)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale report")
}
