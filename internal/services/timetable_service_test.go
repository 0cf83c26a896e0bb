package services

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"ttapi/internal/timetable"
	"ttapi/pkg/contracts/domain"
)

func newTestService() *TimetableService {
	return NewTimetableService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestConvertGrid_SortsClassesByName(t *testing.T) {
	header := []string{"班级", "星期一", "", ""}
	grid := timetable.Grid{
		header,
		{"", "1", "2", "3"},
		{"初三.2班", "数学\n王伟", "", ""},
		{"初三.1班", "英语\n陈小华（班）", "", ""},
	}

	result, err := newTestService().ConvertGrid(context.Background(), grid)
	require.NoError(t, err)

	require.Len(t, result.Classes, 2)
	assert.Equal(t, "初三.1班", result.Classes[0].ClassName)
	assert.Equal(t, "初三.2班", result.Classes[1].ClassName)
	assert.Equal(t, domain.Statistics{TotalClasses: 2, TotalPeriods: 2}, result.Statistics)
	assert.Nil(t, result.Report, "no extraction step, no report")
}

func TestConvertGrid_PropagatesEngineErrors(t *testing.T) {
	svc := newTestService()

	_, err := svc.ConvertGrid(context.Background(), timetable.Grid{{"班级"}})
	assert.ErrorIs(t, err, timetable.ErrTooFewRows)

	_, err = svc.ConvertGrid(context.Background(), timetable.Grid{
		{"班级", "第一节"},
		{"", "1"},
		{"初三.1班", "语文"},
	})
	assert.ErrorIs(t, err, timetable.ErrNoWeekdays)
}

func TestParseFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	content := "班级,星期一,,星期二\n,1,2,1\n初三.1班,\"英语\n陈小华（班）\",数学,语文\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result, err := newTestService().ParseFile(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, result.Classes, 1)
	entry := result.Classes[0]
	assert.Equal(t, "初三.1班", entry.ClassName)

	monday := entry.Schedule[domain.Monday]
	require.Len(t, monday, 2)
	assert.Equal(t, "英语", monday[0].Course)
	assert.True(t, monday[0].IsClassTeacher)

	require.NotNil(t, result.Report)
	assert.Equal(t, 1, result.Report.Page)
	assert.Equal(t, domain.Statistics{TotalClasses: 1, TotalPeriods: 3}, result.Statistics)
}

func TestConvertGrid_ConcurrentCallsAgree(t *testing.T) {
	svc := newTestService()
	grid := timetable.Grid{
		{"班级", "星期一", "", "星期二", ""},
		{"", "1", "2", "1", "2"},
		{"初三.1班", "英语\n陈小华（班）", "数学\n王伟", "语文\n张敏", "班会"},
		{"初三.2班", "物理\n刘洋", "", "化学\n赵芳", "体育\n孙强"},
	}

	want, err := svc.ConvertGrid(context.Background(), grid)
	require.NoError(t, err)

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			got, err := svc.ConvertGrid(ctx, grid)
			if err != nil {
				return err
			}
			assert.Equal(t, want, got)
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := newTestService().ParseFile(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestHealthService(t *testing.T) {
	svc := NewHealthService("1.2.3", slog.New(slog.NewTextHandler(io.Discard, nil)))

	health := svc.HealthCheck(context.Background())
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "1.2.3", health.Version)
	assert.NotEmpty(t, health.Runtime)

	live := svc.LivenessCheck(context.Background())
	assert.Equal(t, "alive", live.Status)

	version := svc.Version()
	assert.Equal(t, "1.2.3", version.Version)
	assert.NotEmpty(t, version.GoVersion)
}
