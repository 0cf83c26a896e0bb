package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name    string
		cells   [][]string
		wantErr error
	}{
		{
			name:    "nil grid",
			cells:   nil,
			wantErr: ErrTooFewRows,
		},
		{
			name:    "empty grid",
			cells:   [][]string{},
			wantErr: ErrTooFewRows,
		},
		{
			name:    "header only",
			cells:   [][]string{{"班级", "星期一"}},
			wantErr: ErrTooFewRows,
		},
		{
			name:    "header and sub-header but no data",
			cells:   [][]string{{"班级", "星期一"}, {"", "1"}},
			wantErr: ErrTooFewRows,
		},
		{
			name:  "minimum viable shape",
			cells: [][]string{{"班级", "星期一"}, {"", "1"}, {"初三.1班", "语文"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := NewGrid(tt.cells)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, grid)
				return
			}
			require.NoError(t, err)
			assert.Len(t, grid, len(tt.cells))
		})
	}
}

func TestGridCell_OutOfRangeReadsEmpty(t *testing.T) {
	grid := Grid{
		{"a", "b"},
		{"c"},
		{},
	}

	assert.Equal(t, "b", grid.Cell(0, 1))
	assert.Equal(t, "", grid.Cell(0, 2), "past row end")
	assert.Equal(t, "", grid.Cell(1, 1), "ragged row")
	assert.Equal(t, "", grid.Cell(2, 0), "empty row")
	assert.Equal(t, "", grid.Cell(5, 0), "past last row")
	assert.Equal(t, "", grid.Cell(-1, 0))
	assert.Equal(t, "", grid.Cell(0, -1))
}

func TestGridWidth(t *testing.T) {
	assert.Equal(t, 0, Grid{}.Width())
	assert.Equal(t, 4, Grid{{"a"}, {"a", "b", "c", "d"}, {"a", "b"}}.Width())
}
