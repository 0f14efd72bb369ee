package xlsx

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook はテスト用のワークブックを一時ディレクトリに書き出します。
func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, name, cell))
		}
	}

	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReader_ReadBars(t *testing.T) {
	t.Parallel()

	t.Run("success: parses valid rows with mixed-case headers", func(t *testing.T) {
		t.Parallel()
		path := writeWorkbook(t, [][]interface{}{
			{"Datetime", "Open", "High", "Low", "Close", "Volume"},
			{"2024-01-01", "100.5", "110", "90.25", "105.7", "1000"},
			{"2024-01-02", "105.7", "115", "95", "110.2", "1500"},
		})

		bars, rowErrors, err := NewReader().ReadBars(path)

		require.NoError(t, err)
		assert.Empty(t, rowErrors)
		require.Len(t, bars, 2)

		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), bars[0].Datetime)
		assert.True(t, bars[0].Open.Equal(decimal.RequireFromString("100.5")), "open: got %s", bars[0].Open)
		assert.True(t, bars[0].Close.Equal(decimal.RequireFromString("105.7")), "close: got %s", bars[0].Close)
		assert.Equal(t, int64(1000), bars[0].Volume)
	})

	t.Run("success: repeated header rows inside the sheet are dropped", func(t *testing.T) {
		t.Parallel()
		path := writeWorkbook(t, [][]interface{}{
			{"datetime", "open", "high", "low", "close", "volume"},
			{"2024-01-01", "100", "110", "90", "105", "1000"},
			{"datetime", "open", "high", "low", "close", "volume"},
			{"2024-01-02", "105", "115", "95", "110", "1500"},
		})

		bars, rowErrors, err := NewReader().ReadBars(path)

		require.NoError(t, err)
		assert.Empty(t, rowErrors)
		assert.Len(t, bars, 2, "header-like rows must not become bars")
	})

	t.Run("success: bad rows are reported, good rows survive", func(t *testing.T) {
		t.Parallel()
		path := writeWorkbook(t, [][]interface{}{
			{"datetime", "open", "high", "low", "close", "volume"},
			{"2024-01-01", "100", "110", "90", "105", "1000"},
			{"not-a-date", "100", "110", "90", "105", "1000"},
			{"2024-01-03", "oops", "110", "90", "105", "1000"},
			{"2024-01-04", "100", "110", "90", "105", "-5"},
			{"2024-01-05", "100", "110", "90", "105", "2000"},
		})

		bars, rowErrors, err := NewReader().ReadBars(path)

		require.NoError(t, err)
		assert.Len(t, bars, 2)
		require.Len(t, rowErrors, 3)
		assert.Contains(t, rowErrors[0], "row 3")
		assert.Contains(t, rowErrors[0], "datetime")
		assert.Contains(t, rowErrors[1], "open: not a number")
		assert.Contains(t, rowErrors[2], "volume: must be non-negative")
	})

	t.Run("success: prices are quantized to two decimal places", func(t *testing.T) {
		t.Parallel()
		path := writeWorkbook(t, [][]interface{}{
			{"datetime", "open", "high", "low", "close", "volume"},
			{"2024-01-01", "100.005", "110.999", "90.001", "105.555", "1000"},
		})

		bars, _, err := NewReader().ReadBars(path)

		require.NoError(t, err)
		require.Len(t, bars, 1)
		assert.True(t, bars[0].Open.Equal(decimal.RequireFromString("100.01")), "open: got %s", bars[0].Open)
		assert.True(t, bars[0].High.Equal(decimal.RequireFromString("111.00")), "high: got %s", bars[0].High)
	})

	t.Run("error: missing required column", func(t *testing.T) {
		t.Parallel()
		path := writeWorkbook(t, [][]interface{}{
			{"datetime", "open", "high", "low", "close"}, // volumeが無い
			{"2024-01-01", "100", "110", "90", "105"},
		})

		_, _, err := NewReader().ReadBars(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required columns")
	})

	t.Run("error: unreadable file", func(t *testing.T) {
		t.Parallel()

		_, _, err := NewReader().ReadBars(filepath.Join(t.TempDir(), "missing.xlsx"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read Excel file")
	})
}

func TestParseDatetime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "ISO date",
			input: "2024-01-15",
			want:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "ISO datetime with space",
			input: "2024-01-15 09:30:00",
			want:  time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			name:  "excel serial number",
			input: "45306", // 2024-01-15
			want:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "empty cell",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "tomorrow",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseDatetime(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}
