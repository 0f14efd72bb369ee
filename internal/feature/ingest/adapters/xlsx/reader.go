// Package xlsx はExcelワークブックから株価バーを読み取るアダプタです。
package xlsx

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"stock_api/internal/feature/stockdata/domain/entity"
)

// requiredColumns は取り込みに必須のカラム名（小文字）です。
var requiredColumns = []string{"datetime", "open", "high", "low", "close", "volume"}

// datetimeLayouts はセル値として受理するタイムスタンプ書式です。
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01-02-06",
	"1/2/06 15:04",
	"1/2/2006 15:04",
	"1/2/2006",
}

// excelEpoch はExcelシリアル値の基準日です。
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Reader は最初のシートをヘッダー付きの表として解釈し、
// PriceBarの列へ変換します。
type Reader struct{}

// NewReader はReaderの新しいインスタンスを生成します。
func NewReader() *Reader {
	return &Reader{}
}

// ReadBars はワークブックを読み取り、検証済みのバー列と行単位の
// 失敗理由を返します。ファイルが読めない・必須カラムが無い場合のみ
// エラーを返し、個々の行の変換失敗は理由の一覧として集約します。
func (r *Reader) ReadBars(path string) ([]entity.PriceBar, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read Excel file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("missing required columns: needed %v, found none", requiredColumns)
	}

	// ヘッダーを小文字へ正規化してカラム位置を解決する
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, nil, fmt.Errorf("missing required columns: needed %v, found %v", requiredColumns, rows[0])
		}
	}

	var (
		bars      []entity.PriceBar
		rowErrors []string
	)
	for i, row := range rows[1:] {
		rowNum := i + 2 // シート上の行番号（1始まり、ヘッダーが1行目）

		if isHeaderLike(row, rows[0]) {
			continue
		}

		bar, err := parseRow(row, cols)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		bars = append(bars, bar)
	}

	return bars, rowErrors, nil
}

// isHeaderLike はいずれかのセルが自カラム名と一致する行
// （シート内に紛れ込んだヘッダーの繰り返し）を検出します。
func isHeaderLike(row, header []string) bool {
	for i, cell := range row {
		if i >= len(header) {
			break
		}
		name := strings.ToLower(strings.TrimSpace(header[i]))
		if name != "" && strings.EqualFold(strings.TrimSpace(cell), name) {
			return true
		}
	}
	return false
}

func parseRow(row []string, cols map[string]int) (entity.PriceBar, error) {
	get := func(name string) string {
		idx := cols[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	dt, err := parseDatetime(get("datetime"))
	if err != nil {
		return entity.PriceBar{}, fmt.Errorf("datetime: %v", err)
	}

	prices := map[string]decimal.Decimal{}
	for _, name := range []string{"open", "high", "low", "close"} {
		d, err := decimal.NewFromString(get(name))
		if err != nil {
			return entity.PriceBar{}, fmt.Errorf("%s: not a number", name)
		}
		// 価格は小数第2位へ一度だけ丸めて境界で確定させる
		prices[name] = d.Round(2)
	}

	vol, err := decimal.NewFromString(get("volume"))
	if err != nil {
		return entity.PriceBar{}, fmt.Errorf("volume: not a number")
	}
	if vol.IsNegative() {
		return entity.PriceBar{}, fmt.Errorf("volume: must be non-negative")
	}

	return entity.PriceBar{
		Datetime: dt,
		Open:     prices["open"],
		High:     prices["high"],
		Low:      prices["low"],
		Close:    prices["close"],
		Volume:   vol.IntPart(),
	}, nil
}

// parseDatetime は既知の書式とExcelシリアル値の両方を受理します。
func parseDatetime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty cell")
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		days := int(serial)
		frac := serial - float64(days)
		return excelEpoch.AddDate(0, 0, days).
			Add(time.Duration(frac * float64(24*time.Hour))), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized format %q", s)
}
