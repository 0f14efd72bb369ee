// Package dto はstockdataフィーチャーのHTTPリクエスト/レスポンスDTOを定義します。
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stock_api/internal/api"
	"stock_api/internal/feature/stockdata/domain/entity"
)

// datetimeLayouts は受理するタイムスタンプ書式です。先頭から順に試行します。
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// StockDataReq は POST /data のリクエストボディです。
// 数値項目はポインタで受け取り、未指定とゼロ値を区別します。
// バリデーションはバインド後に Validate で行い、項目単位のエラーを返します。
type StockDataReq struct {
	Datetime string           `json:"datetime"`
	Open     *decimal.Decimal `json:"open"`
	High     *decimal.Decimal `json:"high"`
	Low      *decimal.Decimal `json:"low"`
	Close    *decimal.Decimal `json:"close"`
	Volume   *int64           `json:"volume"`

	parsedDatetime time.Time
}

// Validate はPriceBarの不変条件を項目単位に検査します。
// 全項目が必須で、価格は小数第2位まで、出来高は非負です。
// 違反が無ければ nil を返します。
func (r *StockDataReq) Validate() []api.FieldError {
	var errs []api.FieldError

	if r.Datetime == "" {
		errs = append(errs, api.FieldError{Field: "datetime", Message: "field is required"})
	} else if t, ok := parseDatetime(r.Datetime); ok {
		r.parsedDatetime = t
	} else {
		errs = append(errs, api.FieldError{Field: "datetime", Message: "invalid datetime format"})
	}

	prices := []struct {
		name  string
		value *decimal.Decimal
	}{
		{"open", r.Open},
		{"high", r.High},
		{"low", r.Low},
		{"close", r.Close},
	}
	for _, p := range prices {
		if p.value == nil {
			errs = append(errs, api.FieldError{Field: p.name, Message: "field is required"})
			continue
		}
		if p.value.Exponent() < -2 {
			errs = append(errs, api.FieldError{Field: p.name, Message: "must have at most 2 decimal places"})
		}
	}

	if r.Volume == nil {
		errs = append(errs, api.FieldError{Field: "volume", Message: "field is required"})
	} else if *r.Volume < 0 {
		errs = append(errs, api.FieldError{Field: "volume", Message: "must be greater than or equal to 0"})
	}

	return errs
}

// ToEntity はバリデーション済みリクエストをPriceBarへ変換します。
// Validate が成功した後にのみ呼び出せます。
func (r *StockDataReq) ToEntity() entity.PriceBar {
	return entity.PriceBar{
		Datetime: r.parsedDatetime,
		Open:     *r.Open,
		High:     *r.High,
		Low:      *r.Low,
		Close:    *r.Close,
		Volume:   *r.Volume,
	}
}

func parseDatetime(s string) (time.Time, bool) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// StockDataResponse は株価バー1件のレスポンスDTOです。
// 価格は小数第2位までの文字列として出力します。
type StockDataResponse struct {
	Datetime string `json:"datetime"` // タイムスタンプ（RFC3339）
	Open     string `json:"open"`     // 始値
	High     string `json:"high"`     // 高値
	Low      string `json:"low"`      // 安値
	Close    string `json:"close"`    // 終値
	Volume   int64  `json:"volume"`   // 出来高
}

// FromEntity はPriceBarをレスポンスDTOへ変換します。
func FromEntity(e entity.PriceBar) StockDataResponse {
	return StockDataResponse{
		Datetime: e.Datetime.UTC().Format(time.RFC3339),
		Open:     e.Open.StringFixed(2),
		High:     e.High.StringFixed(2),
		Low:      e.Low.StringFixed(2),
		Close:    e.Close.StringFixed(2),
		Volume:   e.Volume,
	}
}
