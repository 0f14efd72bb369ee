// Package entity defines the domain models for the stockdata feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceBar represents one OHLCV (Open, High, Low, Close, Volume) observation
// for a single timestamp. Prices carry two fractional digits. Bars are keyed
// and ordered by Datetime, immutable once stored, and never deleted.
type PriceBar struct {
	Datetime time.Time       // Timestamp of the observation (unique key)
	Open     decimal.Decimal // Opening price
	High     decimal.Decimal // Highest price
	Low      decimal.Decimal // Lowest price
	Close    decimal.Decimal // Closing price
	Volume   int64           // Trading volume (non-negative)
}
