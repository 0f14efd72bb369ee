package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"stock_api/internal/feature/stockdata/domain/entity"
	strategyentity "stock_api/internal/feature/strategy/domain/entity"
)

// rollingMeans は closes の末尾 window 件に対する単純移動平均を返します。
// 返り値のインデックス i は i >= window-1 の場合のみ有効です。
// 合計をスライドさせながら差分更新するため、各ステップの加減算は正確です。
func rollingMeans(closes []decimal.Decimal, window int) []decimal.Decimal {
	out := make([]decimal.Decimal, len(closes))
	w := decimal.NewFromInt(int64(window))

	var sum decimal.Decimal
	for i, c := range closes {
		sum = sum.Add(c)
		if i >= window {
			sum = sum.Sub(closes[i-window])
		}
		if i >= window-1 {
			out[i] = sum.Div(w)
		}
	}
	return out
}

// Evaluate は昇順の株価バー列に対して移動平均クロスオーバー戦略を評価します。
//
// 手順:
//  1. 短期・長期の移動平均を計算し、両方が定義される行だけを残す
//  2. 短期MA > 長期MA なら +1、< なら -1、等しければ 0 のシグナルを導出
//  3. ポジションは前の行のシグナル（1期ラグ）。先頭行はポジション未定義のため落とす
//  4. 期間リターンはトリミング後の系列内で直前行の終値に対して計算する
//  5. 累積リターンは (1 + position*return) の積 - 1
//
// 直前の終値が0の行はリターンが定義できないため積から除外します
// （シグナル集計と行数には含めます）。データ不足はエラーではなく
// Message付きの結果として返します。
func Evaluate(bars []entity.PriceBar, shortWindow, longWindow int) strategyentity.PerformanceResult {
	if len(bars) < longWindow {
		return strategyentity.PerformanceResult{
			Message: fmt.Sprintf("Not enough valid data. Need at least %d rows.", longWindow),
		}
	}

	closes := make([]decimal.Decimal, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}

	shortMA := rollingMeans(closes, shortWindow)
	longMA := rollingMeans(closes, longWindow)

	// 両方の移動平均が定義される行だけを残す
	skip := longWindow - 1
	if shortWindow > longWindow {
		skip = shortWindow - 1
	}
	if skip >= len(bars) {
		return strategyentity.PerformanceResult{
			Message: "Not enough data to calculate moving averages",
		}
	}

	type keptRow struct {
		close  decimal.Decimal
		signal int
	}
	kept := make([]keptRow, 0, len(bars)-skip)
	for i := skip; i < len(bars); i++ {
		kept = append(kept, keptRow{close: closes[i], signal: shortMA[i].Cmp(longMA[i])})
	}

	// 1期ラグ: 行jのポジションは行j-1のシグナル。先頭行は落ちる。
	var buySignals, sellSignals int
	one := decimal.NewFromInt(1)
	product := one
	for j := 1; j < len(kept); j++ {
		position := kept[j-1].signal
		switch position {
		case 1:
			buySignals++
		case -1:
			sellSignals++
		}

		// トリミング後の先頭行（j==1）は直前行を持たないためリターンなし
		if j == 1 {
			continue
		}
		prevClose := kept[j-1].close
		if prevClose.IsZero() {
			continue
		}
		periodReturn := kept[j].close.Sub(prevClose).Div(prevClose)
		strategyReturn := decimal.NewFromInt(int64(position)).Mul(periodReturn)
		product = product.Mul(one.Add(strategyReturn))
	}

	cumulative, _ := product.Sub(one).Round(4).Float64()

	return strategyentity.PerformanceResult{
		Summary: &strategyentity.PerformanceSummary{
			BuySignals:       buySignals,
			SellSignals:      sellSignals,
			TotalTrades:      buySignals + sellSignals,
			CumulativeReturn: cumulative,
			DataPoints:       len(kept) - 1,
		},
	}
}
