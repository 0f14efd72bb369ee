// Package entity defines the domain models for the strategy feature.
package entity

// PerformanceSummary は移動平均クロスオーバー戦略のバックテスト結果です。
// リクエストごとに全履歴から再計算され、永続化はされません。
type PerformanceSummary struct {
	BuySignals       int     `json:"buy_signals"`       // position == +1 の行数
	SellSignals      int     `json:"sell_signals"`      // position == -1 の行数
	TotalTrades      int     `json:"total_trades"`      // BuySignals + SellSignals
	CumulativeReturn float64 `json:"cumulative_return"` // 複利リターン（小数第4位で丸め）
	DataPoints       int     `json:"data_points"`       // トリミング後に評価対象となった行数
}

// PerformanceResult は戦略評価の結果です。SummaryかMessageのどちらか
// 一方のみが設定されます。Messageはデータ不足時の説明であり、
// エラーではなく正常な結果として扱います。
type PerformanceResult struct {
	Summary *PerformanceSummary
	Message string
}
