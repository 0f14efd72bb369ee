// Package usecase は移動平均クロスオーバー戦略の評価ロジックを実装します。
package usecase

import (
	"context"

	"stock_api/internal/feature/stockdata/domain/entity"
	strategyentity "stock_api/internal/feature/strategy/domain/entity"
)

const (
	// DefaultShortWindow は短期移動平均のデフォルト期間です。
	DefaultShortWindow = 5
	// DefaultLongWindow は長期移動平均のデフォルト期間です。
	DefaultLongWindow = 20
)

// BarRepository は株価バーの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type BarRepository interface {
	FindAllAscending(ctx context.Context) ([]entity.PriceBar, error)
}

// strategyUsecase は戦略評価のユースケースを定義します。
type strategyUsecase struct {
	bars BarRepository
}

// NewStrategyUsecase はstrategyUsecaseの新しいインスタンスを生成します。
func NewStrategyUsecase(bars BarRepository) *strategyUsecase {
	return &strategyUsecase{bars: bars}
}

// Performance は保存済みの全バーに対して戦略を評価します。
// データ不足はエラーではなくMessage付きの結果として返します。
func (su *strategyUsecase) Performance(ctx context.Context, shortWindow, longWindow int) (strategyentity.PerformanceResult, error) {
	bars, err := su.bars.FindAllAscending(ctx)
	if err != nil {
		return strategyentity.PerformanceResult{}, err
	}
	return Evaluate(bars, shortWindow, longWindow), nil
}
