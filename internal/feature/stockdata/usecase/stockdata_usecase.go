// Package usecase は株価データ操作のビジネスロジックを実装します。
package usecase

import (
	"context"

	"stock_api/internal/feature/stockdata/domain/entity"
)

// BarRepository は株価バーの永続化レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type BarRepository interface {
	// InsertIgnoreDuplicate はバーを挿入します。同一 datetime の行が
	// 既に存在する場合は何もせず false を返します（冪等）。
	InsertIgnoreDuplicate(ctx context.Context, bar entity.PriceBar) (bool, error)
	// FindAllAscending は全バーを datetime 昇順で返します。
	FindAllAscending(ctx context.Context) ([]entity.PriceBar, error)
}

// stockDataUsecase は株価データ操作のユースケースを定義します。
type stockDataUsecase struct {
	bars BarRepository
}

// NewStockDataUsecase はstockDataUsecaseの新しいインスタンスを生成します。
func NewStockDataUsecase(bars BarRepository) *stockDataUsecase {
	return &stockDataUsecase{bars: bars}
}

// List は保存済みの全バーを昇順で取得します。
func (su *stockDataUsecase) List(ctx context.Context) ([]entity.PriceBar, error) {
	return su.bars.FindAllAscending(ctx)
}

// Add はバーを1件追加します。同一 datetime の行が既に存在する場合は
// 何もせず正常終了します（inserted=false）。
func (su *stockDataUsecase) Add(ctx context.Context, bar entity.PriceBar) (bool, error) {
	return su.bars.InsertIgnoreDuplicate(ctx, bar)
}
