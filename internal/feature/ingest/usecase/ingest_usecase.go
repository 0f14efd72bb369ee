// Package usecase はスプレッドシートからの株価データ取り込みを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"stock_api/internal/feature/stockdata/domain/entity"
)

// sampleSize は取り込み結果に含めるサンプル行数です。
const sampleSize = 3

// SourceReader は外部の表形式ソースを検証済みのバー列へ変換します。
// 行単位の変換失敗は理由の一覧として返し、ソース自体が読めない場合のみ
// エラーを返します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SourceReader interface {
	ReadBars(path string) (bars []entity.PriceBar, rowErrors []string, err error)
}

// BarRepository は株価バーの書き込みレイヤーを抽象化します。
type BarRepository interface {
	InsertIgnoreDuplicate(ctx context.Context, bar entity.PriceBar) (bool, error)
}

// Result は1回の取り込みの集計結果です。
// 部分的な成功は想定内であり、挿入件数と行単位の失敗理由の両方を持ちます。
type Result struct {
	RowsInserted int
	Sample       []entity.PriceBar
	RowErrors    []string
}

// IngestUsecase はソースを解析し、行ごとにベストエフォートで
// データベースへ永続化するユースケースを定義します。
type IngestUsecase struct {
	source SourceReader
	bars   BarRepository
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(source SourceReader, bars BarRepository) *IngestUsecase {
	return &IngestUsecase{source: source, bars: bars}
}

// Ingest は指定パスのソースを読み取り、1行ずつ挿入します。
// 同一 datetime の既存行はスキップし（失敗として数えない）、
// 挿入エラーは理由に積んで処理を続行します。途中失敗による
// ロールバックは行いません。
func (iu *IngestUsecase) Ingest(ctx context.Context, path string) (Result, error) {
	bars, rowErrors, err := iu.source.ReadBars(path)
	if err != nil {
		return Result{}, err
	}
	if len(bars) == 0 {
		return Result{}, fmt.Errorf("no valid data remaining after cleaning")
	}

	inserted := 0
	for _, b := range bars {
		ok, err := iu.bars.InsertIgnoreDuplicate(ctx, b)
		if err != nil {
			// 1行のエラーで処理を止めず、理由を集約して次の行へ進む
			slog.Error("failed to insert row", "datetime", b.Datetime, "error", err)
			rowErrors = append(rowErrors, fmt.Sprintf("row %s: %v", b.Datetime.Format("2006-01-02 15:04:05"), err))
			continue
		}
		if ok {
			inserted++
		}
	}

	sample := bars
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	return Result{
		RowsInserted: inserted,
		Sample:       sample,
		RowErrors:    rowErrors,
	}, nil
}
