// Package handler はingestフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_api/internal/api"
	ingestusecase "stock_api/internal/feature/ingest/usecase"
	stockdto "stock_api/internal/feature/stockdata/transport/http/dto"
)

// IngestUsecase は取り込み操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type IngestUsecase interface {
	Ingest(ctx context.Context, path string) (ingestusecase.Result, error)
}

// IngestHandler はスプレッドシート取り込みのHTTPリクエストを処理します。
type IngestHandler struct {
	uc       IngestUsecase
	dataFile string
}

// NewIngestHandler は指定されたusecaseと取り込み元パスで
// IngestHandlerの新しいインスタンスを生成します。
func NewIngestHandler(uc IngestUsecase, dataFile string) *IngestHandler {
	return &IngestHandler{uc: uc, dataFile: dataFile}
}

// IngestResponse は取り込み結果のレスポンスです。
type IngestResponse struct {
	Status       string                       `json:"status"`
	RowsInserted int                          `json:"rows_inserted"`
	SampleData   []stockdto.StockDataResponse `json:"sample_data"`
	RowErrors    []string                     `json:"row_errors,omitempty"`
}

// Init は設定されたスプレッドシートを取り込み、挿入件数とサンプル、
// 行単位の失敗理由を返します。ソースが読めない・必須カラムが無い場合は
// 説明付きの500を返します。
//
// エンドポイント:
// GET /init
func (h *IngestHandler) Init(c *gin.Context) {
	result, err := h.uc.Ingest(c.Request.Context(), h.dataFile)
	if err != nil {
		slog.Error("ingestion failed", "file", h.dataFile, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	sample := make([]stockdto.StockDataResponse, 0, len(result.Sample))
	for _, b := range result.Sample {
		sample = append(sample, stockdto.FromEntity(b))
	}

	slog.Info("ingestion complete", "file", h.dataFile,
		"rows_inserted", result.RowsInserted, "row_errors", len(result.RowErrors))
	c.JSON(http.StatusOK, IngestResponse{
		Status:       "success",
		RowsInserted: result.RowsInserted,
		SampleData:   sample,
		RowErrors:    result.RowErrors,
	})
}
