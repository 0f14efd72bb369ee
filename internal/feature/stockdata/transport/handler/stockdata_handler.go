// Package handler はstockdataフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_api/internal/api"
	"stock_api/internal/feature/stockdata/domain/entity"
	"stock_api/internal/feature/stockdata/transport/http/dto"
)

// StockDataUsecase は株価データ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type StockDataUsecase interface {
	List(ctx context.Context) ([]entity.PriceBar, error)
	Add(ctx context.Context, bar entity.PriceBar) (bool, error)
}

// StockDataHandler は株価データのHTTPリクエストを処理します。
type StockDataHandler struct {
	uc StockDataUsecase
}

// NewStockDataHandler は指定されたusecaseでStockDataHandlerの新しいインスタンスを生成します。
func NewStockDataHandler(uc StockDataUsecase) *StockDataHandler {
	return &StockDataHandler{uc: uc}
}

// GetData は保存済みの全バーを datetime 昇順のJSON配列で返します。
//
// エンドポイント:
// GET /data
func (h *StockDataHandler) GetData(c *gin.Context) {
	bars, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list stock data", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch stock data"})
		return
	}

	out := make([]dto.StockDataResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, dto.FromEntity(b))
	}

	c.JSON(http.StatusOK, out)
}

// PostData は株価バーを1件登録します。
// - バリデーションエラー時は項目単位のエラー一覧とともに400を返却
// - 同一 datetime の行が既にある場合は何もせず、新規挿入時と同じ
//   確認レスポンスを返却（冪等な無操作は呼び出し側から区別できない）
// - 保存失敗時は500を返却（1行のINSERTのため部分挿入は残らない）
//
// エンドポイント:
// POST /data
func (h *StockDataHandler) PostData(c *gin.Context) {
	var req dto.StockDataReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("stock data bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Errors: fieldErrs})
		return
	}

	inserted, err := h.uc.Add(c.Request.Context(), req.ToEntity())
	if err != nil {
		slog.Error("failed to insert stock data", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to store stock data"})
		return
	}

	if !inserted {
		// 重複はエラーではなく無操作。ログにのみ残す。
		slog.Info("duplicate stock data ignored", "datetime", req.Datetime)
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Stock data added successfully"})
}
