// Package handler はstrategyフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stock_api/internal/api"
	"stock_api/internal/feature/strategy/domain/entity"
	"stock_api/internal/feature/strategy/usecase"
)

// StrategyUsecase は戦略評価のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type StrategyUsecase interface {
	Performance(ctx context.Context, shortWindow, longWindow int) (entity.PerformanceResult, error)
}

// StrategyHandler は戦略評価のHTTPリクエストを処理します。
type StrategyHandler struct {
	uc StrategyUsecase
}

// NewStrategyHandler は指定されたusecaseでStrategyHandlerの新しいインスタンスを生成します。
func NewStrategyHandler(uc StrategyUsecase) *StrategyHandler {
	return &StrategyHandler{uc: uc}
}

// GetPerformance は移動平均クロスオーバー戦略のバックテスト結果を返します。
// short_window / long_window は省略可能（デフォルト 5 / 20）で、
// どちらも正の整数でなければなりません。
//
// エンドポイント例:
// GET /strategy/performance?short_window=5&long_window=20
func (h *StrategyHandler) GetPerformance(c *gin.Context) {
	shortWindow, ok := windowParam(c, "short_window", usecase.DefaultShortWindow)
	if !ok {
		return
	}
	longWindow, ok := windowParam(c, "long_window", usecase.DefaultLongWindow)
	if !ok {
		return
	}

	result, err := h.uc.Performance(c.Request.Context(), shortWindow, longWindow)
	if err != nil {
		slog.Error("failed to evaluate strategy", "error", err,
			"short_window", shortWindow, "long_window", longWindow)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to evaluate strategy"})
		return
	}

	// データ不足はエラーではなく説明メッセージ付きの200
	if result.Summary == nil {
		c.JSON(http.StatusOK, api.MessageResponse{Message: result.Message})
		return
	}

	c.JSON(http.StatusOK, result.Summary)
}

// windowParam はクエリパラメータを正の整数として解釈します。
// 不正な値の場合は400を書き込み、false を返します。
func windowParam(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.DefaultQuery(name, strconv.Itoa(fallback))
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: name + " must be a positive integer"})
		return 0, false
	}
	return v, true
}
