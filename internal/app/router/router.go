// Package router はHTTPルーティングを構成します。
package router

import (
	"github.com/gin-gonic/gin"

	ingesthandler "stock_api/internal/feature/ingest/transport/handler"
	stockhandler "stock_api/internal/feature/stockdata/transport/handler"
	strategyhandler "stock_api/internal/feature/strategy/transport/handler"
)

func NewRouter(stock *stockhandler.StockDataHandler, ingest *ingesthandler.IngestHandler,
	strategy *strategyhandler.StrategyHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", Health)

	// 株価データの取得・登録
	r.GET("/data", stock.GetData)
	r.POST("/data", stock.PostData)

	// スプレッドシートからの初期投入
	r.GET("/init", ingest.Init)

	// 移動平均クロスオーバー戦略のバックテスト
	r.GET("/strategy/performance", strategy.GetPerformance)

	return r
}
