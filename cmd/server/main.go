package main

import (
	"log"

	"github.com/joho/godotenv"

	"stock_api/internal/app/config"
	"stock_api/internal/app/router"
	"stock_api/internal/feature/ingest/adapters/xlsx"
	ingesthandler "stock_api/internal/feature/ingest/transport/handler"
	ingestusecase "stock_api/internal/feature/ingest/usecase"
	stockadapters "stock_api/internal/feature/stockdata/adapters"
	stockhandler "stock_api/internal/feature/stockdata/transport/handler"
	stockusecase "stock_api/internal/feature/stockdata/usecase"
	strategyhandler "stock_api/internal/feature/strategy/transport/handler"
	strategyusecase "stock_api/internal/feature/strategy/usecase"
	platformdb "stock_api/internal/platform/db"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// 設定は起動時に一度だけ構築し、以降は値として渡す
	cfg := config.Load()

	// db
	db := platformdb.OpenDB(cfg)

	// Repository
	barRepo := stockadapters.NewBarRepository(db)

	// Usecase
	stockUC := stockusecase.NewStockDataUsecase(barRepo)
	ingestUC := ingestusecase.NewIngestUsecase(xlsx.NewReader(), barRepo)
	strategyUC := strategyusecase.NewStrategyUsecase(barRepo)

	// Handler
	stockH := stockhandler.NewStockDataHandler(stockUC)
	ingestH := ingesthandler.NewIngestHandler(ingestUC, cfg.DataFile)
	strategyH := strategyhandler.NewStrategyHandler(strategyUC)

	// ルータ生成
	r := router.NewRouter(stockH, ingestH, strategyH)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
