package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"stock_api/internal/app/config"
	"stock_api/internal/feature/ingest/adapters/xlsx"
	"stock_api/internal/feature/ingest/usecase"
	stockadapters "stock_api/internal/feature/stockdata/adapters"
	platformdb "stock_api/internal/platform/db"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	cfg := config.Load()

	// 引数でファイルを指定した場合は設定より優先する
	path := cfg.DataFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	db := platformdb.OpenDB(cfg)
	barRepo := stockadapters.NewBarRepository(db)
	uc := usecase.NewIngestUsecase(xlsx.NewReader(), barRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := uc.Ingest(ctx, path)
	if err != nil {
		log.Fatal(err)
	}
	for _, reason := range result.RowErrors {
		log.Println("[WARN]", reason)
	}
	log.Printf("ingest ok: %d rows inserted (%d row errors)", result.RowsInserted, len(result.RowErrors))
}
