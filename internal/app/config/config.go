// Package config はアプリケーション全体の設定を提供します。
// 環境変数の参照はここに集約し、各コンポーネントへは値として渡します。
package config

import (
	"os"
	"time"
)

// Config はプロセス起動時に一度だけ構築されるアプリケーション設定です。
type Config struct {
	DBHost     string // データベースのホスト名
	DBPort     string // データベースのポート番号
	DBUser     string // データベースの接続ユーザー
	DBPassword string // データベースの接続パスワード
	DBName     string // データベース名

	DataFile string // /init で取り込むスプレッドシートのパス
	Addr     string // HTTPサーバーの待ち受けアドレス（例: ":8080"）

	RunMigrations bool          // 起動時にAutoMigrateを実行するか
	DBConnTimeout time.Duration // DB接続リトライの打ち切り時間
}

// Load は環境変数からConfigを構築します。
// 未設定の項目にはデフォルト値を適用します。
func Load() Config {
	return Config{
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DataFile:      getenv("DATA_FILE", "data.xlsx"),
		Addr:          getenv("ADDR", ":8080"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		DBConnTimeout: 60 * time.Second,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
