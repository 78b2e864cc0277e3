package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	CatalogAPIBaseURL string // リモートカタログAPIのベースURL

	GoEnv string // dev/prod（ログの形式切り替えに使う）
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port:              os.Getenv("PORT"),
		CatalogAPIBaseURL: os.Getenv("CATALOG_API_BASE_URL"),
		GoEnv:             os.Getenv("GO_ENV"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.CatalogAPIBaseURL == "" {
		return Config{}, fmt.Errorf("CATALOG_API_BASE_URL is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}

	return cfg, nil
}
