package main

import (
	"context"
	"time"

	"app/internal/config"
	"app/internal/debounce"
	"app/internal/handler"
	"app/internal/infra/api"
	"app/internal/server"
	"app/internal/state"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func newLogger(goEnv string) *zap.Logger {
	if goEnv == "prod" {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}

func main() {
	//.envは任意（無ければ環境変数だけで動く）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.GoEnv)
	defer logger.Sync()

	//リモートAPIクライアントとリポジトリ生成
	client := api.NewClient(cfg.CatalogAPIBaseURL, logger)
	productRepo := api.NewProductAPIRepository(client)
	orderRepo := api.NewOrderAPIRepository(client, &realClock{})

	//Storeは1つ作ってハンドラへ注入する
	store := state.NewStore()

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo, store, logger)
	orderUC := usecase.NewOrderUsecase(orderRepo, store, logger)

	//検索入力のデバウンス。静止したらフィルタ反映と再取得が1回走る
	searchDeb := debounce.New(debounce.DefaultWindow, func(q string) {
		store.SetProductFilters(state.ProductFiltersPatch{Search: &q})
		if err := productUC.FetchProducts(context.Background()); err != nil {
			logger.Warn("debounced fetch failed", zap.Error(err))
		}
	})
	defer searchDeb.Close()

	//Handler生成
	productH := handler.NewProductHandler(productUC, store, searchDeb)
	orderH := handler.NewOrderHandler(orderUC, store)
	eventsH := handler.NewEventsHandler(store)

	//Server起動
	e := server.New(logger, productH, orderH, eventsH)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := e.Start(addr); err != nil {
		panic(err)
	}
}
