package main

import (
	"github.com/avorobyev/go-order-service/internal/app/config"
	server "github.com/avorobyev/go-order-service/internal/app/controller/http/server"
	"github.com/avorobyev/go-order-service/internal/app/logger"
	"github.com/avorobyev/go-order-service/internal/app/notifier"
	storage "github.com/avorobyev/go-order-service/internal/app/storage/api"
	"github.com/avorobyev/go-order-service/internal/app/usecase/account"
	"github.com/avorobyev/go-order-service/internal/app/usecase/order"
	"go.uber.org/zap"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	store, err := storage.InitStorage(config)
	if err != nil {
		zap.L().Fatal("error while initializing storage", zap.Error(err))
	}
	defer store.Close()

	var events order.Notifier = notifier.Discard{}
	if len(config.WebhookAddr) != 0 {
		webhook := notifier.NewWebhook(config.WebhookAddr)
		defer webhook.Stop()
		events = webhook
	}

	accountService := account.New(store)
	orderService := order.NewService(store, events)
	orderSelector := order.NewSelector(store)

	httpServer := server.New(config, accountService, orderService, orderSelector)
	httpServer.StartHTTPServer()
}
