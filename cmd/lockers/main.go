package main

import (
	"context"
	"os"

	"github.com/avGenie/go-locker-balancer/internal/app/config"
	"github.com/avGenie/go-locker-balancer/internal/app/controller/cli/render"
	server "github.com/avGenie/go-locker-balancer/internal/app/controller/http/server"
	"github.com/avGenie/go-locker-balancer/internal/app/converter"
	"github.com/avGenie/go-locker-balancer/internal/app/logger"
	storage "github.com/avGenie/go-locker-balancer/internal/app/storage/api"
	"github.com/avGenie/go-locker-balancer/internal/app/usecase/order"
	"go.uber.org/zap"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	source, err := storage.InitStorage(config)
	if err != nil {
		zap.L().Fatal("error while initializing order source", zap.Error(err))
	}

	if len(config.NetAddr) != 0 {
		server.New(config, source).StartHTTPServer()
		return
	}

	report, err := order.BalanceOrders(context.Background(), source)
	if err != nil {
		zap.L().Error("error while balancing orders", zap.Error(err))
		render.RenderFailure(os.Stdout)
		os.Exit(1)
	}

	out, err := converter.ConvertReportToOutput(report)
	if err != nil {
		zap.L().Fatal("error while converting balanced orders", zap.Error(err))
	}

	if err := render.Render(os.Stdout, config.OutputFormat, out); err != nil {
		zap.L().Fatal("error while rendering balanced orders", zap.Error(err))
	}
}
