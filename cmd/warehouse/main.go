package main

import (
	"context"
	"time"

	"github.com/niksmo/warehouse/config"
	"github.com/niksmo/warehouse/internal/app"
	"github.com/niksmo/warehouse/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	warehouseService := app.New(sigCtx, cfg)

	warehouseService.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	warehouseService.Close(ctx)
}
