//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/outfit-advisor/internal/bootstrap"
	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
	"github.com/yanqian/outfit-advisor/internal/infra/config"
	httpiface "github.com/yanqian/outfit-advisor/internal/interface/http"
	"github.com/yanqian/outfit-advisor/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideOutfitConfig,
		provideModelSource,
		provideArtifacts,
		provideWeatherClient,
		provideHistoryRepository,
		outfit.NewService,
		httpiface.NewFormOptions,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
