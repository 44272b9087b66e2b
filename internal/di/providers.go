package di

import (
	"dbb/internal/controllers"
	"dbb/internal/providers"
	"dbb/internal/services"
	"dbb/internal/store"
	"dbb/internal/structures"
)

// provideCache layers hit/miss accounting over the configured cache.
func provideCache(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) providers.CacheProviderInterface {
	return providers.NewCacheMetricsProvider(providers.NewCacheProvider(conf, logger), metrics)
}

func provideBacking(conf *structures.Config) store.Backing {
	return store.NewFileBacking(conf.Storage.Dir)
}

func provideBackupWriter(backing store.Backing, compressor store.CompressorInterface, conf *structures.Config, logger providers.Logger) *store.BackupWriter {
	return store.NewBackupWriter(backing, compressor, conf.Storage.BackupDir, logger)
}

func provideApiController(
	logger providers.Logger,
	progress services.ProgressServiceInterface,
	dailyQuiz services.DailyQuizServiceInterface,
	achievements services.AchievementServiceInterface,
	cache providers.CacheProviderInterface,
	conf *structures.Config,
) *controllers.ApiController {
	return controllers.NewApiController(logger, progress, dailyQuiz, achievements, cache, conf.Quiz.TopN)
}
