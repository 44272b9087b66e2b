//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"dbb/internal"
	"dbb/internal/bot"
	"dbb/internal/content"
	"dbb/internal/controllers"
	"dbb/internal/providers"
	"dbb/internal/schedule"
	"dbb/internal/services"
	"dbb/internal/store"
	"dbb/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		provideCache,

		provideBacking,
		store.NewZstdCompressor,
		provideBackupWriter,
		store.NewFlatStore,

		content.NewQuestionBank,
		services.NewSubscriberService,
		services.NewProgressService,
		services.NewQuizService,
		services.NewDailyQuizService,
		services.NewAchievementService,
		services.NewReminderService,

		bot.NewTelegramSender,
		bot.NewDailySender,
		bot.NewHandler,

		schedule.NewScheduler,
		provideApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
