package internal

import (
	"dbb/internal/bot"
	"dbb/internal/controllers"
	"dbb/internal/providers"
	"net/http"
)

func InitRoutes(apiController *controllers.ApiController, botHandler *bot.Handler) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/webhook", http.HandlerFunc(botHandler.HandleWebhook))
	routers.Get("/api/today", http.HandlerFunc(apiController.GetToday))
	routers.Get("/api/leaderboard", http.HandlerFunc(apiController.GetLeaderboard))
	routers.Get("/api/progress", http.HandlerFunc(apiController.GetProgress))
	routers.Get("/api/achievements", http.HandlerFunc(apiController.GetAchievements))
	return routers
}
