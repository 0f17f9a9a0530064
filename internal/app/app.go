// Package app содержит основную структуру приложения и логику инициализации.
// Предоставляет точку входа для запуска HTTP сервера с настроенными маршрутами и middleware.
package app

import (
	"context"

	"github.com/InQaaaaGit/metric_converter/internal/config"
	"github.com/InQaaaaGit/metric_converter/internal/handler"
	"github.com/InQaaaaGit/metric_converter/internal/middleware"
	"github.com/InQaaaaGit/metric_converter/internal/server"
	"github.com/InQaaaaGit/metric_converter/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App представляет основное приложение сервиса конвертации.
// Инкапсулирует конфигурацию, HTTP роутер, логгер и обработчики запросов.
type App struct {
	config  *config.Config   // Конфигурация приложения
	router  *chi.Mux         // HTTP роутер для обработки запросов
	logger  *zap.Logger      // Логгер для записи событий приложения
	handler *handler.Handler // Обработчики HTTP запросов
}

// NewApp создает приложение и регистрирует маршруты.
// Если logger равен nil, используется zap.NewNop().
func NewApp(cfg *config.Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	svc := service.NewConverterService(logger)

	a := &App{
		config:  cfg,
		router:  chi.NewRouter(),
		logger:  logger,
		handler: handler.NewHandler(svc, logger),
	}
	a.setupRoutes()
	return a
}

// setupRoutes настраивает HTTP маршруты и middleware для приложения.
func (a *App) setupRoutes() {
	a.router.Use(middleware.WithRequestID)
	a.router.Use(middleware.LoggerMiddleware(a.logger))
	a.router.Use(middleware.CORSMiddleware(a.config.CORSOrigins))
	a.router.Use(middleware.GzipMiddleware)

	a.router.NotFound(a.handler.NotFound)
	a.router.MethodNotAllowed(a.handler.MethodNotAllowed)

	a.router.Route("/api", func(r chi.Router) {
		r.Get("/convert", a.handler.HandleConvert)
		r.Get("/units", a.handler.HandleUnits)
	})
	a.router.Get("/ping", a.handler.HandlePing)
}

// Router возвращает настроенный роутер
func (a *App) Router() *chi.Mux {
	return a.router
}

// Run запускает HTTP или HTTPS сервер и блокируется до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	srv := server.NewHTTPServer(server.New(a.config, a.router), a.config, a.logger)
	return srv.Run(ctx)
}
