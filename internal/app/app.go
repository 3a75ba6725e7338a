package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"story_learning_backend/internal/config"
	"story_learning_backend/internal/controller"
	"story_learning_backend/internal/repository"
	"story_learning_backend/internal/service"
	"story_learning_backend/pkg/configwatcher"
	"story_learning_backend/pkg/logger"
	"story_learning_backend/pkg/monitoring"
	"story_learning_backend/pkg/security"
	"story_learning_backend/pkg/store"
	"story_learning_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	Store  store.DocumentStore

	services        *services
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	content  *repository.ContentRepository
	progress *repository.ProgressRepository
}

type services struct {
	content     *service.ContentService
	progress    *service.ProgressService
	diagnostics *service.DiagnosticsService
}

type controllers struct {
	content     *controller.ContentController
	progress    *controller.ProgressController
	diagnostics *controller.DiagnosticsController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(s store.DocumentStore) *repositories {
	return &repositories{
		content:  repository.NewContentRepository(s),
		progress: repository.NewProgressRepository(s),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, s store.DocumentStore) *services {
	return &services{
		content:     service.NewContentService(repos.content, repos.progress),
		progress:    service.NewProgressService(repos.progress),
		diagnostics: service.NewDiagnosticsService(s, cfg),
	}
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		content:     controller.NewContentController(s.content),
		progress:    controller.NewProgressController(s.progress),
		diagnostics: controller.NewDiagnosticsController(s.diagnostics),
		health:      controller.NewHealthController(a.Store),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	app := &App{Config: cfg}

	// 存储不可达时不退出：以无存储状态启动，/test 仍可报告连通性，
	// 其余接口返回存储不可用错误。与线上既有行为保持一致。
	docStore, err := store.New(&cfg.Store)
	if err != nil {
		logger.Log.Warn("Document store unavailable, starting without store", zap.Error(err))
	} else {
		app.Store = docStore
	}

	repos := app.initRepositories(app.Store)
	svcs := app.initServices(repos, cfg, app.Store)
	app.services = svcs
	ctrls := app.initControllers(svcs)

	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("story-learning-game", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls)

	// 配置热更：当前只影响诊断报告里的配置项呈现
	app.RegisterConfigCallback(svcs.diagnostics.UpdateConfig)
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		for _, cb := range app.configCallbacks {
			cb(newCfg)
		}
	})

	return app
}

// Bootstrap 供 -bootstrap-only 模式在启动时直接执行内容初始化
func (a *App) Bootstrap(force bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := a.services.content.Bootstrap(ctx, force)
	if err != nil {
		return err
	}
	logger.Log.Info("Bootstrap finished",
		zap.String("status", result.Status),
		zap.String("message", result.Message),
		zap.Int("count", result.Count),
	)
	return nil
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if closer, ok := a.Store.(*store.MongoStore); ok {
		if err := closer.Close(ctx); err != nil {
			logger.Log.Error("Failed to close store", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
