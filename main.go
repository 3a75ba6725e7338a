// @title Story Learning Game API
// @version 1.0
// @description 故事化学习路径与进度后端服务。

// @host localhost:8000
// @BasePath /
package main

import (
	"flag"
	"log"

	"story_learning_backend/internal/app"
	"story_learning_backend/internal/config"
	"story_learning_backend/pkg/logger"
)

func main() {
	// 命令行参数
	bootstrapOnly := flag.Bool("bootstrap-only", false, "只执行内容初始化，完成后退出")
	forceReseed := flag.Bool("force-reseed", false, "初始化时强制重建内容（清空所有用户进度）")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.BootstrapOnly = *bootstrapOnly
	cfg.ForceReseed = *forceReseed

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *bootstrapOnly {
		if err := application.Bootstrap(*forceReseed); err != nil {
			log.Fatalf("Bootstrap failed: %v", err)
		}
		log.Println("内容初始化完成，退出程序")
		return
	}

	application.Run()
}
