package main

import (
	"flag"
	"log"
	"path/filepath"

	"quiznight_backend/internal/app"
	"quiznight_backend/internal/config"
	"quiznight_backend/pkg/configwatcher"
	"quiznight_backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "配置文件目录")
	seedOnly := flag.Bool("seed-only", false, "只播种数据文件，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer logger.Log.Sync()

	// 播种在 NewApp 初始化仓库时完成
	if *seedOnly {
		log.Println("Seed data written, exiting")
		return
	}

	go configwatcher.WatchConfig(filepath.Join(*configPath, "config.yaml"), application.ApplyConfig)

	application.Run()
}
