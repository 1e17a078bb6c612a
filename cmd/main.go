package main

import (
	"flag"

	"chaintable/internal/config"
	"chaintable/internal/server"
	"chaintable/internal/store"
	"chaintable/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	// load config
	conf := config.NewConfig()
	if *configPath != "" {
		var err error
		if conf, err = config.FromFile(*configPath); err != nil {
			logger.Fatal("load config", "path", *configPath, "error", err)
		}
	}

	if err := logger.InitLogger(conf.LogLevel, conf.LogFile); err != nil {
		logger.Fatal("init logger", "error", err)
	}
	defer logger.Sync()

	// build the table
	st, err := store.Open(conf)
	if err != nil {
		logger.Fatal("open table", "error", err)
	}
	defer st.Close()

	// serve
	if logger.ParseLevel(conf.LogLevel) > zapcore.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Info("listening", "addr", conf.Addr)
	if err := server.New(st).Run(conf.Addr); err != nil {
		logger.Error("server stopped", "error", err)
	}
}
