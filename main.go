package main

import (
	"context"
	_ "net/http/pprof"
	"time"

	"github.com/Arjun0606/cabbageseo-sub008/internal/application/config"
	"github.com/Arjun0606/cabbageseo-sub008/internal/http"

	log "github.com/sirupsen/logrus"
)

func main() {
	logInstance := log.New()
	cfg, err := config.NewAppConfig()
	if err != nil {
		logInstance.WithError(err).Fatal(`Failed to load config`)
		return
	}

	logLevel, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logInstance.WithError(err).Fatal(`Failed to parse log level`)
		return
	}

	logInstance.SetFormatter(&log.JSONFormatter{
		TimestampFormat:   time.RFC3339,
		DisableHTMLEscape: true,
		DisableTimestamp:  false,
	})

	logInstance.SetLevel(logLevel)

	ctx := context.WithoutCancel(context.Background())

	http.Init(ctx, logInstance, cfg)
}
