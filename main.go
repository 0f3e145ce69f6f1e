package main

import (
	"flag"
	"log/slog"

	"AgendorBridge/impl/core"
	"AgendorBridge/internal/alert"
	"AgendorBridge/internal/config"
	"AgendorBridge/internal/database"
	"AgendorBridge/internal/http-server/api"
	"AgendorBridge/internal/lib/logger"
	"AgendorBridge/internal/lib/sl"
	"AgendorBridge/internal/service/agendor"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	if conf.Telegram.Enabled {
		tgAlert, err := alert.NewTgAlert(conf.Telegram.ApiKey, conf.Telegram.AdminId, "agendor-bridge", lg)
		if err != nil {
			lg.Error("failed to initialize telegram alerts", sl.Err(err))
		} else {
			lg = logger.SetupTelegramHandler(lg, tgAlert, slog.LevelError)
			lg.With(
				slog.String("bot_name", tgAlert.BotName()),
			).Info("telegram alerts initialized")
		}
	}

	lg.Info("starting agendor bridge", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(lg)
	handler.SetAuthKey(conf.Listen.ApiKey)

	agendorService := agendor.NewAgendorService(conf, lg)
	if agendorService != nil {
		handler.SetCRM(agendorService)
		lg.With(
			slog.String("url", conf.Agendor.BaseURL),
			sl.Secret("token", conf.Agendor.ApiKey),
		).Info("agendor service initialized")
	}

	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mongo client")
	}
	if db != nil {
		handler.SetRepository(db)
		lg.Info("mongo client initialized")
	}

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
