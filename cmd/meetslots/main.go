package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	tele "gopkg.in/telebot.v3"

	"github.com/pitchmate/meetslots/internal/rest"
	"github.com/pitchmate/meetslots/internal/telegram"
	"github.com/pitchmate/meetslots/pkg/demo"
	"github.com/pitchmate/meetslots/pkg/logger"
	"github.com/pitchmate/meetslots/pkg/memstore"
	"github.com/pitchmate/meetslots/pkg/notifier"
	"github.com/pitchmate/meetslots/pkg/service"
	"github.com/pitchmate/meetslots/pkg/worker"
)

const (
	version        = "0.1.0"
	remindInterval = 30 * time.Second
	remindHorizon  = time.Hour
)

func main() {
	_ = godotenv.Load()

	log := logger.New(lookupEnv("LOG_LEVEL", "debug"))
	address := lookupEnv("ADDRESS", ":8080")
	tgToken := os.Getenv("TG_TOKEN")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := memstore.New(log)
	if err := demo.Seed(ctx, store); err != nil {
		log.Panic(err)
	}

	var (
		notify service.Notifier = notifier.New(log)
		bot    *tele.Bot
	)
	if tgToken != "" {
		b, err := telegram.NewBot(tgToken)
		if err != nil {
			log.Panic(err)
		}
		bot = b
		tgChatID, err := telegram.ParseChatID(os.Getenv("TG_CHAT_ID"))
		if err != nil {
			log.Warnf("TG_CHAT_ID unusable, notifications go to the log: %v", err)
		} else {
			notify = telegram.NewNotifier(log, bot, tgChatID)
		}
	}
	app := service.NewScheduleService(log, store, notify)
	var tg *telegram.Telegram
	if bot != nil {
		tg = telegram.New(log, bot, app)
	}
	server := rest.NewServer(log, app, address, version)
	reminder := worker.New(log, store, notify, remindInterval, remindHorizon)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
		<-sigCh
		log.Info("Received signal, shutting down...")
		cancel()
	}()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		reminder.Run(ctx)
	}()
	if tg != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tg.Run(ctx)
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.Run(ctx); err != nil {
			log.Panic(err)
		}
	}()
	wg.Wait()
	log.Info("Server stopped")
}

func lookupEnv(key, defaultValue string) string {
	result := os.Getenv(key)
	if result == "" {
		return defaultValue
	}
	return result
}
