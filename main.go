package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/slack-go/slack"

	"github.com/guniorg/mannabean-delivery-v3/config"
	httpapi "github.com/guniorg/mannabean-delivery-v3/internal/api/http"
	"github.com/guniorg/mannabean-delivery-v3/internal/notifier"
	"github.com/guniorg/mannabean-delivery-v3/internal/service"
	"github.com/guniorg/mannabean-delivery-v3/internal/storage"
)

// repository is the full persistence surface; both backends satisfy it.
type repository interface {
	service.MenuRepository
	service.CategoryRepository
	service.OrderRepository
	service.PopupRepository
}

func main() {
	cfg := config.Load()

	var repo repository
	switch cfg.StorageBackend {
	case "postgres":
		db := config.MustInitPostgres()
		defer db.Close()
		pg := storage.NewPostgresRepository(db)
		if err := pg.EnsureSchema(); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		repo = pg
		log.Println("[main] using postgres storage")
	case "memory":
		repo = storage.NewMemoryRepository(cfg.DataDir)
		log.Println("[main] using in-memory storage")
	default:
		log.Fatalf("unknown STORAGE_BACKEND %q (want memory or postgres)", cfg.StorageBackend)
	}

	var cache service.MenuCache
	if client := config.InitRedis(); client != nil {
		cache = storage.NewRedisMenuCache(client, 5*time.Minute)
		defer client.Close()
	}

	var publisher service.EventPublisher
	if config.KafkaBroker() != "" {
		writer := config.NewKafkaWriter(cfg.OrderTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Println("[main] KAFKA_BROKER not set, order events disabled")
	}

	menuSvc := service.NewMenuService(repo, cache)
	categorySvc := service.NewCategoryService(repo)
	popupSvc := service.NewPopupService(repo)
	orderSvc := service.NewOrderService(repo, repo, publisher,
		service.TrackingQRGenerator{BaseURL: cfg.PublicBaseURL})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.KafkaBroker() != "" {
		var poster notifier.Poster
		if cfg.SlackToken != "" {
			poster = slack.New(cfg.SlackToken)
		} else {
			log.Println("[main] SLACK_BOT_TOKEN not set, slack notifications disabled")
		}
		reader := config.NewKafkaReader(cfg.OrderTopic, "order-notifier")
		defer reader.Close()
		consumer := notifier.NewConsumer(reader, orderSvc, poster, cfg.SlackChannel)
		go consumer.Start(ctx)
	}

	handler := httpapi.NewHandler(menuSvc, categorySvc, orderSvc, popupSvc, cfg.UploadDir)
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httpapi.NewRouter(handler),
	}

	go func() {
		log.Printf("[main] order service listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed:", err)
		}
	}()

	<-ctx.Done()
	log.Println("[main] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] shutdown error: %v", err)
	}
}
