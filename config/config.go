package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// App holds the knobs read from the environment at startup. Everything has a
// working default so a bare `go run .` boots the in-memory backend.
type App struct {
	Port           string
	StorageBackend string
	DataDir        string
	UploadDir      string
	PublicBaseURL  string
	OrderTopic     string
	SlackToken     string
	SlackChannel   string
}

func Load() App {
	return App{
		Port:           getenv("PORT", "8090"),
		StorageBackend: getenv("STORAGE_BACKEND", "memory"),
		DataDir:        getenv("DATA_DIR", "./data"),
		UploadDir:      getenv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL:  getenv("PUBLIC_BASE_URL", "http://localhost:8090"),
		OrderTopic:     getenv("KAFKA_ORDER_TOPIC", "order-events"),
		SlackToken:     os.Getenv("SLACK_BOT_TOKEN"),
		SlackChannel:   os.Getenv("SLACK_CHANNEL_ID"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

// InitRedis returns nil when REDIS_HOST is unset or unreachable; the menu
// cache is an optimization, not a dependency.
func InitRedis() *redis.Client {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		log.Printf("[config] REDIS_HOST not set, menu cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: host + ":" + getenv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("[config] redis unreachable, menu cache disabled: %v", err)
		return nil
	}

	return client
}

// KafkaBroker returns the configured broker address, empty when eventing is
// disabled.
func KafkaBroker() string {
	return os.Getenv("KAFKA_BROKER")
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
