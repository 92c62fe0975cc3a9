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

// InitRedis returns nil when REDIS_HOST is unset; the JWKS cache is optional.
func InitRedis() *redis.Client {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: host + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

// NewKafkaWriter returns nil when KAFKA_BROKER is unset; staffing events are
// optional.
func NewKafkaWriter(topic string) *kafka.Writer {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// AuthSettings carries the JWT verifier configuration: the token issuer's
// tenant domain and the expected audience (client id).
type AuthSettings struct {
	Domain   string
	Audience string
}

func MustLoadAuth() AuthSettings {
	domain := os.Getenv("AUTH_DOMAIN")
	audience := os.Getenv("AUTH_AUDIENCE")
	if domain == "" || audience == "" {
		log.Fatal("AUTH_DOMAIN and AUTH_AUDIENCE must be set")
	}
	return AuthSettings{Domain: domain, Audience: audience}
}

func ListenAddr() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}
