package main

import (
	"log"
	"time"

	"restaurant-staffing/config"
	httpapi "restaurant-staffing/internal/api/http"
	"restaurant-staffing/internal/auth"
	"restaurant-staffing/internal/service"
	"restaurant-staffing/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	var keyCache auth.KeyCache
	if redisClient := config.InitRedis(); redisClient != nil {
		keyCache = storage.NewRedisKeyCache(redisClient, 15*time.Minute)
	}

	var publisher service.StaffingPublisher
	if writer := config.NewKafkaWriter("staffing-events"); writer != nil {
		publisher = storage.NewKafkaPublisher(writer)
	}

	authSettings := config.MustLoadAuth()
	verifier := auth.NewVerifier(authSettings.Domain, authSettings.Audience, keyCache)

	employeeService := service.NewEmployeeService(repo, repo, publisher)
	restaurantService := service.NewRestaurantService(repo, repo, publisher, service.DefaultQRGenerator{})
	userService := service.NewUserService(repo)

	handler := httpapi.NewHandler(employeeService, restaurantService, userService, verifier)
	httpapi.StartServer(config.ListenAddr(), httpapi.NewRouter(handler))
}
