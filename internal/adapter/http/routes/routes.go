package routes

import (
	"log"
	_ "mototrackr/docs" // This will be auto-generated
	"mototrackr/internal/adapter/http/handlers"
	repository2 "mototrackr/internal/adapter/persistence/repository"
	"mototrackr/internal/infrastructure/auth"
	"mototrackr/internal/infrastructure/cache"
	"mototrackr/internal/infrastructure/database"
	"mototrackr/internal/infrastructure/inventory"
	"mototrackr/internal/infrastructure/messaging"
	"mototrackr/internal/usecase"
	"mototrackr/internal/usecase/interfaces"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)

	var dispatcher interfaces.IMessageDispatcher
	waGateway, err := messaging.NewWhatsAppGateway(
		os.Getenv("WHATSAPP_ACCESS_TOKEN"),
		os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
		os.Getenv("TRACKING_ORIGIN"),
	)
	if err != nil {
		log.Printf("[routes][setup] WhatsApp gateway not configured: %v", err)
	} else {
		dispatcher = waGateway
	}

	var guard interfaces.IDispatchGuard
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		guard = cache.NewRedisDispatchGuard(rdb, dispatchGuardTTL())
	} else {
		log.Printf("[routes][setup] REDIS_ADDR not set, duplicate dispatch suppression disabled")
	}

	var partsClient interfaces.ISparePartsClient
	if base := os.Getenv("SPARE_PARTS_API_URL"); base != "" {
		partsClient = inventory.NewSparePartsClient(base)
	} else {
		log.Printf("[routes][setup] SPARE_PARTS_API_URL not set, inventory browse degraded")
	}

	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, dispatcher, guard)
	jobUseCase := usecase.NewJobUseCase(jobRepo, notificationUseCase)
	trackUseCase := usecase.NewTrackUseCase(jobRepo)
	sparePartsUseCase := usecase.NewSparePartsUseCase(partsClient)

	jwt := auth.NewJWT(jwtSecret(), 12*time.Hour)
	creds, err := auth.NewCredentialStoreFromEnv()
	if err != nil {
		log.Fatalf("Failed to configure mechanic credentials: %v", err)
	}

	jobHandler := handlers.NewJobHandler(jobUseCase)
	trackHandler := handlers.NewTrackHandler(trackUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	sparePartsHandler := handlers.NewSparePartsHandler(sparePartsUseCase)
	authHandler := handlers.NewAuthHandler(creds, jwt)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, trackHandler, authHandler)
	addMechanicRoutes(v1, jwt, jobHandler, notificationHandler, sparePartsHandler, trackHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func jwtSecret() string {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return secret
	}
	log.Printf("[routes][setup] JWT_SECRET not set, using an insecure development secret")
	return "dev-secret-do-not-use"
}

func dispatchGuardTTL() time.Duration {
	if raw := os.Getenv("DISPATCH_GUARD_TTL_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return 10 * time.Minute
}
