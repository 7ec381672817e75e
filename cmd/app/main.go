package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"foodsewa/cmd"
	httpin "foodsewa/internal/adapters/in/http"
	"foodsewa/internal/adapters/out/postgres/cartrepo"
	"foodsewa/internal/adapters/out/postgres/favoriterepo"
	"foodsewa/internal/adapters/out/postgres/orderrepo"
	"foodsewa/internal/adapters/out/postgres/restaurantrepo"
	"foodsewa/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	mustMigrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:               goDotEnvVariable("JWT_SECRET"),
		CartTTLMinutes:          goDotEnvIntVariable("CART_TTL_MINUTES"),
		OrderAutoConfirmSeconds: goDotEnvIntVariable("ORDER_AUTO_CONFIRM_SECONDS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s as integer: %v", key, err)
	}
	return value
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode)

	// TranslateError maps driver errors like unique violations onto
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&cartrepo.CartDTO{},
		&favoriterepo.FavoriteDTO{},
		&orderrepo.OrderDTO{},
		&restaurantrepo.RestaurantDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateCleanupAbandonedCartsCommandHandler(),
		app.CreateConfirmPendingOrdersCommandHandler(),
		time.Duration(configs.CartTTLMinutes)*time.Minute,
		time.Duration(configs.OrderAutoConfirmSeconds)*time.Second,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	server := httpin.NewServer(httpin.Handlers{
		AddCartItem:        app.CreateAddCartItemCommandHandler(),
		UpdateCartItem:     app.CreateUpdateCartItemQuantityCommandHandler(),
		RemoveCartItem:     app.CreateRemoveCartItemCommandHandler(),
		ApplyCoupon:        app.CreateApplyCouponCommandHandler(),
		RemoveCoupon:       app.CreateRemoveCouponCommandHandler(),
		ClearCart:          app.CreateClearCartCommandHandler(),
		Checkout:           app.CreateCheckoutCommandHandler(),
		AddFavorite:        app.CreateAddFavoriteCommandHandler(),
		RemoveFavorite:     app.CreateRemoveFavoriteCommandHandler(),
		RemoveAllFavorites: app.CreateRemoveAllFavoritesCommandHandler(),
		ChangeOrderStatus:  app.CreateChangeOrderStatusCommandHandler(),
		GetCart:            app.CreateGetCartQueryHandler(),
		ListFavs:           app.CreateListFavoritesQueryHandler(),
		ListOrders:         app.CreateListCustomerOrdersQueryHandler(),
	})
	server.RegisterRoutes(e, httpin.RequireCustomer([]byte(configs.JWTSecret)))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
