package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"swiftdrop/cmd"
	httpin "swiftdrop/internal/adapters/in/http"
	"swiftdrop/internal/adapters/out/postgres/checkoutrepo"
	"swiftdrop/internal/adapters/out/postgres/distancerepo"
	"swiftdrop/internal/adapters/out/postgres/parcelrepo"
	"swiftdrop/internal/adapters/out/postgres/shipmentrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultDraftTTL = 30 * time.Minute

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		OpenCageAPIKey: goDotEnvVariable("OPENCAGE_API_KEY"),
		DraftTTL:       draftTTL(),
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

// draftTTL reads DRAFT_TTL as a Go duration string, falling back to the
// default when the variable is absent.
func draftTTL() time.Duration {
	raw := goDotEnvVariable("DRAFT_TTL")
	if raw == "" {
		return defaultDraftTTL
	}

	ttl, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid DRAFT_TTL %q: %v", raw, err)
	}
	return ttl
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&checkoutrepo.CheckoutDTO{},
		&checkoutrepo.ContactDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.PackagingDTO{},
		&shipmentrepo.PaymentDTO{},
		&distancerepo.CountryDistanceDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCalculateQuoteCommandHandler(),
		app.CreateStartCheckoutCommandHandler(),
		app.CreateSubmitContactCommandHandler(),
		app.CreateSubmitPackagingCommandHandler(),
		app.CreateSubmitPaymentCommandHandler(),
		app.CreateCancelShipmentCommandHandler(),
		app.CreateEditShipmentDetailsCommandHandler(),
		app.CreateTrackShipmentQueryHandler(),
		app.CreateGetShipmentsQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
