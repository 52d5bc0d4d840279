package app

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"food-express-backend/app/controller"
	"food-express-backend/app/router"
	"food-express-backend/config"
	"food-express-backend/db"
	"food-express-backend/repository"
	"food-express-backend/service"
	"food-express-backend/storage"
)

// Initialize wires the application: store, repositories, services,
// controllers and routes. Optional capabilities degrade instead of failing:
// no database means an in-memory store, no MONGO_URL means the local-only
// directory, no Drive credentials disable the menu sync and image
// endpoints. The returned cleanup stops the order feed and disconnects the
// remote directory; callers defer it for the life of the server.
func Initialize(cfg *config.Config) (func(), error) {
	ctx := context.Background()

	// Durable store: Postgres when configured, in-memory otherwise.
	var store storage.Store
	if err := db.InitDB(); err != nil {
		log.Printf("⚠️  No database available (%v), using in-memory store", err)
		store = storage.NewMemoryStore()
	} else {
		store = storage.NewPostgresStore(db.DB)
	}

	sessions := storage.NewSessionStore()
	resolver := controller.NewSessionResolver(sessions)

	orderRepo := repository.NewOrderRepository(store)
	dishRepo := repository.NewDishRepository(store)
	userRepo := repository.NewUserRepository(store)

	// Remote directory: Mongo-backed mirror when configured, local polling
	// fallback otherwise.
	var directory service.Directory
	if cfg.MongoURL != "" {
		mongoDir, err := service.NewMongoDirectory(ctx, cfg.MongoURL, cfg.MongoDatabase)
		if err != nil {
			log.Printf("⚠️  Remote directory unreachable (%v), using local directory", err)
			directory = service.NewLocalDirectory(orderRepo, cfg.SnapshotPollInterval)
		} else {
			log.Printf("✓ Remote directory connected")
			directory = mongoDir
		}
	} else {
		directory = service.NewLocalDirectory(orderRepo, cfg.SnapshotPollInterval)
	}

	cartService := service.NewCartService(store)
	addressService := service.NewAddressService(store)
	checkoutService := service.NewCheckoutService(cartService, addressService, orderRepo, directory, cfg.OrderProcessingDelay)
	trackingService := service.NewTrackingService(orderRepo)
	adminService := service.NewAdminService(orderRepo, dishRepo, directory)
	authService := service.NewAuthService(userRepo, sessions, cfg.JWTSecret)
	menuService := service.NewMenuService(dishRepo)

	// Drive-backed menu sync is optional.
	var driveService service.DriveServiceInterface
	var syncService service.SyncServiceInterface
	if cfg.DriveCredentialsPath != "" {
		ds, err := service.NewDriveService(cfg.DriveCredentialsPath)
		if err != nil {
			return nil, errors.Wrap(err, "failed to initialize drive service")
		}
		driveService = ds
		syncService = service.NewSyncService(ds, dishRepo)
		if err := service.EnsureCacheDir(); err != nil {
			return nil, err
		}
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS not set, menu sync disabled")
	}

	// Mirror remote order snapshots into durable storage when the remote
	// directory is live.
	if _, ok := directory.(*service.MongoDirectory); ok {
		if err := adminService.StartOrderFeed(ctx); err != nil {
			log.Printf("⚠️  Could not start order feed: %v", err)
		}
	}

	controllers := &router.Controllers{
		Auth:        controller.NewAuthController(authService, resolver),
		Menu:        controller.NewMenuController(menuService, driveService),
		Cart:        controller.NewCartController(cartService, resolver),
		Address:     controller.NewAddressController(addressService, resolver),
		Checkout:    controller.NewCheckoutController(checkoutService, resolver),
		Order:       controller.NewOrderController(trackingService),
		Admin:       controller.NewAdminController(adminService),
		Dish:        controller.NewDishController(menuService, syncService),
		AuthService: authService,
	}

	router.SetupRoutes(controllers)

	cleanup := func() {
		adminService.StopOrderFeed()
		if mongoDir, ok := directory.(*service.MongoDirectory); ok {
			if err := mongoDir.Close(context.Background()); err != nil {
				log.Printf("⚠️  Error disconnecting remote directory: %v", err)
			}
		}
	}
	return cleanup, nil
}
