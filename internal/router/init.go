package router

import (
	"github.com/founditapp/foundit-backend/internal/application"
	"github.com/founditapp/foundit-backend/internal/container"
	"github.com/founditapp/foundit-backend/internal/infrastructure/kvstore"
	handlers "github.com/founditapp/foundit-backend/internal/interface/http"
	"github.com/founditapp/foundit-backend/internal/router/modules"
)

// InitModules builds repositories, services and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	store := container.GetStore()

	items := kvstore.NewItemRepository(store, cfg.StoreVersion, logger)
	experiences := kvstore.NewExperienceRepository(store, cfg.StoreVersion, logger)
	users := kvstore.NewUserRepository(store, logger)
	sessions := kvstore.NewSessionStore(store, logger)

	authSvc := application.NewAuthService(users, sessions, container.GetJWT(), container.GetRabbitPub(), logger)
	itemSvc := application.NewItemService(
		items,
		users,
		container.GetMatcher(),
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetES(),
		cfg.ESItemsIndex,
		container.GetRabbitPub(),
		logger,
	)
	expSvc := application.NewExperienceService(experiences, logger)
	searchSvc := application.NewSearchService(items, container.GetMatcher(), logger)

	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	itemHandler := handlers.NewItemHandler(itemSvc, logger)
	expHandler := handlers.NewExperienceHandler(expSvc, logger)
	searchHandler := handlers.NewSearchHandler(searchSvc, logger)

	r.Add(modules.NewAuthModule(authHandler, sessions, container.GetJWT()))
	r.Add(modules.NewItemModule(itemHandler, sessions, container.GetJWT()))
	r.Add(modules.NewExperienceModule(expHandler))
	r.Add(modules.NewSearchModule(searchHandler, sessions, container.GetJWT()))
}
