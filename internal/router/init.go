package router

import (
	"github.com/Mduduzi-Ndlovu1/Blog-Project/internal/application"
	"github.com/Mduduzi-Ndlovu1/Blog-Project/internal/container"
	pginfra "github.com/Mduduzi-Ndlovu1/Blog-Project/internal/infrastructure/postgres"
	handlers "github.com/Mduduzi-Ndlovu1/Blog-Project/internal/interface/http"
	"github.com/Mduduzi-Ndlovu1/Blog-Project/internal/router/modules"
)

// InitModules builds repositories, services, and handlers from the container
// singletons and registers all modules. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	posts := pginfra.NewPostRepository(pool)

	authSvc := application.NewAuthService(users, container.GetTokens(), logger)
	postSvc := application.NewPostService(posts)

	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	postHandler := handlers.NewPostHandler(postSvc, logger, cfg.PostsPerPage)

	r.Add(modules.NewPublicModule(postHandler))
	r.Add(modules.NewAdminModule(authHandler, postHandler))
}
