package setup

import (
	"github.com/itchan-dev/confluence-bridge/backend/internal/apiclient"
	"github.com/itchan-dev/confluence-bridge/backend/internal/handler"
	"github.com/itchan-dev/confluence-bridge/backend/internal/service"
	"github.com/itchan-dev/confluence-bridge/shared/config"
	"github.com/itchan-dev/confluence-bridge/shared/jwt"
	"github.com/itchan-dev/confluence-bridge/shared/logger"
	mw "github.com/itchan-dev/confluence-bridge/shared/middleware"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Client  *apiclient.APIClient
	Handler *handler.Handler
	// nil when no jwt key is configured
	Auth *mw.Auth
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) *Dependencies {
	client := apiclient.New(cfg.Public.Confluence, cfg.Credentials())

	user := service.NewUser(client)
	attachment := service.NewAttachment(client)
	h := handler.New(user, attachment, client)

	var auth *mw.Auth
	if cfg.JwtKey() != "" {
		auth = mw.NewAuth(jwt.New(cfg.JwtKey(), cfg.JwtTTL()))
	} else {
		logger.Log.Warn("jwt_key is empty, gateway endpoints are served without authentication")
	}

	logger.Log.Info("confluence client ready", "url", client.BaseURL, "cloud", client.IsCloud())

	return &Dependencies{
		Config:  cfg,
		Client:  client,
		Handler: h,
		Auth:    auth,
	}
}
