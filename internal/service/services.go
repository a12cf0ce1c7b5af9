package service

import (
	"github.com/MKhiriev/go-ads-board/internal/config"
	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/store"
	"github.com/MKhiriev/go-ads-board/models"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	AdService      AdService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.AvatarStorage, cfg.App, logger),
		SessionService: NewSessionService(storages.SessionStorage, cfg.App, logger),
		AdService:      NewAdService(storages.AdRepository, storages.UserRepository, logger),
		UserService:    NewUserService(storages.UserRepository, storages.AvatarStorage, logger),
		AppInfoService: appInfoService,
	}, nil
}
