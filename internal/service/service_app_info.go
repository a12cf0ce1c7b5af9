package service

import (
	"context"

	"github.com/MKhiriev/go-ads-board/internal/config"
	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/models"
)

type appInfoService struct {
	info models.AppInfoView

	logger *logger.Logger
}

// NewAppInfoService returns the service behind the version endpoint.
// cfg.Version is required; build date and commit come from linker flags.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.AppInfoView{
			Version:     cfg.Version,
			BuildDate:   build.BuildDate(),
			BuildCommit: build.BuildCommit(),
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfoView {
	return s.info
}
