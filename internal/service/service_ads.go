package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/store"
	"github.com/MKhiriev/go-ads-board/internal/validators"
	"github.com/MKhiriev/go-ads-board/models"
)

type adService struct {
	adRepository   store.AdRepository
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewAdService(adRepository store.AdRepository, userRepository store.UserRepository, logger *logger.Logger) AdService {
	return &adService{
		adRepository:   adRepository,
		userRepository: userRepository,
		validator:      validators.NewBoardValidator(),
		logger:         logger,
	}
}

// ListAds returns all listings in id order. Projection by viewer happens in
// models.ProjectAds.
func (s *adService) ListAds(ctx context.Context) ([]models.AdListing, error) {
	listings, err := s.adRepository.ListAds(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing ads: %w", err)
	}
	return listings, nil
}

func (s *adService) GetAd(ctx context.Context, adID int64) (models.Ad, error) {
	return s.adRepository.FindAdByID(ctx, adID)
}

// GetOwnAd loads the ad for its edit form.
func (s *adService) GetOwnAd(ctx context.Context, identity models.Identity, adID int64) (models.Ad, error) {
	return s.loadOwned(ctx, identity, adID)
}

func (s *adService) CreateAd(ctx context.Context, identity models.Identity, draft models.AdDraft) (models.Ad, error) {
	log := logger.FromContext(ctx)

	if err := Authorize(identity, 0, AccessAuthenticated); err != nil {
		return models.Ad{}, err
	}
	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.Ad{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ad, err := s.adRepository.CreateAd(ctx, models.Ad{
		Title:   draft.Title,
		Content: draft.Content,
		UserID:  identity.UserID,
	})
	if err != nil {
		log.Err(err).Int64("user_id", identity.UserID).Msg("ad creation failed")
		return models.Ad{}, fmt.Errorf("ad creation failed: %w", err)
	}

	return ad, nil
}

// EditAd replaces title and content of an ad the identity owns.
func (s *adService) EditAd(ctx context.Context, identity models.Identity, adID int64, draft models.AdDraft) (models.Ad, error) {
	ad, err := s.loadOwned(ctx, identity, adID)
	if err != nil {
		return models.Ad{}, err
	}

	if err = s.validator.Validate(ctx, draft); err != nil {
		return models.Ad{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ad.Title = draft.Title
	ad.Content = draft.Content
	if err = s.adRepository.UpdateAd(ctx, ad); err != nil {
		return models.Ad{}, fmt.Errorf("ad update failed: %w", err)
	}

	return ad, nil
}

// DeleteAd deletes an ad the identity owns. Administrators get no bypass
// here; they go through DeleteAdAsAdmin.
func (s *adService) DeleteAd(ctx context.Context, identity models.Identity, adID int64) error {
	ad, err := s.loadOwned(ctx, identity, adID)
	if err != nil {
		return err
	}

	if err = s.adRepository.DeleteAd(ctx, ad.ID); err != nil {
		return fmt.Errorf("ad deletion failed: %w", err)
	}
	return nil
}

// DeleteAdAsAdmin deletes any ad regardless of ownership.
func (s *adService) DeleteAdAsAdmin(ctx context.Context, identity models.Identity, adID int64) error {
	if err := authorizeAdmin(ctx, s.userRepository, identity); err != nil {
		return err
	}

	if err := s.adRepository.DeleteAd(ctx, adID); err != nil {
		return fmt.Errorf("ad deletion failed: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("admin_id", identity.UserID).Int64("ad_id", adID).Msg("ad deleted by admin")
	return nil
}

func (s *adService) loadOwned(ctx context.Context, identity models.Identity, adID int64) (models.Ad, error) {
	if err := Authorize(identity, 0, AccessAuthenticated); err != nil {
		return models.Ad{}, err
	}

	ad, err := s.adRepository.FindAdByID(ctx, adID)
	if err != nil {
		return models.Ad{}, err
	}

	if err = Authorize(identity, ad.UserID, AccessOwner); err != nil {
		logger.FromContext(ctx).Info().
			Int64("user_id", identity.UserID).
			Int64("ad_id", adID).
			Int64("owner_id", ad.UserID).
			Msg("ad access denied")
		return models.Ad{}, err
	}

	return ad, nil
}
