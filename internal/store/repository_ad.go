package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/models"
)

// adRepository is the SQL-backed implementation of [AdRepository].
type adRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdRepository constructs an [AdRepository] backed by db.
func NewAdRepository(db *DB, logger *logger.Logger) AdRepository {
	logger.Debug().Msg("creating ad repository")
	return &adRepository{
		db:     db,
		logger: logger,
	}
}

func (r *adRepository) CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAdQuery(r.db.builder, ad)
	if err != nil {
		log.Err(err).Str("func", "*adRepository.CreateAd").Msg("error building query")
		return models.Ad{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&ad.ID); err != nil {
		log.Err(err).Str("func", "*adRepository.CreateAd").Msg("error inserting ad")
		return models.Ad{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ad, nil
}

func (r *adRepository) FindAdByID(ctx context.Context, adID int64) (models.Ad, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAdQuery(r.db.builder, adID)
	if err != nil {
		return models.Ad{}, err
	}

	var ad models.Ad
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&ad.ID, &ad.Title, &ad.Content, &ad.UserID); err != nil {
		if isNoRows(err) {
			return models.Ad{}, ErrAdNotFound
		}
		log.Err(err).Str("func", "*adRepository.FindAdByID").Msg("error scanning ad")
		return models.Ad{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return ad, nil
}

// ListAds returns every ad joined with its author, ordered by id.
func (r *adRepository) ListAds(ctx context.Context) ([]models.AdListing, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAdListingsQuery(r.db.builder)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*adRepository.ListAds").Msg("error selecting ads")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	listings := make([]models.AdListing, 0)
	for rows.Next() {
		var l models.AdListing
		if err = rows.Scan(
			&l.ID, &l.Title, &l.Content, &l.UserID,
			&l.AuthorLogin, &l.AuthorFullName, &l.AuthorEmail,
		); err != nil {
			log.Err(err).Str("func", "*adRepository.ListAds").Msg("error scanning ads")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		listings = append(listings, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return listings, nil
}

// UpdateAd replaces title and content. Ownership is never changed here.
func (r *adRepository) UpdateAd(ctx context.Context, ad models.Ad) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAdQuery(r.db.builder, ad)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*adRepository.UpdateAd").Msg("error updating ad")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrAdNotFound)
}

func (r *adRepository) DeleteAd(ctx context.Context, adID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAdQuery(r.db.builder, adID)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*adRepository.DeleteAd").Msg("error deleting ad")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrAdNotFound)
}
