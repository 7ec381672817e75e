package favoriterepo

import (
	"context"
	"errors"

	"foodsewa/internal/core/domain/model/favorite"
	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFavoriteRepository implements FavoriteRepository using GORM.
type GormFavoriteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFavoriteRepository creates a new GORM favorite repository.
func NewGormFavoriteRepository(db *gorm.DB, tracker aggregateTracker) *GormFavoriteRepository {
	return &GormFavoriteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new favorite to the database. A violated uniqueness key maps to
// errs.ErrObjectAlreadyExists so handlers can report "already in favorites".
func (r *GormFavoriteRepository) Add(ctx context.Context, aggregate *favorite.Favorite) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("favorite", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing favorite to the database. State and snapshot
// columns are written with Select so reactivation refreshes are persisted.
func (r *GormFavoriteRepository) Update(ctx context.Context, aggregate *favorite.Favorite) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&FavoriteDTO{}).
		Where("id = ?", dto.ID).
		Select("DishName", "DishPriceCents", "DishImageURL", "State", "AddedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByKey retrieves a favorite by its uniqueness key regardless of state.
func (r *GormFavoriteRepository) GetByKey(
	ctx context.Context,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	kind favorite.Kind,
	menuItemID *kernel.UUID,
) (*favorite.Favorite, error) {
	if err := errors.Join(customerID.Validate(), restaurantID.Validate(), kind.Validate()); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Where("kind = ?", kind.String())
	if menuItemID != nil {
		query = query.Where("menu_item_id = ?", menuItemID.Bytes())
	} else {
		query = query.Where("menu_item_id IS NULL")
	}

	var dto FavoriteDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("favorite", customerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeactivateAllByCustomer marks every active favorite of a customer inactive.
func (r *GormFavoriteRepository) DeactivateAllByCustomer(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&FavoriteDTO{}).
		Where("customer_id = ?", customerID.Bytes()).
		Where("state = ?", favorite.StateActive.String()).
		Update("state", favorite.StateInactive.String()).Error
}
