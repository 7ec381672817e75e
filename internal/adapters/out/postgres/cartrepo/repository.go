package cartrepo

import (
	"context"
	"errors"
	"time"

	"foodsewa/internal/core/domain/model/cart"
	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cart to the database.
func (r *GormCartRepository) Add(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("cart", aggregate.CustomerID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing cart to the database. Columns are written with
// Select so cleared fields (nil restaurant, empty coupon) are persisted too.
func (r *GormCartRepository) Update(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&CartDTO{}).
		Where("id = ?", dto.ID).
		Select("RestaurantID", "Items", "DeliveryFeeCents", "MinimumOrderCents",
			"CouponCode", "DiscountCents", "UpdatedAt").
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

// GetByCustomer retrieves the cart belonging to a customer.
func (r *GormCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	if err := r.db.WithContext(ctx).First(&dto, "customer_id = ?", customerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerId", customerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetStale retrieves all carts last touched before the given time.
func (r *GormCartRepository) GetStale(ctx context.Context, olderThan time.Time) ([]*cart.Cart, error) {
	var dtos []CartDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "updated_at < ?", olderThan).Error; err != nil {
		return nil, err
	}

	carts := make([]*cart.Cart, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		carts = append(carts, c)
	}

	return carts, nil
}
