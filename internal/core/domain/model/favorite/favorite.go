package favorite

import (
	"errors"
	"time"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"
	"foodsewa/internal/pkg/guard"
)

var (
	// ErrFavoriteIsNotConstructed is returned when a Favorite was not created
	// through NewFavorite or RestoreFavorite.
	ErrFavoriteIsNotConstructed = errors.New("Favorite must be created via NewFavorite constructor")

	// ErrMenuItemIsRequiredForDish is returned when creating a dish favorite
	// without a menu item reference.
	ErrMenuItemIsRequiredForDish = errs.NewValueIsRequiredError("menu item id for dish favorite")

	// ErrMenuItemNotAllowedForRestaurant is returned when a restaurant
	// favorite carries a menu item reference.
	ErrMenuItemNotAllowedForRestaurant = errs.NewValueIsInvalidError("menu item id on restaurant favorite")
)

// DishSnapshot is the denormalized detail of a favorited dish, captured so
// favorite listings render without a menu lookup. It is zero for restaurant
// favorites and refreshed on every reactivation.
type DishSnapshot struct {
	Name     string
	Price    kernel.Money
	ImageURL string
}

// Favorite is a customer's saved reference to a restaurant or to a specific
// dish. Its identity key is (customer, restaurant, kind) for restaurant
// favorites and (customer, restaurant, kind, menu item) for dish favorites;
// at most one Active record exists per key, while Inactive (soft-deleted)
// duplicates are tolerated and reactivated rather than recreated.
type Favorite struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	menuItemID   *kernel.UUID
	kind         Kind
	dish         DishSnapshot
	state        State
	addedAt      time.Time

	guard guard.ConstructorGuard
}

// NewFavorite creates an active favorite record.
//
// Validation rules:
//   - id, customerID, restaurantID must be valid UUIDs
//   - kind must be KindRestaurant or KindDish
//   - menuItemID is required for dish favorites and forbidden for
//     restaurant favorites
func NewFavorite(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	kind Kind,
	menuItemID *kernel.UUID,
	dish DishSnapshot,
) (*Favorite, error) {
	f := &Favorite{
		state:   StateActive,
		addedAt: time.Now().UTC(),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		f.setID(id),
		f.setCustomerID(customerID),
		f.setRestaurantID(restaurantID),
		f.setKind(kind),
	); err != nil {
		return nil, err
	}

	if err := f.setMenuItemID(menuItemID); err != nil {
		return nil, err
	}

	if f.kind == KindDish {
		f.dish = dish
	}

	return f, nil
}

// RestoreFavorite reconstructs a favorite from persistent storage with its
// persisted state and timestamp.
func RestoreFavorite(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	kind Kind,
	menuItemID *kernel.UUID,
	dish DishSnapshot,
	state State,
	addedAt time.Time,
) (*Favorite, error) {
	f, err := NewFavorite(id, customerID, restaurantID, kind, menuItemID, dish)
	if err != nil {
		return nil, err
	}

	if err = state.Validate(); err != nil {
		return nil, err
	}

	f.state = state
	f.addedAt = addedAt
	return f, nil
}

// Validate ensures the favorite was built through a constructor.
func (f *Favorite) Validate() error {
	if f == nil {
		return ErrFavoriteIsNotConstructed
	}
	return f.guard.Validate(ErrFavoriteIsNotConstructed)
}

// ID returns the favorite's unique identifier.
func (f *Favorite) ID() kernel.UUID {
	return f.id
}

// CustomerID returns the owning customer's identifier.
func (f *Favorite) CustomerID() kernel.UUID {
	return f.customerID
}

// RestaurantID returns the referenced restaurant's identifier.
func (f *Favorite) RestaurantID() kernel.UUID {
	return f.restaurantID
}

// MenuItemID returns the referenced menu item for dish favorites,
// or nil for restaurant favorites.
func (f *Favorite) MenuItemID() *kernel.UUID {
	if f.menuItemID == nil {
		return nil
	}
	mid := *f.menuItemID
	return &mid
}

// Kind returns whether this favorite points at a restaurant or a dish.
func (f *Favorite) Kind() Kind {
	return f.kind
}

// Dish returns the denormalized dish detail snapshot.
func (f *Favorite) Dish() DishSnapshot {
	return f.dish
}

// State returns the current lifecycle state.
func (f *Favorite) State() State {
	return f.state
}

// IsActive reports whether the favorite is live.
func (f *Favorite) IsActive() bool {
	return f.state == StateActive
}

// AddedAt returns when the favorite was (last) added.
func (f *Favorite) AddedAt() time.Time {
	return f.addedAt
}

// Deactivate soft-deletes the favorite.
// Fails if the favorite is not currently active.
func (f *Favorite) Deactivate() error {
	newState, err := f.state.Deactivate()
	if err != nil {
		return err
	}

	f.state = newState
	return nil
}

// Reactivate flips a soft-deleted favorite back to active, refreshing the
// added timestamp and overwriting the dish snapshot with current menu data.
// Fails if the favorite is already active.
func (f *Favorite) Reactivate(dish DishSnapshot) error {
	newState, err := f.state.Reactivate()
	if err != nil {
		return err
	}

	f.state = newState
	f.addedAt = time.Now().UTC()
	if f.kind == KindDish {
		f.dish = dish
	}
	return nil
}

func (f *Favorite) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Favorite) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.customerID = id
	return nil
}

func (f *Favorite) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.restaurantID = id
	return nil
}

func (f *Favorite) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	f.kind = kind
	return nil
}

func (f *Favorite) setMenuItemID(menuItemID *kernel.UUID) error {
	switch f.kind {
	case KindDish:
		if menuItemID == nil {
			return ErrMenuItemIsRequiredForDish
		}
		if err := menuItemID.Validate(); err != nil {
			return err
		}
		mid := *menuItemID
		f.menuItemID = &mid
	case KindRestaurant:
		if menuItemID != nil {
			return ErrMenuItemNotAllowedForRestaurant
		}
	}
	return nil
}
