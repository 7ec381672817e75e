package restaurant

import (
	"errors"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"
	"foodsewa/internal/pkg/guard"
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant was not
	// created via NewRestaurant constructor.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

	// ErrRestaurantNameIsRequired is returned when a restaurant has an empty name.
	ErrRestaurantNameIsRequired = errs.NewValueIsRequiredError("restaurant name")
)

// Restaurant is the aggregate carts and orders reference. It owns the menu
// together with the delivery terms applied at cart time.
type Restaurant struct {
	id                 kernel.UUID
	name               string
	open               bool
	verified           bool
	deliveryFee        kernel.Money
	minimumOrderAmount kernel.Money
	menu               []MenuItem

	guard guard.ConstructorGuard
}

// NewRestaurant creates a restaurant with its menu.
func NewRestaurant(
	id kernel.UUID,
	name string,
	open bool,
	verified bool,
	deliveryFee kernel.Money,
	minimumOrderAmount kernel.Money,
	menu []MenuItem,
) (*Restaurant, error) {
	r := &Restaurant{
		open:               open,
		verified:           verified,
		deliveryFee:        deliveryFee,
		minimumOrderAmount: minimumOrderAmount,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setMenu(menu),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant reconstructs a restaurant from persistent storage.
func RestoreRestaurant(
	id kernel.UUID,
	name string,
	open bool,
	verified bool,
	deliveryFee kernel.Money,
	minimumOrderAmount kernel.Money,
	menu []MenuItem,
) (*Restaurant, error) {
	return NewRestaurant(id, name, open, verified, deliveryFee, minimumOrderAmount, menu)
}

// Validate ensures the restaurant was built through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// IsEqual compares two restaurants by identifier.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return r.id.IsEqual(other.id)
}

// ID returns the restaurant identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant name.
func (r *Restaurant) Name() string {
	return r.name
}

// IsOpen reports whether the restaurant currently accepts orders.
func (r *Restaurant) IsOpen() bool {
	return r.open
}

// IsVerified reports whether the restaurant passed verification.
func (r *Restaurant) IsVerified() bool {
	return r.verified
}

// CanAcceptOrders reports whether the restaurant is both open and verified.
func (r *Restaurant) CanAcceptOrders() bool {
	return r.open && r.verified
}

// DeliveryFee returns the fee added to every order from this restaurant.
func (r *Restaurant) DeliveryFee() kernel.Money {
	return r.deliveryFee
}

// MinimumOrderAmount returns the smallest subtotal the restaurant accepts.
func (r *Restaurant) MinimumOrderAmount() kernel.Money {
	return r.minimumOrderAmount
}

// Menu returns the restaurant menu.
func (r *Restaurant) Menu() []MenuItem {
	return r.menu
}

// FindMenuItem looks up a dish by identifier. It returns errs.ErrObjectNotFound
// when the dish is not on the menu.
func (r *Restaurant) FindMenuItem(menuItemID kernel.UUID) (MenuItem, error) {
	for i := range r.menu {
		if r.menu[i].ID().IsEqual(menuItemID) {
			return r.menu[i], nil
		}
	}
	return MenuItem{}, errs.NewObjectNotFoundError("menuItemId", menuItemID)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurant id", err)
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Restaurant) setMenu(menu []MenuItem) error {
	for i := range menu {
		if err := menu[i].Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("restaurant menu", err)
		}
	}
	r.menu = menu
	return nil
}
