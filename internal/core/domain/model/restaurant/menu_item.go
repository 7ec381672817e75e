package restaurant

import (
	"errors"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"
	"foodsewa/internal/pkg/guard"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created
	// via NewMenuItem constructor.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

	// ErrMenuItemNameIsRequired is returned when a menu item has an empty name.
	ErrMenuItemNameIsRequired = errs.NewValueIsRequiredError("menu item name")
)

// MenuItem is a dish offered by a restaurant. Its price and availability are
// the source of truth carts are validated against.
type MenuItem struct {
	id        kernel.UUID
	name      string
	price     kernel.Money
	imageURL  string
	available bool

	guard guard.ConstructorGuard
}

// NewMenuItem creates a menu item.
func NewMenuItem(
	id kernel.UUID,
	name string,
	price kernel.Money,
	imageURL string,
	available bool,
) (MenuItem, error) {
	item := MenuItem{
		imageURL:  imageURL,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return MenuItem{}, err
	}

	return item, nil
}

// Validate ensures the menu item was built through the constructor.
func (m *MenuItem) Validate() error {
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// ID returns the menu item identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the dish name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the current dish price.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// ImageURL returns the dish image URL, possibly empty.
func (m *MenuItem) ImageURL() string {
	return m.imageURL
}

// IsAvailable reports whether the dish can currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.available
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("menu item id", err)
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return ErrMenuItemNameIsRequired
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	m.price = price
	return nil
}
