package cart

import (
	"errors"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"
	"foodsewa/internal/pkg/guard"
)

const (
	// MinLineItemQuantity is the smallest quantity a line item may hold.
	MinLineItemQuantity = 1
	// MaxLineItemQuantity is the largest quantity a line item may hold.
	MaxLineItemQuantity = 10
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created
	// through NewLineItem or RestoreLineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
	// ErrLineItemNameIsRequired is returned when the menu item name snapshot is empty.
	ErrLineItemNameIsRequired = errs.NewValueIsRequiredError("line item name")
)

// LineItem is one entry in a cart: a snapshot of a menu item (the name,
// price, and image captured at the moment the item was added) plus the
// desired quantity, customizations, and special instructions.
//
// The snapshot deliberately duplicates menu data so that a cart stays
// readable even if the restaurant later renames or reprices the item;
// availability revalidation at checkout reconciles the snapshot against
// the current menu.
type LineItem struct {
	menuItemID          kernel.UUID
	name                string
	unitPrice           kernel.Money
	imageURL            string
	quantity            int
	customizations      []string
	specialInstructions string
	available           bool

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item snapshot for a menu item.
//
// Validation rules:
//   - menuItemID must be a valid UUID
//   - name must be non-empty
//   - quantity must be within [MinLineItemQuantity, MaxLineItemQuantity]
//
// Fresh line items are always created as available; the availability flag
// only flips when a revalidation detects the item is gone from the menu.
func NewLineItem(
	menuItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	imageURL string,
	quantity int,
	customizations []string,
	specialInstructions string,
) (LineItem, error) {
	item := LineItem{
		imageURL:            imageURL,
		customizations:      append([]string(nil), customizations...),
		specialInstructions: specialInstructions,
		unitPrice:           unitPrice,
		available:           true,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// RestoreLineItem reconstructs a line item from persistent storage,
// including its persisted availability flag.
func RestoreLineItem(
	menuItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	imageURL string,
	quantity int,
	customizations []string,
	specialInstructions string,
	available bool,
) (LineItem, error) {
	item, err := NewLineItem(menuItemID, name, unitPrice, imageURL, quantity, customizations, specialInstructions)
	if err != nil {
		return LineItem{}, err
	}

	item.available = available
	return item, nil
}

// Validate ensures the line item was built through a constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// MenuItemID returns the identifier of the menu item this line refers to.
func (li LineItem) MenuItemID() kernel.UUID {
	return li.menuItemID
}

// Name returns the menu item name captured when the line was added.
func (li LineItem) Name() string {
	return li.name
}

// UnitPrice returns the per-unit price captured when the line was added.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// ImageURL returns the menu item image captured when the line was added.
func (li LineItem) ImageURL() string {
	return li.imageURL
}

// Quantity returns the number of units on this line.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Customizations returns a copy of the selected customizations.
func (li LineItem) Customizations() []string {
	return append([]string(nil), li.customizations...)
}

// SpecialInstructions returns the free-form note attached to this line.
func (li LineItem) SpecialInstructions() string {
	return li.specialInstructions
}

// IsAvailable reports the availability flag recorded on the snapshot.
func (li LineItem) IsAvailable() bool {
	return li.available
}

// Total returns unit price multiplied by quantity.
func (li LineItem) Total() kernel.Money {
	return li.unitPrice.MulQty(li.quantity)
}

func (li *LineItem) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.menuItemID = id
	return nil
}

func (li *LineItem) setName(name string) error {
	if name == "" {
		return ErrLineItemNameIsRequired
	}
	li.name = name
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < MinLineItemQuantity || quantity > MaxLineItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinLineItemQuantity, MaxLineItemQuantity)
	}
	li.quantity = quantity
	return nil
}
