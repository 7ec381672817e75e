// Package cart provides the shopping cart aggregate of the FoodSewa
// marketplace. A cart is the per-customer, single-restaurant basket of menu
// items pending checkout.
//
// The package includes:
//   - Cart: The aggregate root that manages line items, coupon state, and
//     the restaurant context the cart is bound to
//   - LineItem: A snapshot of a menu item (name, price, image) together with
//     a bounded quantity and the customer's customizations
//
// Key business rules:
//   - All line items belong to the same restaurant; adding an item from a
//     different restaurant is rejected and leaves the cart unchanged
//   - Line item quantities are bounded to [MinLineItemQuantity, MaxLineItemQuantity]
//   - Removing the last item unbinds the cart from its restaurant so a new
//     restaurant can be chosen for the next order
//   - The cart never stores a total; Summary derives it on every read
//
// Coupon business validation (whether a code exists, its discount amount)
// lives outside the aggregate; the cart only records the outcome.
package cart
