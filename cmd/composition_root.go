package cmd

import (
	"foodsewa/internal/adapters/out/postgres"
	"foodsewa/internal/core/application/usecases/commands"
	"foodsewa/internal/core/application/usecases/queries"
	"foodsewa/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) favoriteUoWFactory() commands.FavoriteUoWFactory {
	return FuncFavoriteUoWFactory(func() commands.FavoriteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCartItemQuantityCommandHandler() commands.UpdateCartItemQuantityCommandHandler {
	return commands.NewUpdateCartItemQuantityCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateApplyCouponCommandHandler() commands.ApplyCouponCommandHandler {
	return commands.NewApplyCouponCommandHandler(c.cartUoWFactory(), services.NewFixedCouponValidator())
}

func (c *CompositionRoot) CreateRemoveCouponCommandHandler() commands.RemoveCouponCommandHandler {
	return commands.NewRemoveCouponCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.checkoutUoWFactory())
}

func (c *CompositionRoot) CreateAddFavoriteCommandHandler() commands.AddFavoriteCommandHandler {
	return commands.NewAddFavoriteCommandHandler(c.favoriteUoWFactory())
}

func (c *CompositionRoot) CreateRemoveFavoriteCommandHandler() commands.RemoveFavoriteCommandHandler {
	return commands.NewRemoveFavoriteCommandHandler(c.favoriteUoWFactory())
}

func (c *CompositionRoot) CreateRemoveAllFavoritesCommandHandler() commands.RemoveAllFavoritesCommandHandler {
	return commands.NewRemoveAllFavoritesCommandHandler(c.favoriteUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCleanupAbandonedCartsCommandHandler() commands.CleanupAbandonedCartsCommandHandler {
	return commands.NewCleanupAbandonedCartsCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPendingOrdersCommandHandler() commands.ConfirmPendingOrdersCommandHandler {
	return commands.NewConfirmPendingOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListFavoritesQueryHandler() queries.ListFavoritesQueryHandler {
	return queries.NewListFavoritesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncFavoriteUoWFactory func() commands.FavoriteUoW

func (f FuncFavoriteUoWFactory) Create() commands.FavoriteUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
