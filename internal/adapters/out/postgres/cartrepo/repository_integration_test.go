package cartrepo_test

import (
	"context"
	"testing"
	"time"

	"foodsewa/internal/adapters/out/postgres/cartrepo"
	"foodsewa/internal/core/domain/model/cart"
	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// CartRepositoryIntegrationTestSuite provides integration tests for CartRepository
// using PostgreSQL containers to verify database persistence behavior.
type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *cartrepo.GormCartRepository
	tracker    *MockAggregateTracker
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&cartrepo.CartDTO{}))
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE carts").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = cartrepo.NewGormCartRepository(suite.db, suite.tracker)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CartRepositoryIntegrationTestSuite) TestAdd_EmptyCart_Success() {
	ctx := context.Background()

	emptyCart, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", emptyCart.ID(), emptyCart).Once()

	err = suite.repository.Add(ctx, emptyCart)
	suite.Require().NoError(err)

	suite.assertCartCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestAdd_SecondCartForCustomer_ReturnsAlreadyExistsError() {
	ctx := context.Background()

	// One active cart per customer is enforced by a unique index
	customerID := kernel.NewUUID()
	firstCart, err := cart.NewCart(kernel.NewUUID(), customerID)
	suite.Require().NoError(err)
	secondCart, err := cart.NewCart(kernel.NewUUID(), customerID)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", firstCart.ID(), firstCart).Once()
	suite.Require().NoError(suite.repository.Add(ctx, firstCart))

	err = suite.repository.Add(ctx, secondCart)
	suite.Require().Error(err)

	var alreadyExistsErr *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &alreadyExistsErr)

	suite.assertCartCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetByCustomer_PopulatedCart_RoundTripsFullState() {
	ctx := context.Background()

	// Build a cart bound to a restaurant with items and a coupon
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	populatedCart := suite.createPopulatedCart(customerID, restaurantID)

	suite.tracker.On("TrackAggregate", populatedCart.ID(), populatedCart).Once()
	suite.Require().NoError(suite.repository.Add(ctx, populatedCart))

	retrievedCart, err := suite.repository.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)

	suite.Equal(populatedCart.ID(), retrievedCart.ID())
	suite.Equal(customerID, retrievedCart.CustomerID())
	suite.Require().NotNil(retrievedCart.RestaurantID())
	suite.True(retrievedCart.RestaurantID().IsEqual(restaurantID))
	suite.Equal(int64(150), retrievedCart.DeliveryFee().Cents())
	suite.Equal(int64(500), retrievedCart.MinimumOrderAmount().Cents())
	suite.Equal("WELCOME10", retrievedCart.CouponCode())
	suite.Equal(int64(170), retrievedCart.Discount().Cents())

	items := retrievedCart.Items()
	suite.Require().Len(items, 2)
	suite.Equal("Chicken Momo", items[0].Name())
	suite.Equal(2, items[0].Quantity())
	suite.Equal([]string{"extra spicy"}, items[0].Customizations())
	suite.Equal("no coriander", items[0].SpecialInstructions())
	suite.Equal("Veg Chowmein", items[1].Name())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetByCustomer_NoCart_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedCart, err := suite.repository.GetByCustomer(ctx, kernel.NewUUID())

	suite.Nil(retrievedCart)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestUpdate_ClearedCart_PersistsReleasedBinding() {
	ctx := context.Background()

	// Persist a populated cart, then clear it
	customerID := kernel.NewUUID()
	populatedCart := suite.createPopulatedCart(customerID, kernel.NewUUID())

	suite.tracker.On("TrackAggregate", populatedCart.ID(), populatedCart).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, populatedCart))

	populatedCart.Clear()
	suite.Require().NoError(suite.repository.Update(ctx, populatedCart))

	// Cleared columns must be written too, not skipped as zero values
	retrievedCart, err := suite.repository.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.True(retrievedCart.IsEmpty())
	suite.Nil(retrievedCart.RestaurantID())
	suite.True(retrievedCart.DeliveryFee().IsZero())
	suite.Empty(retrievedCart.CouponCode())
	suite.True(retrievedCart.Discount().IsZero())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestUpdate_NonExistentCart_ReturnsError() {
	ctx := context.Background()

	missingCart, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, missingCart)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetStale_MixedAges_ReturnsOnlyStaleCarts() {
	ctx := context.Background()

	// One stale populated cart and one fresh cart
	staleCart := suite.createPopulatedCart(kernel.NewUUID(), kernel.NewUUID())
	freshCart, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, staleCart))
	suite.Require().NoError(suite.repository.Add(ctx, freshCart))

	// Backdate the stale cart directly; UpdatedAt is managed by the aggregate
	backdated := time.Now().UTC().Add(-2 * time.Hour)
	err = suite.db.Model(&cartrepo.CartDTO{}).
		Where("id = ?", staleCart.ID().Bytes()).
		Update("updated_at", backdated).Error
	suite.Require().NoError(err)

	staleCarts, err := suite.repository.GetStale(ctx, time.Now().UTC().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(staleCarts, 1)
	suite.Equal(staleCart.ID(), staleCarts[0].ID())
	suite.Len(staleCarts[0].Items(), 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetStale_NoStaleCarts_ReturnsEmptySlice() {
	ctx := context.Background()

	freshCart, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", freshCart.ID(), freshCart).Once()
	suite.Require().NoError(suite.repository.Add(ctx, freshCart))

	staleCarts, err := suite.repository.GetStale(ctx, time.Now().UTC().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Empty(staleCarts)

	suite.tracker.AssertExpectations(suite.T())
}

// createPopulatedCart builds a cart bound to the given restaurant with two
// line items and an applied coupon.
func (suite *CartRepositoryIntegrationTestSuite) createPopulatedCart(
	customerID kernel.UUID, restaurantID kernel.UUID,
) *cart.Cart {
	populatedCart, err := cart.NewCart(kernel.NewUUID(), customerID)
	suite.Require().NoError(err)

	momo, err := cart.NewLineItem(
		kernel.NewUUID(), "Chicken Momo", suite.money(850), "https://cdn.foodsewa.test/momo.jpg",
		2, []string{"extra spicy"}, "no coriander")
	suite.Require().NoError(err)

	chowmein, err := cart.NewLineItem(
		kernel.NewUUID(), "Veg Chowmein", suite.money(600), "", 1, nil, "")
	suite.Require().NoError(err)

	suite.Require().NoError(populatedCart.AddItem(restaurantID, momo, suite.money(150), suite.money(500)))
	suite.Require().NoError(populatedCart.AddItem(restaurantID, chowmein, suite.money(150), suite.money(500)))
	suite.Require().NoError(populatedCart.ApplyCoupon("WELCOME10", suite.money(170)))

	return populatedCart
}

func (suite *CartRepositoryIntegrationTestSuite) money(cents int64) kernel.Money {
	amount, err := kernel.NewMoneyFromCents(cents)
	suite.Require().NoError(err)
	return amount
}

// assertCartCount verifies the number of carts in the database.
func (suite *CartRepositoryIntegrationTestSuite) assertCartCount(expected int) {
	var count int64
	err := suite.db.Model(&cartrepo.CartDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}
