package favoriterepo_test

import (
	"context"
	"testing"
	"time"

	"foodsewa/internal/adapters/out/postgres/favoriterepo"
	"foodsewa/internal/core/domain/model/favorite"
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

// FavoriteRepositoryIntegrationTestSuite provides integration tests for FavoriteRepository
// using PostgreSQL containers to verify database persistence behavior.
type FavoriteRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *favoriterepo.GormFavoriteRepository
	tracker    *MockAggregateTracker
}

func (suite *FavoriteRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(db.AutoMigrate(&favoriterepo.FavoriteDTO{}))
}

func (suite *FavoriteRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE favorites").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = favoriterepo.NewGormFavoriteRepository(suite.db, suite.tracker)
}

func (suite *FavoriteRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *FavoriteRepositoryIntegrationTestSuite) TestAdd_RestaurantFavorite_Success() {
	ctx := context.Background()

	restaurantFavorite := suite.createRestaurantFavorite(kernel.NewUUID(), kernel.NewUUID())

	suite.tracker.On("TrackAggregate", restaurantFavorite.ID(), restaurantFavorite).Once()

	err := suite.repository.Add(ctx, restaurantFavorite)
	suite.Require().NoError(err)

	suite.assertFavoriteCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *FavoriteRepositoryIntegrationTestSuite) TestAdd_DuplicateKey_ReturnsAlreadyExistsError() {
	ctx := context.Background()

	// Same customer, restaurant, kind, and menu item collide on the composite
	// unique index. Restaurant favorites carry a NULL menu item and rely on the
	// handler's lookup-before-insert instead, since NULLs never collide.
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()
	first := suite.createDishFavorite(customerID, restaurantID, menuItemID)
	second := suite.createDishFavorite(customerID, restaurantID, menuItemID)

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	var alreadyExistsErr *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &alreadyExistsErr)

	suite.assertFavoriteCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *FavoriteRepositoryIntegrationTestSuite) TestAdd_SameRestaurantDifferentKinds_BothPersist() {
	ctx := context.Background()

	// A restaurant favorite and a dish favorite for the same restaurant coexist
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	restaurantFavorite := suite.createRestaurantFavorite(customerID, restaurantID)
	dishFavorite := suite.createDishFavorite(customerID, restaurantID, kernel.NewUUID())

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, restaurantFavorite))
	suite.Require().NoError(suite.repository.Add(ctx, dishFavorite))

	suite.assertFavoriteCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *FavoriteRepositoryIntegrationTestSuite) TestGetByKey_DishFavorite_RoundTripsSnapshot() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()
	dishFavorite := suite.createDishFavorite(customerID, restaurantID, menuItemID)

	suite.tracker.On("TrackAggregate", dishFavorite.ID(), dishFavorite).Once()
	suite.Require().NoError(suite.repository.Add(ctx, dishFavorite))

	retrieved, err := suite.repository.GetByKey(ctx, customerID, restaurantID, favorite.KindDish, &menuItemID)
	suite.Require().NoError(err)

	suite.Equal(dishFavorite.ID(), retrieved.ID())
	suite.Equal(favorite.KindDish, retrieved.Kind())
	suite.Require().NotNil(retrieved.MenuItemID())
	suite.True(retrieved.MenuItemID().IsEqual(menuItemID))
	suite.Equal("Chicken Momo", retrieved.Dish().Name)
	suite.Equal(int64(850), retrieved.Dish().Price.Cents())
	suite.True(retrieved.IsActive())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *FavoriteRepositoryIntegrationTestSuite) TestGetByKey_InactiveFavorite_IsStillFound() {
	ctx := context.Background()

	// GetByKey looks across states so handlers can reactivate soft-deleted rows
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	restaurantFavorite := suite.createRestaurantFavorite(customerID, restaurantID)
	suite.Require().NoError(restaurantFavorite.Deactivate())

	suite.tracker.On("TrackAggregate", restaurantFavorite.ID(), restaurantFavorite).Once()
	suite.Require().NoError(suite.repository.Add(ctx, restaurantFavorite))

	retrieved, err := suite.repository.GetByKey(ctx, customerID, restaurantID, favorite.KindRestaurant, nil)
	suite.Require().NoError(err)
	suite.Equal(favorite.StateInactive, retrieved.State())
	suite.False(retrieved.IsActive())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *FavoriteRepositoryIntegrationTestSuite) TestGetByKey_NoMatch_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByKey(
		ctx, kernel.NewUUID(), kernel.NewUUID(), favorite.KindRestaurant, nil)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *FavoriteRepositoryIntegrationTestSuite) TestUpdate_ReactivatedFavorite_PersistsRefreshedSnapshot() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()
	dishFavorite := suite.createDishFavorite(customerID, restaurantID, menuItemID)
	suite.Require().NoError(dishFavorite.Deactivate())

	suite.tracker.On("TrackAggregate", dishFavorite.ID(), dishFavorite).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, dishFavorite))

	// Reactivation refreshes the denormalized dish detail
	refreshed := favorite.DishSnapshot{Name: "Chicken Momo (Jumbo)", Price: suite.money(950)}
	suite.Require().NoError(dishFavorite.Reactivate(refreshed))
	suite.Require().NoError(suite.repository.Update(ctx, dishFavorite))

	retrieved, err := suite.repository.GetByKey(ctx, customerID, restaurantID, favorite.KindDish, &menuItemID)
	suite.Require().NoError(err)
	suite.True(retrieved.IsActive())
	suite.Equal("Chicken Momo (Jumbo)", retrieved.Dish().Name)
	suite.Equal(int64(950), retrieved.Dish().Price.Cents())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *FavoriteRepositoryIntegrationTestSuite) TestUpdate_NonExistentFavorite_ReturnsError() {
	ctx := context.Background()

	missingFavorite := suite.createRestaurantFavorite(kernel.NewUUID(), kernel.NewUUID())

	err := suite.repository.Update(ctx, missingFavorite)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *FavoriteRepositoryIntegrationTestSuite) TestDeactivateAllByCustomer_ClearsOnlyThatCustomer() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	otherCustomerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()

	ownRestaurant := suite.createRestaurantFavorite(customerID, restaurantID)
	ownDish := suite.createDishFavorite(customerID, restaurantID, menuItemID)
	foreign := suite.createRestaurantFavorite(otherCustomerID, restaurantID)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, ownRestaurant))
	suite.Require().NoError(suite.repository.Add(ctx, ownDish))
	suite.Require().NoError(suite.repository.Add(ctx, foreign))

	suite.Require().NoError(suite.repository.DeactivateAllByCustomer(ctx, customerID))

	// Both of the customer's favorites flip to inactive
	retrieved, err := suite.repository.GetByKey(ctx, customerID, restaurantID, favorite.KindRestaurant, nil)
	suite.Require().NoError(err)
	suite.False(retrieved.IsActive())

	retrieved, err = suite.repository.GetByKey(ctx, customerID, restaurantID, favorite.KindDish, &menuItemID)
	suite.Require().NoError(err)
	suite.False(retrieved.IsActive())

	// The other customer's favorite is untouched
	retrieved, err = suite.repository.GetByKey(ctx, otherCustomerID, restaurantID, favorite.KindRestaurant, nil)
	suite.Require().NoError(err)
	suite.True(retrieved.IsActive())

	suite.tracker.AssertExpectations(suite.T())
}

// createRestaurantFavorite builds an active restaurant favorite.
func (suite *FavoriteRepositoryIntegrationTestSuite) createRestaurantFavorite(
	customerID kernel.UUID, restaurantID kernel.UUID,
) *favorite.Favorite {
	restaurantFavorite, err := favorite.NewFavorite(
		kernel.NewUUID(), customerID, restaurantID,
		favorite.KindRestaurant, nil, favorite.DishSnapshot{})
	suite.Require().NoError(err)
	return restaurantFavorite
}

// createDishFavorite builds an active dish favorite with a snapshot.
func (suite *FavoriteRepositoryIntegrationTestSuite) createDishFavorite(
	customerID kernel.UUID, restaurantID kernel.UUID, menuItemID kernel.UUID,
) *favorite.Favorite {
	dishFavorite, err := favorite.NewFavorite(
		kernel.NewUUID(), customerID, restaurantID,
		favorite.KindDish, &menuItemID,
		favorite.DishSnapshot{
			Name:     "Chicken Momo",
			Price:    suite.money(850),
			ImageURL: "https://cdn.foodsewa.test/momo.jpg",
		})
	suite.Require().NoError(err)
	return dishFavorite
}

func (suite *FavoriteRepositoryIntegrationTestSuite) money(cents int64) kernel.Money {
	amount, err := kernel.NewMoneyFromCents(cents)
	suite.Require().NoError(err)
	return amount
}

// assertFavoriteCount verifies the number of favorites in the database.
func (suite *FavoriteRepositoryIntegrationTestSuite) assertFavoriteCount(expected int) {
	var count int64
	err := suite.db.Model(&favoriterepo.FavoriteDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestFavoriteRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(FavoriteRepositoryIntegrationTestSuite))
}
