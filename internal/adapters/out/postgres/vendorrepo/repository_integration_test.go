package vendorrepo_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/vendorrepo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/vendor"
	"shipping/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// VendorRepositoryIntegrationTestSuite verifies vendor and rate card
// persistence against a real PostgreSQL container. Rate tiers must survive a
// round trip in partition order, including the open-ended top tier.
type VendorRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *vendorrepo.GormVendorRepository
	tracker    *MockAggregateTracker
}

func (suite *VendorRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&vendorrepo.VendorDTO{}, &vendorrepo.RateTierDTO{}))
}

func (suite *VendorRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE vendors, shipping_rates").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = vendorrepo.NewGormVendorRepository(suite.db, suite.tracker)
}

func (suite *VendorRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *VendorRepositoryIntegrationTestSuite) TestAddAndGet_RateCardRoundTrips() {
	ctx := context.Background()
	testVendor := suite.createVendor("Hermes Logistics", vendor.Express)

	suite.Require().NoError(suite.repository.Add(ctx, testVendor))

	loaded, err := suite.repository.Get(ctx, testVendor.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(testVendor.ID()))
	suite.Equal("Hermes Logistics", loaded.Name())
	suite.Equal(vendor.Express, loaded.ServiceType())

	tiers := loaded.Tiers()
	suite.Require().Len(tiers, 3)
	suite.InDelta(0.0, tiers[0].WeightFrom(), 1e-9)
	suite.InDelta(5.0, tiers[0].WeightTo(), 1e-9)
	suite.InDelta(5.0, tiers[1].WeightFrom(), 1e-9)
	suite.InDelta(20.0, tiers[1].WeightTo(), 1e-9)
	suite.True(tiers[2].IsOpenEnded(), "top tier stays open-ended")
	suite.InDelta(20.0, tiers[2].WeightFrom(), 1e-9)
	suite.InDelta(25.0, tiers[2].BasePrice(), 1e-9)
}

func (suite *VendorRepositoryIntegrationTestSuite) TestGet_NonExistentVendor_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *VendorRepositoryIntegrationTestSuite) TestGetAll_SortsByName() {
	ctx := context.Background()
	zephyr := suite.createVendor("Zephyr Freight", vendor.Standard)
	atlas := suite.createVendor("Atlas Couriers", vendor.SameDay)
	suite.Require().NoError(suite.repository.Add(ctx, zephyr))
	suite.Require().NoError(suite.repository.Add(ctx, atlas))

	vendors, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(vendors, 2)
	suite.Equal("Atlas Couriers", vendors[0].Name())
	suite.Equal("Zephyr Freight", vendors[1].Name())
	suite.Len(vendors[0].Tiers(), 3, "tiers are preloaded with the vendor")
}

func (suite *VendorRepositoryIntegrationTestSuite) TestAdd_UnconstructedVendor_Rejected() {
	err := suite.repository.Add(context.Background(), &vendor.Vendor{})

	suite.Require().ErrorIs(err, vendor.ErrVendorIsNotConstructed)
}

func (suite *VendorRepositoryIntegrationTestSuite) createVendor(
	name string,
	serviceType vendor.ServiceType,
) *vendor.Vendor {
	low, err := vendor.NewRateTier(0, 5, 8, 1.5)
	suite.Require().NoError(err)
	mid, err := vendor.NewRateTier(5, 20, 14, 2.5)
	suite.Require().NoError(err)
	top, err := vendor.NewOpenEndedRateTier(20, 25, 4)
	suite.Require().NoError(err)

	testVendor, err := vendor.NewVendor(
		kernel.NewUUID(), name, serviceType, []vendor.RateTier{low, mid, top})
	suite.Require().NoError(err)
	return testVendor
}

func TestVendorRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(VendorRepositoryIntegrationTestSuite))
}
