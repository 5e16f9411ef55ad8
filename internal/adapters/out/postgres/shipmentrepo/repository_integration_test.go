package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"courierdesk/internal/adapters/out/postgres/shipmentrepo"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/shipment"
	"courierdesk/internal/pkg/errs"

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

// ShipmentRepositoryIntegrationTestSuite provides integration tests for
// GormShipmentRepository using PostgreSQL containers to verify persistence
// behavior, timeline ordering and the optimistic version check.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
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
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.TrackingEventDTO{},
	))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tracking_events, shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()

	shp := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", shp.ID(), shp).Once()

	err := suite.repository.Add(ctx, shp)
	suite.Require().NoError(err)

	suite.assertShipmentCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_ExistingShipment_RoundTrips() {
	ctx := context.Background()

	original := suite.createTestShipment()
	suite.advanceToInTransit(original)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.TrackingCode(), retrieved.TrackingCode())
	suite.Equal(original.ClientID(), retrieved.ClientID())
	suite.Equal(original.Status(), retrieved.Status())
	suite.Equal(original.Weight(), retrieved.Weight())
	suite.Equal(original.Sender().Name(), retrieved.Sender().Name())
	suite.Equal(original.Recipient().Address(), retrieved.Recipient().Address())
	suite.True(original.DeclaredValue().IsEqual(retrieved.DeclaredValue()))
	suite.Equal(original.Version(), retrieved.Version())
	suite.Require().NotNil(retrieved.Courier())
	suite.True(retrieved.Courier().IsEqual(*original.Courier()))

	// timeline comes back in append order
	suite.Require().Len(retrieved.Timeline(), len(original.Timeline()))
	for i, event := range original.Timeline() {
		suite.Equal(event.Status(), retrieved.Timeline()[i].Status())
		suite.Equal(event.Location(), retrieved.Timeline()[i].Location())
		suite.True(event.Timestamp().Equal(retrieved.Timeline()[i].Timestamp()))
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByTrackingCode() {
	ctx := context.Background()

	original := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByTrackingCode(ctx, original.TrackingCode())
	suite.Require().NoError(err)
	suite.Equal(original.ID(), retrieved.ID())

	_, err = suite.repository.GetByTrackingCode(ctx, "CD-DOESNOTEXIST")
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_PersistsChangesAndBumpsVersion() {
	ctx := context.Background()

	shp := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", shp.ID(), shp).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, shp))

	storedVersion := shp.Version()
	suite.advanceToInTransit(shp)
	suite.Require().NoError(suite.repository.Update(ctx, shp))
	suite.Equal(storedVersion+1, shp.Version())

	retrieved, err := suite.repository.Get(ctx, shp.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.InTransit, retrieved.Status())
	suite.Equal(shp.Version(), retrieved.Version())
	suite.Len(retrieved.Timeline(), 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsStaleWriteError() {
	ctx := context.Background()

	shp := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", shp.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, shp))

	// two writers load the same stored version
	winner, err := suite.repository.Get(ctx, shp.ID())
	suite.Require().NoError(err)
	loser, err := suite.repository.Get(ctx, shp.ID())
	suite.Require().NoError(err)

	suite.advanceToInTransit(winner)
	suite.Require().NoError(suite.repository.Update(ctx, winner))

	suite.advanceToInTransit(loser)
	err = suite.repository.Update(ctx, loser)
	suite.Require().Error(err)

	var staleErr *errs.StaleWriteError
	suite.Require().ErrorAs(err, &staleErr)

	// the winner's write survives
	retrieved, err := suite.repository.Get(ctx, shp.ID())
	suite.Require().NoError(err)
	suite.Equal(winner.Version(), retrieved.Version())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestShipment())

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetAllInPendingStatus() {
	ctx := context.Background()

	pending := suite.createTestShipment()
	moving := suite.createTestShipment()
	suite.advanceToInTransit(moving)

	suite.tracker.On("TrackAggregate", pending.ID(), pending).Once()
	suite.tracker.On("TrackAggregate", moving.ID(), moving).Once()
	suite.Require().NoError(suite.repository.Add(ctx, pending))
	suite.Require().NoError(suite.repository.Add(ctx, moving))

	shipments, err := suite.repository.GetAllInPendingStatus(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(shipments, 1)
	suite.Equal(pending.ID(), shipments[0].ID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetAllAssignedTo_ExcludesTerminalShipments() {
	ctx := context.Background()
	courierID := kernel.NewUUID()

	active := suite.createTestShipment()
	suite.advanceTo(active, courierID, shipment.InTransit)

	done := suite.createTestShipment()
	suite.advanceTo(done, courierID, shipment.Delivered)

	unassigned := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, active))
	suite.Require().NoError(suite.repository.Add(ctx, done))
	suite.Require().NoError(suite.repository.Add(ctx, unassigned))

	shipments, err := suite.repository.GetAllAssignedTo(ctx, courierID)
	suite.Require().NoError(err)

	suite.Require().Len(shipments, 1)
	suite.Equal(active.ID(), shipments[0].ID())
}

// createTestShipment creates a pending shipment with default values.
func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment() *shipment.Shipment {
	sender, err := kernel.NewContact("Ada Sender", "+15550001", "12 Origin Way")
	suite.Require().NoError(err)
	recipient, err := kernel.NewContact("Bob Recipient", "+15550002", "77 Target Ave")
	suite.Require().NoError(err)
	dims, err := kernel.NewDimensions(30, 20, 10)
	suite.Require().NoError(err)
	declared, err := kernel.NewMoneyFromString("120.00")
	suite.Require().NoError(err)

	id := kernel.NewUUID()
	shp, err := shipment.NewShipment(
		id,
		shipment.NewTrackingCode(id),
		kernel.NewUUID(),
		sender,
		recipient,
		2.5,
		dims,
		declared,
		shipment.Standard,
		shipment.Normal,
		time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return shp
}

// advanceToInTransit assigns a courier and walks the shipment into transit.
func (suite *ShipmentRepositoryIntegrationTestSuite) advanceToInTransit(shp *shipment.Shipment) {
	suite.advanceTo(shp, kernel.NewUUID(), shipment.InTransit)
}

// advanceTo assigns the courier and applies hourly transitions until the
// shipment reaches the target status.
func (suite *ShipmentRepositoryIntegrationTestSuite) advanceTo(
	shp *shipment.Shipment, courierID kernel.UUID, target shipment.Status,
) {
	suite.Require().NoError(shp.Assign(courierID))

	path := []shipment.Status{
		shipment.PickedUp,
		shipment.InTransit,
		shipment.OutForDelivery,
		shipment.Delivered,
	}
	at := shp.CreatedAt()
	for _, status := range path {
		at = at.Add(time.Hour)
		event, err := shipment.NewTrackingEvent(status, "Central Hub", "moved", at, "Grace Rider")
		suite.Require().NoError(err)
		suite.Require().NoError(shp.TransitionTo(status, event))
		if status == target {
			return
		}
	}
}

// assertShipmentCount verifies the number of shipments in the database.
func (suite *ShipmentRepositoryIntegrationTestSuite) assertShipmentCount(expected int) {
	var count int64
	err := suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
