package shipmentrepo

import (
	"context"
	"errors"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/shipment"
	"courierdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment and its timeline to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment using a compare-and-swap on the version
// column. A version mismatch means another writer got there first and yields
// errs.StaleWriteError; on success the in-memory version is advanced to match
// the stored row. The timeline child rows are rewritten as a whole.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := dto.Version
	dto.Version = expected + 1

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Omit(clause.Associations).
		Where("id = ? AND version = ?", dto.ID, expected).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var current ShipmentDTO
		err := r.db.WithContext(ctx).Select("version").First(&current, "id = ?", dto.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("shipment", aggregate.ID().String())
		}
		if err != nil {
			return err
		}
		return errs.NewStaleWriteError("shipment", expected, current.Version)
	}

	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", dto.ID).
		Delete(&TrackingEventDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Events) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Events).Error; err != nil {
			return err
		}
	}

	aggregate.BumpVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID, timeline included.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.getByCondition(ctx, "id = ?", id.Bytes(), id.String())
}

// GetByTrackingCode retrieves a shipment by its public tracking code.
func (r *GormShipmentRepository) GetByTrackingCode(ctx context.Context, trackingCode string) (*shipment.Shipment, error) {
	if trackingCode == "" {
		return nil, errs.NewValueIsRequiredError("trackingCode")
	}

	return r.getByCondition(ctx, "tracking_code = ?", trackingCode, trackingCode)
}

// GetAll retrieves every shipment sorted by creation time.
func (r *GormShipmentRepository) GetAll(ctx context.Context) ([]*shipment.Shipment, error) {
	return r.findAll(ctx, r.db.WithContext(ctx).Order("created_at"))
}

// GetAllInPendingStatus retrieves all shipments awaiting assignment.
func (r *GormShipmentRepository) GetAllInPendingStatus(ctx context.Context) ([]*shipment.Shipment, error) {
	return r.findAll(ctx, r.db.WithContext(ctx).
		Where("status = ?", shipment.Pending).
		Order("created_at"))
}

// GetAllAssignedTo retrieves the courier's active shipments: assigned to the
// courier and not yet in a terminal status.
func (r *GormShipmentRepository) GetAllAssignedTo(ctx context.Context, courierID kernel.UUID) ([]*shipment.Shipment, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, r.db.WithContext(ctx).
		Where("courier_id = ? AND status NOT IN ?", courierID.Bytes(), []int{
			int(shipment.Delivered), int(shipment.Returned), int(shipment.Cancelled),
		}).
		Order("created_at"))
}

func (r *GormShipmentRepository) getByCondition(
	ctx context.Context,
	condition string,
	value any,
	lookupKey string,
) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Preload("Events", func(db *gorm.DB) *gorm.DB { return db.Order("sequence") }).
		First(&dto, condition, value).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", lookupKey)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormShipmentRepository) findAll(ctx context.Context, scope *gorm.DB) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	err := scope.
		Preload("Events", func(db *gorm.DB) *gorm.DB { return db.Order("sequence") }).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		shp, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		shipments = append(shipments, shp)
	}

	return shipments, nil
}
