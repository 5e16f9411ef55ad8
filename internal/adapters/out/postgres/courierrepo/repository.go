package courierrepo

import (
	"context"
	"errors"

	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
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

// Update saves an existing courier using a compare-and-swap on the version
// column. A version mismatch yields errs.StaleWriteError; on success the
// in-memory version is advanced to match the stored row.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := dto.Version
	dto.Version = expected + 1

	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ? AND version = ?", dto.ID, expected).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var current CourierDTO
		err := r.db.WithContext(ctx).Select("version").First(&current, "id = ?", dto.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("courier", aggregate.ID().String())
		}
		if err != nil {
			return err
		}
		return errs.NewStaleWriteError("courier", expected, current.Version)
	}

	aggregate.BumpVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every courier sorted by name.
func (r *GormCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	return r.findAll(ctx, r.db.WithContext(ctx).Order("name"))
}

// GetAllAssignable retrieves couriers eligible for new assignments:
// available or busy, never offline.
func (r *GormCourierRepository) GetAllAssignable(ctx context.Context) ([]*courier.Courier, error) {
	return r.findAll(ctx, r.db.WithContext(ctx).
		Where("status IN ?", []int{int(courier.Available), int(courier.Busy)}).
		Order("name"))
}

func (r *GormCourierRepository) findAll(ctx context.Context, scope *gorm.DB) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := scope.Find(&dtos).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}
