package invoicerepo

import (
	"context"
	"errors"
	"time"

	"courierdesk/internal/core/domain/model/invoice"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new invoice and its lines to the database.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
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

// Update saves an existing invoice using a compare-and-swap on the version
// column. A version mismatch yields errs.StaleWriteError. Line child rows are
// rewritten as a whole.
func (r *GormInvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := dto.Version
	dto.Version = expected + 1

	result := r.db.WithContext(ctx).
		Model(&InvoiceDTO{}).
		Omit(clause.Associations).
		Where("id = ? AND version = ?", dto.ID, expected).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var current InvoiceDTO
		err := r.db.WithContext(ctx).Select("version").First(&current, "id = ?", dto.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("invoice", aggregate.ID().String())
		}
		if err != nil {
			return err
		}
		return errs.NewStaleWriteError("invoice", expected, current.Version)
	}

	if err := r.db.WithContext(ctx).
		Where("invoice_id = ?", dto.ID).
		Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Lines) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Lines).Error; err != nil {
			return err
		}
	}

	aggregate.BumpVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an invoice by ID, lines included.
func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every invoice sorted by issue time.
func (r *GormInvoiceRepository) GetAll(ctx context.Context) ([]*invoice.Invoice, error) {
	return r.findAll(ctx, r.db.WithContext(ctx).Order("issued_at"))
}

// GetAllByClient retrieves all invoices billed to the client.
func (r *GormInvoiceRepository) GetAllByClient(ctx context.Context, clientID kernel.UUID) ([]*invoice.Invoice, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, r.db.WithContext(ctx).
		Where("client_id = ?", clientID.Bytes()).
		Order("issued_at"))
}

// GetAllSentPastDue retrieves sent invoices whose payment deadline has
// passed, the candidates for the overdue sweep.
func (r *GormInvoiceRepository) GetAllSentPastDue(ctx context.Context, now time.Time) ([]*invoice.Invoice, error) {
	return r.findAll(ctx, r.db.WithContext(ctx).
		Where("status = ? AND due_at < ?", invoice.Sent, now).
		Order("due_at"))
}

func (r *GormInvoiceRepository) findAll(ctx context.Context, scope *gorm.DB) ([]*invoice.Invoice, error) {
	var dtos []InvoiceDTO
	err := scope.
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	invoices := make([]*invoice.Invoice, 0, len(dtos))
	for _, dto := range dtos {
		inv, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}
