// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence. Implements the repository pattern for the courier
// aggregate, converting between domain entities and database rows.
package courierrepo

import (
	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CourierDTO represents the database structure for persisting courier
// aggregates. Indexed by status for assignable-courier lookups.
type CourierDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Phone           string
	Address         string
	Status          int `gorm:"index"`
	Vehicle         string
	TotalDeliveries int
	Rating          float64
	MonthlyEarnings decimal.Decimal `gorm:"type:decimal(20,8)"`
	Version         int
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier aggregate to its database representation.
func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:              c.ID().Bytes(),
		Name:            c.Contact().Name(),
		Phone:           c.Contact().Phone(),
		Address:         c.Contact().Address(),
		Status:          int(c.Status()),
		Vehicle:         c.Vehicle(),
		TotalDeliveries: c.TotalDeliveries(),
		Rating:          c.Rating(),
		MonthlyEarnings: c.MonthlyEarnings().Decimal(),
		Version:         c.Version(),
	}
}

// toDomain converts a database DTO to a courier aggregate using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	contact, err := kernel.NewContact(dto.Name, dto.Phone, dto.Address)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id,
		contact,
		courier.Status(dto.Status),
		dto.Vehicle,
		dto.TotalDeliveries,
		dto.Rating,
		kernel.RestoreMoney(dto.MonthlyEarnings),
		dto.Version,
	)
}
