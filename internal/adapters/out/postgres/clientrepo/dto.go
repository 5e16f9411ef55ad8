// Package clientrepo provides data transfer objects and mapping functions
// for client persistence. Activity counters are never stored here; they are
// derived at read time from shipments and invoices.
package clientrepo

import (
	"courierdesk/internal/core/domain/model/client"
	"courierdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO represents the database structure for persisting client
// aggregates.
type ClientDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Phone   string
	Address string
	Status  int `gorm:"index"`
	Version int
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

// fromDomain converts a client aggregate to its database representation.
func fromDomain(c *client.Client) ClientDTO {
	return ClientDTO{
		ID:      c.ID().Bytes(),
		Name:    c.Contact().Name(),
		Phone:   c.Contact().Phone(),
		Address: c.Contact().Address(),
		Status:  int(c.Status()),
		Version: c.Version(),
	}
}

// toDomain converts a database DTO to a client aggregate using RestoreClient.
func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	contact, err := kernel.NewContact(dto.Name, dto.Phone, dto.Address)
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, contact, client.Status(dto.Status), dto.Version)
}
