// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. Implements the repository pattern for the
// shipment aggregate, converting between domain entities and database rows.
// The tracking timeline is stored in a child table ordered by sequence.
package shipmentrepo

import (
	"time"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Indexed for lookups by tracking code, status and courier
// assignment.
type ShipmentDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingCode     string     `gorm:"uniqueIndex"`
	ClientID         uuid.UUID  `gorm:"type:uuid;index"`
	CourierID        *uuid.UUID `gorm:"type:uuid;index"`
	Sender           ContactDTO `gorm:"embedded;embeddedPrefix:sender_"`
	Recipient        ContactDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	Weight           float64
	Length           float64
	Width            float64
	Height           float64
	DeclaredValue    decimal.Decimal `gorm:"type:decimal(20,8)"`
	ServiceTier      int
	Priority         int
	Status           int `gorm:"index"`
	CurrentLocation  string
	DeliveryAttempts int
	CreatedAt        time.Time
	UpdatedAt        time.Time
	EstimatedAt      *time.Time
	DeliveredAt      *time.Time
	Version          int
	Events           []TrackingEventDTO `gorm:"foreignKey:ShipmentID;references:ID"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ContactDTO represents an embedded contact block within the shipment table.
type ContactDTO struct {
	Name    string
	Phone   string
	Address string
}

// TrackingEventDTO represents one timeline entry in the tracking_events child
// table. Sequence preserves append order within a shipment.
type TrackingEventDTO struct {
	ShipmentID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence    int       `gorm:"primaryKey"`
	Status      int
	Location    string
	Description string
	CourierName string
	Timestamp   time.Time
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(shp *shipment.Shipment) ShipmentDTO {
	var courierID *uuid.UUID
	if id := shp.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	timeline := shp.Timeline()
	events := make([]TrackingEventDTO, 0, len(timeline))
	for i, event := range timeline {
		events = append(events, TrackingEventDTO{
			ShipmentID:  shp.ID().Bytes(),
			Sequence:    i,
			Status:      int(event.Status()),
			Location:    event.Location(),
			Description: event.Description(),
			CourierName: event.CourierName(),
			Timestamp:   event.Timestamp(),
		})
	}

	return ShipmentDTO{
		ID:           shp.ID().Bytes(),
		TrackingCode: shp.TrackingCode(),
		ClientID:     shp.ClientID().Bytes(),
		CourierID:    courierID,
		Sender: ContactDTO{
			Name:    shp.Sender().Name(),
			Phone:   shp.Sender().Phone(),
			Address: shp.Sender().Address(),
		},
		Recipient: ContactDTO{
			Name:    shp.Recipient().Name(),
			Phone:   shp.Recipient().Phone(),
			Address: shp.Recipient().Address(),
		},
		Weight:           shp.Weight(),
		Length:           shp.Dimensions().Length(),
		Width:            shp.Dimensions().Width(),
		Height:           shp.Dimensions().Height(),
		DeclaredValue:    shp.DeclaredValue().Decimal(),
		ServiceTier:      int(shp.ServiceTier()),
		Priority:         int(shp.Priority()),
		Status:           int(shp.Status()),
		CurrentLocation:  shp.CurrentLocation(),
		DeliveryAttempts: shp.DeliveryAttempts(),
		CreatedAt:        shp.CreatedAt(),
		UpdatedAt:        shp.UpdatedAt(),
		EstimatedAt:      shp.EstimatedDelivery(),
		DeliveredAt:      shp.ActualDelivery(),
		Version:          shp.Version(),
		Events:           events,
	}
}

// toDomain converts a database DTO to a shipment aggregate.
// Reconstructs the complete aggregate including the timeline using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	sender, err := kernel.NewContact(dto.Sender.Name, dto.Sender.Phone, dto.Sender.Address)
	if err != nil {
		return nil, err
	}

	recipient, err := kernel.NewContact(dto.Recipient.Name, dto.Recipient.Phone, dto.Recipient.Address)
	if err != nil {
		return nil, err
	}

	dims, err := kernel.NewDimensions(dto.Length, dto.Width, dto.Height)
	if err != nil {
		return nil, err
	}

	events := make([]shipment.TrackingEvent, 0, len(dto.Events))
	for _, eventDTO := range dto.Events {
		event, eventErr := shipment.NewTrackingEvent(
			shipment.Status(eventDTO.Status),
			eventDTO.Location,
			eventDTO.Description,
			eventDTO.Timestamp,
			eventDTO.CourierName,
		)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	return shipment.RestoreShipment(
		id,
		dto.TrackingCode,
		clientID,
		sender,
		recipient,
		dto.Weight,
		dims,
		kernel.RestoreMoney(dto.DeclaredValue),
		shipment.ServiceTier(dto.ServiceTier),
		shipment.Priority(dto.Priority),
		shipment.Status(dto.Status),
		courierID,
		dto.CurrentLocation,
		dto.DeliveryAttempts,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.EstimatedAt,
		dto.DeliveredAt,
		events,
		dto.Version,
	)
}
