// Package invoicerepo provides data transfer objects and mapping functions
// for invoice persistence. Line items live in a child table ordered by
// position; totals are never stored, they are recomputed from lines on read.
package invoicerepo

import (
	"time"

	"courierdesk/internal/core/domain/model/invoice"
	"courierdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDTO represents the database structure for persisting invoice
// aggregates.
type InvoiceDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID uuid.UUID `gorm:"type:uuid;index"`
	Status   int       `gorm:"index"`
	IssuedAt time.Time
	DueAt    time.Time
	PaidAt   *time.Time
	Version  int
	Lines    []LineItemDTO `gorm:"foreignKey:InvoiceID;references:ID"`
}

// TableName specifies the database table name for invoice entities.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// LineItemDTO represents one billed line in the invoice_lines child table.
// Position preserves line order within an invoice.
type LineItemDTO struct {
	InvoiceID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"primaryKey"`
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:decimal(20,8)"`
}

// TableName specifies the database table name for invoice lines.
func (LineItemDTO) TableName() string {
	return "invoice_lines"
}

// fromDomain converts an invoice aggregate to its database representation.
func fromDomain(inv *invoice.Invoice) InvoiceDTO {
	domainLines := inv.Lines()
	lines := make([]LineItemDTO, 0, len(domainLines))
	for i, line := range domainLines {
		lines = append(lines, LineItemDTO{
			InvoiceID:   inv.ID().Bytes(),
			Position:    i,
			Description: line.Description(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice().Decimal(),
		})
	}

	return InvoiceDTO{
		ID:       inv.ID().Bytes(),
		ClientID: inv.ClientID().Bytes(),
		Status:   int(inv.Status()),
		IssuedAt: inv.IssuedAt(),
		DueAt:    inv.DueAt(),
		PaidAt:   inv.PaidAt(),
		Version:  inv.Version(),
		Lines:    lines,
	}
}

// toDomain converts a database DTO to an invoice aggregate using
// RestoreInvoice.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]invoice.LineItem, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := invoice.NewLineItem(
			lineDTO.Description,
			lineDTO.Quantity,
			kernel.RestoreMoney(lineDTO.UnitPrice),
		)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return invoice.RestoreInvoice(
		id,
		clientID,
		lines,
		invoice.Status(dto.Status),
		dto.IssuedAt,
		dto.DueAt,
		dto.PaidAt,
		dto.Version,
	)
}
