package shipment

import (
	"fmt"
	"strings"

	"courierdesk/internal/core/domain/model/kernel"
)

// trackingCodePrefix namespaces tracking codes so they are recognizable in
// customer-facing channels.
const trackingCodePrefix = "CD"

// NewTrackingCode derives a human-readable tracking code from the shipment ID,
// e.g. "CD-550E8400E29B". The code reuses the leading bytes of the UUID, so it
// is unique in practice while staying short enough to read over the phone.
func NewTrackingCode(id kernel.UUID) string {
	compact := strings.ReplaceAll(id.String(), "-", "")
	return fmt.Sprintf("%s-%s", trackingCodePrefix, strings.ToUpper(compact[:12]))
}
