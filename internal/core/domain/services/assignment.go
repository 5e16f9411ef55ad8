package services

import (
	"errors"

	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/shipment"
	"courierdesk/internal/pkg/errs"
)

// ErrNoCourierCandidates is returned by Dispatch when no assignable courier
// is available among the candidates.
var ErrNoCourierCandidates = errors.New("no assignable courier candidates")

// CourierAssignmentService is a domain service that matches shipments to
// couriers.
//
// Business rules:
//   - an offline courier can never be assigned (fails with
//     *errs.CourierUnavailableError, leaving the shipment untouched)
//   - assignment records only a weak reference on the shipment; the courier
//     aggregate is not modified, and workload is derived later by a reverse
//     lookup over shipments rather than a maintained inverse collection
//   - automatic dispatch picks the assignable candidate with the lightest
//     current workload, breaking ties by candidate order
type CourierAssignmentService struct{}

// NewCourierAssignmentService creates a CourierAssignmentService.
func NewCourierAssignmentService() CourierAssignmentService {
	return CourierAssignmentService{}
}

// Assign attaches the courier to the shipment.
// Fails with *errs.CourierUnavailableError if the courier is offline; in that
// case the shipment's courier reference is left unset.
func (s CourierAssignmentService) Assign(shp *shipment.Shipment, c *courier.Courier) error {
	if err := shp.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if !c.IsAssignable() {
		return errs.NewCourierUnavailableError(c.ID().String(), c.Status().String())
	}

	return shp.Assign(c.ID())
}

// Dispatch selects the best courier for the shipment from candidates and
// assigns it. workload maps courier ID strings to their current number of
// active shipments, as derived by the listing query's reverse lookup.
//
// Returns ErrNoCourierCandidates when no candidate is assignable.
func (s CourierAssignmentService) Dispatch(
	shp *shipment.Shipment,
	candidates []*courier.Courier,
	workload map[string]int,
) (*courier.Courier, error) {
	if err := shp.Validate(); err != nil {
		return nil, err
	}

	var best *courier.Courier
	bestLoad := 0
	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
		if !candidate.IsAssignable() {
			continue
		}

		load := workload[candidate.ID().String()]
		if best == nil || load < bestLoad {
			best = candidate
			bestLoad = load
		}
	}

	if best == nil {
		return nil, ErrNoCourierCandidates
	}

	if err := s.Assign(shp, best); err != nil {
		return nil, err
	}

	return best, nil
}
