package services

import (
	"context"

	rostergen "edgecam/gen/roster"

	"edgecam/internal/roster"
)

// RosterImplementation implements the roster service, giving an operator
// visibility into and control over the RosterCache the Detector matches
// against.
type RosterImplementation struct {
	cache *roster.Cache
}

// NewRosterService constructs the roster service.
func NewRosterService(cache *roster.Cache) rostergen.Service {
	return &RosterImplementation{cache: cache}
}

// List returns the members currently loaded into the matching matrix.
func (r *RosterImplementation) List(ctx context.Context) ([]*rostergen.MemberInfo, error) {
	matrix := r.cache.Current()
	result := make([]*rostergen.MemberInfo, 0, matrix.Len())
	for _, m := range matrix.Members {
		listingID := m.ListingID
		keyNotified := m.KeyNotified
		result = append(result, &rostergen.MemberInfo{
			MemberNo:        m.MemberNo,
			ReservationCode: m.ReservationCode,
			ListingID:       &listingID,
			FullName:        &m.FullName,
			KeyNotified:     &keyNotified,
		})
	}
	return result, nil
}

// Refresh forces an immediate roster refresh from the external member source.
func (r *RosterImplementation) Refresh(ctx context.Context) (*rostergen.RefreshResult, error) {
	rebuilt, err := r.cache.Refresh()
	if err != nil {
		return nil, &rostergen.InternalError{Message: err.Error()}
	}
	return &rostergen.RefreshResult{Rebuilt: rebuilt, Count: r.cache.Current().Len()}, nil
}
