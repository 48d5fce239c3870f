package location

import (
	"context"
	"fmt"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/location"
)

type LocationServiceImpl struct {
	location.LocationRepository
}

func NewLocationService(locationRepo location.LocationRepository) location.LocationService {
	return &LocationServiceImpl{LocationRepository: locationRepo}
}

func toResponse(loc location.Location) location.LocationResponse {
	return location.LocationResponse{
		ID:           loc.ID,
		Code:         loc.Code,
		Name:         loc.Name,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		RadiusMeters: loc.RadiusMeters,
		IsOffice:     loc.Office(),
		MorningStart: loc.MorningShift.Start,
		MorningEnd:   loc.MorningShift.End,
		NightStart:   loc.NightShift.Start,
		NightEnd:     loc.NightShift.End,
		Active:       loc.Active,
	}
}

// Create implements location.LocationService.
func (s *LocationServiceImpl) Create(ctx context.Context, req location.CreateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	loc := location.Location{
		Code:         req.Code,
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
		IsOffice:     req.IsOffice,
		MorningShift: location.ShiftWindow{Start: req.MorningStart, End: req.MorningEnd},
		NightShift:   location.ShiftWindow{Start: req.NightStart, End: req.NightEnd},
		Active:       true,
	}

	created, err := s.LocationRepository.Create(ctx, loc)
	if err != nil {
		return location.LocationResponse{}, err
	}
	return toResponse(created), nil
}

// Get implements location.LocationService.
func (s *LocationServiceImpl) Get(ctx context.Context, id string) (location.LocationResponse, error) {
	loc, err := s.LocationRepository.GetByID(ctx, id)
	if err != nil {
		return location.LocationResponse{}, err
	}
	return toResponse(loc), nil
}

// Update implements location.LocationService.
func (s *LocationServiceImpl) Update(ctx context.Context, req location.UpdateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	loc, err := s.LocationRepository.GetByID(ctx, req.ID)
	if err != nil {
		return location.LocationResponse{}, err
	}

	if req.Name != nil {
		loc.Name = *req.Name
	}
	if req.Latitude != nil {
		loc.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		loc.Longitude = *req.Longitude
	}
	if req.RadiusMeters != nil {
		loc.RadiusMeters = *req.RadiusMeters
	}
	if req.IsOffice != nil {
		loc.IsOffice = *req.IsOffice
	}
	if req.MorningStart != nil {
		loc.MorningShift.Start = *req.MorningStart
	}
	if req.MorningEnd != nil {
		loc.MorningShift.End = *req.MorningEnd
	}
	if req.NightStart != nil {
		loc.NightShift.Start = *req.NightStart
	}
	if req.NightEnd != nil {
		loc.NightShift.End = *req.NightEnd
	}
	if req.Active != nil {
		loc.Active = *req.Active
	}

	if err := s.LocationRepository.Update(ctx, loc); err != nil {
		return location.LocationResponse{}, fmt.Errorf("failed to update location: %w", err)
	}

	updated, err := s.LocationRepository.GetByID(ctx, loc.ID)
	if err != nil {
		return location.LocationResponse{}, fmt.Errorf("failed to reload location: %w", err)
	}
	return toResponse(updated), nil
}

// List implements location.LocationService.
func (s *LocationServiceImpl) List(ctx context.Context, activeOnly bool) ([]location.LocationResponse, error) {
	locations, err := s.LocationRepository.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	out := make([]location.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		out = append(out, toResponse(loc))
	}
	return out, nil
}
