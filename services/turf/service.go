package turf

import (
	"context"
	"errors"
	"fmt"

	"turfbook/models"
	"turfbook/utils"

	"go.uber.org/zap"
)

// ErrTurfNotFound is returned for lookups and updates on unknown turfs.
var ErrTurfNotFound = errors.New("turf not found")

// ErrNotOwner is returned when an update is attempted by a party that
// does not own the turf.
var ErrNotOwner = errors.New("turf does not belong to this owner")

func (s *DefaultTurfService) Register(ctx context.Context, ownerID string, req models.RegisterTurfRequest) (*models.Turf, error) {
	created, err := s.Repo.Create(ctx, &models.Turf{
		OwnerID:         ownerID,
		Name:            req.Name,
		Location:        req.Location,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		Pincode:         req.Pincode,
		Sports:          req.Sports,
		Amenities:       req.Amenities,
		PricePerHour:    req.PricePerHour,
		MinBookingPrice: req.MinBookingPrice,
		Description:     req.Description,
		Images:          req.Images,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register turf: %w", err)
	}

	utils.GetLogger().Info("turf registered",
		zap.String("turfID", created.ID), zap.String("ownerID", ownerID))
	return created, nil
}

func (s *DefaultTurfService) Update(ctx context.Context, turfID, ownerID string, req models.UpdateTurfRequest) (*models.Turf, error) {
	existing, err := s.Repo.GetByID(ctx, turfID)
	if err != nil {
		return nil, fmt.Errorf("failed to load turf %s: %w", turfID, err)
	}
	if existing == nil {
		return nil, ErrTurfNotFound
	}
	if existing.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	applyUpdates(existing, req)

	if err := s.Repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update turf %s: %w", turfID, err)
	}
	return existing, nil
}

func applyUpdates(t *models.Turf, req models.UpdateTurfRequest) {
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Location != nil {
		t.Location = *req.Location
	}
	if req.Address != nil {
		t.Address = *req.Address
	}
	if req.City != nil {
		t.City = *req.City
	}
	if req.State != nil {
		t.State = *req.State
	}
	if req.Pincode != nil {
		t.Pincode = *req.Pincode
	}
	if req.Sports != nil {
		t.Sports = *req.Sports
	}
	if req.Amenities != nil {
		t.Amenities = *req.Amenities
	}
	if req.PricePerHour != nil {
		t.PricePerHour = *req.PricePerHour
	}
	if req.MinBookingPrice != nil {
		t.MinBookingPrice = *req.MinBookingPrice
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Images != nil {
		t.Images = *req.Images
	}
}

func (s *DefaultTurfService) GetByID(ctx context.Context, turfID string) (*models.Turf, error) {
	rec, err := s.Repo.GetByID(ctx, turfID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrTurfNotFound
	}
	return rec, nil
}

func (s *DefaultTurfService) GetByOwner(ctx context.Context, ownerID string) ([]models.Turf, error) {
	return s.Repo.GetByOwner(ctx, ownerID)
}

func (s *DefaultTurfService) GetAll(ctx context.Context) ([]models.Turf, error) {
	return s.Repo.GetAll(ctx)
}
