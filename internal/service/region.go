package service

import (
	"fmt"

	"deployment-tracker-backend/internal/repository"
)

// RegionService handles business logic for regions. Regions have no public
// create or update surface; rows come from seeding.
type RegionService struct {
	repo repository.RegionRepositoryInterface
}

// NewRegionService creates a new region service
func NewRegionService(repo repository.RegionRepositoryInterface) *RegionService {
	return &RegionService{repo: repo}
}

// RegionResponse represents a region row
type RegionResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// List retrieves all regions
func (s *RegionService) List() ([]RegionResponse, error) {
	regions, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve regions: %w", err)
	}

	responses := make([]RegionResponse, len(regions))
	for i, region := range regions {
		responses[i] = RegionResponse{
			ID:   region.ID,
			Name: region.Name,
		}
	}
	return responses, nil
}
