package specialty

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mentorRepo "mentorhub/database/repository/mentor"
	specialtyRepo "mentorhub/database/repository/specialty"
	"mentorhub/models"
	"mentorhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrSpecialtyNotFound signals a specialty ID with no matching entry.
	ErrSpecialtyNotFound = errors.New("specialty not found")
	// ErrNameTaken signals a create or rename against an existing name.
	ErrNameTaken = errors.New("a specialty with this name already exists")
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	categoriesKey   = "specialties:categories"
	categoriesTTL   = 15 * time.Minute
	cacheGetTimeout = 2 * time.Second
)

// DefaultSpecialtyService is a concrete implementation of SpecialtyService.
type DefaultSpecialtyService struct {
	Specialties specialtyRepo.SpecialtyRepository
	Mentors     mentorRepo.MentorRepository
}

// List returns active specialties, optionally filtered and counted.
func (s *DefaultSpecialtyService) List(category string, includeCounts bool) ([]models.SpecialtyWithCount, error) {
	specialties, err := s.Specialties.ListActive(category)
	if err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}

	result := make([]models.SpecialtyWithCount, 0, len(specialties))
	for _, sp := range specialties {
		entry := models.SpecialtyWithCount{Specialty: sp}
		if includeCounts {
			count, err := s.Mentors.CountBySpecialty(sp.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to count mentors for specialty %s: %w", sp.ID, err)
			}
			entry.MentorCount = count
		}
		result = append(result, entry)
	}
	return result, nil
}

// Categories returns active specialties grouped by category, cache-backed.
func (s *DefaultSpecialtyService) Categories() ([]models.SpecialtyCategory, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheGetTimeout)
	defer cancel()

	cache := utils.GetCacheClient()
	if cached, err := cache.Get(ctx, categoriesKey).Result(); err == nil {
		var categories []models.SpecialtyCategory
		if err := json.Unmarshal([]byte(cached), &categories); err == nil {
			return categories, nil
		}
	}

	specialties, err := s.Specialties.ListActive("")
	if err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}

	// ListActive sorts by (category, name), so grouping preserves order.
	categories := []models.SpecialtyCategory{}
	for _, sp := range specialties {
		if len(categories) == 0 || categories[len(categories)-1].Category != sp.Category {
			categories = append(categories, models.SpecialtyCategory{
				Category:    sp.Category,
				Specialties: []models.SpecialtySummary{},
			})
		}
		last := &categories[len(categories)-1]
		last.Specialties = append(last.Specialties, sp.Summary())
		last.Count++
	}

	if payload, err := json.Marshal(categories); err == nil {
		if err := cache.Set(ctx, categoriesKey, payload, categoriesTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache specialty categories", zap.Error(err))
		}
	}
	return categories, nil
}

// Get returns one active specialty with its mentor count.
func (s *DefaultSpecialtyService) Get(id string) (*models.SpecialtyWithCount, error) {
	sp, err := s.Specialties.GetActiveByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch specialty %s: %w", id, err)
	}
	if sp == nil {
		return nil, ErrSpecialtyNotFound
	}
	count, err := s.Mentors.CountBySpecialty(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count mentors for specialty %s: %w", id, err)
	}
	return &models.SpecialtyWithCount{Specialty: *sp, MentorCount: count}, nil
}

// AdminList returns specialties for the admin view, inactive included.
func (s *DefaultSpecialtyService) AdminList(query AdminListQuery) (*AdminListing, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	criteria := specialtyRepo.AdminListCriteria{
		Search:   query.Search,
		IsActive: query.IsActive,
		Skip:     (page - 1) * limit,
		Limit:    limit,
	}
	items, err := s.Specialties.ListAll(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}
	total, err := s.Specialties.CountAll(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to count specialties: %w", err)
	}

	return &AdminListing{
		Items:      items,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

func (s *DefaultSpecialtyService) invalidateCache() {
	ctx, cancel := context.WithTimeout(context.Background(), cacheGetTimeout)
	defer cancel()
	if err := utils.GetCacheClient().Del(ctx, categoriesKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate specialty cache", zap.Error(err))
	}
}

// Create inserts a new specialty.
func (s *DefaultSpecialtyService) Create(req models.CreateSpecialtyRequest) (*models.Specialty, error) {
	existing, err := s.Specialties.GetByName(req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check specialty name: %w", err)
	}
	if existing != nil {
		return nil, ErrNameTaken
	}

	now := time.Now()
	sp := &models.Specialty{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Icon:        req.Icon,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Specialties.Create(sp); err != nil {
		return nil, fmt.Errorf("failed to create specialty: %w", err)
	}
	s.invalidateCache()
	return sp, nil
}

// Update applies a partial update to a specialty.
func (s *DefaultSpecialtyService) Update(id string, req models.UpdateSpecialtyRequest) (*models.Specialty, error) {
	sp, err := s.Specialties.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch specialty %s: %w", id, err)
	}
	if sp == nil {
		return nil, ErrSpecialtyNotFound
	}

	if req.Name != nil && *req.Name != sp.Name {
		existing, err := s.Specialties.GetByName(*req.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check specialty name: %w", err)
		}
		if existing != nil {
			return nil, ErrNameTaken
		}
		sp.Name = *req.Name
	}
	if req.Category != nil {
		sp.Category = *req.Category
	}
	if req.Description != nil {
		sp.Description = *req.Description
	}
	if req.Icon != nil {
		sp.Icon = *req.Icon
	}
	if req.IsActive != nil {
		sp.IsActive = *req.IsActive
	}
	sp.UpdatedAt = time.Now()

	if err := s.Specialties.Update(sp); err != nil {
		return nil, fmt.Errorf("failed to update specialty %s: %w", id, err)
	}
	s.invalidateCache()
	return sp, nil
}

// Delete removes a specialty, or deactivates it when mentors still offer it.
func (s *DefaultSpecialtyService) Delete(id string) (bool, error) {
	sp, err := s.Specialties.GetByID(id)
	if err != nil {
		return false, fmt.Errorf("failed to fetch specialty %s: %w", id, err)
	}
	if sp == nil {
		return false, ErrSpecialtyNotFound
	}

	count, err := s.Mentors.CountBySpecialty(id)
	if err != nil {
		return false, fmt.Errorf("failed to count mentors for specialty %s: %w", id, err)
	}
	if count > 0 {
		sp.IsActive = false
		sp.UpdatedAt = time.Now()
		if err := s.Specialties.Update(sp); err != nil {
			return false, fmt.Errorf("failed to deactivate specialty %s: %w", id, err)
		}
		s.invalidateCache()
		return true, nil
	}

	if err := s.Specialties.Delete(id); err != nil {
		return false, fmt.Errorf("failed to delete specialty %s: %w", id, err)
	}
	s.invalidateCache()
	return false, nil
}
