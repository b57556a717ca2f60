package mentor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	availabilityRepo "mentorhub/database/repository/availability"
	mentorRepo "mentorhub/database/repository/mentor"
	reviewRepo "mentorhub/database/repository/review"
	specialtyRepo "mentorhub/database/repository/specialty"
	userRepo "mentorhub/database/repository/user"
	"mentorhub/models"
	reviewsvc "mentorhub/services/review"
	"mentorhub/utils"

	"go.uber.org/zap"
)

var (
	// ErrMentorNotFound signals a mentor ID with no publicly visible profile.
	ErrMentorNotFound = errors.New("mentor not found")
	// ErrProfileNotFound signals a user with no mentor profile.
	ErrProfileNotFound = errors.New("mentor profile not found")
	// ErrUnknownSpecialty signals a profile update referencing a specialty that
	// does not exist or is inactive.
	ErrUnknownSpecialty = errors.New("one or more specialties do not exist")
)

const (
	defaultPageSize  = 12
	maxPageSize      = 50
	featuredCacheKey = "mentors:featured"
	featuredCacheTTL = 10 * time.Minute
	featuredLimit    = 6
	recentReviews    = 5
)

// DefaultMentorService is a concrete implementation of MentorService.
type DefaultMentorService struct {
	Mentors     mentorRepo.MentorRepository
	Users       userRepo.UserRepository
	Specialties specialtyRepo.SpecialtyRepository
	Reviews     reviewRepo.ReviewRepository
	Slots       availabilityRepo.WeeklySlotStore
}

// BuildCards joins mentors with their user and specialty summaries in two
// batched lookups.
func BuildCards(mentors []models.Mentor, users userRepo.UserRepository, specialties specialtyRepo.SpecialtyRepository) ([]models.MentorCard, error) {
	if len(mentors) == 0 {
		return []models.MentorCard{}, nil
	}

	userIDs := make([]string, 0, len(mentors))
	specialtySet := make(map[string]bool)
	for _, m := range mentors {
		userIDs = append(userIDs, m.UserID)
		for _, id := range m.SpecialtyIDs {
			specialtySet[id] = true
		}
	}
	specialtyIDs := make([]string, 0, len(specialtySet))
	for id := range specialtySet {
		specialtyIDs = append(specialtyIDs, id)
	}

	foundUsers, err := users.GetByIDs(userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mentor users: %w", err)
	}
	usersByID := make(map[string]models.User, len(foundUsers))
	for _, u := range foundUsers {
		usersByID[u.ID] = u
	}

	foundSpecialties, err := specialties.ListActiveByIDs(specialtyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch specialties: %w", err)
	}
	specialtiesByID := make(map[string]models.Specialty, len(foundSpecialties))
	for _, sp := range foundSpecialties {
		specialtiesByID[sp.ID] = sp
	}

	cards := make([]models.MentorCard, 0, len(mentors))
	for _, m := range mentors {
		card := models.MentorCard{Mentor: m, Specialties: []models.SpecialtySummary{}}
		if u, ok := usersByID[m.UserID]; ok {
			card.User = u.Summary()
		}
		for _, id := range m.SpecialtyIDs {
			if sp, ok := specialtiesByID[id]; ok {
				card.Specialties = append(card.Specialties, sp.Summary())
			}
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (s *DefaultMentorService) buildCards(mentors []models.Mentor) ([]models.MentorCard, error) {
	return BuildCards(mentors, s.Users, s.Specialties)
}

// List returns one page of approved, active mentors joined with user and
// specialty summaries.
func (s *DefaultMentorService) List(query ListQuery) (*Listing, error) {
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

	sortBy := query.SortBy
	if !mentorRepo.AllowedSortFields[sortBy] {
		sortBy = "rating"
	}
	sortOrder := -1
	if query.SortOrder == "asc" {
		sortOrder = 1
	}

	criteria := mentorRepo.ListCriteria{
		SpecialtyID: query.SpecialtyID,
		SortBy:      sortBy,
		SortOrder:   sortOrder,
		Skip:        (page - 1) * limit,
		Limit:       limit,
	}

	mentors, err := s.Mentors.List(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}
	total, err := s.Mentors.Count(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to count mentors: %w", err)
	}

	cards, err := s.buildCards(mentors)
	if err != nil {
		return nil, err
	}

	return &Listing{
		Items:      cards,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// Featured returns top-rated mentors, served from the cache when warm.
func (s *DefaultMentorService) Featured() ([]models.MentorCard, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cache := utils.GetCacheClient()
	if cached, err := cache.Get(ctx, featuredCacheKey).Result(); err == nil {
		var cards []models.MentorCard
		if err := json.Unmarshal([]byte(cached), &cards); err == nil {
			return cards, nil
		}
	}

	mentors, err := s.Mentors.ListFeatured(featuredLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured mentors: %w", err)
	}
	cards, err := s.buildCards(mentors)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(cards); err == nil {
		if err := cache.Set(ctx, featuredCacheKey, payload, featuredCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache featured mentors", zap.Error(err))
		}
	}
	return cards, nil
}

// GetDetail returns the full public profile of an approved mentor.
func (s *DefaultMentorService) GetDetail(mentorID string) (*models.MentorDetail, error) {
	mentor, err := s.Mentors.GetApprovedByID(mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mentor %s: %w", mentorID, err)
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}

	cards, err := s.buildCards([]models.Mentor{*mentor})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	slots, err := s.Slots.FindByMentor(ctx, mentorID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for mentor %s: %w", mentorID, err)
	}

	reviews, err := s.recentReviewListing(mentorID)
	if err != nil {
		return nil, err
	}

	return &models.MentorDetail{
		MentorCard:   cards[0],
		Availability: slots,
		Reviews:      *reviews,
	}, nil
}

// recentReviewListing builds the newest-reviews block embedded in a mentor
// detail, with stats over the mentor's full history.
func (s *DefaultMentorService) recentReviewListing(mentorID string) (*models.ReviewListing, error) {
	recent, err := s.Reviews.ListRecentByMentor(mentorID, recentReviews)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent reviews for mentor %s: %w", mentorID, err)
	}
	all, err := s.Reviews.ListAllByMentor(mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews for mentor %s: %w", mentorID, err)
	}

	items, err := reviewsvc.JoinStudents(recent, s.Users)
	if err != nil {
		return nil, err
	}

	return &models.ReviewListing{
		Items:      items,
		Stats:      reviewsvc.ComputeStats(all),
		Pagination: models.NewPagination(1, recentReviews, int64(len(all))),
	}, nil
}

// GetOwnProfile returns the mentor profile owned by a user, joined with
// summaries. Unlike public lookups it also returns unapproved profiles.
func (s *DefaultMentorService) GetOwnProfile(userID string) (*models.MentorCard, error) {
	mentor, err := s.Mentors.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mentor profile for user %s: %w", userID, err)
	}
	if mentor == nil {
		return nil, ErrProfileNotFound
	}
	cards, err := s.buildCards([]models.Mentor{*mentor})
	if err != nil {
		return nil, err
	}
	return &cards[0], nil
}

// UpdateOwnProfile updates the mentor profile owned by a user after validating
// the referenced specialties.
func (s *DefaultMentorService) UpdateOwnProfile(userID string, req models.MentorProfileRequest) (*models.Mentor, error) {
	mentor, err := s.Mentors.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mentor profile for user %s: %w", userID, err)
	}
	if mentor == nil {
		return nil, ErrProfileNotFound
	}

	specialtyIDs := req.SpecialtyIDs
	if specialtyIDs == nil {
		specialtyIDs = []string{}
	}
	if len(specialtyIDs) > 0 {
		found, err := s.Specialties.ListActiveByIDs(specialtyIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to validate specialties: %w", err)
		}
		if len(found) != len(specialtyIDs) {
			return nil, ErrUnknownSpecialty
		}
	}

	mentor.Bio = req.Bio
	mentor.Experience = req.Experience
	mentor.SpecialtyIDs = specialtyIDs
	if req.Credentials != nil {
		mentor.Credentials = req.Credentials
	}
	mentor.HourlyRate = req.HourlyRate
	mentor.UpdatedAt = time.Now()

	if err := s.Mentors.Update(mentor); err != nil {
		return nil, fmt.Errorf("failed to update mentor profile: %w", err)
	}
	return mentor, nil
}
