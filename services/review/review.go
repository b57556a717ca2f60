package review

import (
	"errors"
	"fmt"
	"math"

	mentorRepo "mentorhub/database/repository/mentor"
	reviewRepo "mentorhub/database/repository/review"
	userRepo "mentorhub/database/repository/user"
	"mentorhub/models"
)

// ErrMentorNotFound signals a mentor ID with no publicly visible profile.
var ErrMentorNotFound = errors.New("mentor not found")

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// DefaultReviewService is a concrete implementation of ReviewService.
type DefaultReviewService struct {
	Reviews reviewRepo.ReviewRepository
	Mentors mentorRepo.MentorRepository
	Users   userRepo.UserRepository
}

// ComputeStats aggregates average rating and the per-star distribution over a
// mentor's full review history. The average is rounded to one decimal.
func ComputeStats(reviews []models.Review) models.ReviewStats {
	stats := models.ReviewStats{
		TotalReviews: len(reviews),
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if len(reviews) == 0 {
		return stats
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
		if r.Rating >= 1 && r.Rating <= 5 {
			stats.Distribution[r.Rating]++
		}
	}
	stats.AverageRating = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	return stats
}

// JoinStudents attaches the reviewing students' user summaries in one batched
// lookup.
func JoinStudents(reviews []models.Review, users userRepo.UserRepository) ([]models.ReviewWithStudent, error) {
	if len(reviews) == 0 {
		return []models.ReviewWithStudent{}, nil
	}

	idSet := make(map[string]bool)
	for _, r := range reviews {
		idSet[r.StudentID] = true
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	found, err := users.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviewing students: %w", err)
	}
	byID := make(map[string]models.User, len(found))
	for _, u := range found {
		byID[u.ID] = u
	}

	items := make([]models.ReviewWithStudent, 0, len(reviews))
	for _, r := range reviews {
		item := models.ReviewWithStudent{Review: r}
		if u, ok := byID[r.StudentID]; ok {
			item.Student = u.Summary()
		}
		items = append(items, item)
	}
	return items, nil
}

// ListMentorReviews returns one page of an approved mentor's reviews.
func (s *DefaultReviewService) ListMentorReviews(mentorID string, query ListQuery) (*models.ReviewListing, error) {
	mentor, err := s.Mentors.GetApprovedByID(mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mentor %s: %w", mentorID, err)
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}

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

	sortBy := "createdAt"
	if query.SortBy == "rating" {
		sortBy = "rating"
	}
	sortOrder := -1
	if query.SortOrder == "asc" {
		sortOrder = 1
	}

	pageReviews, err := s.Reviews.ListByMentor(mentorID, reviewRepo.ListCriteria{
		SortBy:    sortBy,
		SortOrder: sortOrder,
		Skip:      (page - 1) * limit,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for mentor %s: %w", mentorID, err)
	}

	all, err := s.Reviews.ListAllByMentor(mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews for mentor %s: %w", mentorID, err)
	}

	items, err := JoinStudents(pageReviews, s.Users)
	if err != nil {
		return nil, err
	}

	return &models.ReviewListing{
		Items:      items,
		Stats:      ComputeStats(all),
		Pagination: models.NewPagination(page, limit, int64(len(all))),
	}, nil
}
