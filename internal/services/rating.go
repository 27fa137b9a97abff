package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/pkg/utils"
)

// RatingService persists ratings and maintains the planner's materialized
// rating aggregate.
type RatingService struct {
	db    *gorm.DB
	cache *Cache
}

func NewRatingService(db *gorm.DB, cache *Cache) *RatingService {
	return &RatingService{db: db, cache: cache}
}

// Add stores a new rating. A user may rate a planner once; a second attempt
// is a conflict. After the insert the planner's aggregate is recomputed and
// written back; that second write is independent of the first and a failure
// there does not roll back the rating.
func (s *RatingService) Add(rating *models.Rating) (*models.Rating, error) {
	if rating.Score < 1 || rating.Score > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidArgument)
	}

	var existing models.Rating
	err := s.db.Where("planner_id = ? AND user_email = ?", rating.PlannerID, rating.UserEmail).
		First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: you have already rated this planner", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.db.Create(rating).Error; err != nil {
		return nil, err
	}

	s.RecomputePlannerRating(rating.PlannerID)
	return rating, nil
}

// RoundAverage rounds a mean score to one decimal place, half up on the
// scaled value.
func RoundAverage(avg float64) float64 {
	return math.Round(avg*10) / 10
}

// AverageOf computes the rounded mean of a set of ratings, 0.0 when empty.
func AverageOf(ratings []models.Rating) float64 {
	if len(ratings) == 0 {
		return 0.0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}
	return RoundAverage(float64(sum) / float64(len(ratings)))
}

// RecomputePlannerRating rebuilds the cached aggregate on the planner row
// from the full rating set. It silently no-ops when the planner does not
// exist; the recompute is idempotent and safe to replay.
func (s *RatingService) RecomputePlannerRating(plannerID uint) {
	ratings, err := s.GetByPlanner(plannerID)
	if err != nil || len(ratings) == 0 {
		return
	}

	avg := AverageOf(ratings)

	var planner models.Planner
	if err := s.db.First(&planner, plannerID).Error; err != nil {
		return
	}

	planner.AverageRating = avg
	planner.TotalRatings = len(ratings)
	if err := s.db.Save(&planner).Error; err != nil {
		utils.GetLogger().Warn("failed to update planner rating aggregate",
			zap.Uint("plannerId", plannerID), zap.Error(err))
		return
	}

	if s.cache != nil {
		s.cache.SetPlannerAggregate(context.Background(), plannerID, avg, len(ratings))
	}
}

// Average returns the rounded mean rating for a planner, 0.0 when the
// planner has no ratings.
func (s *RatingService) Average(plannerID uint) (float64, error) {
	ratings, err := s.GetByPlanner(plannerID)
	if err != nil {
		return 0, err
	}
	return AverageOf(ratings), nil
}

// Aggregate returns the rounded average and total count for a planner,
// served from the cache when warm.
func (s *RatingService) Aggregate(ctx context.Context, plannerID uint) (float64, int, error) {
	if s.cache != nil {
		if avg, total, ok := s.cache.GetPlannerAggregate(ctx, plannerID); ok {
			return avg, total, nil
		}
	}

	ratings, err := s.GetByPlanner(plannerID)
	if err != nil {
		return 0, 0, err
	}
	return AverageOf(ratings), len(ratings), nil
}

func (s *RatingService) GetByPlanner(plannerID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := s.db.Where("planner_id = ?", plannerID).Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (s *RatingService) GetByUser(userEmail string) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := s.db.Where("user_email = ?", userEmail).Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (s *RatingService) GetAll() ([]models.Rating, error) {
	var ratings []models.Rating
	if err := s.db.Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}
