// Package job contains the scheduled maintenance tasks run by the web
// server's cron.
package job

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Suneetha610/student/database/model"
	"github.com/Suneetha610/student/logger"
	"github.com/Suneetha610/student/web/service"
)

// FeedbackStatsJob logs a daily summary of submissions per rating bucket.
type FeedbackStatsJob struct {
	feedbackService service.FeedbackService
}

func NewFeedbackStatsJob() *FeedbackStatsJob {
	return new(FeedbackStatsJob)
}

func (j *FeedbackStatsJob) Run() {
	counts, err := j.feedbackService.CountByRating()
	if err != nil {
		logger.Warning("feedback stats err:", err)
		return
	}
	logger.Info("feedback totals:", formatCounts(counts))
}

// formatCounts renders the counts deterministically, highest-rated bucket
// first.
func formatCounts(counts map[model.Rating]int64) string {
	ratings := make([]model.Rating, 0, len(counts))
	for rating := range counts {
		ratings = append(ratings, rating)
	}
	sort.Slice(ratings, func(i, j int) bool {
		return ratingOrder(ratings[i]) < ratingOrder(ratings[j])
	})

	parts := make([]string, 0, len(ratings))
	for _, rating := range ratings {
		parts = append(parts, fmt.Sprintf("%s=%d", rating, counts[rating]))
	}
	return strings.Join(parts, " ")
}

func ratingOrder(r model.Rating) int {
	for i, choice := range model.RatingChoices {
		if choice == r {
			return i
		}
	}
	return len(model.RatingChoices)
}
