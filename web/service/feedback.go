package service

import (
	"time"

	"github.com/Suneetha610/student/database"
	"github.com/Suneetha610/student/database/model"
	"github.com/Suneetha610/student/util/common"

	"github.com/google/uuid"
)

// FeedbackService stores feedback submissions. Records are append-only:
// there is no update or delete operation.
type FeedbackService struct{}

// CreateFeedback persists one submission for the given student. The rating
// must be one of the enumerated values and the body non-empty; nothing is
// written otherwise. The timestamp is assigned here, exactly once.
func (s *FeedbackService) CreateFeedback(student *model.Student, lecturer, course, text string, rating model.Rating) (*model.Feedback, error) {
	if student == nil || student.Id == 0 {
		return nil, common.NewError("feedback requires an existing student")
	}
	if text == "" {
		return nil, common.NewError("feedback text can not be empty")
	}
	if !rating.Valid() {
		return nil, common.NewErrorf("invalid rating %q", rating)
	}

	feedback := &model.Feedback{
		StudentId:    student.Id,
		RefId:        uuid.NewString(),
		Lecturer:     lecturer,
		Course:       course,
		FeedbackText: text,
		Rating:       rating,
		SubmittedAt:  time.Now(),
	}
	db := database.GetDB()
	if err := db.Create(feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

// GetByStudent lists a student's submissions, newest first.
func (s *FeedbackService) GetByStudent(studentId int) ([]*model.Feedback, error) {
	db := database.GetDB()
	feedbacks := make([]*model.Feedback, 0)
	err := db.Model(model.Feedback{}).
		Where("student_id = ?", studentId).
		Order("submitted_at desc").
		Find(&feedbacks).
		Error
	return feedbacks, err
}

// Search lists submissions matching q across the given columns for the
// admin list page, with the owning student preloaded.
func (s *FeedbackService) Search(q string, fields []string, order string) ([]*model.Feedback, error) {
	db := database.GetDB().Model(model.Feedback{}).Preload("Student")
	if q != "" && len(fields) > 0 {
		like := "%" + q + "%"
		where := database.GetDB().Where(fields[0]+" LIKE ?", like)
		for _, f := range fields[1:] {
			where = where.Or(f+" LIKE ?", like)
		}
		db = db.Where(where)
	}
	if order != "" {
		db = db.Order(order)
	}
	feedbacks := make([]*model.Feedback, 0)
	err := db.Find(&feedbacks).Error
	return feedbacks, err
}

// CountByRating tallies submissions per rating bucket.
func (s *FeedbackService) CountByRating() (map[model.Rating]int64, error) {
	db := database.GetDB()
	counts := make(map[model.Rating]int64, len(model.RatingChoices))
	for _, rating := range model.RatingChoices {
		var count int64
		err := db.Model(model.Feedback{}).Where("rating = ?", rating).Count(&count).Error
		if err != nil {
			return nil, err
		}
		counts[rating] = count
	}
	return counts, nil
}
