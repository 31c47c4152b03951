package service

import (
	"errors"

	"quiz_portal_backend/internal/model"
	"quiz_portal_backend/internal/repository"
	"quiz_portal_backend/internal/util"

	"gorm.io/gorm"
)

type DashboardService struct {
	UserRepo     *repository.UserRepository
	ResultRepo   *repository.ResultRepository
	QuizSetRepo  *repository.QuizSetRepository
	FeedbackRepo *repository.FeedbackRepository
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	resultRepo *repository.ResultRepository,
	quizSetRepo *repository.QuizSetRepository,
	feedbackRepo *repository.FeedbackRepository,
) *DashboardService {
	return &DashboardService{
		UserRepo:     userRepo,
		ResultRepo:   resultRepo,
		QuizSetRepo:  quizSetRepo,
		FeedbackRepo: feedbackRepo,
	}
}

type StudentDashboard struct {
	TotalScore     int                         `json:"totalScore"`
	TotalQuestions int                         `json:"totalQuestions"`
	Results        []model.QuizResult          `json:"results"`
	Feedback       []model.Feedback            `json:"feedback"`
	QuizSets       []repository.QuizSetSummary `json:"quizSets"`
}

// StudentView aggregates a user's recorded results. Totals come from the
// stored result rows (score plus snapshot total), computed fresh on every
// request; write volume is one row per completed attempt, so no caching.
func (s *DashboardService) StudentView(userID uint) (*StudentDashboard, error) {
	results, err := s.ResultRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	totals, err := s.ResultRepo.SumByUser(userID)
	if err != nil {
		return nil, err
	}

	feedback, err := s.FeedbackRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	quizSets, err := s.QuizSetRepo.ListWithCounts()
	if err != nil {
		return nil, err
	}

	return &StudentDashboard{
		TotalScore:     totals.TotalScore,
		TotalQuestions: totals.TotalQuestions,
		Results:        results,
		Feedback:       feedback,
		QuizSets:       quizSets,
	}, nil
}

type RosterEntry struct {
	Student           model.User `json:"student"`
	CompletedAttempts int64      `json:"completedAttempts"`
}

// Roster lists all students with their attempt counts for the admin
// overview.
func (s *DashboardService) Roster() ([]RosterEntry, error) {
	students, err := s.UserRepo.ListByRole(model.Student)
	if err != nil {
		return nil, err
	}

	roster := make([]RosterEntry, len(students))
	for i, student := range students {
		count, err := s.ResultRepo.CountByUser(student.ID)
		if err != nil {
			return nil, err
		}
		roster[i] = RosterEntry{Student: student, CompletedAttempts: count}
	}
	return roster, nil
}

type StudentReview struct {
	Student model.User         `json:"student"`
	Results []model.QuizResult `json:"results"`
}

func (s *DashboardService) ReviewStudent(studentID uint) (*StudentReview, error) {
	student, err := s.UserRepo.FindByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	results, err := s.ResultRepo.ListByUser(student.ID)
	if err != nil {
		return nil, err
	}

	return &StudentReview{Student: *student, Results: results}, nil
}
