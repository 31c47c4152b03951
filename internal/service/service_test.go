package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"quiz_portal_backend/internal/config"
	"quiz_portal_backend/internal/model"
	"quiz_portal_backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.QuizSet{},
		&model.Question{},
		&model.QuizAttempt{},
		&model.AttemptAnswer{},
		&model.QuizResult{},
		&model.Feedback{},
	))
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

// memorySnapshotStore stands in for the Redis store in tests.
type memorySnapshotStore struct {
	snapshots map[string][]model.Question
}

func newMemorySnapshotStore() *memorySnapshotStore {
	return &memorySnapshotStore{snapshots: make(map[string][]model.Question)}
}

func (s *memorySnapshotStore) Save(_ context.Context, attemptID string, questions []model.Question) error {
	s.snapshots[attemptID] = questions
	return nil
}

func (s *memorySnapshotStore) Get(_ context.Context, attemptID string) ([]model.Question, error) {
	questions, ok := s.snapshots[attemptID]
	if !ok {
		return nil, repository.ErrSnapshotMiss
	}
	return questions, nil
}

func (s *memorySnapshotStore) Delete(_ context.Context, attemptID string) error {
	delete(s.snapshots, attemptID)
	return nil
}

type testEnv struct {
	db        *gorm.DB
	snapshots *memorySnapshotStore
	auth      *AuthService
	quiz      *QuizService
	attempt   *AttemptService
	dashboard *DashboardService
	review    *ReviewService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	quizSetRepo := repository.NewQuizSetRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	resultRepo := repository.NewResultRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	snapshots := newMemorySnapshotStore()

	return &testEnv{
		db:        db,
		snapshots: snapshots,
		auth:      NewAuthService(userRepo, testConfig()),
		quiz:      NewQuizService(quizSetRepo, questionRepo),
		attempt:   NewAttemptService(quizSetRepo, questionRepo, attemptRepo, snapshots),
		dashboard: NewDashboardService(userRepo, resultRepo, quizSetRepo, feedbackRepo),
		review:    NewReviewService(resultRepo, questionRepo, userRepo, feedbackRepo),
	}
}

func (e *testEnv) createUser(t *testing.T, name string, role model.UserRole) *model.User {
	t.Helper()

	user := &model.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: "pw123",
		Role:     role,
	}
	require.NoError(t, e.auth.Register(user))
	return user
}

// createMathQuiz seeds the canonical three-question set used across the
// attempt and dashboard tests.
func (e *testEnv) createMathQuiz(t *testing.T, admin *model.User) (*model.QuizSet, []*model.Question) {
	t.Helper()

	qs, err := e.quiz.CreateQuizSet(QuizSetRequest{Title: "Math"}, admin.ID)
	require.NoError(t, err)

	specs := []struct {
		text    string
		correct string
	}{
		{"2+2", "4"},
		{"3*3", "9"},
		{"10/2", "5"},
	}

	questions := make([]*model.Question, len(specs))
	for i, spec := range specs {
		q, err := e.quiz.CreateQuestion(QuestionRequest{
			QuizSetID:     qs.ID,
			Text:          spec.text,
			Options:       []string{"1", spec.correct, "7"},
			CorrectOption: spec.correct,
		}, admin.ID)
		require.NoError(t, err)
		questions[i] = q
	}
	return qs, questions
}
