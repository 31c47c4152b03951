package service

import (
	"testing"

	"quiz_portal_backend/internal/model"
	"quiz_portal_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedResult(t *testing.T, env *testEnv, userID, quizSetID uint, score, total int) *model.QuizResult {
	t.Helper()

	result := &model.QuizResult{
		UserID:    userID,
		QuizSetID: quizSetID,
		Score:     score,
		Total:     total,
	}
	require.NoError(t, env.db.Create(result).Error)
	return result
}

func TestStudentViewSumsStoredResults(t *testing.T) {
	env := newTestEnv(t)

	admin := env.createUser(t, "boss", model.Admin)
	alice := env.createUser(t, "alice", model.Student)
	qs, _ := env.createMathQuiz(t, admin)

	seedResult(t, env, alice.ID, qs.ID, 4, 5)
	seedResult(t, env, alice.ID, qs.ID, 5, 5)

	view, err := env.dashboard.StudentView(alice.ID)
	require.NoError(t, err)

	assert.Equal(t, 9, view.TotalScore)
	assert.Equal(t, 10, view.TotalQuestions)
	assert.Len(t, view.Results, 2)
	require.Len(t, view.QuizSets, 1)
	assert.Equal(t, int64(3), view.QuizSets[0].QuestionCount)
}

func TestStudentViewNoResultsIsZeroOverZero(t *testing.T) {
	env := newTestEnv(t)

	alice := env.createUser(t, "alice", model.Student)

	view, err := env.dashboard.StudentView(alice.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, view.TotalScore)
	assert.Equal(t, 0, view.TotalQuestions)
	assert.Empty(t, view.Results)
}

func TestStudentViewIsolatedPerUser(t *testing.T) {
	env := newTestEnv(t)

	admin := env.createUser(t, "boss", model.Admin)
	alice := env.createUser(t, "alice", model.Student)
	bob := env.createUser(t, "bob", model.Student)
	qs, _ := env.createMathQuiz(t, admin)

	seedResult(t, env, alice.ID, qs.ID, 3, 3)
	seedResult(t, env, bob.ID, qs.ID, 1, 3)

	view, err := env.dashboard.StudentView(bob.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, view.TotalScore)
	assert.Equal(t, 3, view.TotalQuestions)
	assert.Len(t, view.Results, 1)
}

func TestRosterCountsCompletedAttempts(t *testing.T) {
	env := newTestEnv(t)

	admin := env.createUser(t, "boss", model.Admin)
	alice := env.createUser(t, "alice", model.Student)
	bob := env.createUser(t, "bob", model.Student)
	qs, _ := env.createMathQuiz(t, admin)

	seedResult(t, env, alice.ID, qs.ID, 2, 3)
	seedResult(t, env, alice.ID, qs.ID, 3, 3)

	roster, err := env.dashboard.Roster()
	require.NoError(t, err)
	require.Len(t, roster, 2)

	counts := make(map[uint]int64, len(roster))
	for _, entry := range roster {
		assert.Equal(t, model.Student, entry.Student.Role)
		counts[entry.Student.ID] = entry.CompletedAttempts
	}
	assert.Equal(t, int64(2), counts[alice.ID])
	assert.Equal(t, int64(0), counts[bob.ID])
}

func TestRosterExcludesAdmins(t *testing.T) {
	env := newTestEnv(t)

	env.createUser(t, "boss", model.Admin)
	env.createUser(t, "alice", model.Student)

	roster, err := env.dashboard.Roster()
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "alice", roster[0].Student.Name)
}

func TestReviewStudent(t *testing.T) {
	env := newTestEnv(t)

	admin := env.createUser(t, "boss", model.Admin)
	alice := env.createUser(t, "alice", model.Student)
	qs, _ := env.createMathQuiz(t, admin)

	seedResult(t, env, alice.ID, qs.ID, 2, 3)

	review, err := env.dashboard.ReviewStudent(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, review.Student.ID)
	require.Len(t, review.Results, 1)
	assert.Equal(t, 2, review.Results[0].Score)
}

func TestReviewStudentUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.dashboard.ReviewStudent(4242)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
