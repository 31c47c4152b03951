package service

import (
	"context"
	"testing"

	"quiz_portal_backend/internal/model"
	"quiz_portal_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkSubmitGradesAndRecordsResult(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.createUser(t, "boss", model.Admin)
	alice := env.createUser(t, "alice", model.Student)
	qs, questions := env.createMathQuiz(t, admin)

	started, err := env.attempt.Start(ctx, alice.ID, qs.ID)
	require.NoError(t, err)
	require.Len(t, started.Questions, 3)

	// Two correct, one wrong.
	answers := map[uint]string{
		questions[0].ID: "4",
		questions[1].ID: "9",
		questions[2].ID: "7",
	}
	result, err := env.attempt.SubmitBulk(ctx, alice.ID, started.Attempt.ID, answers)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, alice.ID, result.UserID)
	assert.Equal(t, qs.ID, result.QuizSetID)

	// The attempt is closed; a second submit is rejected.
	_, err = env.attempt.SubmitBulk(ctx, alice.ID, started.Attempt.ID, answers)
	assert.ErrorIs(t, err, util.ErrAttemptCompleted)
}

func TestAttemptQuestionsStripCorrectOption(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.createUser(t, "boss", model.Admin)
	alice := env.createUser(t, "alice", model.Student)
	qs, _ := env.createMathQuiz(t, admin)

	started, err := env.attempt.Start(ctx, alice.ID, qs.ID)
	require.NoError(t, err)

	questions, err := env.attempt.Questions(ctx, alice.ID, started.Attempt.ID)
	require.NoError(t, err)
	require.Len(t, questions, 3)
	for _, q := range questions {
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.Options)
	}
}

func TestEmptyQuizSetCompletesZeroOfZero(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.createUser(t, "boss", model.Admin)
	alice := env.createUser(t, "alice", model.Student)

	qs, err := env.quiz.CreateQuizSet(QuizSetRequest{Title: "Science"}, admin.ID)
	require.NoError(t, err)

	started, err := env.attempt.Start(ctx, alice.ID, qs.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, started.Attempt.QuestionCount)

	result, err := env.attempt.SubmitBulk(ctx, alice.ID, started.Attempt.ID, map[uint]string{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.Total)
}

func TestSnapshotShieldsAttemptFromLaterEdits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.createUser(t, "boss", model.Admin)
	alice := env.createUser(t, "alice", model.Student)
	qs, questions := env.createMathQuiz(t, admin)

	started, err := env.attempt.Start(ctx, alice.ID, qs.ID)
	require.NoError(t, err)

	// An admin adds a question mid-attempt; the frozen set must not grow.
	_, err = env.quiz.CreateQuestion(QuestionRequest{
		QuizSetID:     qs.ID,
		Text:          "7-7",
		Options:       []string{"0", "1"},
		CorrectOption: "0",
	}, admin.ID)
	require.NoError(t, err)

	visible, err := env.attempt.Questions(ctx, alice.ID, started.Attempt.ID)
	require.NoError(t, err)
	assert.Len(t, visible, 3)

	answers := map[uint]string{
		questions[0].ID: "4",
		questions[1].ID: "9",
		questions[2].ID: "5",
	}
	result, err := env.attempt.SubmitBulk(ctx, alice.ID, started.Attempt.ID, answers)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 3, result.Total)
}

func TestStepwiseMatchesBulkForSameAnswers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.createUser(t, "boss", model.Admin)
	alice := env.createUser(t, "alice", model.Student)
	bob := env.createUser(t, "bob", model.Student)
	qs, questions := env.createMathQuiz(t, admin)

	answers := map[uint]string{
		questions[0].ID: "4",
		questions[1].ID: "1",
		questions[2].ID: "5",
	}

	// Alice submits in bulk.
	aliceStart, err := env.attempt.Start(ctx, alice.ID, qs.ID)
	require.NoError(t, err)
	bulkResult, err := env.attempt.SubmitBulk(ctx, alice.ID, aliceStart.Attempt.ID, answers)
	require.NoError(t, err)

	// Bob walks the same answers stepwise.
	bobStart, err := env.attempt.Start(ctx, bob.ID, qs.ID)
	require.NoError(t, err)
	for _, q := range questions {
		_, err := env.attempt.Answer(ctx, bob.ID, bobStart.Attempt.ID, q.ID, answers[q.ID])
		require.NoError(t, err)
	}
	stepResult, err := env.attempt.Finalize(ctx, bob.ID, bobStart.Attempt.ID)
	require.NoError(t, err)

	assert.Equal(t, bulkResult.Score, stepResult.Score)
	assert.Equal(t, bulkResult.Total, stepResult.Total)
	assert.Equal(t, 2, stepResult.Score)
}

func TestStepwiseWalksToNextUnanswered(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.createUser(t, "boss", model.Admin)
	alice := env.createUser(t, "alice", model.Student)
	qs, questions := env.createMathQuiz(t, admin)

	started, err := env.attempt.Start(ctx, alice.ID, qs.ID)
	require.NoError(t, err)

	resp, err := env.attempt.Answer(ctx, alice.ID, started.Attempt.ID, questions[0].ID, "4")
	require.NoError(t, err)
	assert.True(t, resp.Correct)
	assert.Equal(t, 2, resp.Remaining)
	require.NotNil(t, resp.Next)
	assert.Equal(t, questions[1].ID, resp.Next.ID)

	resp, err = env.attempt.Answer(ctx, alice.ID, started.Attempt.ID, questions[1].ID, "7")
	require.NoError(t, err)
	assert.False(t, resp.Correct)
	assert.Equal(t, 1, resp.Remaining)

	resp, err = env.attempt.Answer(ctx, alice.ID, started.Attempt.ID, questions[2].ID, "5")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Remaining)
	assert.Nil(t, resp.Next)
}

func TestStepwiseRejectsReanswering(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.createUser(t, "boss", model.Admin)
	alice := env.createUser(t, "alice", model.Student)
	qs, questions := env.createMathQuiz(t, admin)

	started, err := env.attempt.Start(ctx, alice.ID, qs.ID)
	require.NoError(t, err)

	_, err = env.attempt.Answer(ctx, alice.ID, started.Attempt.ID, questions[0].ID, "4")
	require.NoError(t, err)

	_, err = env.attempt.Answer(ctx, alice.ID, started.Attempt.ID, questions[0].ID, "1")
	assert.ErrorIs(t, err, util.ErrAlreadyAnswered)
}

func TestStepwiseRejectsForeignQuestion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.createUser(t, "boss", model.Admin)
	alice := env.createUser(t, "alice", model.Student)
	qs, _ := env.createMathQuiz(t, admin)

	other, err := env.quiz.CreateQuizSet(QuizSetRequest{Title: "Other"}, admin.ID)
	require.NoError(t, err)
	foreign, err := env.quiz.CreateQuestion(QuestionRequest{
		QuizSetID:     other.ID,
		Text:          "q",
		Options:       []string{"a", "b"},
		CorrectOption: "a",
	}, admin.ID)
	require.NoError(t, err)

	started, err := env.attempt.Start(ctx, alice.ID, qs.ID)
	require.NoError(t, err)

	_, err = env.attempt.Answer(ctx, alice.ID, started.Attempt.ID, foreign.ID, "a")
	assert.ErrorIs(t, err, util.ErrQuestionNotInAttempt)
}

func TestAttemptOwnershipEnforced(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.createUser(t, "boss", model.Admin)
	alice := env.createUser(t, "alice", model.Student)
	bob := env.createUser(t, "bob", model.Student)
	qs, _ := env.createMathQuiz(t, admin)

	started, err := env.attempt.Start(ctx, alice.ID, qs.ID)
	require.NoError(t, err)

	_, err = env.attempt.SubmitBulk(ctx, bob.ID, started.Attempt.ID, nil)
	assert.ErrorIs(t, err, util.ErrNotAttemptOwner)
}

func TestStartUnknownQuizSet(t *testing.T) {
	env := newTestEnv(t)

	alice := env.createUser(t, "alice", model.Student)

	_, err := env.attempt.Start(context.Background(), alice.ID, 4242)
	assert.ErrorIs(t, err, util.ErrQuizSetNotFound)
}

func TestGradingFallsBackWhenSnapshotExpired(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.createUser(t, "boss", model.Admin)
	alice := env.createUser(t, "alice", model.Student)
	qs, questions := env.createMathQuiz(t, admin)

	started, err := env.attempt.Start(ctx, alice.ID, qs.ID)
	require.NoError(t, err)

	// Simulate TTL expiry of the frozen set.
	require.NoError(t, env.snapshots.Delete(ctx, started.Attempt.ID))

	result, err := env.attempt.SubmitBulk(ctx, alice.ID, started.Attempt.ID, map[uint]string{
		questions[0].ID: "4",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 3, result.Total)
}
