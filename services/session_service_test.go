package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Lifecycle(t *testing.T) {
	env := newTestEnv(t)

	first, err := env.sessions.CreateSession("Morning count")
	require.NoError(t, err)
	assert.Equal(t, StatusActive, first.Status)

	t.Run("creating a session pauses the previous one", func(t *testing.T) {
		second, err := env.sessions.CreateSession("Afternoon count")
		require.NoError(t, err)
		assert.Equal(t, StatusActive, second.Status)

		sessions, err := env.sessions.GetSessions()
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Equal(t, StatusPaused, sessions[0].Status)
	})

	t.Run("resume pauses the other active session", func(t *testing.T) {
		resumed, err := env.sessions.ResumeSession(first.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusActive, resumed.Status)

		current, err := env.sessions.CurrentSession()
		require.NoError(t, err)
		assert.Equal(t, first.ID, current.ID)
	})

	t.Run("complete is terminal", func(t *testing.T) {
		done, err := env.sessions.CompleteSession(first.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, done.Status)

		_, err = env.sessions.ResumeSession(first.ID)
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := env.sessions.CreateSession("   ")
		assert.True(t, IsValidation(err))
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := env.sessions.PauseSession("nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_MoveToTemp(t *testing.T) {
	env := newTestEnv(t)
	env.seedBin(t, "A-01-01", "MOUSE-001", 45)

	_, err := env.sessions.CreateSession("Count with relocation")
	require.NoError(t, err)

	queue, err := env.counting.StartSequentialCount("A-01-01", "A-01-01")
	require.NoError(t, err)
	require.Len(t, queue, 1)

	temp, err := env.sessions.CreateTemporaryLocation("Staging cart", "misplaced stock")
	require.NoError(t, err)

	t.Run("uncounted stock cannot move", func(t *testing.T) {
		_, err := env.sessions.MoveToTemp("A-01-01", "MOUSE-001", 5, temp.ID)
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})

	sess, err := env.sessions.CurrentSession()
	require.NoError(t, err)
	_, err = env.counting.SubmitCount(queue[0].ID, 40, sess.ID)
	require.NoError(t, err)

	t.Run("move is capped at the counted amount", func(t *testing.T) {
		_, err := env.sessions.MoveToTemp("A-01-01", "MOUSE-001", 41, temp.ID)
		assert.True(t, IsValidation(err))
	})

	t.Run("move decrements the count and merges into the temp location", func(t *testing.T) {
		moved, err := env.sessions.MoveToTemp("A-01-01", "MOUSE-001", 5, temp.ID)
		require.NoError(t, err)
		require.Len(t, moved.Items, 1)
		assert.Equal(t, 5, moved.Items[0].Quantity)
		assert.Equal(t, "A-01-01", moved.Items[0].SourceBin)
		assert.Equal(t, 35, env.binQty(t, "A-01-01", "MOUSE-001"))

		// Second move merges by item code
		moved, err = env.sessions.MoveToTemp("A-01-01", "MOUSE-001", 3, temp.ID)
		require.NoError(t, err)
		require.Len(t, moved.Items, 1)
		assert.Equal(t, 8, moved.Items[0].Quantity)
		assert.Equal(t, 32, env.binQty(t, "A-01-01", "MOUSE-001"))
	})

	t.Run("staging writes no transaction", func(t *testing.T) {
		txns, err := env.txns.GetCycleCount()
		require.NoError(t, err)
		assert.Len(t, txns, 1) // only the count submission

		transfers, err := env.txns.GetTransfer()
		require.NoError(t, err)
		assert.Empty(t, transfers)
	})

	t.Run("putaway moves stock to a bin and logs a transfer", func(t *testing.T) {
		tempAfter, err := env.sessions.PutAway(temp.ID, "MOUSE-001", "B-05-01", 8)
		require.NoError(t, err)
		assert.Empty(t, tempAfter.Items)
		assert.Equal(t, 8, env.binQty(t, "B-05-01", "MOUSE-001"))

		transfers, err := env.txns.GetTransfer()
		require.NoError(t, err)
		require.Len(t, transfers, 1)
		assert.Equal(t, "A-01-01", transfers[0].SourceBin)
		assert.Equal(t, "B-05-01", transfers[0].DestinationBin)
		assert.Equal(t, 8, transfers[0].Qty)
	})

	t.Run("putaway past the staged amount is rejected", func(t *testing.T) {
		_, err := env.sessions.PutAway(temp.ID, "MOUSE-001", "B-05-01", 1)
		assert.ErrorIs(t, err, ErrNotFound) // entry removed at zero
	})
}
