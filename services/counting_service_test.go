package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountingService_SubmitCount(t *testing.T) {
	env := newTestEnv(t)
	env.seedBin(t, "A-01-01", "MOUSE-001", 45)

	task, err := env.counting.CreateCycleCount("A-01-01", "MOUSE-001")
	require.NoError(t, err)
	assert.Equal(t, 45, task.ExpectedQty)
	assert.Equal(t, StatusPending, task.Status)

	t.Run("count below expected", func(t *testing.T) {
		done, err := env.counting.SubmitCount(task.ID, 42, "")
		require.NoError(t, err)

		require.NotNil(t, done.CountedQty)
		require.NotNil(t, done.Variance)
		assert.Equal(t, 42, *done.CountedQty)
		assert.Equal(t, -3, *done.Variance)
		assert.Equal(t, StatusCompleted, done.Status)
		assert.NotEmpty(t, done.CountDate)

		// Count is ground truth, bin overwritten
		assert.Equal(t, 42, env.binQty(t, "A-01-01", "MOUSE-001"))

		txns, err := env.txns.GetCycleCount()
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, 45, txns[0].ExpectedQty)
		assert.Equal(t, 42, txns[0].CountedQty)
		assert.Equal(t, -3, txns[0].Variance)
	})

	t.Run("resubmitting overwrites", func(t *testing.T) {
		done, err := env.counting.SubmitCount(task.ID, 47, "")
		require.NoError(t, err)
		assert.Equal(t, 2, *done.Variance)
		assert.Equal(t, 47, env.binQty(t, "A-01-01", "MOUSE-001"))

		txns, err := env.txns.GetCycleCount()
		require.NoError(t, err)
		assert.Len(t, txns, 2)
	})

	t.Run("negative count rejected", func(t *testing.T) {
		_, err := env.counting.SubmitCount(task.ID, -1, "")
		assert.True(t, IsValidation(err))
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := env.counting.SubmitCount("nope", 5, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCountingService_SequentialCount(t *testing.T) {
	env := newTestEnv(t)
	env.seedBin(t, "A-01-02", "KB-001", 10)
	env.seedBin(t, "A-01-01", "MOUSE-001", 45)
	env.seedBin(t, "A-02-01", "CABLE-42", 7)

	t.Run("requires an active session", func(t *testing.T) {
		_, err := env.counting.StartSequentialCount("A-01-01", "A-01-02")
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})

	_, err := env.sessions.CreateSession("Stock take Q3")
	require.NoError(t, err)

	t.Run("queue is ordered bin then item, range inclusive", func(t *testing.T) {
		queue, err := env.counting.StartSequentialCount("A-01-01", "A-01-02")
		require.NoError(t, err)
		require.Len(t, queue, 2)
		assert.Equal(t, "A-01-01", queue[0].BinCode)
		assert.Equal(t, "A-01-02", queue[1].BinCode)

		sess, err := env.sessions.CurrentSession()
		require.NoError(t, err)
		assert.Len(t, sess.CycleCountIDs, 2)
		assert.Equal(t, queue[0].ID, sess.CurrentCycleCountID)
	})

	t.Run("submission advances the pointer and tags the session", func(t *testing.T) {
		sess, err := env.sessions.CurrentSession()
		require.NoError(t, err)

		_, err = env.counting.SubmitCount(sess.CurrentCycleCountID, 44, sess.ID)
		require.NoError(t, err)

		sess, err = env.sessions.CurrentSession()
		require.NoError(t, err)
		assert.Equal(t, sess.CycleCountIDs[1], sess.CurrentCycleCountID)

		txns, err := env.counting.GetSessionTransactions(sess.ID)
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, sess.ID, txns[0].SessionID)
	})

	t.Run("skip and back move the pointer without recording", func(t *testing.T) {
		sess, err := env.sessions.CurrentSession()
		require.NoError(t, err)

		sess, err = env.counting.StepBack(sess.ID)
		require.NoError(t, err)
		assert.Equal(t, sess.CycleCountIDs[0], sess.CurrentCycleCountID)

		sess, err = env.counting.SkipCurrent(sess.ID)
		require.NoError(t, err)
		assert.Equal(t, sess.CycleCountIDs[1], sess.CurrentCycleCountID)

		// Queue exhausted, pointer clears
		sess, err = env.counting.SkipCurrent(sess.ID)
		require.NoError(t, err)
		assert.Empty(t, sess.CurrentCycleCountID)

		txns, err := env.counting.GetSessionTransactions(sess.ID)
		require.NoError(t, err)
		assert.Len(t, txns, 1)
	})

	t.Run("navigating an exhausted queue", func(t *testing.T) {
		sess, err := env.sessions.CurrentSession()
		require.NoError(t, err)
		require.Empty(t, sess.CurrentCycleCountID)

		// Skipping with nothing current stays cleared
		sess, err = env.counting.SkipCurrent(sess.ID)
		require.NoError(t, err)
		assert.Empty(t, sess.CurrentCycleCountID)

		// Stepping back returns to the last task
		sess, err = env.counting.StepBack(sess.ID)
		require.NoError(t, err)
		assert.Equal(t, sess.CycleCountIDs[len(sess.CycleCountIDs)-1], sess.CurrentCycleCountID)
	})

	t.Run("invalid range", func(t *testing.T) {
		_, err := env.counting.StartSequentialCount("A-02-01", "A-01-01")
		assert.True(t, IsValidation(err))
	})
}

func TestCountingService_ReconcileFullCount(t *testing.T) {
	env := newTestEnv(t)
	env.seedBin(t, "A-01-01", "MOUSE-001", 45)

	_, err := env.sessions.CreateSession("Full count")
	require.NoError(t, err)

	counted40 := 40
	counted7 := 7
	rows := []CountRow{
		{BinCode: "A-01-01", ItemCode: "MOUSE-001", ExpectedQty: 45, CountedQty: &counted40},
		{BinCode: "A-02-01", ItemCode: "CABLE-42", ExpectedQty: 7, CountedQty: &counted7},
		{BinCode: "A-03-01", ItemCode: "KB-001", ExpectedQty: 3}, // never counted, skipped
	}

	created, err := env.counting.ReconcileFullCount(rows)
	require.NoError(t, err)
	require.Len(t, created, 2)

	assert.Equal(t, -5, *created[0].Variance)
	assert.Equal(t, StatusCompleted, created[0].Status)
	assert.Equal(t, 0, *created[1].Variance)

	assert.Equal(t, 40, env.binQty(t, "A-01-01", "MOUSE-001"))
	assert.Equal(t, 7, env.binQty(t, "A-02-01", "CABLE-42"))
	assert.Equal(t, 0, env.binQty(t, "A-03-01", "KB-001"))

	sess, err := env.sessions.CurrentSession()
	require.NoError(t, err)
	assert.Len(t, sess.CycleCountIDs, 2)

	txns, err := env.counting.GetSessionTransactions(sess.ID)
	require.NoError(t, err)
	assert.Len(t, txns, 2)
}

func TestCountingService_ReconcileFullCountValidation(t *testing.T) {
	t.Run("a bad row mid-sheet rejects the whole import before any write", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedBin(t, "A-01-01", "MOUSE-001", 45)

		counted40 := 40
		negative := -1
		rows := []CountRow{
			{BinCode: "A-01-01", ItemCode: "MOUSE-001", ExpectedQty: 45, CountedQty: &counted40},
			{BinCode: "A-02-01", ItemCode: "CABLE-42", ExpectedQty: 7, CountedQty: &negative},
		}

		_, err := env.counting.ReconcileFullCount(rows)
		assert.True(t, IsValidation(err))

		// Earlier rows must not have been applied
		assert.Equal(t, 45, env.binQty(t, "A-01-01", "MOUSE-001"))

		counts, err := env.repo.GetCycleCounts()
		require.NoError(t, err)
		assert.Empty(t, counts)

		txns, err := env.txns.GetCycleCount()
		require.NoError(t, err)
		assert.Empty(t, txns)
	})

	t.Run("counted rows need bin and item codes", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedBin(t, "A-01-01", "MOUSE-001", 45)

		counted40 := 40
		counted5 := 5
		rows := []CountRow{
			{BinCode: "A-01-01", ItemCode: "MOUSE-001", ExpectedQty: 45, CountedQty: &counted40},
			{BinCode: "", ItemCode: "CABLE-42", ExpectedQty: 7, CountedQty: &counted5},
		}

		_, err := env.counting.ReconcileFullCount(rows)
		assert.True(t, IsValidation(err))
		assert.Equal(t, 45, env.binQty(t, "A-01-01", "MOUSE-001"))
	})
}
