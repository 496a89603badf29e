package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockin-app/lockin/models"
)

func TestApplyCreditAtMostOnce(t *testing.T) {
	plan := models.Plan{TotalPoints: 0, Revision: 0}

	require.True(t, applyCredit(&plan, false, 10))
	assert.Equal(t, 10, plan.TotalPoints)
	assert.Equal(t, 1, plan.Revision)

	// Completing the same task again awards nothing.
	require.False(t, applyCredit(&plan, true, 10))
	assert.Equal(t, 10, plan.TotalPoints)
	assert.Equal(t, 1, plan.Revision)
}

func TestApplyCreditDifferentTasksAccumulate(t *testing.T) {
	plan := models.Plan{}

	require.True(t, applyCredit(&plan, false, 10))
	require.True(t, applyCredit(&plan, false, 25))
	assert.Equal(t, 35, plan.TotalPoints)
	assert.Equal(t, 2, plan.Revision)
}

func TestResolveActiveAfterArchiveLastPlanClearsPointer(t *testing.T) {
	// Archiving the only active plan leaves the user with no active plan.
	assert.Equal(t, "", resolveActiveAfterArchive("p1", "p1", nil))
}

func TestResolveActiveAfterArchiveMovesToOldestRemaining(t *testing.T) {
	remaining := []models.Plan{{PlanID: "p2"}, {PlanID: "p3"}}
	assert.Equal(t, "p2", resolveActiveAfterArchive("p1", "p1", remaining))
}

func TestResolveActiveAfterArchiveNonActiveKeepsPointer(t *testing.T) {
	remaining := []models.Plan{{PlanID: "p1"}}
	assert.Equal(t, "p1", resolveActiveAfterArchive("p1", "p2", remaining))
}
