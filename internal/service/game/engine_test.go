package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puzzle_place/internal/model"
)

func TestAssignCasesMoreCasesThanPrizes(t *testing.T) {
	prizes := []model.Prize{
		{ID: 1, Value: 100},
		{ID: 2, Value: 80},
		{ID: 3, Value: 60},
	}

	assignments := assignCases(prizes, 7)
	require.Len(t, assignments, 7)

	counts := map[int64]int{}
	for i, ca := range assignments {
		assert.Equal(t, i+1, ca.CaseNumber)
		counts[ca.PrizeID]++
	}

	// Циклическая раскладка: каждый приз используется, перекос не больше единицы
	require.Len(t, counts, 3)
	for id, n := range counts {
		assert.GreaterOrEqual(t, n, 2, "prize %d", id)
		assert.LessOrEqual(t, n, 3, "prize %d", id)
	}
}

func TestAssignCasesFewerCasesThanPrizes(t *testing.T) {
	prizes := []model.Prize{
		{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5},
	}

	assignments := assignCases(prizes, 3)
	require.Len(t, assignments, 3)

	known := map[int64]bool{1: true, 2: true, 3: true, 4: true, 5: true}
	seen := map[int64]bool{}
	for i, ca := range assignments {
		assert.Equal(t, i+1, ca.CaseNumber)
		assert.True(t, known[ca.PrizeID])
		assert.False(t, seen[ca.PrizeID], "prize %d assigned twice", ca.PrizeID)
		seen[ca.PrizeID] = true
	}
}

func TestComputeOfferMixedPool(t *testing.T) {
	pool := map[int64]model.Prize{
		1: {ID: 1, Value: 100},
		2: {ID: 2, Value: 80},
		3: {ID: 3, Value: 60},
		4: {ID: 4, Value: 40},
		5: {ID: 5, Value: 0, IsBlank: true},
	}
	game := &model.Game{
		CaseAssignments: []model.CaseAssignment{
			{CaseNumber: 1, PrizeID: 1},
			{CaseNumber: 2, PrizeID: 2},
			{CaseNumber: 3, PrizeID: 3},
			{CaseNumber: 4, PrizeID: 4},
			{CaseNumber: 5, PrizeID: 5},
		},
		OpenedCases: []int{1},
	}

	// Невскрытые положительные: 80, 60, 40 -> среднее 60, предложение 48
	offer, err := computeOffer(game, pool, 0.8)
	require.NoError(t, err)
	assert.Equal(t, int64(48), offer)
}

func TestComputeOfferIgnoresBlanks(t *testing.T) {
	pool := map[int64]model.Prize{
		1: {ID: 1, Value: 90},
		2: {ID: 2, Value: 0, IsBlank: true},
		3: {ID: 3, Value: 0, IsBlank: true},
	}
	game := &model.Game{
		CaseAssignments: []model.CaseAssignment{
			{CaseNumber: 1, PrizeID: 1},
			{CaseNumber: 2, PrizeID: 2},
			{CaseNumber: 3, PrizeID: 3},
		},
	}

	// Пустышки не тянут среднее вниз: единственное положительное значение 90
	offer, err := computeOffer(game, pool, 0.8)
	require.NoError(t, err)
	assert.Equal(t, int64(72), offer)
}

func TestComputeOfferAllBlanksIsZero(t *testing.T) {
	pool := map[int64]model.Prize{
		1: {ID: 1, Value: 0, IsBlank: true},
		2: {ID: 2, Value: 0, IsBlank: true},
	}
	game := &model.Game{
		CaseAssignments: []model.CaseAssignment{
			{CaseNumber: 1, PrizeID: 1},
			{CaseNumber: 2, PrizeID: 2},
		},
	}

	offer, err := computeOffer(game, pool, 0.8)
	require.NoError(t, err)
	assert.Equal(t, int64(0), offer)
}

func TestComputeOfferMissingPrize(t *testing.T) {
	game := &model.Game{
		CaseAssignments: []model.CaseAssignment{
			{CaseNumber: 1, PrizeID: 42},
		},
	}

	_, err := computeOffer(game, map[int64]model.Prize{}, 0.8)
	assert.ErrorIs(t, err, ErrCorruptAssignment)
}
