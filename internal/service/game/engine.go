package game

import (
	"math"
	"math/rand"

	"puzzle_place/internal/model"
)

// assignCases строит раскладку призов по кейсам: пул равномерно перемешивается
// (Fisher-Yates), затем призы раскладываются по кейсам циклически -
// кейс i+1 получает shuffled[i % len(pool)]. Если призов меньше, чем кейсов,
// призы повторяются; мультимножество раскладки фиксируется до конца игры
func assignCases(prizes []model.Prize, caseCount int) []model.CaseAssignment {
	shuffled := make([]model.Prize, len(prizes))
	copy(shuffled, prizes)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	assignments := make([]model.CaseAssignment, 0, caseCount)
	for i := 0; i < caseCount; i++ {
		assignments = append(assignments, model.CaseAssignment{
			CaseNumber: i + 1,
			PrizeID:    shuffled[i%len(shuffled)].ID,
		})
	}
	return assignments
}

// computeOffer считает предложение банкира: среднее строго положительных
// значений призов по невскрытым кейсам, умноженное на rate и округленное.
// Пустышки в среднее не входят; если положительных значений не осталось,
// предложение равно нулю
func computeOffer(game *model.Game, pool map[int64]model.Prize, rate float64) (int64, error) {
	var sum, count int64
	for _, ca := range game.CaseAssignments {
		if game.IsOpened(ca.CaseNumber) {
			continue
		}

		prize, ok := pool[ca.PrizeID]
		if !ok {
			return 0, ErrCorruptAssignment
		}

		if prize.Value > 0 {
			sum += prize.Value
			count++
		}
	}

	if count == 0 {
		return 0, nil
	}

	mean := float64(sum) / float64(count)
	return int64(math.Round(mean * rate)), nil
}
