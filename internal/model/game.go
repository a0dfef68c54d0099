package model

import "time"

// CaseAssignment - привязка кейса к призу. Формируется один раз при старте игры
// и не меняется до конца игры
type CaseAssignment struct {
	CaseNumber int   `json:"case_number"`
	PrizeID    int64 `json:"prize_id"`
}

// BankerOffer - запись о предложении банкира. Accepted выставляется только
// у последнего предложения при его принятии, остальные остаются false
type BankerOffer struct {
	Amount      int64 `json:"amount"`
	Accepted    bool  `json:"accepted"`
	AtCaseCount int   `json:"at_case_count"`
}

// Game - агрегат одной игры: один игрок, один ивент, фиксированный набор кейсов.
// OpenedCases хранит порядок вскрытия
type Game struct {
	ID              string
	EventID         int64
	PlayerID        int64
	CaseAssignments []CaseAssignment
	OpenedCases     []int
	BankerOffers    []BankerOffer
	IsFinished      bool
	FinalPrizeID    *int64
	WonAmount       *int64
	StartedAt       time.Time
	FinishedAt      *time.Time
}

// AssignedPrize ищет приз, привязанный к кейсу. Второе значение false,
// если такого кейса в раскладке нет
func (g *Game) AssignedPrize(caseNumber int) (int64, bool) {
	for _, ca := range g.CaseAssignments {
		if ca.CaseNumber == caseNumber {
			return ca.PrizeID, true
		}
	}
	return 0, false
}

// IsOpened проверяет, вскрыт ли кейс
func (g *Game) IsOpened(caseNumber int) bool {
	for _, n := range g.OpenedCases {
		if n == caseNumber {
			return true
		}
	}
	return false
}
