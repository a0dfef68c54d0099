package game

type StartGameRequest struct {
	EventID int64 `json:"event_id"` // Ивент, на котором стартует игра
}

type CaseAssignment struct {
	CaseNumber int   `json:"case_number"` // Номер кейса (1..26)
	PrizeID    int64 `json:"prize_id"`    // Приз, привязанный к кейсу
}

type StartGameResponse struct {
	GameID          string           `json:"game_id"`
	CaseAssignments []CaseAssignment `json:"case_assignments"`
}

type OpenCaseRequest struct {
	GameID     string `json:"game_id"`
	CaseNumber int    `json:"case_number"`
}

type Prize struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Value   int64  `json:"value"`
	IsBlank bool   `json:"is_blank"`
}

type OpenCaseResponse struct {
	CaseNumber  int   `json:"case_number"`
	Prize       Prize `json:"prize"`
	OpenedCases []int `json:"opened_cases"` // Порядок вскрытия
}

type BankerOfferResponse struct {
	Offer int64 `json:"offer"`
}

type AcceptOfferRequest struct {
	GameID      string `json:"game_id"`
	OfferAmount int64  `json:"offer_amount"` // Сверяется с последним предложением
}

type AcceptOfferResponse struct {
	Message   string `json:"message"`
	WonAmount int64  `json:"won_amount"`
}

type FinishGameRequest struct {
	GameID    string `json:"game_id"`
	FinalCase int    `json:"final_case"` // Кейс игрока, вскрываемый в конце
}

type FinishGameResponse struct {
	Message    string `json:"message"`
	FinalPrize Prize  `json:"final_prize"`
	WonAmount  int64  `json:"won_amount"`
}
