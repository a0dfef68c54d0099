package model

// OpenCaseResult - результат вскрытия кейса
type OpenCaseResult struct {
	CaseNumber  int
	Prize       Prize
	OpenedCases []int
}

// FinishResult - результат вскрытия финального кейса
type FinishResult struct {
	Prize     Prize
	WonAmount int64
}
