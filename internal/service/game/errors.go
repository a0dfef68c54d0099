package game

// GameError - типизированная ошибка игрового сервиса
type GameError string

func (e GameError) Error() string {
	return string(e)
}

const (
	ErrUserNotFound      GameError = "user id not found in context"
	ErrEventNotFound     GameError = "event not found or inactive"
	ErrEmptyPrizePool    GameError = "event has no prizes"
	ErrActiveGameExists  GameError = "player already has an unfinished game for this event"
	ErrGameNotFound      GameError = "game not found"
	ErrInvalidCase       GameError = "invalid case number"
	ErrCaseNotFound      GameError = "case not found in assignment"
	ErrCaseAlreadyOpened GameError = "case already opened"
	ErrNoCasesOpened     GameError = "no cases opened yet"
	ErrOfferMismatch     GameError = "offer amount does not match the last banker offer"
	ErrCorruptAssignment GameError = "case assignment references unknown prize"
)
