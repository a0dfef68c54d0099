package game

import (
	"context"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/stretchr/testify/suite"

	"puzzle_place/internal/middleware"
	"puzzle_place/internal/model"
	"puzzle_place/internal/repository"
	"puzzle_place/internal/service"
)

const (
	testPlayerID = int64(7)
	testEventID  = int64(1)
)

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type cfgStub struct {
	caseCount int
	maxPrizes int
	rate      float64
}

func (c cfgStub) CaseCount() int      { return c.caseCount }
func (c cfgStub) MaxPrizes() int      { return c.maxPrizes }
func (c cfgStub) BankerRate() float64 { return c.rate }

// fakeEventRepo держит ивенты и призы в памяти
type fakeEventRepo struct {
	events map[int64]model.Event
	prizes map[int64][]model.Prize
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events: map[int64]model.Event{},
		prizes: map[int64][]model.Prize{},
	}
}

func (r *fakeEventRepo) CreateEvent(_ context.Context, event *model.Event) (int64, error) {
	id := int64(len(r.events) + 1)
	event.ID = id
	r.events[id] = *event
	return id, nil
}

func (r *fakeEventRepo) GetEvent(_ context.Context, id int64) (*model.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *fakeEventRepo) ListActiveEvents(_ context.Context) ([]model.Event, error) {
	var out []model.Event
	for _, e := range r.events {
		if e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) UpdateEvent(_ context.Context, event *model.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return repository.ErrNotFound
	}
	r.events[event.ID] = *event
	return nil
}

func (r *fakeEventRepo) DeactivateEvent(_ context.Context, id int64) error {
	e, ok := r.events[id]
	if !ok {
		return repository.ErrNotFound
	}
	e.IsActive = false
	r.events[id] = e
	return nil
}

func (r *fakeEventRepo) AddPrize(_ context.Context, prize *model.Prize) (int64, error) {
	id := int64(0)
	for _, ps := range r.prizes {
		id += int64(len(ps))
	}
	id++
	prize.ID = id
	r.prizes[prize.EventID] = append(r.prizes[prize.EventID], *prize)
	return id, nil
}

func (r *fakeEventRepo) GetPrizes(_ context.Context, eventID int64) ([]model.Prize, error) {
	return r.prizes[eventID], nil
}

func (r *fakeEventRepo) DeletePrize(_ context.Context, eventID, prizeID int64) error {
	ps := r.prizes[eventID]
	for i, p := range ps {
		if p.ID == prizeID {
			r.prizes[eventID] = append(ps[:i], ps[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// fakeGameRepo повторяет контракт настоящего репозитория: незавершенные игры
// видны, завершенные для Update/Get недоступны
type fakeGameRepo struct {
	games map[string]*model.Game
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: map[string]*model.Game{}}
}

func (r *fakeGameRepo) CreateGame(_ context.Context, game *model.Game) error {
	g := *game
	r.games[game.ID] = &g
	return nil
}

func (r *fakeGameRepo) active(gameID string, playerID int64) (*model.Game, error) {
	g, ok := r.games[gameID]
	if !ok || g.IsFinished || g.PlayerID != playerID {
		return nil, repository.ErrNotFound
	}
	clone := *g
	clone.OpenedCases = append([]int(nil), g.OpenedCases...)
	clone.BankerOffers = append([]model.BankerOffer(nil), g.BankerOffers...)
	return &clone, nil
}

func (r *fakeGameRepo) GetActiveGame(_ context.Context, gameID string, playerID int64) (*model.Game, error) {
	return r.active(gameID, playerID)
}

func (r *fakeGameRepo) GetActiveGameForUpdate(_ context.Context, gameID string, playerID int64) (*model.Game, error) {
	return r.active(gameID, playerID)
}

func (r *fakeGameRepo) GetActiveGameByEvent(_ context.Context, playerID, eventID int64) (*model.Game, error) {
	for _, g := range r.games {
		if !g.IsFinished && g.PlayerID == playerID && g.EventID == eventID {
			return g, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeGameRepo) UpdateOpenedCases(_ context.Context, gameID string, opened []int) error {
	g, ok := r.games[gameID]
	if !ok || g.IsFinished {
		return repository.ErrNotFound
	}
	g.OpenedCases = append([]int(nil), opened...)
	return nil
}

func (r *fakeGameRepo) UpdateBankerOffers(_ context.Context, gameID string, offers []model.BankerOffer) error {
	g, ok := r.games[gameID]
	if !ok || g.IsFinished {
		return repository.ErrNotFound
	}
	g.BankerOffers = append([]model.BankerOffer(nil), offers...)
	return nil
}

func (r *fakeGameRepo) FinishGame(_ context.Context, gameID string, finalPrizeID *int64, wonAmount int64, finishedAt time.Time) error {
	g, ok := r.games[gameID]
	if !ok || g.IsFinished {
		return repository.ErrNotFound
	}
	g.IsFinished = true
	g.FinalPrizeID = finalPrizeID
	g.WonAmount = &wonAmount
	g.FinishedAt = &finishedAt
	return nil
}

func (r *fakeGameRepo) HasUnfinishedGames(_ context.Context, eventID int64) (bool, error) {
	for _, g := range r.games {
		if !g.IsFinished && g.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}

type fakeHistoryRepo struct {
	entries []model.HistoryEntry
}

func (r *fakeHistoryRepo) AddEntry(_ context.Context, entry *model.HistoryEntry) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeHistoryRepo) ListRecent(_ context.Context, limit int) ([]model.HistoryEntry, error) {
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]model.HistoryEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

type fakeLeaderboardRepo struct {
	wins map[int64]map[int64]int64
}

func newFakeLeaderboardRepo() *fakeLeaderboardRepo {
	return &fakeLeaderboardRepo{wins: map[int64]map[int64]int64{}}
}

func (r *fakeLeaderboardRepo) AddWin(_ context.Context, eventID, playerID, amount int64) error {
	if r.wins[eventID] == nil {
		r.wins[eventID] = map[int64]int64{}
	}
	r.wins[eventID][playerID] += amount
	return nil
}

func (r *fakeLeaderboardRepo) Top(_ context.Context, eventID int64, n int64) ([]model.LeaderboardRow, error) {
	var out []model.LeaderboardRow
	for playerID, total := range r.wins[eventID] {
		out = append(out, model.LeaderboardRow{PlayerID: playerID, TotalWon: total})
	}
	return out, nil
}

type GameServiceSuite struct {
	suite.Suite

	ctx             context.Context
	eventRepo       *fakeEventRepo
	gameRepo        *fakeGameRepo
	historyRepo     *fakeHistoryRepo
	leaderboardRepo *fakeLeaderboardRepo
	serv            service.GameService
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceSuite))
}

func (s *GameServiceSuite) SetupTest() {
	s.ctx = middleware.WithUserID(context.Background(), testPlayerID)
	s.eventRepo = newFakeEventRepo()
	s.gameRepo = newFakeGameRepo()
	s.historyRepo = &fakeHistoryRepo{}
	s.leaderboardRepo = newFakeLeaderboardRepo()

	s.eventRepo.events[testEventID] = model.Event{ID: testEventID, Name: "Puzzle Place", IsActive: true}

	s.serv = NewGameService(
		cfgStub{caseCount: 6, maxPrizes: 26, rate: 0.8},
		s.gameRepo,
		s.eventRepo,
		s.historyRepo,
		s.leaderboardRepo,
		fakeTxManager{},
	)
}

// seedUniformPrizes кладет в пул призы с одинаковым значением, чтобы
// предложение банкира было детерминированным при случайной раскладке
func (s *GameServiceSuite) seedUniformPrizes(n int, value int64) {
	for i := 0; i < n; i++ {
		s.eventRepo.prizes[testEventID] = append(s.eventRepo.prizes[testEventID], model.Prize{
			ID:      int64(i + 1),
			EventID: testEventID,
			Name:    "Приз",
			Value:   value,
		})
	}
}

func (s *GameServiceSuite) TestStartGameAssignsAllCases() {
	s.eventRepo.prizes[testEventID] = []model.Prize{
		{ID: 1, EventID: testEventID, Value: 100},
		{ID: 2, EventID: testEventID, Value: 80},
		{ID: 3, EventID: testEventID, Value: 60},
		{ID: 4, EventID: testEventID, Value: 40},
		{ID: 5, EventID: testEventID, Value: 0, IsBlank: true},
	}

	game, err := s.serv.StartGame(s.ctx, testEventID)
	s.Require().NoError(err)
	s.Require().Len(game.CaseAssignments, 6)

	counts := map[int64]int{}
	for i, ca := range game.CaseAssignments {
		s.Equal(i+1, ca.CaseNumber)
		counts[ca.PrizeID]++
	}

	// 5 призов на 6 кейсов: каждый приз хотя бы раз, ровно один дважды
	s.Len(counts, 5)
	for id, n := range counts {
		s.LessOrEqual(n, 2, "prize %d", id)
	}
}

func (s *GameServiceSuite) TestStartGameConflict() {
	s.seedUniformPrizes(4, 100)

	_, err := s.serv.StartGame(s.ctx, testEventID)
	s.Require().NoError(err)

	_, err = s.serv.StartGame(s.ctx, testEventID)
	s.ErrorIs(err, ErrActiveGameExists)
}

func (s *GameServiceSuite) TestStartGameUnknownEvent() {
	_, err := s.serv.StartGame(s.ctx, 999)
	s.ErrorIs(err, ErrEventNotFound)
}

func (s *GameServiceSuite) TestStartGameInactiveEvent() {
	s.eventRepo.events[testEventID] = model.Event{ID: testEventID, IsActive: false}
	s.seedUniformPrizes(4, 100)

	_, err := s.serv.StartGame(s.ctx, testEventID)
	s.ErrorIs(err, ErrEventNotFound)
}

func (s *GameServiceSuite) TestStartGameEmptyPool() {
	_, err := s.serv.StartGame(s.ctx, testEventID)
	s.ErrorIs(err, ErrEmptyPrizePool)
}

func (s *GameServiceSuite) TestStartGameNoUser() {
	s.seedUniformPrizes(4, 100)

	_, err := s.serv.StartGame(context.Background(), testEventID)
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *GameServiceSuite) TestOpenCase() {
	s.seedUniformPrizes(4, 100)

	game, err := s.serv.StartGame(s.ctx, testEventID)
	s.Require().NoError(err)

	res, err := s.serv.OpenCase(s.ctx, game.ID, 1)
	s.Require().NoError(err)
	s.Equal(1, res.CaseNumber)
	s.Equal(int64(100), res.Prize.Value)
	s.Equal([]int{1}, res.OpenedCases)
}

func (s *GameServiceSuite) TestOpenCaseDuplicateRejected() {
	s.seedUniformPrizes(4, 100)

	game, err := s.serv.StartGame(s.ctx, testEventID)
	s.Require().NoError(err)

	_, err = s.serv.OpenCase(s.ctx, game.ID, 2)
	s.Require().NoError(err)

	_, err = s.serv.OpenCase(s.ctx, game.ID, 2)
	s.ErrorIs(err, ErrCaseAlreadyOpened)

	// Повторное вскрытие не мутирует состояние
	stored := s.gameRepo.games[game.ID]
	s.Equal([]int{2}, stored.OpenedCases)
}

func (s *GameServiceSuite) TestOpenCaseUnknownCase() {
	s.seedUniformPrizes(4, 100)

	game, err := s.serv.StartGame(s.ctx, testEventID)
	s.Require().NoError(err)

	_, err = s.serv.OpenCase(s.ctx, game.ID, 99)
	s.ErrorIs(err, ErrInvalidCase)
}

func (s *GameServiceSuite) TestOpenCaseUnknownGame() {
	_, err := s.serv.OpenCase(s.ctx, "no-such-game", 1)
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceSuite) TestBankerOfferRequiresOpenedCase() {
	s.seedUniformPrizes(4, 100)

	game, err := s.serv.StartGame(s.ctx, testEventID)
	s.Require().NoError(err)

	_, err = s.serv.BankerOffer(s.ctx, game.ID)
	s.ErrorIs(err, ErrNoCasesOpened)
}

func (s *GameServiceSuite) TestBankerOfferUniformPool() {
	// Все призы по 100: среднее не зависит от раскладки
	s.seedUniformPrizes(6, 100)

	game, err := s.serv.StartGame(s.ctx, testEventID)
	s.Require().NoError(err)

	_, err = s.serv.OpenCase(s.ctx, game.ID, 3)
	s.Require().NoError(err)

	offer, err := s.serv.BankerOffer(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(int64(80), offer)

	// Каждый расчет дописывается в историю предложений
	stored := s.gameRepo.games[game.ID]
	s.Require().Len(stored.BankerOffers, 1)
	s.Equal(int64(80), stored.BankerOffers[0].Amount)
	s.Equal(1, stored.BankerOffers[0].AtCaseCount)
	s.False(stored.BankerOffers[0].Accepted)
}

func (s *GameServiceSuite) TestBankerOfferAllBlanksIsZero() {
	s.seedUniformPrizes(4, 0)

	game, err := s.serv.StartGame(s.ctx, testEventID)
	s.Require().NoError(err)

	_, err = s.serv.OpenCase(s.ctx, game.ID, 1)
	s.Require().NoError(err)

	offer, err := s.serv.BankerOffer(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(int64(0), offer)
}

func (s *GameServiceSuite) TestAcceptOfferMismatch() {
	s.seedUniformPrizes(6, 100)

	game, err := s.serv.StartGame(s.ctx, testEventID)
	s.Require().NoError(err)

	// Без единого рассчитанного предложения принимать нечего
	_, err = s.serv.AcceptOffer(s.ctx, game.ID, 80)
	s.ErrorIs(err, ErrOfferMismatch)

	_, err = s.serv.OpenCase(s.ctx, game.ID, 1)
	s.Require().NoError(err)

	_, err = s.serv.BankerOffer(s.ctx, game.ID)
	s.Require().NoError(err)

	_, err = s.serv.AcceptOffer(s.ctx, game.ID, 9999)
	s.ErrorIs(err, ErrOfferMismatch)

	// Игра не завершена, предложение не принято
	stored := s.gameRepo.games[game.ID]
	s.False(stored.IsFinished)
	s.False(stored.BankerOffers[0].Accepted)
}

func (s *GameServiceSuite) TestAcceptOfferFinishesGame() {
	s.seedUniformPrizes(6, 100)

	game, err := s.serv.StartGame(s.ctx, testEventID)
	s.Require().NoError(err)

	_, err = s.serv.OpenCase(s.ctx, game.ID, 1)
	s.Require().NoError(err)

	offer, err := s.serv.BankerOffer(s.ctx, game.ID)
	s.Require().NoError(err)

	won, err := s.serv.AcceptOffer(s.ctx, game.ID, offer)
	s.Require().NoError(err)
	s.Equal(offer, won)

	stored := s.gameRepo.games[game.ID]
	s.True(stored.IsFinished)
	s.Nil(stored.FinalPrizeID)
	s.Require().NotNil(stored.WonAmount)
	s.Equal(offer, *stored.WonAmount)
	s.True(stored.BankerOffers[len(stored.BankerOffers)-1].Accepted)

	// Ровно одна запись истории и зачтенный выигрыш в таблице лидеров
	s.Require().Len(s.historyRepo.entries, 1)
	s.Equal(offer, s.historyRepo.entries[0].PrizeValue)
	s.Equal(testPlayerID, s.historyRepo.entries[0].PlayerID)
	s.Equal(offer, s.leaderboardRepo.wins[testEventID][testPlayerID])

	// Завершенная игра терминальна: дальнейшие операции её не видят
	_, err = s.serv.OpenCase(s.ctx, game.ID, 2)
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceSuite) TestFinishGame() {
	s.seedUniformPrizes(6, 100)

	game, err := s.serv.StartGame(s.ctx, testEventID)
	s.Require().NoError(err)

	res, err := s.serv.FinishGame(s.ctx, game.ID, 5)
	s.Require().NoError(err)
	s.Equal(int64(100), res.WonAmount)
	s.Equal(int64(100), res.Prize.Value)

	stored := s.gameRepo.games[game.ID]
	s.True(stored.IsFinished)
	s.Require().NotNil(stored.FinalPrizeID)
	s.Equal(res.Prize.ID, *stored.FinalPrizeID)

	s.Require().Len(s.historyRepo.entries, 1)
	s.Equal(res.Prize.Name, s.historyRepo.entries[0].PrizeName)
	s.Equal(int64(100), s.leaderboardRepo.wins[testEventID][testPlayerID])

	// Повторное завершение отклоняется
	_, err = s.serv.FinishGame(s.ctx, game.ID, 5)
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceSuite) TestFinishGameOnBlankPrize() {
	s.eventRepo.prizes[testEventID] = []model.Prize{
		{ID: 1, EventID: testEventID, Name: "Сто", Value: 100},
		{ID: 2, EventID: testEventID, Name: "Восемьдесят", Value: 80},
		{ID: 3, EventID: testEventID, Name: "Пустышка", Value: 0, IsBlank: true},
	}

	game, err := s.serv.StartGame(s.ctx, testEventID)
	s.Require().NoError(err)

	// Находим кейс, которому досталась пустышка
	blankCase := 0
	for _, ca := range game.CaseAssignments {
		if ca.PrizeID == 3 {
			blankCase = ca.CaseNumber
			break
		}
	}
	s.Require().NotZero(blankCase)

	res, err := s.serv.FinishGame(s.ctx, game.ID, blankCase)
	s.Require().NoError(err)

	// Пустышка в финальном кейсе: нулевой выигрыш, игра все равно завершается
	s.Equal(int64(0), res.WonAmount)
	s.True(res.Prize.IsBlank)
	s.Equal(int64(3), res.Prize.ID)

	stored := s.gameRepo.games[game.ID]
	s.True(stored.IsFinished)
	s.Require().NotNil(stored.WonAmount)
	s.Equal(int64(0), *stored.WonAmount)

	s.Require().Len(s.historyRepo.entries, 1)
	s.Equal("Пустышка", s.historyRepo.entries[0].PrizeName)
	s.Equal(int64(0), s.historyRepo.entries[0].PrizeValue)
	s.Equal(int64(0), s.leaderboardRepo.wins[testEventID][testPlayerID])
}

func (s *GameServiceSuite) TestFinishGameUnknownCase() {
	s.seedUniformPrizes(6, 100)

	game, err := s.serv.StartGame(s.ctx, testEventID)
	s.Require().NoError(err)

	_, err = s.serv.FinishGame(s.ctx, game.ID, 42)
	s.ErrorIs(err, ErrCaseNotFound)
}
