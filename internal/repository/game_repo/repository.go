package game_repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"puzzle_place/internal/model"
	"puzzle_place/internal/repository"
)

const (
	table              = "games"
	colGameID          = "game_id"
	colEventID         = "event_id"
	colPlayerID        = "player_id"
	colCaseAssignments = "case_assignments"
	colOpenedCases     = "opened_cases"
	colBankerOffers    = "banker_offers"
	colIsFinished      = "is_finished"
	colFinalPrizeID    = "final_prize_id"
	colWonAmount       = "won_amount"
	colStartedAt       = "started_at"
	colFinishedAt      = "finished_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewGameRepository(dbc *pgxpool.Pool) repository.GameRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateGame - сохраняет новую игру. Раскладка кейсов и списки хранятся в jsonb
func (r *repo) CreateGame(ctx context.Context, game *model.Game) error {
	assignmentsJSON, err := json.Marshal(game.CaseAssignments)
	if err != nil {
		return err
	}

	openedJSON, err := json.Marshal(game.OpenedCases)
	if err != nil {
		return err
	}

	offersJSON, err := json.Marshal(game.BankerOffers)
	if err != nil {
		return err
	}

	// Формируем запрос
	query := sq.Insert(table).
		Columns(colGameID, colEventID, colPlayerID, colCaseAssignments,
			colOpenedCases, colBankerOffers, colIsFinished, colStartedAt).
		Values(game.ID, game.EventID, game.PlayerID, assignmentsJSON,
			openedJSON, offersJSON, game.IsFinished, game.StartedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetActiveGame - возвращает незавершенную игру игрока по ее ID.
// Завершенные игры фильтруются на уровне запроса: так обеспечивается
// терминальность - любая мутация завершенной игры падает как NotFound
func (r *repo) GetActiveGame(ctx context.Context, gameID string, playerID int64) (*model.Game, error) {
	return r.getActiveGame(ctx, gameID, playerID, false)
}

// GetActiveGameForUpdate - то же самое, но с блокировкой строки (FOR UPDATE).
// Вызывается внутри транзакции и сериализует конкурентные read-modify-write
// по одной игре
func (r *repo) GetActiveGameForUpdate(ctx context.Context, gameID string, playerID int64) (*model.Game, error) {
	return r.getActiveGame(ctx, gameID, playerID, true)
}

func (r *repo) getActiveGame(ctx context.Context, gameID string, playerID int64, forUpdate bool) (*model.Game, error) {
	// Формируем запрос
	query := sq.Select(colGameID, colEventID, colPlayerID, colCaseAssignments,
		colOpenedCases, colBankerOffers, colIsFinished, colFinalPrizeID,
		colWonAmount, colStartedAt, colFinishedAt).
		From(table).
		Where(sq.Eq{colGameID: gameID, colPlayerID: playerID, colIsFinished: false}).
		PlaceholderFormat(sq.Dollar)

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanGame(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
}

// GetActiveGameByEvent - ищет незавершенную игру игрока на ивенте.
// Используется для инварианта "одна активная игра на пару игрок-ивент"
func (r *repo) GetActiveGameByEvent(ctx context.Context, playerID, eventID int64) (*model.Game, error) {
	// Формируем запрос
	query := sq.Select(colGameID, colEventID, colPlayerID, colCaseAssignments,
		colOpenedCases, colBankerOffers, colIsFinished, colFinalPrizeID,
		colWonAmount, colStartedAt, colFinishedAt).
		From(table).
		Where(sq.Eq{colPlayerID: playerID, colEventID: eventID, colIsFinished: false}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanGame(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
}

func (r *repo) scanGame(row pgx.Row) (*model.Game, error) {
	var (
		game            model.Game
		assignmentsJSON []byte
		openedJSON      []byte
		offersJSON      []byte
	)

	err := row.Scan(&game.ID, &game.EventID, &game.PlayerID, &assignmentsJSON,
		&openedJSON, &offersJSON, &game.IsFinished, &game.FinalPrizeID,
		&game.WonAmount, &game.StartedAt, &game.FinishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if err = json.Unmarshal(assignmentsJSON, &game.CaseAssignments); err != nil {
		return nil, err
	}
	if err = json.Unmarshal(openedJSON, &game.OpenedCases); err != nil {
		return nil, err
	}
	if err = json.Unmarshal(offersJSON, &game.BankerOffers); err != nil {
		return nil, err
	}

	return &game, nil
}

// UpdateOpenedCases - перезаписывает список вскрытых кейсов незавершенной игры
func (r *repo) UpdateOpenedCases(ctx context.Context, gameID string, opened []int) error {
	openedJSON, err := json.Marshal(opened)
	if err != nil {
		return err
	}

	return r.updateActive(ctx, gameID, sq.Update(table).Set(colOpenedCases, openedJSON))
}

// UpdateBankerOffers - перезаписывает историю предложений банкира
func (r *repo) UpdateBankerOffers(ctx context.Context, gameID string, offers []model.BankerOffer) error {
	offersJSON, err := json.Marshal(offers)
	if err != nil {
		return err
	}

	return r.updateActive(ctx, gameID, sq.Update(table).Set(colBankerOffers, offersJSON))
}

// FinishGame - переводит игру в терминальное состояние
func (r *repo) FinishGame(ctx context.Context, gameID string, finalPrizeID *int64, wonAmount int64, finishedAt time.Time) error {
	query := sq.Update(table).
		Set(colIsFinished, true).
		Set(colFinalPrizeID, finalPrizeID).
		Set(colWonAmount, wonAmount).
		Set(colFinishedAt, finishedAt)

	return r.updateActive(ctx, gameID, query)
}

// updateActive выполняет обновление только по незавершенной игре
func (r *repo) updateActive(ctx context.Context, gameID string, query sq.UpdateBuilder) error {
	query = query.
		Where(sq.Eq{colGameID: gameID, colIsFinished: false}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// HasUnfinishedGames - есть ли на ивенте хотя бы одна незавершенная игра
func (r *repo) HasUnfinishedGames(ctx context.Context, eventID int64) (bool, error) {
	// Формируем запрос
	query := sq.Select("1").
		From(table).
		Where(sq.Eq{colEventID: eventID, colIsFinished: false}).
		Limit(1).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
