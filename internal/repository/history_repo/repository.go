package history_repo

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"puzzle_place/internal/model"
	"puzzle_place/internal/repository"
)

const (
	table         = "history"
	colID         = "id"
	colEventID    = "event_id"
	colPlayerID   = "player_id"
	colPrizeName  = "prize_name"
	colPrizeValue = "prize_value"
	colPlayedAt   = "played_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewHistoryRepository(dbc *pgxpool.Pool) repository.HistoryRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// AddEntry - дописывает запись о завершенной игре. Таблица append-only
func (r *repo) AddEntry(ctx context.Context, entry *model.HistoryEntry) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colEventID, colPlayerID, colPrizeName, colPrizeValue, colPlayedAt).
		Values(entry.EventID, entry.PlayerID, entry.PrizeName, entry.PrizeValue, entry.PlayedAt).
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

// ListRecent - последние завершенные игры
func (r *repo) ListRecent(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	// Формируем запрос
	query := sq.Select(colID, colEventID, colPlayerID, colPrizeName, colPrizeValue, colPlayedAt).
		From(table).
		OrderBy(colPlayedAt + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.HistoryEntry
	for rows.Next() {
		var entry model.HistoryEntry
		err = rows.Scan(&entry.ID, &entry.EventID, &entry.PlayerID,
			&entry.PrizeName, &entry.PrizeValue, &entry.PlayedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
