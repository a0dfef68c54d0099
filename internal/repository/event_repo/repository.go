package event_repo

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"puzzle_place/internal/model"
	"puzzle_place/internal/repository"
)

const (
	table          = "events"
	colID          = "id"
	colName        = "name"
	colDescription = "description"
	colIsActive    = "is_active"
	colCreatedAt   = "created_at"

	prizeTable   = "prizes"
	colPrizeID   = "id"
	colEventID   = "event_id"
	colPrizeName = "name"
	colValue     = "value"
	colIsBlank   = "is_blank"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewEventRepository(dbc *pgxpool.Pool) repository.EventRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateEvent - создает ивент, возвращает его ID
func (r *repo) CreateEvent(ctx context.Context, event *model.Event) (int64, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colName, colDescription, colIsActive).
		Values(event.Name, event.Description, event.IsActive).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetEvent - возвращает ивент по ID
func (r *repo) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	// Формируем запрос
	query := sq.Select(colID, colName, colDescription, colIsActive, colCreatedAt).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var event model.Event
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&event.ID, &event.Name, &event.Description, &event.IsActive, &event.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &event, nil
}

// ListActiveEvents - возвращает все активные ивенты
func (r *repo) ListActiveEvents(ctx context.Context) ([]model.Event, error) {
	// Формируем запрос
	query := sq.Select(colID, colName, colDescription, colIsActive, colCreatedAt).
		From(table).
		Where(sq.Eq{colIsActive: true}).
		OrderBy(colCreatedAt + " DESC").
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

	var events []model.Event
	for rows.Next() {
		var event model.Event
		err = rows.Scan(&event.ID, &event.Name, &event.Description, &event.IsActive, &event.CreatedAt)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// UpdateEvent - обновляет имя, описание и активность ивента
func (r *repo) UpdateEvent(ctx context.Context, event *model.Event) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colName, event.Name).
		Set(colDescription, event.Description).
		Set(colIsActive, event.IsActive).
		Where(sq.Eq{colID: event.ID}).
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

// DeactivateEvent - мягкое удаление: ивент перестает быть доступным для новых игр
func (r *repo) DeactivateEvent(ctx context.Context, id int64) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colIsActive, false).
		Where(sq.Eq{colID: id}).
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

// AddPrize - добавляет приз в пул ивента, возвращает ID приза
func (r *repo) AddPrize(ctx context.Context, prize *model.Prize) (int64, error) {
	// Формируем запрос
	query := sq.Insert(prizeTable).
		Columns(colEventID, colPrizeName, colValue, colIsBlank).
		Values(prize.EventID, prize.Name, prize.Value, prize.IsBlank).
		Suffix("RETURNING " + colPrizeID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetPrizes - возвращает пул призов ивента в порядке добавления
func (r *repo) GetPrizes(ctx context.Context, eventID int64) ([]model.Prize, error) {
	// Формируем запрос
	query := sq.Select(colPrizeID, colEventID, colPrizeName, colValue, colIsBlank).
		From(prizeTable).
		Where(sq.Eq{colEventID: eventID}).
		OrderBy(colPrizeID).
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

	var prizes []model.Prize
	for rows.Next() {
		var prize model.Prize
		err = rows.Scan(&prize.ID, &prize.EventID, &prize.Name, &prize.Value, &prize.IsBlank)
		if err != nil {
			return nil, err
		}
		prizes = append(prizes, prize)
	}

	return prizes, rows.Err()
}

// DeletePrize - удаляет приз из пула ивента
func (r *repo) DeletePrize(ctx context.Context, eventID, prizeID int64) error {
	// Формируем запрос
	query := sq.Delete(prizeTable).
		Where(sq.Eq{colPrizeID: prizeID, colEventID: eventID}).
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
