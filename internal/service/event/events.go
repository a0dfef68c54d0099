package event

import (
	"context"
	"errors"

	"puzzle_place/internal/model"
	"puzzle_place/internal/repository"
)

func (s *serv) CreateEvent(ctx context.Context, event *model.Event) (int64, error) {
	event.IsActive = true
	return s.eventRepo.CreateEvent(ctx, event)
}

func (s *serv) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	event, err := s.eventRepo.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *serv) ListEvents(ctx context.Context) ([]model.Event, error) {
	return s.eventRepo.ListActiveEvents(ctx)
}

func (s *serv) UpdateEvent(ctx context.Context, event *model.Event) error {
	err := s.eventRepo.UpdateEvent(ctx, event)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEventNotFound
	}
	return err
}

// DeleteEvent - мягкое удаление: ивент деактивируется, начатые игры доигрываются
func (s *serv) DeleteEvent(ctx context.Context, id int64) error {
	err := s.eventRepo.DeactivateEvent(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEventNotFound
	}
	return err
}
