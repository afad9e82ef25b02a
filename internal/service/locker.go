package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bokuwaitgel/smart-locker-panel/internal/core"
	"github.com/bokuwaitgel/smart-locker-panel/internal/domain/model"
	apperrors "github.com/bokuwaitgel/smart-locker-panel/internal/errors"
)

const openLockerFallback = "Failed to open locker. Please try again."

// LockerServiceOptions groups dependencies for LockerService.
type LockerServiceOptions struct {
	Repo     core.LockerRepository
	Messages *MessageExtractor
}

// LockerService lists, updates and remotely opens lockers.
type LockerService struct {
	repo     core.LockerRepository
	messages *MessageExtractor
}

// NewLockerService constructs a LockerService.
func NewLockerService(opts LockerServiceOptions) *LockerService {
	if opts.Repo == nil {
		panic("LockerRepository is required")
	}
	return &LockerService{repo: opts.Repo, messages: opts.Messages}
}

// LockerView is the locker page model: the filtered list plus the facets
// computed over the full list.
type LockerView struct {
	Lockers []model.Locker
	Boards  []string
	Counts  map[model.LockerStatus]int
	Total   int
	Filter  model.LockerFilter
}

// View fetches every locker and narrows it by board locally.
func (s *LockerService) View(ctx context.Context, filter model.LockerFilter) (*LockerView, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filter.BoardID = strings.TrimSpace(filter.BoardID)
	shown := model.FilterLockers(all, filter)
	return &LockerView{
		Lockers: shown,
		Boards:  model.BoardIDs(all),
		Counts:  model.CountLockersByStatus(shown),
		Total:   len(all),
		Filter:  filter,
	}, nil
}

// SetStatus parses the raw status before updating locker id.
func (s *LockerService) SetStatus(ctx context.Context, id int64, raw string) error {
	status, ok := model.ParseLockerStatus(raw)
	if !ok {
		return apperrors.Validationf("unknown locker status %q", raw)
	}
	return s.repo.SetStatus(ctx, id, status)
}

// Open asks the backend to open a locker and returns the confirmation to show.
// Failures come back as *ActionError carrying the backend's message or a fallback.
func (s *LockerService) Open(ctx context.Context, req model.OpenLockerRequest) (string, error) {
	req.LockerNumber = strings.TrimSpace(req.LockerNumber)
	req.BoardID = strings.TrimSpace(req.BoardID)
	if err := req.Validate(); err != nil {
		return "", &ActionError{Message: err.Error(), Err: apperrors.Validation(err.Error())}
	}
	msg, err := s.repo.Open(ctx, req)
	if err != nil {
		return "", s.messages.actionError(err, openLockerFallback)
	}
	if strings.TrimSpace(msg) == "" {
		msg = fmt.Sprintf("Locker %s open request sent successfully.", req.LockerNumber)
	}
	return msg, nil
}
