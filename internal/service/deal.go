package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/dealsync/internal/entity"
)

// upsertDeal updates the deal carrying the job number or creates it. Calls for one job number are serialized.
func (s *Service) upsertDeal(ctx context.Context, deal entity.Deal) (id string, created bool, err error) {
	unlock := s.deals.Lock(deal.JobNumber)
	defer unlock()

	id, err = s.crm.FindByProperty(ctx, entity.ObjectDeals, s.settings.JobNumberField, deal.JobNumber)
	switch {
	case err == nil:
		return id, false, s.updateDeal(ctx, id, deal)
	case !errors.Is(err, entity.ErrNotFound):
		return "", false, fmt.Errorf("find deal: %w", err)
	}

	if deal.Stage == "" {
		deal.Stage = entity.DefaultStage
	}

	id, err = s.crm.Create(ctx, entity.ObjectDeals, deal.Properties(s.settings.JobNumberField, s.settings.Pipeline))
	if err == nil {
		slog.InfoContext(ctx, "deal created", slog.String("deal_id", id))
		return id, true, nil
	}

	if !errors.Is(err, entity.ErrDuplicate) {
		return "", false, fmt.Errorf("create deal: %w", err)
	}

	slog.WarnContext(ctx, "deal create rejected as duplicate, searching again")

	id, findErr := s.crm.FindByProperty(ctx, entity.ObjectDeals, s.settings.JobNumberField, deal.JobNumber)
	if findErr != nil {
		return "", false, fmt.Errorf("create deal: %w, follow-up search: %w", err, findErr)
	}

	return id, false, s.updateDeal(ctx, id, deal)
}

func (s *Service) updateDeal(ctx context.Context, id string, deal entity.Deal) error {
	err := s.crm.Update(ctx, entity.ObjectDeals, id, deal.Properties(s.settings.JobNumberField, s.settings.Pipeline))
	if err != nil {
		return fmt.Errorf("update deal %s: %w", id, err)
	}

	slog.InfoContext(ctx, "deal updated", slog.String("deal_id", id))

	return nil
}
