package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/dealsync/internal/entity"
)

func (s *Service) resolveCompany(ctx context.Context, c entity.Company) (string, error) {
	return s.resolve(ctx, entity.ObjectCompanies, entity.PropertyCompanyName, c.Name, c.Properties())
}

func (s *Service) resolveContact(ctx context.Context, c entity.Contact) (string, error) {
	return s.resolve(ctx, entity.ObjectContacts, entity.PropertyContactEmail, c.Email, c.Properties())
}

// resolve returns the id of the record whose property equals value, creating it when missing.
// Concurrent calls for the same record share one lookup.
func (s *Service) resolve(
	ctx context.Context,
	objectType entity.ObjectType,
	property, value string,
	props entity.Properties,
) (string, error) {
	key := objectType.String() + ":" + value

	// The shared call must not die with the request that happened to start it.
	sharedCtx := context.WithoutCancel(ctx)

	ch := s.resolves.DoChan(key, func() (any, error) {
		return s.findOrCreate(sharedCtx, objectType, property, value, props)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return "", r.Err
		}

		return r.Val.(string), nil //nolint:forcetypeassert
	}
}

func (s *Service) findOrCreate(
	ctx context.Context,
	objectType entity.ObjectType,
	property, value string,
	props entity.Properties,
) (string, error) {
	id, err := s.crm.FindByProperty(ctx, objectType, property, value)
	if err == nil {
		return id, nil
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return "", fmt.Errorf("find: %w", err)
	}

	id, err = s.crm.Create(ctx, objectType, props)
	if err == nil {
		slog.InfoContext(ctx, "record created",
			slog.String("object", objectType.String()), slog.String("id", id))

		return id, nil
	}

	if !errors.Is(err, entity.ErrDuplicate) {
		return "", fmt.Errorf("create: %w", err)
	}

	slog.WarnContext(ctx, "create rejected as duplicate, searching again",
		slog.String("object", objectType.String()), slog.String(property, value))

	id, findErr := s.crm.FindByProperty(ctx, objectType, property, value)
	if findErr != nil {
		return "", fmt.Errorf("create: %w, follow-up search: %w", err, findErr)
	}

	return id, nil
}
