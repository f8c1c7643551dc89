package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/samandr77/microservices/dealsync/internal/entity"
	"github.com/samandr77/microservices/dealsync/pkg/keylock"
	"github.com/samandr77/microservices/dealsync/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type CRM interface {
	FindByProperty(ctx context.Context, objectType entity.ObjectType, property, value string) (string, error)
	Create(ctx context.Context, objectType entity.ObjectType, props entity.Properties) (string, error)
	Update(ctx context.Context, objectType entity.ObjectType, id string, props entity.Properties) error
	Associate(ctx context.Context, assoc entity.Association, fromID, toID string) error
}

type Producer interface {
	SendDealSynced(ctx context.Context, jobNumber string, result entity.SyncResult)
}

type Settings struct {
	JobNumberField string
	Pipeline       string
}

type Service struct {
	crm      CRM
	producer Producer
	settings Settings

	resolves singleflight.Group
	deals    *keylock.Map
}

// New creates the service. producer may be nil.
func New(crm CRM, producer Producer, settings Settings) *Service {
	return &Service{
		crm:      crm,
		producer: producer,
		settings: settings,
		deals:    keylock.New(),
	}
}

// SyncDeal reconciles one job with the CRM: the companies and the contact are found or created,
// the deal is upserted by job number and then linked to them.
func (s *Service) SyncDeal(ctx context.Context, job entity.Job) (entity.SyncResult, error) {
	job = job.Normalize()

	err := validateJob(job)
	if err != nil {
		return entity.SyncResult{}, err
	}

	ctx = logger.WithJobNumber(ctx, job.JobNumber)

	var res entity.SyncResult

	g, gctx := errgroup.WithContext(ctx)

	// A parent named like the company is the company itself, created with the company's full payload.
	parentIsCompany := job.ParentCompany != "" && job.ParentCompany == job.CompanyName

	if job.ParentCompany != "" && !parentIsCompany {
		g.Go(func() error {
			id, err := s.resolveCompany(gctx, job.Parent())
			if err != nil {
				return fmt.Errorf("resolve parent company %q: %w", job.ParentCompany, err)
			}

			res.ParentCompanyID = id

			return nil
		})
	}

	if job.CompanyName != "" {
		g.Go(func() error {
			id, err := s.resolveCompany(gctx, job.Company())
			if err != nil {
				return fmt.Errorf("resolve company %q: %w", job.CompanyName, err)
			}

			res.CompanyID = id

			return nil
		})
	}

	if job.ContactEmail != "" {
		g.Go(func() error {
			id, err := s.resolveContact(gctx, job.Contact())
			if err != nil {
				return fmt.Errorf("resolve contact %q: %w", job.ContactEmail, err)
			}

			res.ContactID = id

			return nil
		})
	}

	g.Go(func() error {
		id, created, err := s.upsertDeal(gctx, job.Deal())
		if err != nil {
			return fmt.Errorf("upsert deal: %w", err)
		}

		res.DealID = id
		res.DealCreated = created

		return nil
	})

	err = g.Wait()
	if err != nil {
		return entity.SyncResult{}, err
	}

	if parentIsCompany {
		res.ParentCompanyID = res.CompanyID
	}

	err = s.link(ctx, res)
	if err != nil {
		return entity.SyncResult{}, err
	}

	if s.producer != nil {
		s.producer.SendDealSynced(ctx, job.JobNumber, res)
	}

	slog.InfoContext(ctx, "deal synced",
		slog.String("deal_id", res.DealID),
		slog.Bool("created", res.DealCreated),
		slog.String("company_id", res.CompanyID),
		slog.String("parent_company_id", res.ParentCompanyID),
		slog.String("contact_id", res.ContactID),
	)

	return res, nil
}

// link asserts the company hierarchy and the deal associations. Nothing is rolled back on failure.
func (s *Service) link(ctx context.Context, res entity.SyncResult) error {
	if res.ParentCompanyID != "" && res.CompanyID != "" && res.ParentCompanyID != res.CompanyID {
		err := s.crm.Associate(ctx, entity.AssocCompanyToParent, res.CompanyID, res.ParentCompanyID)
		if err != nil {
			return fmt.Errorf("link company to parent: %w", err)
		}
	}

	if res.ContactID != "" {
		err := s.crm.Associate(ctx, entity.AssocDealToContact, res.DealID, res.ContactID)
		if err != nil {
			return fmt.Errorf("link deal to contact: %w", err)
		}
	}

	if res.CompanyID != "" {
		err := s.crm.Associate(ctx, entity.AssocDealToCompany, res.DealID, res.CompanyID)
		if err != nil {
			return fmt.Errorf("link deal to company: %w", err)
		}
	}

	return nil
}
