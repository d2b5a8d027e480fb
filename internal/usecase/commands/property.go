package commands

import (
	"context"
	"errors"

	"guri24/internal/domain/money"
	"guri24/internal/domain/property"
	"guri24/internal/infra"
	"guri24/internal/pkg/clock"
	"guri24/internal/pkg/errs"
	"guri24/internal/usecase/queries"
	"guri24/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	maxSlugAttempts    = 50
	slugConstraintName = "properties_slug_key"
)

var (
	ErrInvalidProperty   = errs.New("invalid property")
	ErrSlugExhausted     = errs.New("no free slug for title")
	ErrPropertyNotStored = errs.New("property could not be stored")
	ErrViewNotRecorded   = errs.New("view could not be recorded")
	ErrNotPropertyOwner  = errs.New("not the listing owner")
	errSlugTakenOnCommit = errs.New("slug taken concurrently")
)

type CreatePropertyInput struct {
	Title       string
	Description string
	Type        string
	Purpose     string
	Status      string
	Price       string
	Location    string
	Latitude    *float64
	Longitude   *float64
	Bedrooms    *int32
	Bathrooms   *int32
	AreaSqm     *int32
	Features    []string
	Images      []string
}

// UpdatePropertyInput is a partial update; nil fields are left unchanged.
type UpdatePropertyInput struct {
	Title       *string
	Description *string
	Type        *string
	Purpose     *string
	Status      *string
	Price       *string
	Location    *string
	Latitude    *float64
	Longitude   *float64
	Bedrooms    *int32
	Bathrooms   *int32
	AreaSqm     *int32
	Features    []string
	Images      []string
}

// PropertyViewReader loads a property regardless of status.
type PropertyViewReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error)
}

type PropertyCommands interface {
	Create(ctx context.Context, in CreatePropertyInput, agentID uuid.UUID) (*queries.PropertyView, error)
	Update(ctx context.Context, id uuid.UUID, in UpdatePropertyInput, actor shared.Actor) (*queries.PropertyView, error)
	Archive(ctx context.Context, id uuid.UUID, actor shared.Actor) error
	RecordView(ctx context.Context, id uuid.UUID) error
}

type propertyCommandsImpl struct {
	uow    shared.UnitOfWork
	reader PropertyViewReader
	clock  clock.Clock
}

func NewPropertyCommands(uow shared.UnitOfWork, reader PropertyViewReader, clk clock.Clock) PropertyCommands {
	return &propertyCommandsImpl{uow: uow, reader: reader, clock: clk}
}

func (uc *propertyCommandsImpl) Create(ctx context.Context, in CreatePropertyInput, agentID uuid.UUID) (*queries.PropertyView, error) {
	p, err := uc.buildProperty(in, agentID)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidProperty)
	}

	err = uc.withSlugRetry(ctx, func(ctx context.Context, tx shared.Tx, attempt int) (int, error) {
		next, derr := uc.claimSlug(ctx, tx.Reads(), p, "", attempt)
		if derr != nil {
			return next, derr
		}
		return next, slugWriteErr(tx.Properties().Create(ctx, tx.DB(), p))
	})
	if err != nil {
		if errors.Is(err, ErrSlugExhausted) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrPropertyNotStored)
	}

	view, err := uc.reader.FindByID(ctx, p.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrPropertyNotStored)
	}
	return view, nil
}

// withSlugRetry runs write in a fresh transaction until it stops losing the
// slug to a concurrent writer. A slug that is free when checked can still be
// taken before commit; the unique index catches that and the search resumes
// from the next suffix.
func (uc *propertyCommandsImpl) withSlugRetry(ctx context.Context, write func(ctx context.Context, tx shared.Tx, attempt int) (int, error)) error {
	attempt := 0
	for {
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			next, derr := write(ctx, tx, attempt)
			attempt = next
			return derr
		})
		if !errors.Is(err, errSlugTakenOnCommit) {
			return err
		}
		attempt++
	}
}

func slugWriteErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintName(err) == slugConstraintName {
		return errs.Mark(err, errSlugTakenOnCommit)
	}
	return err
}

// claimSlug binds p to the first free candidate at or after attempt and
// returns the attempt number used. The listing's current slug counts as free.
func (uc *propertyCommandsImpl) claimSlug(ctx context.Context, reads shared.CommandReads, p *property.Property, own string, attempt int) (int, error) {
	for ; attempt < maxSlugAttempts; attempt++ {
		p.WithSlugAttempt(attempt)
		if own != "" && p.Slug() == own {
			return attempt, nil
		}
		taken, err := reads.SlugExists(ctx, p.Slug())
		if err != nil {
			return attempt, err
		}
		if !taken {
			return attempt, nil
		}
	}
	return attempt, ErrSlugExhausted
}

func (uc *propertyCommandsImpl) buildProperty(in CreatePropertyInput, agentID uuid.UUID) (*property.Property, error) {
	typ, err := property.NewType(in.Type)
	if err != nil {
		return nil, err
	}
	purpose, err := property.NewPurpose(in.Purpose)
	if err != nil {
		return nil, err
	}
	price, err := money.Parse(in.Price)
	if err != nil {
		return nil, err
	}

	return property.NewProperty(property.Details{
		Title:       in.Title,
		Description: in.Description,
		Type:        typ,
		Purpose:     purpose,
		Price:       price,
		Location:    in.Location,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		AreaSqm:     in.AreaSqm,
		Features:    in.Features,
		Images:      in.Images,
	}, property.Status(in.Status), agentID, uc.clock.Now())
}

func (uc *propertyCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdatePropertyInput, actor shared.Actor) (*queries.PropertyView, error) {
	patch, err := buildPatch(in)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidProperty)
	}

	err = uc.withSlugRetry(ctx, func(ctx context.Context, tx shared.Tx, attempt int) (int, error) {
		p, derr := uc.loadOwned(ctx, tx, id, actor)
		if derr != nil {
			return attempt, derr
		}
		own := p.Slug()
		retitled, derr := p.Apply(patch, uc.clock.Now())
		if derr != nil {
			return attempt, errs.Mark(derr, ErrInvalidProperty)
		}
		if retitled {
			if attempt, derr = uc.claimSlug(ctx, tx.Reads(), p, own, attempt); derr != nil {
				return attempt, derr
			}
		}
		return attempt, slugWriteErr(tx.Properties().Update(ctx, tx.DB(), p))
	})
	if err != nil {
		return nil, ownedWriteErr(err)
	}

	view, err := uc.reader.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrPropertyNotStored)
	}
	return view, nil
}

// Archive takes a listing off the catalog. Existing bookings keep pointing at it,
// so the row itself stays.
func (uc *propertyCommandsImpl) Archive(ctx context.Context, id uuid.UUID, actor shared.Actor) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, derr := uc.loadOwned(ctx, tx, id, actor)
		if derr != nil {
			return derr
		}
		p.Archive(uc.clock.Now())
		return tx.Properties().UpdateStatus(ctx, tx.DB(), p)
	})
	if err != nil {
		return ownedWriteErr(err)
	}
	return nil
}

// loadOwned locks the listing and checks that the actor owns it or is staff.
func (uc *propertyCommandsImpl) loadOwned(ctx context.Context, tx shared.Tx, id uuid.UUID, actor shared.Actor) (*property.Property, error) {
	p, err := tx.Reads().PropertyForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsOwnedBy(actor.ID) && !actor.Role.IsStaff() {
		return nil, ErrNotPropertyOwner
	}
	return p, nil
}

func ownedWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrPropertyNotFound)
	case errors.Is(err, ErrNotPropertyOwner),
		errors.Is(err, ErrInvalidProperty),
		errors.Is(err, ErrSlugExhausted):
		return err
	default:
		return errs.Mark(err, ErrPropertyNotStored)
	}
}

func buildPatch(in UpdatePropertyInput) (property.Patch, error) {
	patch := property.Patch{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		AreaSqm:     in.AreaSqm,
		Features:    in.Features,
		Images:      in.Images,
	}
	if in.Type != nil {
		typ, err := property.NewType(*in.Type)
		if err != nil {
			return property.Patch{}, err
		}
		patch.Type = &typ
	}
	if in.Purpose != nil {
		purpose, err := property.NewPurpose(*in.Purpose)
		if err != nil {
			return property.Patch{}, err
		}
		patch.Purpose = &purpose
	}
	if in.Status != nil {
		status, err := property.NewStatus(*in.Status)
		if err != nil {
			return property.Patch{}, err
		}
		patch.Status = &status
	}
	if in.Price != nil {
		price, err := money.Parse(*in.Price)
		if err != nil {
			return property.Patch{}, err
		}
		patch.Price = &price
	}
	return patch, nil
}

// RecordView bumps the view counter of a listing.
func (uc *propertyCommandsImpl) RecordView(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Properties().IncrementViews(ctx, tx.DB(), id)
	})
	if err != nil {
		return errs.Mark(err, ErrViewNotRecorded)
	}
	return nil
}
