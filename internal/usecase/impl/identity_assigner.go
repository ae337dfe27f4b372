package impl

import (
	"context"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/errors"
	"estate/internal/usecase"
)

// maxCustomIDProbes bounds the suffix bump after a collision.
const maxCustomIDProbes = 64

type identityAssigner struct{}

func NewIdentityAssigner() usecase.IdentityAssigner {
	return &identityAssigner{}
}

// Assign must run inside the creation transaction; repos are bound to it.
func (a *identityAssigner) Assign(ctx context.Context, repos repository.RepositoryFactory, poster entity.Principal) (*usecase.Assignment, error) {
	switch {
	case poster.IsAdmin():
		return a.assignAdmin(ctx, repos, poster)
	case poster.IsUser():
		return a.assignUser(ctx, repos, poster)
	default:
		return nil, domainerrors.ErrUnauthorized
	}
}

func (a *identityAssigner) assignAdmin(ctx context.Context, repos repository.RepositoryFactory, poster entity.Principal) (*usecase.Assignment, error) {
	count, err := repos.NewListingRepository().CountByAdmin(ctx, poster.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count admin listings")
	}

	seq, err := a.firstFree(ctx, repos.NewListingRepository(), count+1, func(n int64) string {
		return entity.AdminCustomID(poster.ID, n)
	})
	if err != nil {
		return nil, err
	}

	return &usecase.Assignment{CustomID: entity.AdminCustomID(poster.ID, seq), Sequence: seq}, nil
}

func (a *identityAssigner) assignUser(ctx context.Context, repos repository.RepositoryFactory, poster entity.Principal) (*usecase.Assignment, error) {
	userRepo := repos.NewUserRepository()

	user, err := userRepo.FindUserByIDForUpdate(ctx, poster.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "listing poster")
		}

		return nil, errors.Wrap(err, "failed to lock poster")
	}

	serial := user.SerialNumber
	if serial == nil {
		next, err := repos.NewCounterRepository().Next(ctx, repository.UserSerialCounter)
		if err != nil {
			return nil, errors.Wrap(err, "failed to allocate user serial")
		}
		if err := userRepo.AssignSerialNumber(ctx, user.ID, next); err != nil {
			return nil, errors.Wrap(err, "failed to persist user serial")
		}
		serial = &next
	}

	seq, err := a.firstFree(ctx, repos.NewListingRepository(), int64(user.ListingCount)+1, func(n int64) string {
		return entity.UserCustomID(*serial, n)
	})
	if err != nil {
		return nil, err
	}

	return &usecase.Assignment{CustomID: entity.UserCustomID(*serial, seq), Sequence: seq, Serial: serial}, nil
}

// firstFree walks forward from start until the formatted id is unused. Counts
// drift after deletes, so the formula alone can land on a live id.
func (a *identityAssigner) firstFree(ctx context.Context, listings repository.ListingRepository, start int64, format func(int64) string) (int64, error) {
	for seq := start; seq < start+maxCustomIDProbes; seq++ {
		taken, err := listings.ExistsCustomID(ctx, format(seq))
		if err != nil {
			return 0, errors.Wrap(err, "failed to check custom id")
		}
		if !taken {
			return seq, nil
		}
	}

	return 0, errors.Wrapf(domainerrors.ErrConflict, "no free custom id after %s", format(start))
}
