package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/pocketfin/pocketfin_app/internal/core/ports/repositories"
	portssvc "github.com/pocketfin/pocketfin_app/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_app/internal/dto"
)

// cascadeDeleteService removes an account and its dependency tree in
// children-before-parents order: sub-pockets, then pockets, then movements
// (hard-deleted or orphaned), then the account. No cross-step transaction
// is assumed, so every completed step stays completed if a later one fails.
type cascadeDeleteService struct {
	BaseService
	accountRepo   portsrepo.AccountRepositoryFacade
	pocketRepo    portsrepo.PocketRepositoryFacade
	subPocketRepo portsrepo.SubPocketRepositoryFacade
	movementRepo  portsrepo.MovementRepositoryFacade
	now           func() time.Time
}

// CascadeDeleteOption is a functional option for the cascade deleter
type CascadeDeleteOption func(*cascadeDeleteService)

// WithCascadeClock injects the time source used to stamp orphaned movements.
func WithCascadeClock(now func() time.Time) CascadeDeleteOption {
	return func(s *cascadeDeleteService) {
		s.now = now
	}
}

// NewCascadeDeleteService creates the cascade deleter
func NewCascadeDeleteService(
	accountRepo portsrepo.AccountRepositoryFacade,
	pocketRepo portsrepo.PocketRepositoryFacade,
	subPocketRepo portsrepo.SubPocketRepositoryFacade,
	movementRepo portsrepo.MovementRepositoryFacade,
	options ...CascadeDeleteOption,
) portssvc.CascadeDeleteSvc {
	svc := &cascadeDeleteService{
		accountRepo:   accountRepo,
		pocketRepo:    pocketRepo,
		subPocketRepo: subPocketRepo,
		movementRepo:  movementRepo,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure cascadeDeleteService implements the CascadeDeleteSvc interface
var _ portssvc.CascadeDeleteSvc = (*cascadeDeleteService)(nil)

// DeleteAccountCascade deletes the account and everything that exists only
// in relation to it. The returned counts equal the side-effecting calls
// made, even when err != nil (partial cascade) or when the account had no
// dependents at all.
func (s *cascadeDeleteService) DeleteAccountCascade(ctx context.Context, accountID string, deleteMovements bool, userID string) (*dto.CascadeDeleteResult, error) {
	// Ownership is checked together with existence; a foreign account looks
	// exactly like a missing one so callers cannot probe.
	account, err := s.accountRepo.FindAccountByIDForUser(ctx, accountID, userID)
	if err != nil {
		s.LogWarn(ctx, "Account not found for cascade delete",
			slog.String("account_id", accountID),
			slog.String("user_id", userID))
		return nil, err
	}

	result := &dto.CascadeDeleteResult{AccountName: account.Name}

	pockets, err := s.pocketRepo.ListPocketsByAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to enumerate pockets", slog.String("account_id", accountID))
		return result, fmt.Errorf("failed to enumerate pockets of account %s: %w", accountID, err)
	}

	// Snapshot pocket names before they are gone; orphaned movements keep
	// referring to their pocket by name.
	pocketNames := make(map[string]string, len(pockets))
	for _, pocket := range pockets {
		pocketNames[pocket.PocketID] = pocket.Name
	}

	for _, pocket := range pockets {
		// Only fixed pockets own sub-pockets; a sub-pocket lookup for a
		// normal pocket must never be issued.
		if pocket.IsFixed() {
			subPockets, err := s.subPocketRepo.ListSubPocketsByPocket(ctx, pocket.PocketID)
			if err != nil {
				s.LogError(ctx, err, "Failed to enumerate sub-pockets", slog.String("pocket_id", pocket.PocketID))
				return result, fmt.Errorf("failed to enumerate sub-pockets of pocket %s: %w", pocket.PocketID, err)
			}
			for _, subPocket := range subPockets {
				if err := s.subPocketRepo.DeleteSubPocket(ctx, subPocket.SubPocketID); err != nil {
					s.LogError(ctx, err, "Failed to delete sub-pocket", slog.String("sub_pocket_id", subPocket.SubPocketID))
					return result, fmt.Errorf("failed to delete sub-pocket %s: %w", subPocket.SubPocketID, err)
				}
				result.SubPocketsDeleted++
			}
		}
		if err := s.pocketRepo.DeletePocket(ctx, pocket.PocketID); err != nil {
			s.LogError(ctx, err, "Failed to delete pocket", slog.String("pocket_id", pocket.PocketID))
			return result, fmt.Errorf("failed to delete pocket %s: %w", pocket.PocketID, err)
		}
		result.PocketsDeleted++
	}

	movements, err := s.movementRepo.ListMovementsByAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to enumerate movements", slog.String("account_id", accountID))
		return result, fmt.Errorf("failed to enumerate movements of account %s: %w", accountID, err)
	}
	for _, movement := range movements {
		if deleteMovements {
			err = s.movementRepo.DeleteMovement(ctx, movement.MovementID)
		} else {
			err = s.movementRepo.MarkMovementOrphaned(ctx, movement.MovementID,
				account.Name, string(account.CurrencyCode), pocketNames[movement.PocketID], s.now())
		}
		if err != nil {
			s.LogError(ctx, err, "Failed to process movement",
				slog.String("movement_id", movement.MovementID),
				slog.Bool("hard_delete", deleteMovements))
			return result, fmt.Errorf("failed to process movement %s: %w", movement.MovementID, err)
		}
		result.MovementsAffected++
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return result, fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}

	s.LogInfo(ctx, "Account cascade delete completed",
		slog.String("account_id", accountID),
		slog.Int("pockets_deleted", result.PocketsDeleted),
		slog.Int("sub_pockets_deleted", result.SubPocketsDeleted),
		slog.Int("movements_affected", result.MovementsAffected),
		slog.Bool("movements_hard_deleted", deleteMovements))
	return result, nil
}
