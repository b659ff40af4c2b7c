package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pocketfin/pocketfin_app/internal/apperrors"
	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	portsrepo "github.com/pocketfin/pocketfin_app/internal/core/ports/repositories"
	portssvc "github.com/pocketfin/pocketfin_app/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_app/internal/dto"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	pocketRepo   portsrepo.PocketRepositoryFacade
	priceService portssvc.PriceSvcFacade
	balanceCalc  portssvc.BalanceCalculatorSvc
	now          func() time.Time
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithPriceService adds the price cache dependency used for investment balances
func WithPriceService(svc portssvc.PriceSvcFacade) AccountServiceOption {
	return func(s *accountService) {
		s.priceService = svc
	}
}

// WithPocketRepository adds the pocket repository used for normal-account balances
func WithPocketRepository(repo portsrepo.PocketRepositoryFacade) AccountServiceOption {
	return func(s *accountService) {
		s.pocketRepo = repo
	}
}

// WithBalanceCalculator adds the balance calculator dependency
func WithBalanceCalculator(svc portssvc.BalanceCalculatorSvc) AccountServiceOption {
	return func(s *accountService) {
		s.balanceCalc = svc
	}
}

// WithAccountClock injects the time source used for audit fields
func WithAccountClock(now func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.now = now
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
		balanceCalc: NewBalanceCalculatorService(),
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	account, err := domain.NewAccount(domain.NewAccountParams{
		AccountID:              uuid.NewString(),
		UserID:                 userID,
		Name:                   req.Name,
		Color:                  req.Color,
		CurrencyCode:           domain.CurrencyCode(req.CurrencyCode),
		AccountType:            req.AccountType,
		InitialBalance:         req.InitialBalance,
		DisplayOrder:           req.DisplayOrder,
		StockSymbol:            req.StockSymbol,
		Shares:                 req.Shares,
		InvestedAmount:         req.InvestedAmount,
		Principal:              req.Principal,
		AnnualRate:             req.AnnualRate,
		TermMonths:             req.TermMonths,
		MaturityDate:           req.MaturityDate,
		CompoundingFrequency:   req.CompoundingFrequency,
		EarlyWithdrawalPenalty: req.EarlyWithdrawalPenalty,
		WithholdingTaxRate:     req.WithholdingTaxRate,
	}, s.now(), userID)
	if err != nil {
		s.LogWarn(ctx, "Account failed domain validation",
			slog.String("account_name", req.Name),
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("account_type", string(account.AccountType)))
	return account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByIDForUser(ctx, accountID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err
	}

	if err := s.refreshBalance(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list accounts for user %s: %w", userID, err)
	}

	for i := range accounts {
		if err := s.refreshBalance(ctx, &accounts[i]); err != nil {
			return nil, err
		}
	}

	s.LogDebug(ctx, "Accounts listed successfully",
		slog.Int("count", len(accounts)),
		slog.String("user_id", userID))
	return accounts, nil
}

// refreshBalance recomputes the account's balance and persists it. A
// price-fetch failure for an investment account is the one deliberate
// degradation: the last known balance is kept and no error is returned.
// Every other failure propagates.
func (s *accountService) refreshBalance(ctx context.Context, account *domain.Account) error {
	switch {
	case account.IsInvestment():
		if s.priceService == nil {
			return nil // balance stays as persisted
		}
		price, err := s.priceService.GetPrice(ctx, account.StockSymbol)
		if err != nil {
			s.LogWarn(ctx, "Price fetch failed, keeping last known balance",
				slog.String("account_id", account.AccountID),
				slog.String("symbol", account.StockSymbol),
				slog.String("error", err.Error()))
			return nil
		}
		if err := s.balanceCalc.UpdateAccountBalance(ctx, account, nil, &price.Price); err != nil {
			return err
		}

	case account.IsNormal():
		if s.pocketRepo == nil {
			return nil
		}
		pockets, err := s.pocketRepo.ListPocketsByAccount(ctx, account.AccountID)
		if err != nil {
			s.LogError(ctx, err, "Failed to enumerate pockets for balance",
				slog.String("account_id", account.AccountID))
			return fmt.Errorf("failed to enumerate pockets of account %s: %w", account.AccountID, err)
		}
		if pockets == nil {
			pockets = []domain.Pocket{}
		}
		if err := s.balanceCalc.UpdateAccountBalance(ctx, account, pockets, nil); err != nil {
			return err
		}

	case account.IsCD():
		if err := s.balanceCalc.UpdateAccountBalance(ctx, account, nil, nil); err != nil {
			return err
		}
	}

	if err := s.accountRepo.UpdateAccountBalance(ctx, account.AccountID, account.Balance, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to persist refreshed balance",
			slog.String("account_id", account.AccountID))
		return err
	}
	return nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByIDForUser(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name == nil && req.Color == nil && req.CurrencyCode == nil {
		s.LogDebug(ctx, "No fields provided for account update",
			slog.String("account_id", accountID))
		return account, nil
	}

	var currencyCode *domain.CurrencyCode
	if req.CurrencyCode != nil {
		code := domain.CurrencyCode(*req.CurrencyCode)
		currencyCode = &code
	}
	if err := account.Update(req.Name, req.Color, currencyCode); err != nil {
		s.LogWarn(ctx, "Account update failed domain validation",
			slog.String("account_id", accountID),
			slog.String("error", err.Error()))
		return nil, err
	}

	account.LastUpdatedAt = s.now()
	account.LastUpdatedBy = userID
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account",
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully",
		slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) UpdateInvestmentDetails(ctx context.Context, accountID string, req dto.UpdateInvestmentDetailsRequest, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByIDForUser(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}

	if err := account.UpdateInvestmentDetails(req.Shares, req.InvestedAmount); err != nil {
		s.LogWarn(ctx, "Investment details update rejected",
			slog.String("account_id", accountID),
			slog.String("error", err.Error()))
		return nil, err
	}

	account.LastUpdatedAt = s.now()
	account.LastUpdatedBy = userID
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update investment details",
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Investment details updated",
		slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) UpdateDisplayOrder(ctx context.Context, accountID string, displayOrder int, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByIDForUser(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}

	if err := account.UpdateDisplayOrder(displayOrder); err != nil {
		return nil, err
	}

	account.LastUpdatedAt = s.now()
	account.LastUpdatedBy = userID
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update display order",
			slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}
