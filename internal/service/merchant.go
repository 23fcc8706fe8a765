package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dukerupert/tenancy/internal/billing"
	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/repository"
)

// MerchantService is re-exported from domain.
type MerchantService = domain.MerchantService

type CreateMerchantParams = domain.CreateMerchantParams

type merchantService struct {
	repo    repository.Querier
	gateway billing.Provider
	logger  *slog.Logger
}

// NewMerchantService creates a MerchantService.
func NewMerchantService(repo repository.Querier, gateway billing.Provider, logger *slog.Logger) MerchantService {
	return &merchantService{
		repo:    repo,
		gateway: gateway,
		logger:  logger.With("service", "merchant"),
	}
}

// CreateMerchantAccount registers the current user with the gateway and
// upserts the resulting merchant account. Bank details are forwarded only.
func (s *merchantService) CreateMerchantAccount(ctx context.Context, params CreateMerchantParams) (*domain.MerchantAccount, error) {
	const op = "merchant.create"

	user, err := domain.RequireUser(ctx, op)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(op, params); err != nil {
		return nil, err
	}

	merchant, err := s.gateway.CreateMerchant(ctx, billing.CreateMerchantParams{
		Business: billing.BusinessInfo{
			LegalName:    params.Business.LegalName,
			DBA:          params.Business.DBA,
			TaxID:        params.Business.TaxID,
			BusinessType: params.Business.BusinessType,
			Email:        params.Business.Email,
			Phone:        params.Business.Phone,
			Website:      params.Business.Website,
		},
		Address: billing.Address{
			Line1:      params.Address.Line1,
			Line2:      params.Address.Line2,
			City:       params.Address.City,
			State:      params.Address.State,
			PostalCode: params.Address.PostalCode,
			Country:    params.Address.Country,
		},
		BankAccount: billing.BankAccount{
			AccountHolder: params.BankAccount.AccountHolder,
			RoutingNumber: params.BankAccount.RoutingNumber,
			AccountNumber: params.BankAccount.AccountNumber,
			AccountType:   params.BankAccount.AccountType,
		},
	})
	if err != nil {
		if errors.Is(err, billing.ErrNotImplemented) {
			return nil, domain.WrapError(err, domain.ENOTIMPL, op, "Merchant registration is not supported by the configured gateway")
		}
		s.logger.Error("merchant registration failed", "user_id", user.ID, "error", err)
		return nil, domain.WrapError(err, domain.EINTERNAL, op, billing.GatewayMessage(err, "Failed to create merchant account"))
	}

	account, err := s.repo.UpsertMerchantAccount(ctx, repository.UpsertMerchantAccountParams{
		UserID:       user.ID,
		MerchantID:   merchant.MerchantID,
		PublicKey:    merchant.PublicKey,
		BusinessName: params.Business.LegalName,
		Status:       domain.MerchantStatusActive,
	})
	if err != nil {
		s.logger.Error("merchant registered but not saved",
			"user_id", user.ID,
			"merchant_id", merchant.MerchantID,
			"error", err,
		)
		return nil, domain.Internal(err, op, "failed to save merchant account")
	}

	s.logger.Info("merchant account created", "user_id", user.ID, "merchant_id", account.MerchantID)
	return merchantFromModel(account), nil
}

func (s *merchantService) GetMerchantAccount(ctx context.Context) (*domain.MerchantAccount, error) {
	const op = "merchant.get"

	user, err := domain.RequireUser(ctx, op)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.GetMerchantAccountByUser(ctx, user.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrMerchantAccountNotFound
		}
		return nil, domain.Internal(err, op, "failed to load merchant account")
	}
	return merchantFromModel(account), nil
}
