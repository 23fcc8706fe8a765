package service

import (
	"github.com/dukerupert/tenancy/internal/domain"
)

// Not-found errors are re-exported from domain so handlers can match either.
var (
	ErrInvoiceNotFound      = domain.ErrInvoiceNotFound
	ErrSplitNotFound        = domain.ErrSplitNotFound
	ErrContributionNotFound = domain.ErrContributionNotFound
	ErrPaymentLinkNotFound  = domain.ErrPaymentLinkNotFound
)

// Payment errors
var (
	ErrMissingPaymentToken  = domain.Errorf(domain.EINVALID, "", "Payment token is required")
	ErrPaymentNotSucceeded  = domain.Errorf(domain.EPAYMENT, "", "Payment has not succeeded")
	ErrInvoiceAlreadyPaid   = domain.ErrInvoiceAlreadyPaid
	ErrSplitExpired         = domain.ErrPaymentLinkExpired
	ErrInvoiceBeingSplit    = domain.Errorf(domain.ECONFLICT, "", "This invoice is being paid in shares. Use your share link instead")
	ErrMissingPaymentMethod = domain.Errorf(domain.EINVALID, "", "A saved payment method and customer are required")
)

// Recipient errors
var (
	ErrRecipientNotFound = domain.Errorf(domain.EINVALID, "", "Tenant, contact or property does not exist")
	ErrPropertyInUse     = domain.Errorf(domain.ECONFLICT, "", "Property still has tenants, contacts or maintenance requests")
	ErrRecordInUse       = domain.Errorf(domain.ECONFLICT, "", "Record is referenced by an invoice")
)

// maxLinkAttempts bounds retries when a generated payment-link token collides.
const maxLinkAttempts = 3
