package ports

import (
	"context"

	"github.com/99minutos/delivery-quote/internal/core/domain"
)

// QuoteAuditRepository persists served quotes for later inspection.
type QuoteAuditRepository interface {
	InsertQuote(ctx context.Context, audit *domain.QuoteAudit) error
}

// QuoteAuditor accepts audit records without blocking the caller.
type QuoteAuditor interface {
	Enqueue(audit domain.QuoteAudit)
}
