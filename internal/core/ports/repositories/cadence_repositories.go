package repositories

import (
	"context"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
)

// CadenceReader defines read operations for cadence settings
type CadenceReader interface {
	// FindCadenceByCompanyID returns apperrors.ErrNotFound when the company has no settings yet.
	FindCadenceByCompanyID(ctx context.Context, companyID string) (*domain.CadenceSettings, error)
}

// CadenceWriter defines write operations for cadence settings
type CadenceWriter interface {
	UpsertCadence(ctx context.Context, settings domain.CadenceSettings) (*domain.CadenceSettings, error)
}

// CadenceRepositoryFacade combines all cadence repository interfaces
type CadenceRepositoryFacade interface {
	CadenceReader
	CadenceWriter
}
