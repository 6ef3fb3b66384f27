package services

import (
	"context"
	"time"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
)

// CadenceReaderSvc defines read operations for cadence settings
type CadenceReaderSvc interface {
	// GetCadence returns stored settings, or the default cadence when none exist.
	GetCadence(ctx context.Context, companyID string, userID string) (*domain.CadenceSettings, error)
}

// CadenceWriterSvc defines write operations for cadence settings
type CadenceWriterSvc interface {
	UpdateCadence(ctx context.Context, companyID string, input domain.CadenceInput, userID string) (*domain.CadenceSettings, error)

	// AdvanceNextAllocationDate moves the stored date to the first run strictly
	// after the later of the stored date and now.
	AdvanceNextAllocationDate(ctx context.Context, companyID string, now time.Time, userID string) (*domain.CadenceSettings, error)
}

// CadenceSvcFacade combines all cadence service interfaces
type CadenceSvcFacade interface {
	CadenceReaderSvc
	CadenceWriterSvc
}
