package service

import (
	"context"
	"time"

	"github.com/calzatec/calzatec-backend/internal/cache"
	"github.com/calzatec/calzatec-backend/internal/errors"
	"github.com/calzatec/calzatec-backend/internal/kpi"
	"github.com/calzatec/calzatec-backend/internal/models"
	"github.com/google/uuid"
)

// DeliverableService persists the editor sheets through the key-addressed
// store. Derived columns are a display cache: they are recomputed from the
// stored inputs on every save AND every load, never trusted as written.
type DeliverableService interface {
	SaveCoverage(ctx context.Context, userID uuid.UUID, sheet *models.CoverageSheet) (*models.CoverageSheet, error)
	GetCoverage(ctx context.Context, userID uuid.UUID) (*models.CoverageSheet, error)
	SaveRotation(ctx context.Context, userID uuid.UUID, sheet *models.RotationSheet) (*models.RotationSheet, error)
	GetRotation(ctx context.Context, userID uuid.UUID) (*models.RotationSheet, error)
	SaveProposal(ctx context.Context, userID uuid.UUID, sheet *models.ProposalSheet) (*models.ProposalSheet, error)
	GetProposal(ctx context.Context, userID uuid.UUID) (*models.ProposalSheet, error)
	SaveKPIs(ctx context.Context, userID uuid.UUID, sheet *models.KPISheet) (*models.KPISheet, error)
	GetKPIs(ctx context.Context, userID uuid.UUID) (*models.KPISheet, error)
	KPIAlerts(ctx context.Context, userID uuid.UUID) ([]models.KPIAlert, error)
}

type deliverableService struct {
	store cache.Cache
}

func NewDeliverableService(store cache.Cache) DeliverableService {
	return &deliverableService{store: store}
}

func deliverableKey(userID uuid.UUID, section string) string {
	return cache.Key(cache.DeliverableKeyPrefix, userID.String(), section)
}

func (s *deliverableService) save(ctx context.Context, userID uuid.UUID, section string, sheet any) error {
	err := s.store.Set(ctx, deliverableKey(userID, section), sheet, 0)
	if err != nil {
		return errors.InternalError("Failed to persist deliverable").WithError(err)
	}

	return nil
}

func (s *deliverableService) load(ctx context.Context, userID uuid.UUID, section string, sheet any) error {
	found, err := s.store.Get(ctx, deliverableKey(userID, section), sheet)
	if err != nil {
		return errors.InternalError("Failed to load deliverable").WithError(err)
	}

	if !found {
		return errors.NotFoundError("Deliverable section not found")
	}

	return nil
}

func (s *deliverableService) SaveCoverage(ctx context.Context, userID uuid.UUID, sheet *models.CoverageSheet) (*models.CoverageSheet, error) {
	recomputeCoverage(sheet.Rows)
	sheet.UpdatedAt = time.Now().UTC()

	if err := s.save(ctx, userID, models.SectionCoverage, sheet); err != nil {
		return nil, err
	}

	return sheet, nil
}

func (s *deliverableService) GetCoverage(ctx context.Context, userID uuid.UUID) (*models.CoverageSheet, error) {
	sheet := &models.CoverageSheet{}

	if err := s.load(ctx, userID, models.SectionCoverage, sheet); err != nil {
		return nil, err
	}

	recomputeCoverage(sheet.Rows)

	return sheet, nil
}

func (s *deliverableService) SaveRotation(ctx context.Context, userID uuid.UUID, sheet *models.RotationSheet) (*models.RotationSheet, error) {
	recomputeRotation(sheet.Rows)
	sheet.UpdatedAt = time.Now().UTC()

	if err := s.save(ctx, userID, models.SectionRotation, sheet); err != nil {
		return nil, err
	}

	return sheet, nil
}

func (s *deliverableService) GetRotation(ctx context.Context, userID uuid.UUID) (*models.RotationSheet, error) {
	sheet := &models.RotationSheet{}

	if err := s.load(ctx, userID, models.SectionRotation, sheet); err != nil {
		return nil, err
	}

	recomputeRotation(sheet.Rows)

	return sheet, nil
}

func (s *deliverableService) SaveProposal(ctx context.Context, userID uuid.UUID, sheet *models.ProposalSheet) (*models.ProposalSheet, error) {
	recomputeProposal(&sheet.Proposal)
	sheet.UpdatedAt = time.Now().UTC()

	if err := s.save(ctx, userID, models.SectionProposal, sheet); err != nil {
		return nil, err
	}

	return sheet, nil
}

func (s *deliverableService) GetProposal(ctx context.Context, userID uuid.UUID) (*models.ProposalSheet, error) {
	sheet := &models.ProposalSheet{}

	if err := s.load(ctx, userID, models.SectionProposal, sheet); err != nil {
		return nil, err
	}

	recomputeProposal(&sheet.Proposal)

	return sheet, nil
}

func (s *deliverableService) SaveKPIs(ctx context.Context, userID uuid.UUID, sheet *models.KPISheet) (*models.KPISheet, error) {
	recomputeKPIs(sheet.Rows)
	sheet.UpdatedAt = time.Now().UTC()

	if err := s.save(ctx, userID, models.SectionKPIs, sheet); err != nil {
		return nil, err
	}

	return sheet, nil
}

func (s *deliverableService) GetKPIs(ctx context.Context, userID uuid.UUID) (*models.KPISheet, error) {
	sheet := &models.KPISheet{}

	if err := s.load(ctx, userID, models.SectionKPIs, sheet); err != nil {
		return nil, err
	}

	recomputeKPIs(sheet.Rows)

	return sheet, nil
}

// KPIAlerts applies the deviation banding to the stored KPI sheet. KPIs
// within range are suppressed: only warning and critical findings surface.
func (s *deliverableService) KPIAlerts(ctx context.Context, userID uuid.UUID) ([]models.KPIAlert, error) {
	sheet, err := s.GetKPIs(ctx, userID)
	if err != nil {
		return nil, err
	}

	alerts := []models.KPIAlert{}

	for _, row := range sheet.Rows {
		band := kpi.DeviationBand(row.ActualValue, row.TargetValue)
		if band == kpi.BandOK {
			continue
		}

		alerts = append(alerts, models.KPIAlert{
			Name:         row.Name,
			DeviationPct: kpi.DeviationPct(row.ActualValue, row.TargetValue),
			Severity:     string(band),
		})
	}

	return alerts, nil
}

func recomputeCoverage(rows []models.CoverageEntry) {
	for i := range rows {
		days := kpi.CoverageDays(rows[i].InventoryUnits, rows[i].DailySalesAvg)
		rows[i].CoverageDays = days
		rows[i].StatusBand = string(kpi.CoverageStatus(days))
	}
}

func recomputeRotation(rows []models.RotationEntry) {
	for i := range rows {
		rows[i].RotationPriorYear = kpi.Rotation(rows[i].SalesPriorYear, rows[i].AvgInventoryPriorYear)
		rows[i].RotationCurrentYear = kpi.Rotation(rows[i].SalesCurrentYear, rows[i].AvgInventoryCurrentYear)
	}
}

func recomputeProposal(p *models.TechProposalFinance) {
	p.PaybackYears = kpi.PaybackYears(p.InitialInvestment, p.AnnualProjectedSavings)
	p.NetPresentValue5yr = kpi.NetPresentValue5yr(p.InitialInvestment, p.AnnualProjectedSavings, p.AnnualOperatingCost)
}

func recomputeKPIs(rows []models.KPIRecord) {
	for i := range rows {
		rows[i].StatusBand = string(kpi.AttainmentBand(rows[i].ActualValue, rows[i].TargetValue))
	}
}
