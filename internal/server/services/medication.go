package services

import (
	"context"
	"database/sql"

	"github.com/annapetrenko/mealkeeper/internal/common"
	"github.com/annapetrenko/mealkeeper/internal/server/models"
	"github.com/annapetrenko/mealkeeper/internal/server/repositories/repomanager"
)

// MedicationService mutates scheduled medications.
type MedicationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	plans       *PlanService
}

func NewMedicationService(db *sql.DB, m repomanager.RepositoryManager, plans *PlanService) *MedicationService {
	return &MedicationService{db: db, repomanager: m, plans: plans}
}

func (s *MedicationService) UpdateDetails(ctx context.Context, requesterID, medicationID int64, name, medTime, withMealRelation, description string) (*models.Medication, error) {
	if err := s.plans.authorizeMedicationAccess(ctx, requesterID, medicationID); err != nil {
		return nil, err
	}

	med, err := s.repomanager.Medications(s.db).UpdateDetails(ctx, medicationID, name, medTime, withMealRelation, description)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return med, nil
}

func (s *MedicationService) UpdateStatus(ctx context.Context, requesterID, medicationID int64, taken bool) (*models.Medication, error) {
	if err := s.plans.authorizeMedicationAccess(ctx, requesterID, medicationID); err != nil {
		return nil, err
	}

	med, err := s.repomanager.Medications(s.db).UpdateStatus(ctx, medicationID, taken)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return med, nil
}
