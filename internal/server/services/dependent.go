package services

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/annapetrenko/mealkeeper/internal/common"
	"github.com/annapetrenko/mealkeeper/internal/dbx"
	"github.com/annapetrenko/mealkeeper/internal/server/auth"
	"github.com/annapetrenko/mealkeeper/internal/server/models"
	"github.com/annapetrenko/mealkeeper/internal/server/repositories/repomanager"
)

// DependentService manages accounts a guardian cares for.
type DependentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDependentService(db *sql.DB, m repomanager.RepositoryManager) *DependentService {
	return &DependentService{db: db, repomanager: m}
}

func (s *DependentService) List(ctx context.Context, guardianID int64) ([]models.User, error) {
	repo := s.repomanager.Dependents(s.db)
	deps, err := repo.ListByGuardian(ctx, guardianID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return deps, nil
}

// Create makes a dependent account and links it to the guardian in one
// transaction. Dependents cannot sign in themselves: the account gets a
// placeholder address and an unguessable password.
func (s *DependentService) Create(ctx context.Context, guardianID int64, name, surname, login string) (*models.User, error) {
	randomPassword := hex.EncodeToString(common.GenerateRandByteArray(24))
	hash, err := auth.HashPassword(randomPassword)
	if err != nil {
		return nil, common.ErrorInternal
	}

	dependent := &models.User{
		Name:         name,
		Surname:      surname,
		Login:        login,
		Email:        login + "@dependent.local",
		PasswordHash: hash,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Users(tx).Create(ctx, dependent)
		if err != nil {
			return err
		}
		if err := s.repomanager.Dependents(tx).Link(ctx, guardianID, created.ID); err != nil {
			return err
		}
		note := &models.Notification{
			UserID:  guardianID,
			Type:    "dependent",
			Message: fmt.Sprintf("Dependent account %s %s is now linked to you.", created.Name, created.Surname),
		}
		_, err = s.repomanager.Notifications(tx).Create(ctx, note)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating dependent: %v", err)
	}

	return dependent, nil
}

// CanAccess reports whether the requester may view data of the given user:
// their own, or a linked dependent's.
func (s *DependentService) CanAccess(ctx context.Context, requesterID, targetID int64) (bool, error) {
	if requesterID == targetID {
		return true, nil
	}
	repo := s.repomanager.Dependents(s.db)
	ok, err := repo.IsDependentOf(ctx, requesterID, targetID)
	if err != nil {
		return false, common.ErrorInternal
	}
	return ok, nil
}
