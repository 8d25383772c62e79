package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/annapetrenko/mealkeeper/internal/dbx"
	"github.com/annapetrenko/mealkeeper/internal/server/models"
	dependentsrepo "github.com/annapetrenko/mealkeeper/internal/server/repositories/dependents"
	healthformsrepo "github.com/annapetrenko/mealkeeper/internal/server/repositories/healthforms"
	mealsrepo "github.com/annapetrenko/mealkeeper/internal/server/repositories/meals"
	medicationsrepo "github.com/annapetrenko/mealkeeper/internal/server/repositories/medications"
	notificationsrepo "github.com/annapetrenko/mealkeeper/internal/server/repositories/notifications"
	plansrepo "github.com/annapetrenko/mealkeeper/internal/server/repositories/plans"
	recipesrepo "github.com/annapetrenko/mealkeeper/internal/server/repositories/recipes"
	usersrepo "github.com/annapetrenko/mealkeeper/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeDependentsRepo struct {
	linkErr   error
	listOut   []models.User
	listErr   error
	linkedOut bool
	linkedErr error
}

func (f *fakeDependentsRepo) Link(ctx context.Context, guardianID, dependentID int64) error {
	return f.linkErr
}

func (f *fakeDependentsRepo) ListByGuardian(ctx context.Context, guardianID int64) ([]models.User, error) {
	return f.listOut, f.listErr
}

func (f *fakeDependentsRepo) IsDependentOf(ctx context.Context, guardianID, dependentID int64) (bool, error) {
	return f.linkedOut, f.linkedErr
}

type fakePlansRepo struct {
	getOut    *models.Plan
	getErr    error
	createOut *models.Plan
	createErr error
	ownerOut  int64
	ownerErr  error

	created int
}

func (f *fakePlansRepo) GetByDate(ctx context.Context, userID int64, day time.Time) (*models.Plan, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakePlansRepo) Create(ctx context.Context, userID int64, day time.Time) (*models.Plan, error) {
	f.created++
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakePlansRepo) OwnerOfMeal(ctx context.Context, mealID int64) (int64, error) {
	return f.ownerOut, f.ownerErr
}

func (f *fakePlansRepo) OwnerOfMedication(ctx context.Context, medicationID int64) (int64, error) {
	return f.ownerOut, f.ownerErr
}

type fakeMealsRepo struct {
	listOut []models.Meal
	listErr error
	out     *models.Meal
	err     error
}

func (f *fakeMealsRepo) ListByPlan(ctx context.Context, planID int64) ([]models.Meal, error) {
	return f.listOut, f.listErr
}

func (f *fakeMealsRepo) Create(ctx context.Context, meal *models.Meal) (*models.Meal, error) {
	return f.out, f.err
}

func (f *fakeMealsRepo) GetByID(ctx context.Context, id int64) (*models.Meal, error) {
	return f.out, f.err
}

func (f *fakeMealsRepo) Replace(ctx context.Context, id int64, recipeID int64, mealType, mealTime string) (*models.Meal, error) {
	return f.out, f.err
}

func (f *fakeMealsRepo) UpdateDetails(ctx context.Context, id int64, mealType, mealTime string) (*models.Meal, error) {
	return f.out, f.err
}

func (f *fakeMealsRepo) UpdateStatus(ctx context.Context, id int64, eaten bool, comment string) (*models.Meal, error) {
	return f.out, f.err
}

type fakeMedicationsRepo struct {
	listOut []models.Medication
	listErr error
	out     *models.Medication
	err     error
}

func (f *fakeMedicationsRepo) ListByPlan(ctx context.Context, planID int64) ([]models.Medication, error) {
	return f.listOut, f.listErr
}

func (f *fakeMedicationsRepo) Create(ctx context.Context, med *models.Medication) (*models.Medication, error) {
	return f.out, f.err
}

func (f *fakeMedicationsRepo) UpdateDetails(ctx context.Context, id int64, name, medTime, withMealRelation, description string) (*models.Medication, error) {
	return f.out, f.err
}

func (f *fakeMedicationsRepo) UpdateStatus(ctx context.Context, id int64, taken bool) (*models.Medication, error) {
	return f.out, f.err
}

type fakeRecipesRepo struct {
	searchOut []models.Recipe
	searchErr error
	getOut    *models.Recipe
	getErr    error
}

func (f *fakeRecipesRepo) Search(ctx context.Context, query string, limit int) ([]models.Recipe, error) {
	return f.searchOut, f.searchErr
}

func (f *fakeRecipesRepo) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	return f.getOut, f.getErr
}

func (f *fakeRecipesRepo) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	return recipe, nil
}

type fakeNotificationsRepo struct {
	listOut []models.Notification
	listErr error
	markOut *models.Notification
	markErr error
	created []models.Notification
}

func (f *fakeNotificationsRepo) ListByUser(ctx context.Context, userID int64) ([]models.Notification, error) {
	return f.listOut, f.listErr
}

func (f *fakeNotificationsRepo) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	n.ID = int64(len(f.created) + 1)
	f.created = append(f.created, *n)
	return n, nil
}

func (f *fakeNotificationsRepo) MarkRead(ctx context.Context, id int64, userID int64) (*models.Notification, error) {
	return f.markOut, f.markErr
}

type fakeHealthFormsRepo struct {
	getOut *models.HealthForm
	getErr error
	upsert *models.HealthForm
	upErr  error
}

func (f *fakeHealthFormsRepo) GetByUser(ctx context.Context, userID int64) (*models.HealthForm, error) {
	return f.getOut, f.getErr
}

func (f *fakeHealthFormsRepo) Upsert(ctx context.Context, form *models.HealthForm) (*models.HealthForm, error) {
	if f.upErr != nil {
		return nil, f.upErr
	}
	if f.upsert != nil {
		return f.upsert, nil
	}
	form.ID = 1
	return form, nil
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	d  *fakeDependentsRepo
	p  *fakePlansRepo
	m  *fakeMealsRepo
	md *fakeMedicationsRepo
	r  *fakeRecipesRepo
	n  *fakeNotificationsRepo
	h  *fakeHealthFormsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		u:  &fakeUsersRepo{},
		d:  &fakeDependentsRepo{},
		p:  &fakePlansRepo{},
		m:  &fakeMealsRepo{},
		md: &fakeMedicationsRepo{},
		r:  &fakeRecipesRepo{},
		n:  &fakeNotificationsRepo{},
		h:  &fakeHealthFormsRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Dependents(db dbx.DBTX) dependentsrepo.Repository {
	return m.d
}
func (m *fakeRepoManager) Plans(db dbx.DBTX) plansrepo.Repository { return m.p }
func (m *fakeRepoManager) Meals(db dbx.DBTX) mealsrepo.Repository { return m.m }
func (m *fakeRepoManager) Medications(db dbx.DBTX) medicationsrepo.Repository {
	return m.md
}
func (m *fakeRepoManager) Recipes(db dbx.DBTX) recipesrepo.Repository { return m.r }
func (m *fakeRepoManager) Notifications(db dbx.DBTX) notificationsrepo.Repository {
	return m.n
}
func (m *fakeRepoManager) HealthForms(db dbx.DBTX) healthformsrepo.Repository {
	return m.h
}
