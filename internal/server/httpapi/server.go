// Package httpapi exposes the MealKeeper service over HTTP/JSON using gin.
// It owns the route table, bearer-token authentication, and the mapping of
// domain errors onto status codes with {message} bodies.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/annapetrenko/mealkeeper/internal/logging"
	"github.com/annapetrenko/mealkeeper/internal/server/models"
	"github.com/annapetrenko/mealkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

// Service interfaces consumed by the handlers. The concrete implementations
// live in the services package; fakes stand in for them in tests.

type UserService interface {
	Register(ctx context.Context, user *models.User, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
}

type DependentService interface {
	List(ctx context.Context, guardianID int64) ([]models.User, error)
	Create(ctx context.Context, guardianID int64, name, surname, login string) (*models.User, error)
}

type PlanService interface {
	GetByDate(ctx context.Context, requesterID, targetID int64, day time.Time) (*services.PlanView, error)
}

type MealService interface {
	Replace(ctx context.Context, requesterID, mealID, recipeID int64, mealType, mealTime string) (*models.Meal, error)
	UpdateDetails(ctx context.Context, requesterID, mealID int64, mealType, mealTime string) (*models.Meal, error)
	UpdateStatus(ctx context.Context, requesterID, mealID int64, eaten bool, comment string) (*models.Meal, error)
}

type MedicationService interface {
	UpdateDetails(ctx context.Context, requesterID, medicationID int64, name, medTime, withMealRelation, description string) (*models.Medication, error)
	UpdateStatus(ctx context.Context, requesterID, medicationID int64, taken bool) (*models.Medication, error)
}

type RecipeService interface {
	Search(ctx context.Context, query string) ([]models.Recipe, error)
	Get(ctx context.Context, id int64) (*models.Recipe, error)
}

type NotificationService interface {
	ListForUser(ctx context.Context, userID int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, id int64) (*models.Notification, error)
}

type HealthFormService interface {
	Get(ctx context.Context, requesterID, targetID int64) (*models.HealthForm, error)
	Save(ctx context.Context, requesterID, targetID int64, form *models.HealthForm) (*models.HealthForm, error)
}

// Services bundles everything the HTTP layer dispatches to.
type Services struct {
	Users         UserService
	Dependents    DependentService
	Plans         PlanService
	Meals         MealService
	Medications   MedicationService
	Recipes       RecipeService
	Notifications NotificationService
	HealthForms   HealthFormService
}

type Server struct {
	address   string
	logger    logging.Logger
	jwtSecret []byte
	svc       Services
}

func NewServer(address string, l logging.Logger, secretKey string, svc Services) (*Server, error) {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		jwtSecret: []byte(secretKey),
		svc:       svc,
	}, nil
}

// routes builds the gin engine with the full route table.
func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogMiddleware())

	api := r.Group("/api/v1")

	api.POST("/auth/session", s.createSession)
	api.POST("/users/register", s.register)

	authorized := api.Group("", s.accessTokenMiddleware())

	authorized.GET("/users/me", s.currentUser)

	authorized.GET("/dependents/my", s.listDependents)
	authorized.POST("/dependents/create", s.createDependent)
	authorized.GET("/dependents/:id/plan/date/:date", s.dependentPlanByDate)

	authorized.GET("/meals/date/:date", s.planByDate)
	authorized.GET("/meals/search", s.searchRecipes)
	authorized.PUT("/meals/:id/replace", s.replaceMeal)
	authorized.PATCH("/meals/:id/details", s.updateMealDetails)
	authorized.PATCH("/meals/:id", s.updateMealStatus)

	authorized.GET("/recipes/:id", s.recipeDetails)

	authorized.PATCH("/medications/:id", s.updateMedicationDetails)
	authorized.PATCH("/medications/:id/medication", s.updateMedicationStatus)

	authorized.GET("/notifications/me", s.myNotifications)
	authorized.PATCH("/notifications/:id", s.markNotificationRead)

	authorized.GET("/health-form/:user_id", s.getHealthForm)
	authorized.PUT("/health-form/:user_id", s.saveHealthForm)

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
