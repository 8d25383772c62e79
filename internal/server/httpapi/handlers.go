package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/annapetrenko/mealkeeper/internal/server/models"
	"github.com/gin-gonic/gin"
)

func (s *Server) createSession(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	token, err := s.svc.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.logger.Warn(c.Request.Context(), "login rejected", "email", req.Email)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	user := &models.User{
		Name:    req.Name,
		Surname: req.Surname,
		Login:   req.Login,
		Email:   req.Email,
	}
	created, err := s.svc.Users.Register(c.Request.Context(), user, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "login", created.Login)
	c.JSON(http.StatusCreated, toUserProfile(created))
}

func (s *Server) currentUser(c *gin.Context) {
	user, err := s.svc.Users.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserProfile(user))
}

func (s *Server) listDependents(c *gin.Context) {
	deps, err := s.svc.Dependents.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	out := []userProfile{}
	for i := range deps {
		out = append(out, toUserProfile(&deps[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createDependent(c *gin.Context) {
	var req createDependentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	dep, err := s.svc.Dependents.Create(c.Request.Context(), currentUserID(c), req.Name, req.Surname, req.Login)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserProfile(dep))
}

func (s *Server) planByDate(c *gin.Context) {
	day, err := time.Parse(planDateFormat, c.Param("date"))
	if err != nil {
		badRequest(c, "invalid date")
		return
	}

	uid := currentUserID(c)
	view, err := s.svc.Plans.GetByDate(c.Request.Context(), uid, uid, day)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPlanView(view))
}

func (s *Server) dependentPlanByDate(c *gin.Context) {
	depID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid dependent id")
		return
	}
	day, err := time.Parse(planDateFormat, c.Param("date"))
	if err != nil {
		badRequest(c, "invalid date")
		return
	}

	view, err := s.svc.Plans.GetByDate(c.Request.Context(), currentUserID(c), depID, day)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPlanView(view))
}

func (s *Server) searchRecipes(c *gin.Context) {
	recipes, err := s.svc.Recipes.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := []recipeView{}
	for i := range recipes {
		out = append(out, toRecipeView(&recipes[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) recipeDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid recipe id")
		return
	}

	recipe, err := s.svc.Recipes.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRecipeView(recipe))
}

func (s *Server) replaceMeal(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid meal id")
		return
	}

	var req mealReplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	meal, err := s.svc.Meals.Replace(c.Request.Context(), currentUserID(c), id, req.RecipeID, req.MealType, req.Time)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMealView(meal))
}

func (s *Server) updateMealDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid meal id")
		return
	}

	var req mealDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	meal, err := s.svc.Meals.UpdateDetails(c.Request.Context(), currentUserID(c), id, req.MealType, req.Time)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMealView(meal))
}

func (s *Server) updateMealStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid meal id")
		return
	}

	var req mealStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	meal, err := s.svc.Meals.UpdateStatus(c.Request.Context(), currentUserID(c), id, req.Eaten, req.Comment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMealView(meal))
}

func (s *Server) updateMedicationDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid medication id")
		return
	}

	var req medicationDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	med, err := s.svc.Medications.UpdateDetails(c.Request.Context(), currentUserID(c), id,
		req.Name, req.Time, req.WithMealRelation, req.Description)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMedicationView(med))
}

func (s *Server) updateMedicationStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid medication id")
		return
	}

	var req medicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	med, err := s.svc.Medications.UpdateStatus(c.Request.Context(), currentUserID(c), id, req.Taken)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMedicationView(med))
}

func (s *Server) myNotifications(c *gin.Context) {
	items, err := s.svc.Notifications.ListForUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	out := []notificationView{}
	for i := range items {
		out = append(out, toNotificationView(&items[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) markNotificationRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid notification id")
		return
	}

	n, err := s.svc.Notifications.MarkRead(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toNotificationView(n))
}

func (s *Server) getHealthForm(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid user id")
		return
	}

	form, err := s.svc.HealthForms.Get(c.Request.Context(), currentUserID(c), targetID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toHealthFormView(form))
}

func (s *Server) saveHealthForm(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid user id")
		return
	}

	var req healthFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	form := &models.HealthForm{
		Height:          req.Height,
		Weight:          req.Weight,
		MealsPerDay:     req.MealsPerDay,
		DietPreferences: req.DietPreferences,
		Allergies:       req.Allergies,
		MedicamentUsage: req.MedicamentUsage,
	}
	saved, err := s.svc.HealthForms.Save(c.Request.Context(), currentUserID(c), targetID, form)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toHealthFormView(saved))
}
