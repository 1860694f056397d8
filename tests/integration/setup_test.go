package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mentordash/internal/handlers"
	"mentordash/internal/logger"
	"mentordash/internal/middleware"
	"mentordash/internal/models"
	"mentordash/internal/notify"
	"mentordash/internal/services"
	"mentordash/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Notifier *recordingNotifier
}

// recordingNotifier captures pod notifications instead of delivering them.
type recordingNotifier struct {
	sent []notify.Notification
}

func (r *recordingNotifier) Send(_ context.Context, n notify.Notification) error {
	r.sent = append(r.sent, n)
	return nil
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Goal{},
		&models.Habit{},
		&models.WeeklyAction{},
		&models.Transaction{},
		&models.Milestone{},
		&models.Skill{},
		&models.SkillLog{},
		&models.SocialPost{},
		&models.PodMember{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	notifier := &recordingNotifier{}

	// Services
	userService := services.NewUserService(db)
	goalService := services.NewGoalService(db)
	habitService := services.NewHabitService(db)
	actionService := services.NewActionService(db)
	transactionService := services.NewTransactionService(db)
	milestoneService := services.NewMilestoneService(db)
	skillService := services.NewSkillService(db)
	postService := services.NewPostService(db)
	podService := services.NewPodService(db, notifier)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	goalHandler := handlers.NewGoalHandler(goalService)
	habitHandler := handlers.NewHabitHandler(habitService)
	actionHandler := handlers.NewActionHandler(actionService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	milestoneHandler := handlers.NewMilestoneHandler(milestoneService)
	skillHandler := handlers.NewSkillHandler(skillService)
	postHandler := handlers.NewPostHandler(postService)
	podHandler := handlers.NewPodHandler(podService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	protected.GET("/goal", goalHandler.GetGoal)
	protected.PUT("/goal", goalHandler.SetGoal)

	habits := protected.Group("/habits")
	habits.POST("", habitHandler.CreateHabit)
	habits.GET("", habitHandler.GetHabits)
	habits.POST("/:id/check", habitHandler.CheckIn)
	habits.PUT("/:id", habitHandler.RenameHabit)
	habits.DELETE("/:id", habitHandler.DeleteHabit)

	actions := protected.Group("/actions")
	actions.POST("", actionHandler.CreateAction)
	actions.GET("", actionHandler.GetActions)
	actions.PUT("/:id", actionHandler.UpdateAction)
	actions.POST("/:id/toggle", actionHandler.ToggleAction)
	actions.DELETE("/:id", actionHandler.DeleteAction)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/summary", transactionHandler.GetSummary)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	milestones := protected.Group("/milestones")
	milestones.POST("", milestoneHandler.CreateMilestone)
	milestones.GET("", milestoneHandler.GetMilestones)
	milestones.PUT("/:id", milestoneHandler.UpdateMilestone)
	milestones.DELETE("/:id", milestoneHandler.DeleteMilestone)

	skills := protected.Group("/skills")
	skills.POST("", skillHandler.CreateSkill)
	skills.GET("", skillHandler.GetSkills)
	skills.GET("/logs", skillHandler.GetLogs)
	skills.GET("/time", skillHandler.GetTimeTotals)
	skills.DELETE("/logs/:id", skillHandler.DeleteLog)
	skills.POST("/:id/logs", skillHandler.LogTime)
	skills.PUT("/:id", skillHandler.RenameSkill)
	skills.DELETE("/:id", skillHandler.DeleteSkill)

	posts := protected.Group("/posts")
	posts.POST("", postHandler.CreatePost)
	posts.GET("", postHandler.GetPosts)
	posts.PUT("/:id", postHandler.UpdatePost)
	posts.DELETE("/:id", postHandler.DeletePost)

	pod := protected.Group("/pod")
	pod.POST("/members", podHandler.AddMember)
	pod.GET("/members", podHandler.GetMembers)
	pod.DELETE("/members/:id", podHandler.RemoveMember)
	pod.POST("/members/:id/nudge", podHandler.Nudge)
	pod.POST("/invite", podHandler.Invite)

	return &testApp{DB: db, Router: router, Notifier: notifier}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(string)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}
