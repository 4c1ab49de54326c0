package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daypanel/daypanel-backend/internal/middleware"
	"github.com/daypanel/daypanel-backend/internal/models"
	"github.com/daypanel/daypanel-backend/internal/repository"
	"github.com/daypanel/daypanel-backend/internal/service"
	"github.com/daypanel/daypanel-backend/pkg/bcrypt"
	jwtPkg "github.com/daypanel/daypanel-backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
}

// newTestEnv wires the full route table over an in-memory database,
// without the optional upstream integrations.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Event{}))

	sugar := zap.NewNop().Sugar()
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)

	authService := service.NewAuthService(userRepo, testJWTSecret)
	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo, sugar)

	validator := NewValidator()
	authHandler := NewAuthHandler(authService, validator)
	userHandler := NewUserHandler(userService, validator)
	eventHandler := NewEventHandler(eventService, validator)
	citiesHandler := NewCitiesHandler()

	app := fiber.New()
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	api.Get("/cities", citiesHandler.GetCities)

	api.Use(middleware.Auth(testJWTSecret))
	auth.Get("/user", userHandler.GetProfile)
	auth.Put("/user", userHandler.UpdateProfile)

	events := api.Group("/events")
	events.Get("/", eventHandler.GetEvents)
	events.Post("/", eventHandler.CreateEvent)
	events.Delete("/:id", eventHandler.DeleteEvent)

	return &testEnv{app: app, db: db}
}

func (e *testEnv) createUser(t *testing.T, email string) (*models.User, string) {
	t.Helper()

	hash, err := bcrypt.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{Email: email, Password: hash}
	require.NoError(t, e.db.Create(user).Error)

	token, err := jwtPkg.GenerateToken(testJWTSecret, user)
	require.NoError(t, err)
	return user, token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func decodeResponse(t *testing.T, resp *http.Response) models.Response {
	t.Helper()
	var out models.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeInto(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
