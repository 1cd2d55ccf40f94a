package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"PortfolioAPI/config/environment"
	"PortfolioAPI/middleware"
	"PortfolioAPI/models"
	"PortfolioAPI/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeUserStore is an in-memory services.UserStore with the Mongo
// implementation's semantics: default reads hide credentials, content saves
// never touch them, and a password update clears any reset code.
type fakeUserStore struct {
	users map[primitive.ObjectID]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[primitive.ObjectID]models.User{}}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return mongo.WriteException{WriteErrors: []mongo.WriteError{{
				Code:    11000,
				Message: "E11000 duplicate key error",
			}}}
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, services.ErrUserNotFound
	}
	user.Password = ""
	user.ResetPasswordOTP = nil
	user.ResetPasswordOTPExpiry = nil
	return &user, nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, services.ErrUserNotFound
}

func (f *fakeUserStore) FindByResetOTP(ctx context.Context, otp int, now time.Time) (*models.User, error) {
	for _, user := range f.users {
		if user.ResetPasswordOTP != nil && *user.ResetPasswordOTP == otp &&
			user.ResetPasswordOTPExpiry != nil && user.ResetPasswordOTPExpiry.After(now) {
			found := user
			return &found, nil
		}
	}
	return nil, services.ErrUserNotFound
}

func (f *fakeUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, user := range f.users {
		user.Password = ""
		user.ResetPasswordOTP = nil
		user.ResetPasswordOTPExpiry = nil
		out = append(out, user)
	}
	return out, nil
}

func (f *fakeUserStore) UpdateUser(ctx context.Context, user *models.User) error {
	existing, ok := f.users[user.ID]
	if !ok {
		return services.ErrUserNotFound
	}
	existing.Name = user.Name
	existing.Email = user.Email
	existing.Avatar = user.Avatar
	existing.TechStack = user.TechStack
	existing.AboutMe = user.AboutMe
	existing.Projects = user.Projects
	f.users[user.ID] = existing
	return nil
}

func (f *fakeUserStore) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	existing, ok := f.users[id]
	if !ok {
		return services.ErrUserNotFound
	}
	existing.Password = hash
	existing.ResetPasswordOTP = nil
	existing.ResetPasswordOTPExpiry = nil
	f.users[id] = existing
	return nil
}

func (f *fakeUserStore) SetResetOTP(ctx context.Context, id primitive.ObjectID, otp int, expiry time.Time) error {
	existing, ok := f.users[id]
	if !ok {
		return services.ErrUserNotFound
	}
	existing.ResetPasswordOTP = &otp
	existing.ResetPasswordOTPExpiry = &expiry
	f.users[id] = existing
	return nil
}

// fakeImageStore records uploads and destroys in call order.
type fakeImageStore struct {
	uploads   []models.Image
	folders   []string
	destroyed []string
}

func (f *fakeImageStore) Upload(ctx context.Context, file string, folder string) (models.Image, error) {
	image := models.Image{
		PublicID: file + "-id",
		URL:      "https://img.test/" + file,
	}
	f.uploads = append(f.uploads, image)
	f.folders = append(f.folders, folder)
	return image, nil
}

func (f *fakeImageStore) Destroy(ctx context.Context, publicID string) error {
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

type fakeMailer struct {
	fail bool
	sent []struct{ to, subject, body string }
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.fail {
		return errors.New("smtp unreachable")
	}
	f.sent = append(f.sent, struct{ to, subject, body string }{to, subject, body})
	return nil
}

func testConfig() *environment.Config {
	return &environment.Config{
		Env:            "development",
		JWTSecret:      "test-secret",
		JWTExpiresDays: 7,
	}
}

// asUser plays the part of a verified session: it puts user into the request
// context the way middleware.IsAuthenticated does.
func asUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserKey, user)
		c.Next()
	}
}

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandlerMiddleware())
	return r
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "userToken" {
			return cookie
		}
	}
	return nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func seedUser(t *testing.T, store *fakeUserStore, mutate func(*models.User)) *models.User {
	t.Helper()

	user := &models.User{
		Name:      "A",
		Email:     fmt.Sprintf("a%d@x.com", len(store.users)),
		Role:      models.RoleAdmin,
		Avatar:    models.Image{PublicID: "Public_id", URL: "/Profile.png"},
		CreatedAt: time.Now(),
	}
	if err := user.SetPassword("password1"); err != nil {
		t.Fatalf("hash seed password: %v", err)
	}
	if mutate != nil {
		mutate(user)
	}
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}
