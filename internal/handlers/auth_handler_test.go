package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/handyhub/marketplace-api/internal/config"
	"github.com/handyhub/marketplace-api/internal/mailer"
	"github.com/handyhub/marketplace-api/internal/models"
)

// ======================================================
// IN-MEMORY FAKE
// ======================================================

type fakeUserRepository struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[uint]*models.User{}}
}

func (r *fakeUserRepository) Create(_ context.Context, u *models.User) error {
	r.nextID++
	u.ID = r.nextID
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *fakeUserRepository) Save(_ context.Context, u *models.User) error {
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *fakeUserRepository) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *u
	return &out, nil
}

func (r *fakeUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetByResetToken(_ context.Context, hashedToken string, now time.Time) (*models.User, error) {
	for _, u := range r.users {
		if u.ResetPasswordToken == hashedToken &&
			u.ResetPasswordExpires != nil &&
			u.ResetPasswordExpires.After(now) {
			out := *u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) EmailTaken(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// ======================================================
// HARNESS
// ======================================================

func authRouter(repo *fakeUserRepository) *gin.Engine {
	cfg := &config.Config{JWTSecret: "test-secret", AppBaseURL: "http://localhost:3000/"}

	h := NewAuthHandler(repo, cfg, mailer.New(&config.Config{}), nil)
	h.checkEmailDomain = func(string) bool { return true }

	r := testRouter()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	return r
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// ======================================================
// TESTS
// ======================================================

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	repo := newFakeUserRepository()
	r := authRouter(repo)

	body := gin.H{"email": "ana@example.com", "password": "secret123", "name": "Ana"}

	w := doJSON(t, r, http.MethodPost, "/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/register", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email_already_exists", errCode(t, w))

	// The second attempt must not create another account.
	assert.Len(t, repo.users, 1)
}

func TestRegisterNormalizesEmailAndDefaultsRole(t *testing.T) {
	repo := newFakeUserRepository()
	r := authRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"email":    "Bruno@Example.COM",
		"password": "secret123",
		"name":     "Bruno",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "bruno@example.com", resp.User.Email)
	assert.Equal(t, models.RoleCustomer, resp.User.Role)

	stored := repo.users[resp.User.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "bruno@example.com", stored.Email)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestLoginDoesNotRevealWhichCredentialFailed(t *testing.T) {
	repo := newFakeUserRepository()
	r := authRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"email":    "ana@example.com",
		"password": "secret123",
		"name":     "Ana",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	wrongPassword := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email":    "ana@example.com",
		"password": "not-the-password",
	})
	unknownEmail := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email":    "nobody@example.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)

	// Identical body either way, so the endpoint cannot be used to probe
	// which emails have accounts.
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Equal(t, "invalid_credentials", errCode(t, wrongPassword))
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepository()
	r := authRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"email":    "ana@example.com",
		"password": "secret123",
		"name":     "Ana",
		"role":     models.RoleProvider,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email":    "ana@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleProvider, resp.User.Role)
}
