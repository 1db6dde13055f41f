package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/handyhub/marketplace-api/internal/config"
	domainuser "github.com/handyhub/marketplace-api/internal/domain/user"
	"github.com/handyhub/marketplace-api/internal/httperr"
	"github.com/handyhub/marketplace-api/internal/httpresp"
	"github.com/handyhub/marketplace-api/internal/mailer"
	"github.com/handyhub/marketplace-api/internal/media"
	"github.com/handyhub/marketplace-api/internal/middleware"
	"github.com/handyhub/marketplace-api/internal/models"
	"github.com/handyhub/marketplace-api/internal/validators"
)

const resetTokenTTL = time.Hour

type AuthHandler struct {
	users    domainuser.Repository
	config   *config.Config
	mailer   *mailer.Mailer
	uploader *media.Uploader

	// DNS-backed by default; swappable so handler tests stay offline.
	checkEmailDomain func(string) bool
}

func NewAuthHandler(
	users domainuser.Repository,
	cfg *config.Config,
	mail *mailer.Mailer,
	uploader *media.Uploader,
) *AuthHandler {
	return &AuthHandler{
		users:            users,
		config:           cfg,
		mailer:           mail,
		uploader:         uploader,
		checkEmailDomain: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=CUSTOMER PROVIDER"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type ResetPasswordDirectRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type UpdateProfileRequest struct {
	Name        *string  `json:"name,omitempty"`
	Email       *string  `json:"email,omitempty" binding:"omitempty,email"`
	Phone       *string  `json:"phone,omitempty"`
	Bio         *string  `json:"bio,omitempty"`
	LocationLat *float64 `json:"location_lat,omitempty"`
	LocationLng *float64 `json:"location_lng,omitempty"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.checkEmailDomain(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	taken, err := h.users.EmailTaken(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not create the account.")
		return
	}
	if taken {
		httperr.Conflict(c, "email_already_exists", "A user with this email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		Phone:        req.Phone,
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not create the account.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a token.")
		return
	}

	httpresp.Created(c, gin.H{
		"token": token,
		"user":  userPayload(&user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Unknown email and wrong password answer identically so the endpoint
	// cannot be used to enumerate accounts.
	user, err := h.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not log in.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a token.")
		return
	}

	httpresp.OK(c, gin.H{
		"token": token,
		"user":  userPayload(user),
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	generic := gin.H{"message": "If the email exists, a reset link has been sent."}

	user, err := h.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		// Same answer whether or not the account exists.
		httpresp.OK(c, generic)
		return
	}

	plain := uuid.NewString()
	hashed := hashResetToken(plain)
	expires := time.Now().Add(resetTokenTTL)

	user.ResetPasswordToken = hashed
	user.ResetPasswordExpires = &expires

	if err := h.users.Save(c.Request.Context(), user); err != nil {
		httperr.Internal(c, "failed_to_store_reset_token", "Could not start the reset flow.")
		return
	}

	if err := h.mailer.SendPasswordReset(user.Email, h.config.AppBaseURL, plain); err != nil {
		httperr.Internal(c, "failed_to_send_email", "Could not send the reset email.")
		return
	}

	httpresp.OK(c, generic)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	hashed := hashResetToken(req.Token)

	user, err := h.users.GetByResetToken(c.Request.Context(), hashed, time.Now())
	if err != nil {
		httperr.BadRequest(c, "invalid_or_expired_token", "Invalid or expired reset token.")
		return
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	user.PasswordHash = string(newHash)
	user.ResetPasswordToken = ""
	user.ResetPasswordExpires = nil

	if err := h.users.Save(c.Request.Context(), user); err != nil {
		httperr.Internal(c, "failed_to_update_password", "Could not update the password.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Password has been reset successfully."})
}

// ResetPasswordDirect skips the token round-trip. Kept from the original
// backend as a development shortcut.
func (h *AuthHandler) ResetPasswordDirect(c *gin.Context) {
	var req ResetPasswordDirectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.NotFound(c, "user_not_found", "No account with this email.")
		return
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	user.PasswordHash = string(newHash)

	if err := h.users.Save(c.Request.Context(), user); err != nil {
		httperr.Internal(c, "failed_to_update_password", "Could not update the password.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Password has been reset successfully."})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.NotFound(c, "user_not_found", "Account no longer exists.")
		return
	}

	httpresp.OK(c, userPayload(user))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.NotFound(c, "user_not_found", "Account no longer exists.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.LocationLat != nil {
		user.LocationLat = req.LocationLat
	}
	if req.LocationLng != nil {
		user.LocationLng = req.LocationLng
	}

	if err := h.users.Save(c.Request.Context(), user); err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not update the profile.")
		return
	}

	httpresp.OK(c, userPayload(user))
}

func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	if !h.uploader.Enabled() {
		httperr.Internal(c, "media_storage_not_configured", "Avatar storage is not configured.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.NotFound(c, "user_not_found", "Account no longer exists.")
		return
	}

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar_file", "Expected an 'avatar' form file.")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadAvatar(c.Request.Context(), user.ID, file)
	if err != nil {
		httperr.BadRequest(c, "invalid_avatar", "Could not process the image.")
		return
	}

	user.Avatar = url
	if err := h.users.Save(c.Request.Context(), user); err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not store the avatar URL.")
		return
	}

	httpresp.OK(c, gin.H{"avatar": url})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

// --------- Helpers ---------

func hashResetToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":           user.ID,
		"email":        user.Email,
		"name":         user.Name,
		"phone":        user.Phone,
		"role":         user.Role,
		"avatar":       user.Avatar,
		"bio":          user.Bio,
		"location_lat": user.LocationLat,
		"location_lng": user.LocationLng,
	}
}
