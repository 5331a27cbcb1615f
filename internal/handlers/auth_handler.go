package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/patient-monitor-api/internal/errs"
	"github.com/harentsoaR/patient-monitor-api/internal/models"
	"github.com/harentsoaR/patient-monitor-api/internal/store"
	"github.com/harentsoaR/patient-monitor-api/internal/validation"
	"github.com/rs/zerolog"
)

type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest uses pointers so an absent key and an empty string get
// different messages.
type LoginRequest struct {
	Email    *string `json:"email" validate:"required,nonempty,email"`
	Password *string `json:"password" validate:"required,nonempty"`
}

// RegisterUser creates a user after checking that all fields are present and
// the email is not taken. The email pre-check only produces the friendly
// message; the unique index is what actually prevents duplicates.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, errs.NewValidationError(errs.MsgInvalidBody))
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		fail(c, errs.NewValidationError(errs.MsgAllFieldsRequired))
		return
	}
	if !validation.IsEmail(req.Email) {
		fail(c, errs.NewValidationError(`"email" must be a valid email`))
		return
	}

	ctx := c.Request.Context()
	_, err := h.Store.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		fail(c, errs.NewConflictError(errs.MsgEmailInUse))
		return
	case !errors.Is(err, store.ErrNotFound):
		fail(c, errs.NewStoreError(err))
		return
	}

	password, err := h.Passwords.Prepare(req.Password)
	if err != nil {
		fail(c, errs.NewStoreError(err))
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: password,
	}
	if err := h.Store.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			fail(c, errs.NewConflictError(errs.MsgEmailInUse))
			return
		}
		fail(c, errs.NewStoreError(err))
		return
	}
	zerolog.Ctx(ctx).Info().Str("user_id", user.ID.Hex()).Msg("user registered")

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

// Login checks the submitted credentials. Unknown email and wrong password
// produce the same response.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	unknown, err := bindJSONStrict(c, &req)
	if err != nil {
		fail(c, errs.NewValidationError(errs.MsgInvalidBody))
		return
	}
	// Declared fields are checked before extra keys are rejected.
	if err := validation.Struct(req); err != nil {
		fail(c, err)
		return
	}
	if unknown != "" {
		fail(c, validation.NotAllowed(unknown))
		return
	}

	ctx := c.Request.Context()
	user, err := h.Store.FindUserByEmail(ctx, *req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, errs.NewAuthError())
			return
		}
		fail(c, errs.NewStoreError(err))
		return
	}
	if !h.Passwords.Matches(*req.Password, user.Password) {
		fail(c, errs.NewAuthError())
		return
	}

	resp := gin.H{"message": "Login successful", "userId": user.ID.Hex()}
	if h.Tokens.Enabled() {
		token, err := h.Tokens.Generate(user.ID.Hex())
		if err != nil {
			fail(c, errs.NewStoreError(err))
			return
		}
		resp["token"] = token
	}
	zerolog.Ctx(ctx).Debug().Str("user_id", user.ID.Hex()).Msg("login succeeded")

	c.JSON(http.StatusOK, resp)
}
