// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"siakad/config"
	deliverycontext "siakad/internal/delivery/context"
	"siakad/internal/delivery/http/response"
	domainerrors "siakad/internal/domain/errors"
	"siakad/internal/domain/service"
	"siakad/internal/usecase"
)

const refreshTokenCookie = "refresh_token"

// UserHandler holds dependencies for the account endpoints.
type UserHandler struct {
	uc         usecase.UserUsecase
	tokenSvc   service.TokenService
	secureMode bool
	logger     *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:         uc,
		tokenSvc:   tokenSvc,
		secureMode: cfg.IsProduction(),
		logger:     logger,
	}
}

// loginResponse is the JSON body of a successful login. The refresh token
// travels only in the cookie.
type loginResponse struct {
	User        usecase.UserView `json:"user"`
	AccessToken string           `json:"access_token"`
}

// Login handles credential verification and cookie issuance.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken)

	return response.Success(c, http.StatusOK, loginResponse{
		User:        output.User,
		AccessToken: output.AccessToken,
	})
}

// Refresh exchanges the cookie's refresh token for a new access token.
func (h *UserHandler) Refresh(c echo.Context) error {
	var refreshToken string
	if cookie, err := c.Cookie(refreshTokenCookie); err == nil {
		refreshToken = cookie.Value
	}

	accessToken, err := h.uc.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"access_token": accessToken})
}

// Logout clears the persisted refresh token and expires the cookie.
func (h *UserHandler) Logout(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)
	if err := h.uc.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	h.clearRefreshCookie(c)

	return response.Success(c, http.StatusNoContent, nil)
}

// RegisterSiswa creates a student account.
func (h *UserHandler) RegisterSiswa(c echo.Context) error {
	var input usecase.RegisterSiswaInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.RegisterSiswa(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// RegisterSekolahAdmin creates a school-admin account.
func (h *UserHandler) RegisterSekolahAdmin(c echo.Context) error {
	var input usecase.RegisterSekolahAdminInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.RegisterSekolahAdmin(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// RegisterDisdikAdmin creates a department-admin account.
func (h *UserHandler) RegisterDisdikAdmin(c echo.Context) error {
	var input usecase.RegisterDisdikAdminInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.RegisterDisdikAdmin(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// VerifyUsername re-sends the set-password email for a student account.
func (h *UserHandler) VerifyUsername(c echo.Context) error {
	var input usecase.VerifyUsernameInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid username input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	sent, err := h.uc.VerifyUsername(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sent)
}

// UpdatePassword sets a new password authorized by the set-password token in
// the query string.
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	var input usecase.UpdatePasswordInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid password input")
	}
	input.Token = c.QueryParam("token")
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.UpdatePassword(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// UpdateUser renames an account's username.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("invalid update input")
	}
	input.UserID = userID
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.UpdateUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// DeleteUser removes an account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.DeleteUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// ListSiswaBySekolah pages through the account-holding students of a school.
func (h *UserHandler) ListSiswaBySekolah(c echo.Context) error {
	sekolahID, err := pathID(c, "sekolah_id")
	if err != nil {
		return err
	}
	page, limit := pagination(c)

	rows, total, err := h.uc.ListSiswaBySekolah(c.Request().Context(), sekolahID, page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMeta(c, http.StatusOK, rows, &response.Meta{
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// ListRoles returns the role reference data.
func (h *UserHandler) ListRoles(c echo.Context) error {
	roles, err := h.uc.ListRoles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, roles)
}

// adminFilters mirrors the client's table filter object carried in the
// "filters" query parameter as JSON.
type adminFilters struct {
	Username *struct {
		Value *string `json:"value"`
	} `json:"username"`
	Role *struct {
		Value any `json:"value"`
	} `json:"role"`
}

// ListAdminSekolah pages through school-admin accounts.
func (h *UserHandler) ListAdminSekolah(c echo.Context) error {
	page, limit := pagination(c)

	input := usecase.ListAdminSekolahInput{Page: page, Limit: limit}
	if raw := c.QueryParam("filters"); raw != "" {
		var filters adminFilters
		if err := json.Unmarshal([]byte(raw), &filters); err != nil {
			return domainerrors.ErrValidationFailed.WithMessage("filters must be a valid JSON object")
		}
		if filters.Username != nil && filters.Username.Value != nil {
			input.UsernameContains = *filters.Username.Value
		}
		if filters.Role != nil {
			input.RoleID = roleIDFilter(filters.Role.Value)
		}
	}

	views, total, err := h.uc.ListAdminSekolah(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMeta(c, http.StatusOK, views, &response.Meta{
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// setRefreshCookie stores the refresh token as an HTTP-only cookie scoped to
// the whole site for the token's full lifetime.
func (h *UserHandler) setRefreshCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenSvc.RefreshTokenTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.secureMode,
		SameSite: http.SameSiteNoneMode,
	})
}

// clearRefreshCookie expires the refresh cookie immediately.
func (h *UserHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureMode,
		SameSite: http.SameSiteNoneMode,
	})
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, domainerrors.ErrValidationFailed.WithMessage(name + " must be a positive number")
	}

	return id, nil
}

// pagination reads page and limit query parameters with the listing defaults.
func pagination(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = 10
	}

	return page, limit
}

// roleIDFilter tolerates the role filter value arriving as a JSON number or a
// numeric string.
func roleIDFilter(value any) int64 {
	switch v := value.(type) {
	case float64:
		return int64(v)
	case string:
		id, _ := strconv.ParseInt(v, 10, 64)

		return id
	default:
		return 0
	}
}
