// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"

	"siakad/config"
	deliverycontext "siakad/internal/delivery/context"
	"siakad/internal/domain/entity"
	domainerrors "siakad/internal/domain/errors"
	"siakad/internal/domain/repository"
	"siakad/internal/domain/service"
	"siakad/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const setPasswordMailSubject = "Set Password Akun Anda"

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	roleRepo     repository.RoleRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailSender   service.MailSender
	frontendURL  string
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	ProfileRepo  repository.ProfileRepository
	RoleRepo     repository.RoleRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	MailSender   service.MailSender
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		profileRepo:  params.ProfileRepo,
		roleRepo:     params.RoleRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailSender:   params.MailSender,
		frontendURL:  params.Config.HTTP.FrontendURL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials, persists a fresh refresh token, and returns both
// tokens with the role-shaped account payload. Unknown usernames and wrong
// passwords produce the identical error so callers cannot probe for accounts.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown username", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Int64("userID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	role := account.Role.Name.String()
	accessToken, err := srv.tokenService.GenerateAccessToken(account.ID, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err := srv.tokenService.GenerateRefreshToken(account.ID, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	if err := srv.userRepo.UpdateRefreshToken(ctx, account.ID, refreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh token")
	}

	view, err := buildUserView(account)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Int64("userID", account.ID), slog.String("role", role))

	return &usecase.LoginOutput{
		User:         view,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// buildUserView shapes the login payload by role. Accounts with a profile role
// but no linked profile are data corruption and fail the login.
func buildUserView(account *entity.Account) (usecase.UserView, error) {
	base := usecase.BaseUserView{
		UserID:   account.ID,
		Username: account.Username,
		Role:     account.Role.Name.String(),
	}

	switch {
	case account.Role.Name == entity.RoleSiswa:
		if account.Siswa == nil {
			return nil, domainerrors.ErrNotFound.WithMessage("akun siswa tidak ditemukan")
		}

		return usecase.SiswaUserView{
			BaseUserView: base,
			SiswaID:      account.Siswa.ID,
			SiswaNama:    account.Siswa.Nama,
		}, nil
	case account.Role.Name.IsSekolahAdmin():
		if account.Sekolah == nil {
			return nil, domainerrors.ErrNotFound.WithMessage("akun admin tidak ditemukan")
		}

		return usecase.SekolahAdminUserView{
			BaseUserView: base,
			SekolahID:    account.Sekolah.ID,
			SekolahNama:  account.Sekolah.Nama,
		}, nil
	default:
		return base, nil
	}
}

// Refresh exchanges a valid refresh token for a new access token. The token is
// verified by signature and expiry only; the stored copy is not consulted.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domainerrors.ErrUnauthorized.WithMessage("no refresh token provided")
	}

	claims, err := srv.tokenService.ParseRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			srv.log(ctx).Warn("Refresh token expired")

			return "", domainerrors.ErrRefreshTokenExpired
		}
		srv.log(ctx).Warn("Invalid refresh token presented")

		return "", domainerrors.ErrUnauthorized.WithMessage("invalid refresh token")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate access token on refresh")
	}

	return accessToken, nil
}

// Logout clears the account's persisted refresh token. Clearing an already
// cleared token succeeds.
func (srv *userService) Logout(ctx context.Context, userID int64) error {
	if err := srv.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrNotFound.WithMessage("akun tidak ditemukan")
		}

		return errors.Wrap(err, "failed to clear refresh token")
	}

	srv.log(ctx).Info("Logout completed", slog.Int64("userID", userID))

	return nil
}

// RegisterSiswa creates a student account linked to an existing siswa record.
// Account creation and the profile link commit atomically; the set-password
// email goes out after the commit and its failure does not undo registration.
func (srv *userService) RegisterSiswa(ctx context.Context, input usecase.RegisterSiswaInput) (*usecase.RegisterSiswaOutput, error) {
	passwordHash, err := srv.tempPasswordHash()
	if err != nil {
		return nil, err
	}

	var output usecase.RegisterSiswaOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		profileRepo := repoFactory.ProfileRepo()

		siswa, err := profileRepo.FindSiswaByID(ctx, input.SiswaID)
		if err != nil {
			if errors.Is(err, repository.ErrSiswaNotFound) {
				return domainerrors.ErrNotFound.WithMessage("siswa tidak ditemukan")
			}

			return errors.Wrap(err, "failed to load siswa for registration")
		}
		if siswa.UserID != nil {
			return domainerrors.ErrConflict.WithMessage("akun siswa sudah ada")
		}

		if err := srv.ensureUsernameFree(ctx, userRepo, input.Username); err != nil {
			return err
		}

		account := &entity.Account{
			Username:     input.Username,
			PasswordHash: passwordHash,
			RoleID:       input.RoleID,
		}
		if err := userRepo.Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create siswa account")
		}

		if err := profileRepo.LinkSiswa(ctx, siswa.ID, account.ID); err != nil {
			return errors.Wrap(err, "failed to link siswa to account")
		}

		output = usecase.RegisterSiswaOutput{
			UserID:   account.ID,
			Username: account.Username,
			Nama:     siswa.Nama,
			SiswaID:  siswa.ID,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Siswa account registered", slog.Int64("userID", output.UserID), slog.Int64("siswaID", output.SiswaID))
	srv.sendSetPasswordMail(ctx, output.UserID, output.Username, output.Nama)

	return &output, nil
}

// RegisterSekolahAdmin creates a school-admin account linked to an existing
// sekolah record.
func (srv *userService) RegisterSekolahAdmin(ctx context.Context, input usecase.RegisterSekolahAdminInput) (*usecase.RegisterSekolahAdminOutput, error) {
	passwordHash, err := srv.tempPasswordHash()
	if err != nil {
		return nil, err
	}

	var output usecase.RegisterSekolahAdminOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		profileRepo := repoFactory.ProfileRepo()

		sekolah, err := profileRepo.FindSekolahByID(ctx, input.SekolahID)
		if err != nil {
			if errors.Is(err, repository.ErrSekolahNotFound) {
				return domainerrors.ErrNotFound.WithMessage("sekolah tidak ditemukan")
			}

			return errors.Wrap(err, "failed to load sekolah for registration")
		}
		if sekolah.UserID != nil {
			return domainerrors.ErrConflict.WithMessage("akun sekolah sudah ada")
		}

		if err := srv.ensureUsernameFree(ctx, userRepo, input.Username); err != nil {
			return err
		}

		account := &entity.Account{
			Username:     input.Username,
			PasswordHash: passwordHash,
			RoleID:       input.RoleID,
		}
		if err := userRepo.Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create sekolah admin account")
		}

		if err := profileRepo.LinkSekolah(ctx, sekolah.ID, account.ID); err != nil {
			return errors.Wrap(err, "failed to link sekolah to account")
		}

		output = usecase.RegisterSekolahAdminOutput{
			UserID:      account.ID,
			Username:    account.Username,
			RoleID:      account.RoleID,
			SekolahID:   sekolah.ID,
			SekolahNama: sekolah.Nama,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Sekolah admin account registered", slog.Int64("userID", output.UserID), slog.Int64("sekolahID", output.SekolahID))
	srv.sendSetPasswordMail(ctx, output.UserID, output.Username, "Admin "+output.SekolahNama)

	return &output, nil
}

// RegisterDisdikAdmin creates a department-admin account. No profile record is
// linked, so a single insert suffices.
func (srv *userService) RegisterDisdikAdmin(ctx context.Context, input usecase.RegisterDisdikAdminInput) (*usecase.RegisterDisdikAdminOutput, error) {
	passwordHash, err := srv.tempPasswordHash()
	if err != nil {
		return nil, err
	}

	if err := srv.ensureUsernameFree(ctx, srv.userRepo, input.Username); err != nil {
		return nil, err
	}

	account := &entity.Account{
		Username:     input.Username,
		PasswordHash: passwordHash,
		RoleID:       input.RoleID,
	}
	if err := srv.userRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create disdik admin account")
	}

	srv.log(ctx).Info("Disdik admin account registered", slog.Int64("userID", account.ID))
	srv.sendSetPasswordMail(ctx, account.ID, account.Username, "Admin Dinas Pendidikan")

	return &usecase.RegisterDisdikAdminOutput{
		UserID:   account.ID,
		Username: account.Username,
		RoleID:   account.RoleID,
	}, nil
}

// VerifyUsername re-sends the set-password email for a student account.
func (srv *userService) VerifyUsername(ctx context.Context, input usecase.VerifyUsernameInput) (bool, error) {
	account, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return false, domainerrors.ErrValidationFailed.WithMessage("username does not exist")
		}

		return false, errors.Wrap(err, "failed to load account for username verification")
	}
	if account.Siswa == nil {
		return false, domainerrors.ErrValidationFailed.WithMessage("tidak ada siswa yang terkait dengan akun")
	}

	sent := srv.sendSetPasswordMail(ctx, account.ID, account.Username, account.Siswa.Nama)

	return sent, nil
}

// UpdatePassword sets a new password authorized by a set-password token. Every
// token failure collapses into the same expired-token error.
func (srv *userService) UpdatePassword(ctx context.Context, input usecase.UpdatePasswordInput) (*usecase.UserIDOutput, error) {
	claims, err := srv.tokenService.ParseSetPasswordToken(input.Token)
	if err != nil {
		srv.log(ctx).Warn("Set-password token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrSetPasswordTokenExpired
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash new password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, claims.UserID, passwordHash); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrSetPasswordTokenExpired
		}

		return nil, errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password updated", slog.Int64("userID", claims.UserID))

	return &usecase.UserIDOutput{UserID: claims.UserID}, nil
}

// UpdateUser renames an account's username and emails a fresh set-password
// link to the new address.
func (srv *userService) UpdateUser(ctx context.Context, input usecase.UpdateUserInput) (*usecase.UpdateUserOutput, error) {
	if err := srv.ensureUsernameFree(ctx, srv.userRepo, input.Username); err != nil {
		return nil, err
	}

	account, err := srv.userRepo.UpdateUsername(ctx, input.UserID, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("akun tidak ditemukan")
		}

		return nil, errors.Wrap(err, "failed to update username")
	}

	switch {
	case account.Siswa != nil:
		srv.sendSetPasswordMail(ctx, account.ID, account.Username, account.Siswa.Nama)
	case account.Sekolah != nil:
		srv.sendSetPasswordMail(ctx, account.ID, account.Username, "Admin "+account.Sekolah.Nama)
	}

	srv.log(ctx).Info("Username updated", slog.Int64("userID", account.ID))

	return &usecase.UpdateUserOutput{
		UserID:   account.ID,
		Username: account.Username,
	}, nil
}

// DeleteUser removes an account.
func (srv *userService) DeleteUser(ctx context.Context, userID int64) (*usecase.UserIDOutput, error) {
	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("akun tidak ditemukan")
		}

		return nil, errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.Int64("userID", userID))

	return &usecase.UserIDOutput{UserID: userID}, nil
}

// ListSiswaBySekolah pages through the account-holding students of a school.
func (srv *userService) ListSiswaBySekolah(ctx context.Context, sekolahID int64, page, limit int) ([]repository.SiswaAccountRow, int64, error) {
	if sekolahID <= 0 {
		srv.log(ctx).Warn("Siswa listing requested without school id")

		return nil, 0, domainerrors.ErrValidationFailed.WithMessage("no school id provided")
	}

	page, limit = normalizePage(page, limit)

	total, err := srv.profileRepo.CountSiswaBySekolah(ctx, sekolahID)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count siswa accounts")
	}

	rows, err := srv.profileRepo.ListSiswaBySekolah(ctx, sekolahID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list siswa accounts")
	}

	return rows, total, nil
}

// ListAdminSekolah pages through school-admin accounts. The listing is always
// restricted to the adminSD and adminSMP roles regardless of the role filter.
func (srv *userService) ListAdminSekolah(ctx context.Context, input usecase.ListAdminSekolahInput) ([]usecase.AdminSekolahView, int64, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	roles, err := srv.roleRepo.ListRoles(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to load roles for admin listing")
	}

	filter := repository.AdminSekolahFilter{
		UsernameContains: input.UsernameContains,
		RoleID:           input.RoleID,
	}
	for _, role := range roles {
		name := strings.ToLower(role.Name.String())
		if name == "adminsd" || name == "adminsmp" {
			filter.RoleIDs = append(filter.RoleIDs, role.ID)
		}
	}

	total, err := srv.userRepo.CountAdminSekolah(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count school admin accounts")
	}

	accounts, err := srv.userRepo.ListAdminSekolah(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list school admin accounts")
	}

	views := make([]usecase.AdminSekolahView, 0, len(accounts))
	for _, account := range accounts {
		view := usecase.AdminSekolahView{
			UserID:   account.ID,
			Username: account.Username,
			Role:     account.Role.Name.String(),
			RoleID:   account.RoleID,
		}
		if account.Sekolah != nil {
			view.SekolahID = &account.Sekolah.ID
			view.SekolahNama = &account.Sekolah.Nama
		}
		views = append(views, view)
	}

	return views, total, nil
}

// ListRoles returns the role reference data.
func (srv *userService) ListRoles(ctx context.Context) ([]usecase.RoleView, error) {
	roles, err := srv.roleRepo.ListRoles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	views := make([]usecase.RoleView, 0, len(roles))
	for _, role := range roles {
		views = append(views, usecase.RoleView{
			RoleID:   role.ID,
			RoleNama: role.Name.String(),
		})
	}

	return views, nil
}

// ensureUsernameFree fails with a conflict when the username is already taken.
func (srv *userService) ensureUsernameFree(ctx context.Context, userRepo repository.UserRepository, username string) error {
	_, err := userRepo.FindByUsername(ctx, username)
	if err == nil {
		return domainerrors.ErrConflict.WithMessage("user already exist")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check username availability")
	}

	return nil
}

// tempPasswordHash generates and hashes the random placeholder password a new
// account carries until the holder sets their own.
func (srv *userService) tempPasswordHash() (string, error) {
	raw := make([]byte, 8)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to generate temporary password")
	}

	return srv.hasher.Hash(hex.EncodeToString(raw))
}

// sendSetPasswordMail issues a set-password token and emails the link.
// Reports whether the email was handed off; failure is logged, never fatal.
func (srv *userService) sendSetPasswordMail(ctx context.Context, userID int64, toAddress, recipientName string) bool {
	token, err := srv.tokenService.GenerateSetPasswordToken(userID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate set-password token", slog.Int64("userID", userID), slog.Any("error", err))

		return false
	}

	link := srv.frontendURL + "/set-password?token=" + token
	sent := srv.mailSender.Send(ctx, toAddress, recipientName, setPasswordMailSubject, link)
	if !sent {
		srv.log(ctx).Warn("Set-password email was not delivered", slog.Int64("userID", userID), slog.String("to", toAddress))
	}

	return sent
}

// normalizePage clamps paging values to sane defaults.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	return page, limit
}
