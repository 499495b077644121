package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"siakad/config"
	"siakad/internal/domain/entity"
	domainerrors "siakad/internal/domain/errors"
	"siakad/internal/domain/repository"
	mockRepo "siakad/internal/mocks/repository"
	mockSvc "siakad/internal/mocks/service"
	"siakad/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.FrontendURL = "http://localhost:5173"

	return cfg
}

// stubTxManager runs the callback against a fixed repository set, without a
// real database transaction.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (s *stubTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(s.factory)
}

type stubFactory struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	roleRepo    repository.RoleRepository
}

func (f *stubFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *stubFactory) ProfileRepo() repository.ProfileRepository {
	return f.profileRepo
}

func (f *stubFactory) RoleRepo() repository.RoleRepository {
	return f.roleRepo
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	profileRepo  *mockRepo.MockProfileRepository
	roleRepo     *mockRepo.MockRoleRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	mailSender   *mockSvc.MockMailSender
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	roleRepo := mockRepo.NewMockRoleRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailSender := mockSvc.NewMockMailSender(t)

	service := NewUserService(UserServiceParams{
		TxManager: &stubTxManager{factory: &stubFactory{
			userRepo:    userRepo,
			profileRepo: profileRepo,
			roleRepo:    roleRepo,
		}},
		UserRepo:     userRepo,
		ProfileRepo:  profileRepo,
		RoleRepo:     roleRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		MailSender:   mailSender,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		roleRepo:     roleRepo,
		hasher:       hasher,
		tokenService: tokenService,
		mailSender:   mailSender,
	}
}

// assertAppError checks that err carries the expected status and message.
func assertAppError(t *testing.T, err error, httpCode int, message string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, httpCode, appErr.HTTPCode())
	require.Equal(t, message, appErr.Message())
}

func siswaAccount() *entity.Account {
	siswaUserID := int64(10)

	return &entity.Account{
		ID:           10,
		Username:     "budi@example.com",
		PasswordHash: "hashed",
		RoleID:       1,
		Role:         entity.Role{ID: 1, Name: entity.RoleSiswa},
		Siswa: &entity.SiswaProfile{
			ID:            3,
			Nama:          "Budi Santoso",
			SekolahAsalID: 5,
			UserID:        &siswaUserID,
		},
	}
}

func sekolahAdminAccount() *entity.Account {
	adminUserID := int64(20)

	return &entity.Account{
		ID:           20,
		Username:     "admin.sdn1@example.com",
		PasswordHash: "hashed",
		RoleID:       2,
		Role:         entity.Role{ID: 2, Name: entity.RoleAdminSD},
		Sekolah: &entity.SekolahProfile{
			ID:     5,
			Nama:   "SDN 1 Bandung",
			UserID: &adminUserID,
		},
	}
}

func disdikAccount() *entity.Account {
	return &entity.Account{
		ID:           30,
		Username:     "disdik@example.com",
		PasswordHash: "hashed",
		RoleID:       4,
		Role:         entity.Role{ID: 4, Name: entity.RoleAdminDisdik},
	}
}
