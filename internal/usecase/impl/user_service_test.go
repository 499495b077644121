package impl

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"siakad/internal/domain/entity"
	domainerrors "siakad/internal/domain/errors"
	"siakad/internal/domain/repository"
	"siakad/internal/domain/service"
	"siakad/internal/usecase"
)

func TestUserService_Login_SiswaSuccess(t *testing.T) {
	t.Parallel()

	fx := createTestUserService(t)
	ctx := context.Background()
	account := siswaAccount()

	fx.userRepo.EXPECT().FindByUsername(ctx, account.Username).Return(account, nil)
	fx.hasher.EXPECT().Check("secret123", account.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(account.ID, "siswa").Return("access-token", nil)
	fx.tokenService.EXPECT().GenerateRefreshToken(account.ID, "siswa").Return("refresh-token", nil)
	fx.userRepo.EXPECT().UpdateRefreshToken(ctx, account.ID, "refresh-token").Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: account.Username, Password: "secret123"})
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)

	view, ok := output.User.(usecase.SiswaUserView)
	require.True(t, ok, "siswa login must yield the siswa-shaped view")
	assert.Equal(t, account.ID, view.UserID)
	assert.Equal(t, account.Siswa.ID, view.SiswaID)
	assert.Equal(t, account.Siswa.Nama, view.SiswaNama)
}

func TestUserService_Login_SekolahAdminView(t *testing.T) {
	t.Parallel()

	fx := createTestUserService(t)
	ctx := context.Background()
	account := sekolahAdminAccount()

	fx.userRepo.EXPECT().FindByUsername(ctx, account.Username).Return(account, nil)
	fx.hasher.EXPECT().Check(mock.Anything, mock.Anything).Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(account.ID, "adminSD").Return("access-token", nil)
	fx.tokenService.EXPECT().GenerateRefreshToken(account.ID, "adminSD").Return("refresh-token", nil)
	fx.userRepo.EXPECT().UpdateRefreshToken(ctx, account.ID, "refresh-token").Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: account.Username, Password: "secret123"})
	require.NoError(t, err)

	view, ok := output.User.(usecase.SekolahAdminUserView)
	require.True(t, ok, "school admin login must yield the sekolah-shaped view")
	assert.Equal(t, account.Sekolah.ID, view.SekolahID)
	assert.Equal(t, account.Sekolah.Nama, view.SekolahNama)
}

func TestUserService_Login_DisdikBaseView(t *testing.T) {
	t.Parallel()

	fx := createTestUserService(t)
	ctx := context.Background()
	account := disdikAccount()

	fx.userRepo.EXPECT().FindByUsername(ctx, account.Username).Return(account, nil)
	fx.hasher.EXPECT().Check(mock.Anything, mock.Anything).Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(account.ID, "adminDisdik").Return("access-token", nil)
	fx.tokenService.EXPECT().GenerateRefreshToken(account.ID, "adminDisdik").Return("refresh-token", nil)
	fx.userRepo.EXPECT().UpdateRefreshToken(ctx, account.ID, "refresh-token").Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: account.Username, Password: "secret123"})
	require.NoError(t, err)

	view, ok := output.User.(usecase.BaseUserView)
	require.True(t, ok, "roles without a profile yield the base view")
	assert.Equal(t, "adminDisdik", view.Role)
}

func TestUserService_Login_UnknownUsernameAndWrongPasswordLookAlike(t *testing.T) {
	t.Parallel()

	fx := createTestUserService(t)
	ctx := context.Background()
	account := siswaAccount()

	fx.userRepo.EXPECT().FindByUsername(ctx, "nobody@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.userRepo.EXPECT().FindByUsername(ctx, account.Username).Return(account, nil)
	fx.hasher.EXPECT().Check("wrong", account.PasswordHash).Return(false)

	_, unknownErr := fx.service.Login(ctx, usecase.LoginInput{Username: "nobody@example.com", Password: "secret123"})
	_, wrongPassErr := fx.service.Login(ctx, usecase.LoginInput{Username: account.Username, Password: "wrong"})

	require.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, wrongPassErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongPassErr, "both failures must be indistinguishable to the caller")
}

func TestUserService_Login_SiswaWithoutProfileFails(t *testing.T) {
	t.Parallel()

	fx := createTestUserService(t)
	ctx := context.Background()
	account := siswaAccount()
	account.Siswa = nil

	fx.userRepo.EXPECT().FindByUsername(ctx, account.Username).Return(account, nil)
	fx.hasher.EXPECT().Check(mock.Anything, mock.Anything).Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(mock.Anything, mock.Anything).Return("access-token", nil)
	fx.tokenService.EXPECT().GenerateRefreshToken(mock.Anything, mock.Anything).Return("refresh-token", nil)
	fx.userRepo.EXPECT().UpdateRefreshToken(ctx, account.ID, "refresh-token").Return(nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Username: account.Username, Password: "secret123"})
	assertAppError(t, err, http.StatusNotFound, "akun siswa tidak ditemukan")
}

func TestUserService_Refresh(t *testing.T) {
	t.Parallel()

	t.Run("empty token is unauthorized", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)

		_, err := fx.service.Refresh(context.Background(), "")
		assertAppError(t, err, http.StatusUnauthorized, "no refresh token provided")
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ParseRefreshToken("stale").Return(nil, service.ErrTokenExpired)

		_, err := fx.service.Refresh(context.Background(), "stale")
		require.ErrorIs(t, err, domainerrors.ErrRefreshTokenExpired)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ParseRefreshToken("garbage").Return(nil, service.ErrTokenInvalid)

		_, err := fx.service.Refresh(context.Background(), "garbage")
		assertAppError(t, err, http.StatusUnauthorized, "invalid refresh token")
	})

	t.Run("valid token mints a new access token", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ParseRefreshToken("valid").
			Return(&service.TokenClaims{UserID: 10, Role: "siswa"}, nil)
		fx.tokenService.EXPECT().GenerateAccessToken(int64(10), "siswa").Return("new-access", nil)

		accessToken, err := fx.service.Refresh(context.Background(), "valid")
		require.NoError(t, err)
		assert.Equal(t, "new-access", accessToken)
	})
}

func TestUserService_Logout(t *testing.T) {
	t.Parallel()

	t.Run("clears the stored token", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		fx.userRepo.EXPECT().ClearRefreshToken(mock.Anything, int64(10)).Return(nil)

		require.NoError(t, fx.service.Logout(context.Background(), 10))
	})

	t.Run("unknown account", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		fx.userRepo.EXPECT().ClearRefreshToken(mock.Anything, int64(99)).Return(repository.ErrAccountNotFound)

		err := fx.service.Logout(context.Background(), 99)
		assertAppError(t, err, http.StatusNotFound, "akun tidak ditemukan")
	})
}

func TestUserService_RegisterSiswa_Success(t *testing.T) {
	t.Parallel()

	fx := createTestUserService(t)
	ctx := context.Background()
	siswa := &entity.SiswaProfile{ID: 3, Nama: "Budi Santoso", SekolahAsalID: 5}

	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("temp-hash", nil)
	fx.profileRepo.EXPECT().FindSiswaByID(ctx, int64(3)).Return(siswa, nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, "budi@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(*entity.Account)
			assert.Equal(t, "temp-hash", account.PasswordHash)
			account.ID = 42
		}).Return(nil)
	fx.profileRepo.EXPECT().LinkSiswa(ctx, int64(3), int64(42)).Return(nil)
	fx.tokenService.EXPECT().GenerateSetPasswordToken(int64(42)).Return("set-token", nil)
	fx.mailSender.EXPECT().Send(ctx, "budi@example.com", "Budi Santoso", "Set Password Akun Anda",
		"http://localhost:5173/set-password?token=set-token").Return(true).Once()

	output, err := fx.service.RegisterSiswa(ctx, usecase.RegisterSiswaInput{
		Username: "budi@example.com",
		RoleID:   1,
		SiswaID:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), output.UserID)
	assert.Equal(t, "Budi Santoso", output.Nama)
	assert.Equal(t, int64(3), output.SiswaID)
}

func TestUserService_RegisterSiswa_MailFailureDoesNotUndoRegistration(t *testing.T) {
	t.Parallel()

	fx := createTestUserService(t)
	ctx := context.Background()
	siswa := &entity.SiswaProfile{ID: 3, Nama: "Budi Santoso", SekolahAsalID: 5}

	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("temp-hash", nil)
	fx.profileRepo.EXPECT().FindSiswaByID(ctx, int64(3)).Return(siswa, nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, mock.Anything).Return(nil, repository.ErrAccountNotFound)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Account).ID = 42
		}).Return(nil)
	fx.profileRepo.EXPECT().LinkSiswa(ctx, int64(3), int64(42)).Return(nil)
	fx.tokenService.EXPECT().GenerateSetPasswordToken(int64(42)).Return("set-token", nil)
	fx.mailSender.EXPECT().Send(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false)

	output, err := fx.service.RegisterSiswa(ctx, usecase.RegisterSiswaInput{
		Username: "budi@example.com",
		RoleID:   1,
		SiswaID:  3,
	})
	require.NoError(t, err)
	require.NotNil(t, output)
}

func TestUserService_RegisterSiswa_Failures(t *testing.T) {
	t.Parallel()

	t.Run("siswa record missing", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		ctx := context.Background()

		fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("temp-hash", nil)
		fx.profileRepo.EXPECT().FindSiswaByID(ctx, int64(404)).Return(nil, repository.ErrSiswaNotFound)

		_, err := fx.service.RegisterSiswa(ctx, usecase.RegisterSiswaInput{
			Username: "budi@example.com",
			RoleID:   1,
			SiswaID:  404,
		})
		assertAppError(t, err, http.StatusNotFound, "siswa tidak ditemukan")
	})

	t.Run("siswa already has an account", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		ctx := context.Background()
		linkedUserID := int64(7)

		fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("temp-hash", nil)
		fx.profileRepo.EXPECT().FindSiswaByID(ctx, int64(3)).
			Return(&entity.SiswaProfile{ID: 3, Nama: "Budi Santoso", SekolahAsalID: 5, UserID: &linkedUserID}, nil)

		_, err := fx.service.RegisterSiswa(ctx, usecase.RegisterSiswaInput{
			Username: "budi@example.com",
			RoleID:   1,
			SiswaID:  3,
		})
		assertAppError(t, err, http.StatusConflict, "akun siswa sudah ada")
	})

	t.Run("username already taken", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		ctx := context.Background()

		fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("temp-hash", nil)
		fx.profileRepo.EXPECT().FindSiswaByID(ctx, int64(3)).
			Return(&entity.SiswaProfile{ID: 3, Nama: "Budi Santoso", SekolahAsalID: 5}, nil)
		fx.userRepo.EXPECT().FindByUsername(ctx, "taken@example.com").Return(siswaAccount(), nil)

		_, err := fx.service.RegisterSiswa(ctx, usecase.RegisterSiswaInput{
			Username: "taken@example.com",
			RoleID:   1,
			SiswaID:  3,
		})
		assertAppError(t, err, http.StatusConflict, "user already exist")
	})
}

func TestUserService_RegisterSekolahAdmin_Success(t *testing.T) {
	t.Parallel()

	fx := createTestUserService(t)
	ctx := context.Background()
	sekolah := &entity.SekolahProfile{ID: 5, Nama: "SDN 1 Bandung"}

	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("temp-hash", nil)
	fx.profileRepo.EXPECT().FindSekolahByID(ctx, int64(5)).Return(sekolah, nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, "admin.sdn1@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Account).ID = 20
		}).Return(nil)
	fx.profileRepo.EXPECT().LinkSekolah(ctx, int64(5), int64(20)).Return(nil)
	fx.tokenService.EXPECT().GenerateSetPasswordToken(int64(20)).Return("set-token", nil)
	fx.mailSender.EXPECT().Send(ctx, "admin.sdn1@example.com", "Admin SDN 1 Bandung", "Set Password Akun Anda",
		"http://localhost:5173/set-password?token=set-token").Return(true).Once()

	output, err := fx.service.RegisterSekolahAdmin(ctx, usecase.RegisterSekolahAdminInput{
		Username:  "admin.sdn1@example.com",
		RoleID:    2,
		SekolahID: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), output.UserID)
	assert.Equal(t, "SDN 1 Bandung", output.SekolahNama)
}

func TestUserService_RegisterSekolahAdmin_AlreadyLinked(t *testing.T) {
	t.Parallel()

	fx := createTestUserService(t)
	ctx := context.Background()
	linkedUserID := int64(20)

	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("temp-hash", nil)
	fx.profileRepo.EXPECT().FindSekolahByID(ctx, int64(5)).
		Return(&entity.SekolahProfile{ID: 5, Nama: "SDN 1 Bandung", UserID: &linkedUserID}, nil)

	_, err := fx.service.RegisterSekolahAdmin(ctx, usecase.RegisterSekolahAdminInput{
		Username:  "admin.sdn1@example.com",
		RoleID:    2,
		SekolahID: 5,
	})
	assertAppError(t, err, http.StatusConflict, "akun sekolah sudah ada")
}

func TestUserService_RegisterDisdikAdmin_Success(t *testing.T) {
	t.Parallel()

	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("temp-hash", nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, "disdik@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Account).ID = 30
		}).Return(nil)
	fx.tokenService.EXPECT().GenerateSetPasswordToken(int64(30)).Return("set-token", nil)
	fx.mailSender.EXPECT().Send(ctx, "disdik@example.com", "Admin Dinas Pendidikan", "Set Password Akun Anda",
		mock.Anything).Return(true)

	output, err := fx.service.RegisterDisdikAdmin(ctx, usecase.RegisterDisdikAdminInput{
		Username: "disdik@example.com",
		RoleID:   4,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30), output.UserID)
	assert.Equal(t, int64(4), output.RoleID)
}

func TestUserService_VerifyUsername(t *testing.T) {
	t.Parallel()

	t.Run("resends the set-password mail", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		ctx := context.Background()
		account := siswaAccount()

		fx.userRepo.EXPECT().FindByUsername(ctx, account.Username).Return(account, nil)
		fx.tokenService.EXPECT().GenerateSetPasswordToken(account.ID).Return("set-token", nil)
		fx.mailSender.EXPECT().Send(ctx, account.Username, account.Siswa.Nama, "Set Password Akun Anda",
			mock.Anything).Return(true)

		sent, err := fx.service.VerifyUsername(ctx, usecase.VerifyUsernameInput{Username: account.Username})
		require.NoError(t, err)
		assert.True(t, sent)
	})

	t.Run("unknown username", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByUsername(mock.Anything, "nobody@example.com").
			Return(nil, repository.ErrAccountNotFound)

		_, err := fx.service.VerifyUsername(context.Background(), usecase.VerifyUsernameInput{Username: "nobody@example.com"})
		assertAppError(t, err, http.StatusBadRequest, "username does not exist")
	})

	t.Run("account without a siswa profile", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByUsername(mock.Anything, mock.Anything).Return(disdikAccount(), nil)

		_, err := fx.service.VerifyUsername(context.Background(), usecase.VerifyUsernameInput{Username: "disdik@example.com"})
		assertAppError(t, err, http.StatusBadRequest, "tidak ada siswa yang terkait dengan akun")
	})
}

func TestUserService_UpdatePassword(t *testing.T) {
	t.Parallel()

	t.Run("valid token updates the hash", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ParseSetPasswordToken("set-token").
			Return(&service.TokenClaims{UserID: 42}, nil)
		fx.hasher.EXPECT().Hash("NewPass1").Return("new-hash", nil)
		fx.userRepo.EXPECT().UpdatePassword(ctx, int64(42), "new-hash").Return(nil)

		output, err := fx.service.UpdatePassword(ctx, usecase.UpdatePasswordInput{Token: "set-token", Password: "NewPass1"})
		require.NoError(t, err)
		assert.Equal(t, int64(42), output.UserID)
	})

	t.Run("every token failure reads as expired", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ParseSetPasswordToken("bad").Return(nil, service.ErrTokenInvalid)

		_, err := fx.service.UpdatePassword(context.Background(), usecase.UpdatePasswordInput{Token: "bad", Password: "NewPass1"})
		require.ErrorIs(t, err, domainerrors.ErrSetPasswordTokenExpired)
	})

	t.Run("vanished account reads as expired", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ParseSetPasswordToken("set-token").
			Return(&service.TokenClaims{UserID: 42}, nil)
		fx.hasher.EXPECT().Hash(mock.Anything).Return("new-hash", nil)
		fx.userRepo.EXPECT().UpdatePassword(mock.Anything, int64(42), "new-hash").
			Return(repository.ErrAccountNotFound)

		_, err := fx.service.UpdatePassword(context.Background(), usecase.UpdatePasswordInput{Token: "set-token", Password: "NewPass1"})
		require.ErrorIs(t, err, domainerrors.ErrSetPasswordTokenExpired)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Parallel()

	t.Run("renames and mails the siswa", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		ctx := context.Background()
		account := siswaAccount()
		account.Username = "baru@example.com"

		fx.userRepo.EXPECT().FindByUsername(ctx, "baru@example.com").Return(nil, repository.ErrAccountNotFound)
		fx.userRepo.EXPECT().UpdateUsername(ctx, account.ID, "baru@example.com").Return(account, nil)
		fx.tokenService.EXPECT().GenerateSetPasswordToken(account.ID).Return("set-token", nil)
		fx.mailSender.EXPECT().Send(ctx, "baru@example.com", account.Siswa.Nama, "Set Password Akun Anda",
			mock.Anything).Return(true)

		output, err := fx.service.UpdateUser(ctx, usecase.UpdateUserInput{UserID: account.ID, Username: "baru@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "baru@example.com", output.Username)
	})

	t.Run("new username already taken", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByUsername(mock.Anything, "taken@example.com").Return(siswaAccount(), nil)

		_, err := fx.service.UpdateUser(context.Background(), usecase.UpdateUserInput{UserID: 10, Username: "taken@example.com"})
		assertAppError(t, err, http.StatusConflict, "user already exist")
	})

	t.Run("unknown account", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByUsername(mock.Anything, mock.Anything).Return(nil, repository.ErrAccountNotFound)
		fx.userRepo.EXPECT().UpdateUsername(mock.Anything, int64(99), mock.Anything).
			Return(nil, repository.ErrAccountNotFound)

		_, err := fx.service.UpdateUser(context.Background(), usecase.UpdateUserInput{UserID: 99, Username: "baru@example.com"})
		assertAppError(t, err, http.StatusNotFound, "akun tidak ditemukan")
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Parallel()

	t.Run("deletes the account", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		fx.userRepo.EXPECT().Delete(mock.Anything, int64(10)).Return(nil)

		output, err := fx.service.DeleteUser(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, int64(10), output.UserID)
	})

	t.Run("unknown account", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		fx.userRepo.EXPECT().Delete(mock.Anything, int64(99)).Return(repository.ErrAccountNotFound)

		_, err := fx.service.DeleteUser(context.Background(), 99)
		assertAppError(t, err, http.StatusNotFound, "akun tidak ditemukan")
	})
}

func TestUserService_ListSiswaBySekolah(t *testing.T) {
	t.Parallel()

	t.Run("requires a school id", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)

		_, _, err := fx.service.ListSiswaBySekolah(context.Background(), 0, 1, 10)
		assertAppError(t, err, http.StatusBadRequest, "no school id provided")
	})

	t.Run("pages with the computed offset", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		ctx := context.Background()
		rows := []repository.SiswaAccountRow{
			{UserID: 10, Username: "budi@example.com", SiswaID: 3, Nama: "Budi Santoso"},
		}

		fx.profileRepo.EXPECT().CountSiswaBySekolah(ctx, int64(5)).Return(int64(31), nil)
		fx.profileRepo.EXPECT().ListSiswaBySekolah(ctx, int64(5), 20, 10).Return(rows, nil)

		got, total, err := fx.service.ListSiswaBySekolah(ctx, 5, 3, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(31), total)
		assert.Equal(t, rows, got)
	})

	t.Run("clamps out-of-range paging values", func(t *testing.T) {
		t.Parallel()

		fx := createTestUserService(t)
		ctx := context.Background()

		fx.profileRepo.EXPECT().CountSiswaBySekolah(ctx, int64(5)).Return(int64(0), nil)
		fx.profileRepo.EXPECT().ListSiswaBySekolah(ctx, int64(5), 0, 10).
			Return([]repository.SiswaAccountRow{}, nil)

		_, _, err := fx.service.ListSiswaBySekolah(ctx, 5, -1, 0)
		require.NoError(t, err)
	})
}

func TestUserService_ListAdminSekolah_RestrictedToSekolahAdminRoles(t *testing.T) {
	t.Parallel()

	fx := createTestUserService(t)
	ctx := context.Background()
	sekolahID := int64(5)
	sekolahNama := "SDN 1 Bandung"

	fx.roleRepo.EXPECT().ListRoles(ctx).Return([]*entity.Role{
		{ID: 1, Name: entity.RoleSiswa},
		{ID: 2, Name: entity.RoleAdminSD},
		{ID: 3, Name: entity.RoleAdminSMP},
		{ID: 4, Name: entity.RoleAdminDisdik},
		{ID: 5, Name: entity.RoleSuperAdmin},
	}, nil)

	expectedFilter := repository.AdminSekolahFilter{
		UsernameContains: "sdn",
		RoleIDs:          []int64{2, 3},
	}
	fx.userRepo.EXPECT().CountAdminSekolah(ctx, expectedFilter).Return(int64(1), nil)
	fx.userRepo.EXPECT().ListAdminSekolah(ctx, expectedFilter, 0, 10).Return([]*entity.Account{
		{
			ID:       20,
			Username: "admin.sdn1@example.com",
			RoleID:   2,
			Role:     entity.Role{ID: 2, Name: entity.RoleAdminSD},
			Sekolah:  &entity.SekolahProfile{ID: sekolahID, Nama: sekolahNama},
		},
	}, nil)

	views, total, err := fx.service.ListAdminSekolah(ctx, usecase.ListAdminSekolahInput{
		Page:             1,
		Limit:            10,
		UsernameContains: "sdn",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, views, 1)
	assert.Equal(t, "adminSD", views[0].Role)
	require.NotNil(t, views[0].SekolahID)
	assert.Equal(t, sekolahID, *views[0].SekolahID)
	assert.Equal(t, sekolahNama, *views[0].SekolahNama)
}

func TestUserService_ListAdminSekolah_RoleFilterNarrowsRestriction(t *testing.T) {
	t.Parallel()

	fx := createTestUserService(t)
	ctx := context.Background()

	fx.roleRepo.EXPECT().ListRoles(ctx).Return([]*entity.Role{
		{ID: 2, Name: entity.RoleAdminSD},
		{ID: 3, Name: entity.RoleAdminSMP},
	}, nil)

	// The requested role narrows the listing but never widens it past the
	// school admin roles.
	expectedFilter := repository.AdminSekolahFilter{
		RoleID:  2,
		RoleIDs: []int64{2, 3},
	}
	fx.userRepo.EXPECT().CountAdminSekolah(ctx, expectedFilter).Return(int64(1), nil)
	fx.userRepo.EXPECT().ListAdminSekolah(ctx, expectedFilter, 0, 10).Return([]*entity.Account{
		{
			ID:       20,
			Username: "admin.sdn1@example.com",
			RoleID:   2,
			Role:     entity.Role{ID: 2, Name: entity.RoleAdminSD},
		},
	}, nil)

	views, total, err := fx.service.ListAdminSekolah(ctx, usecase.ListAdminSekolahInput{
		Page:   1,
		Limit:  10,
		RoleID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, views, 1)
	assert.Equal(t, "adminSD", views[0].Role)
}

func TestUserService_ListAdminSekolah_AccountWithoutSekolah(t *testing.T) {
	t.Parallel()

	fx := createTestUserService(t)
	ctx := context.Background()

	fx.roleRepo.EXPECT().ListRoles(ctx).Return([]*entity.Role{
		{ID: 2, Name: entity.RoleAdminSD},
		{ID: 3, Name: entity.RoleAdminSMP},
	}, nil)
	fx.userRepo.EXPECT().CountAdminSekolah(ctx, mock.Anything).Return(int64(1), nil)
	fx.userRepo.EXPECT().ListAdminSekolah(ctx, mock.Anything, 0, 10).Return([]*entity.Account{
		{ID: 21, Username: "orphan@example.com", RoleID: 3, Role: entity.Role{ID: 3, Name: entity.RoleAdminSMP}},
	}, nil)

	views, _, err := fx.service.ListAdminSekolah(ctx, usecase.ListAdminSekolahInput{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Nil(t, views[0].SekolahID)
	assert.Nil(t, views[0].SekolahNama)
}

func TestUserService_ListRoles(t *testing.T) {
	t.Parallel()

	fx := createTestUserService(t)
	ctx := context.Background()

	fx.roleRepo.EXPECT().ListRoles(ctx).Return([]*entity.Role{
		{ID: 1, Name: entity.RoleSiswa},
		{ID: 2, Name: entity.RoleAdminSD},
	}, nil).Once()

	views, err := fx.service.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, usecase.RoleView{RoleID: 1, RoleNama: "siswa"}, views[0])

	fx.roleRepo.EXPECT().ListRoles(ctx).Return(nil, errors.New("db down")).Once()

	_, err = fx.service.ListRoles(ctx)
	require.Error(t, err)
}