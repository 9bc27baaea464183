package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sociocap/capgen_go_server/config"
	"github.com/sociocap/capgen_go_server/internal/model"
	"github.com/sociocap/capgen_go_server/internal/model/dto"
	"github.com/sociocap/capgen_go_server/internal/pkg/jwt"
	"github.com/sociocap/capgen_go_server/internal/repository"
	"github.com/sociocap/capgen_go_server/internal/testutil"
)

// testServiceContext 服务层测试共享上下文
type testServiceContext struct {
	DB *gorm.DB
}

func setupAuthService(t *testing.T) (*AuthService, *testServiceContext, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	userRepo := repository.NewUserRepository(db)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			ExpireHours: 24,
		},
	}

	// stateStore 为 nil，注册/登录路径不依赖 Redis
	svc := NewAuthService(userRepo, nil, cfg)
	ctx := &testServiceContext{DB: db}

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return svc, ctx, cleanup
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, ctx, cleanup := setupAuthService(t)
	defer cleanup()

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "new@example.com", resp.User.Email)

	// 令牌携带用户主键
	claims, err := jwt.ParseToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	// 注册同时建好默认订阅
	var sub model.Subscription
	require.NoError(t, ctx.DB.Where("user_id = ?", resp.User.ID).First(&sub).Error)
	assert.Equal(t, model.SubscriptionPlanUnlimited, sub.Plan)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, ctx, cleanup := setupAuthService(t)
	defer cleanup()

	testutil.TestUser(t, ctx.DB, testutil.WithEmail("taken@example.com"))

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, cleanup := setupAuthService(t)
	defer cleanup()

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "login@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{
		Email:    "login@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, cleanup := setupAuthService(t)
	defer cleanup()

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "login@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{
		Email:    "login@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, cleanup := setupAuthService(t)
	defer cleanup()

	_, err := svc.Login(&dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_OAuthOnlyAccount(t *testing.T) {
	svc, ctx, cleanup := setupAuthService(t)
	defer cleanup()

	// OAuth 用户没有本地密码，不能走密码登录
	testutil.TestUser(t, ctx.DB, testutil.WithUserID("github:42"), testutil.WithEmail("oauth@example.com"))

	_, err := svc.Login(&dto.LoginRequest{
		Email:    "oauth@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_GetUserByID_NotFound(t *testing.T) {
	svc, _, cleanup := setupAuthService(t)
	defer cleanup()

	_, err := svc.GetUserByID("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
