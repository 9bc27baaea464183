package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/google/uuid"

	"github.com/sociocap/capgen_go_server/config"
	"github.com/sociocap/capgen_go_server/internal/model"
	"github.com/sociocap/capgen_go_server/internal/model/dto"
	"github.com/sociocap/capgen_go_server/internal/pkg/jwt"
	"github.com/sociocap/capgen_go_server/internal/pkg/oauth"
	"github.com/sociocap/capgen_go_server/internal/repository"
)

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	userRepo    *repository.UserRepository
	stateStore  *oauth.StateStore
	githubOAuth *oauth.GithubOAuth
	cfg         *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, stateStore *oauth.StateStore, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		stateStore: stateStore,
		cfg:        cfg,
		githubOAuth: oauth.NewGithubOAuth(
			cfg.OAuth.Github.ClientID,
			cfg.OAuth.Github.ClientSecret,
			cfg.OAuth.Github.RedirectURI,
		),
	}
}

// Register 邮箱注册。用户主键在此生成，和 OAuth 登录走同一条 upsert 路径，
// 默认订阅随用户一并建好。
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.CreateOrUpdate(uuid.NewString(), req.Email)
	if err != nil {
		return nil, err
	}

	passwordStr := string(hashedPassword)
	user.PasswordHash = &passwordStr
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.issueSession(user)
}

// Login 邮箱登录
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// OAuth 用户没有本地密码
	if user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(user)
}

// GetGithubAuthURL 生成 GitHub 授权跳转地址，state 存入 Redis
func (s *AuthService) GetGithubAuthURL(ctx context.Context, redirectURI string) (string, error) {
	if redirectURI == "" {
		redirectURI = "/dashboard"
	}
	state, err := s.stateStore.GenerateState(ctx, redirectURI)
	if err != nil {
		return "", err
	}
	return s.githubOAuth.GetAuthURL(state), nil
}

// GithubCallback 处理 GitHub OAuth 回调。
// 每次登录都走 CreateOrUpdate：首次创建用户+订阅，之后刷新邮箱。
func (s *AuthService) GithubCallback(ctx context.Context, state, code string) (*dto.LoginResponse, string, error) {
	redirectURI, err := s.stateStore.ValidateState(ctx, state)
	if err != nil {
		return nil, "", err
	}

	token, err := s.githubOAuth.Exchange(ctx, code)
	if err != nil {
		return nil, "", fmt.Errorf("failed to exchange code: %w", err)
	}

	githubUser, err := s.githubOAuth.GetUser(ctx, token)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get github user: %w", err)
	}

	// 用户主键取自外部认证方的 subject
	userID := fmt.Sprintf("github:%d", githubUser.ID)
	email := githubUser.Email
	if email == "" {
		email = fmt.Sprintf("%s@users.noreply.github.com", githubUser.Login)
	}

	user, err := s.userRepo.CreateOrUpdate(userID, email)
	if err != nil {
		return nil, "", err
	}

	if user.GithubID == nil {
		githubIDStr := fmt.Sprintf("%d", githubUser.ID)
		user.GithubID = &githubIDStr
		if err := s.userRepo.Update(user); err != nil {
			return nil, "", err
		}
	}

	resp, err := s.issueSession(user)
	if err != nil {
		return nil, "", err
	}
	return resp, redirectURI, nil
}

// GetUserByID 根据 ID 获取用户
func (s *AuthService) GetUserByID(id string) (*model.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issueSession(user *model.User) (*dto.LoginResponse, error) {
	token, err := jwt.GenerateToken(user.ID, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: &dto.UserInfo{
			ID:        user.ID,
			Email:     user.Email,
			CreatedAt: user.CreatedAt.Format(time.RFC3339),
		},
	}, nil
}
