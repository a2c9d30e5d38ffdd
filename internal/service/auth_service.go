package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"linkmark-be/internal/apperror"
	"linkmark-be/internal/config"
	"linkmark-be/internal/dto"
	"linkmark-be/internal/entity"
	"linkmark-be/internal/repository/specification"
	"linkmark-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        *config.AuthConfig
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, cfg *config.AuthConfig) IAuthService {
	return &authService{uowFactory: uowFactory, cfg: cfg}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewValidation("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{Id: user.Id}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewValidation("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.NewValidation("invalid email or password")
	}

	accessToken, err := s.signAccessToken(user.Id)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	refreshToken, err := newOpaqueToken()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	row := &entity.UserRefreshToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.RefreshTokenDays) * 24 * time.Hour),
	}
	if err := uow.RefreshTokenRepository().Create(ctx, row); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	row, err := s.findLiveToken(ctx, uow, req.RefreshToken)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.signAccessToken(row.UserId)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

func (s *authService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	row, err := s.findLiveToken(ctx, uow, req.RefreshToken)
	if err != nil {
		return err
	}

	row.Revoked = true
	return uow.RefreshTokenRepository().Update(ctx, row)
}

// findLiveToken looks up a refresh token by hash and rejects revoked
// or expired rows. Only the hash ever touches the database.
func (s *authService) findLiveToken(ctx context.Context, uow unitofwork.UnitOfWork, token string) (*entity.UserRefreshToken, error) {
	row, err := uow.RefreshTokenRepository().FindOne(ctx,
		specification.ByTokenHash{Hash: hashToken(token)},
		specification.NotRevoked{},
	)
	if err != nil {
		return nil, err
	}
	if row == nil || time.Now().After(row.ExpiresAt) {
		return nil, apperror.NewValidation("invalid refresh token")
	}
	return row, nil
}

func (s *authService) signAccessToken(userId uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": userId.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Duration(s.cfg.AccessTokenHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func newOpaqueToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
