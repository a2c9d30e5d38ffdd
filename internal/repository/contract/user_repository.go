package contract

import (
	"context"

	"linkmark-be/internal/entity"
	"linkmark-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.UserRefreshToken) error
	Update(ctx context.Context, token *entity.UserRefreshToken) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserRefreshToken, error)
}
