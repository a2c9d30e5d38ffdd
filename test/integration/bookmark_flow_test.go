package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"linkmark-be/internal/entity"
	"linkmark-be/internal/repository/specification"
	"linkmark-be/internal/repository/unitofwork"
	"linkmark-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkRepositoryFlow(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.BookmarkRepository())
	assert.NotNil(t, uow.NoteRepository())

	sqlDB, _ := gormDB.DB()
	require.NoError(t, sqlDB.Ping())

	ctx := context.Background()
	userId := uuid.New()

	t.Run("Create and filter by tags", func(t *testing.T) {
		bookmark := &entity.Bookmark{
			Id:        uuid.New(),
			UserId:    userId,
			Url:       "https://example.com/integration",
			Title:     "Integration",
			Timestamp: time.Now().UTC(),
			Tags:      []string{"integration", "go"},
		}
		require.NoError(t, uow.BookmarkRepository().Create(ctx, bookmark))
		defer func() {
			assert.NoError(t, uow.BookmarkRepository().Delete(ctx, bookmark.Id))
		}()

		found, err := uow.BookmarkRepository().FindAll(ctx,
			specification.OwnedBy{UserID: userId},
			specification.HasAllTags{Tags: []string{"integration", "go"}},
		)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, bookmark.Id, found[0].Id)

		none, err := uow.BookmarkRepository().FindAll(ctx,
			specification.OwnedBy{UserID: userId},
			specification.HasAllTags{Tags: []string{"integration", "missing"}},
		)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("Tag union", func(t *testing.T) {
		bookmark := &entity.Bookmark{
			Id:        uuid.New(),
			UserId:    userId,
			Url:       "https://example.com/tags",
			Title:     "Tags",
			Timestamp: time.Now().UTC(),
			Tags:      []string{"alpha", "beta"},
		}
		require.NoError(t, uow.BookmarkRepository().Create(ctx, bookmark))
		defer func() {
			assert.NoError(t, uow.BookmarkRepository().Delete(ctx, bookmark.Id))
		}()

		tags, err := uow.BookmarkRepository().ListTags(ctx, userId)
		require.NoError(t, err)
		assert.Contains(t, tags, "alpha")
		assert.Contains(t, tags, "beta")
	})
}
