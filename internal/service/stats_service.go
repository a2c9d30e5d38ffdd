package service

import (
	"context"
	"time"

	"linkmark-be/internal/dto"
	"linkmark-be/internal/repository/specification"
	"linkmark-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IStatsService interface {
	Global(ctx context.Context) (*dto.GlobalStatsResponse, error)
	Personal(ctx context.Context, userId uuid.UUID) (*dto.PersonalStatsResponse, error)
}

type statsService struct {
	uowFactory unitofwork.RepositoryFactory
	now        func() time.Time
}

func NewStatsService(uowFactory unitofwork.RepositoryFactory) IStatsService {
	return &statsService{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// sevenDaysAgo is a rolling window: reads at exactly now-168h fall
// outside it.
func sevenDaysAgo(now time.Time) time.Time {
	return now.Add(-7 * 24 * time.Hour)
}

// startOfDayUTC and startOfYearUTC are calendar windows: a read at the
// boundary instant belongs to the window.
func startOfDayUTC(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func startOfYearUTC(now time.Time) time.Time {
	return time.Date(now.UTC().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

func (s *statsService) Global(ctx context.Context) (*dto.GlobalStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.BookmarkRepository()

	totalRead, err := repo.Count(ctx, specification.ReadNotNull{})
	if err != nil {
		return nil, err
	}

	recentRead, err := repo.Count(ctx,
		specification.ReadNotNull{},
		specification.ReadAfter{T: sevenDaysAgo(s.now())},
	)
	if err != nil {
		return nil, err
	}

	return &dto.GlobalStatsResponse{
		TotalRead:          totalRead,
		TotalReadLast7Days: recentRead,
	}, nil
}

func (s *statsService) Personal(ctx context.Context, userId uuid.UUID) (*dto.PersonalStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.BookmarkRepository()
	owned := specification.OwnedBy{UserID: userId}
	now := s.now()

	userRead, err := repo.Count(ctx, owned, specification.ReadNotNull{})
	if err != nil {
		return nil, err
	}

	readToday, err := repo.Count(ctx, owned,
		specification.ReadNotNull{},
		specification.ReadSince{T: startOfDayUTC(now)},
	)
	if err != nil {
		return nil, err
	}

	readYear, err := repo.Count(ctx, owned,
		specification.ReadNotNull{},
		specification.ReadSince{T: startOfYearUTC(now)},
	)
	if err != nil {
		return nil, err
	}

	return &dto.PersonalStatsResponse{
		UserRead:      userRead,
		UserReadToday: readToday,
		UserReadYear:  readYear,
	}, nil
}
