package service

import (
	"context"
	"testing"

	"linkmark-be/internal/apperror"
	"linkmark-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteLifecycle(t *testing.T) {
	store := newFakeStore()
	svc := NewNoteService(newFakeFactory(store))
	userId := uuid.New()
	b := seedBookmark(store, userId, "https://example.com", nil)

	created, err := svc.Add(context.Background(), userId, b.Id, &dto.CreateNoteRequest{Text: "first thought"})
	require.NoError(t, err)
	assert.Equal(t, b.Id, created.BookmarkId)

	updated, err := svc.Update(context.Background(), userId, b.Id, created.Id, &dto.UpdateNoteRequest{Text: "second thought"})
	require.NoError(t, err)
	assert.Equal(t, "second thought", updated.Text)

	list, err := svc.List(context.Background(), userId, b.Id)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "second thought", list[0].Text)

	require.NoError(t, svc.Delete(context.Background(), userId, b.Id, created.Id))
	assert.Empty(t, store.notes)
}

func TestNoteOnOtherUsersBookmarkIsNotFound(t *testing.T) {
	store := newFakeStore()
	svc := NewNoteService(newFakeFactory(store))
	b := seedBookmark(store, uuid.New(), "https://example.com", nil)

	_, err := svc.Add(context.Background(), uuid.New(), b.Id, &dto.CreateNoteRequest{Text: "intruder"})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestNoteUnderWrongBookmarkIsNotFound(t *testing.T) {
	store := newFakeStore()
	svc := NewNoteService(newFakeFactory(store))
	userId := uuid.New()
	first := seedBookmark(store, userId, "https://example.com/first", nil)
	second := seedBookmark(store, userId, "https://example.com/second", nil)

	created, err := svc.Add(context.Background(), userId, first.Id, &dto.CreateNoteRequest{Text: "attached to first"})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), userId, second.Id, created.Id)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
