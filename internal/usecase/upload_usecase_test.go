package usecase

import (
	"strings"
	"testing"

	"gamehub/internal/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTempUploads(t *testing.T) {
	repo := newFakeTempUploadRepo()
	store := newFakeObjectStore()
	uc := NewUploadUseCase(repo, store, testLogger())
	userID := uuid.New().String()

	created, err := uc.Register(userID, []UploadInput{
		{FileName: "a.png", ContentType: "image/png", Body: strings.NewReader("aaa")},
		{FileName: "b.pdf", ContentType: "application/pdf", Body: strings.NewReader("bbb")},
	})

	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, userID, created[0].UploadedByID)
	assert.Len(t, store.uploaded, 2)

	listed, err := uc.List(userID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestRegisterRejectsEmptyBatch(t *testing.T) {
	uc := NewUploadUseCase(newFakeTempUploadRepo(), newFakeObjectStore(), testLogger())

	_, err := uc.Register(uuid.New().String(), nil)

	assert.Equal(t, 400, apperr.From(err).Status)
}

func TestClearRemovesRowsAndObjects(t *testing.T) {
	repo := newFakeTempUploadRepo()
	store := newFakeObjectStore()
	uc := NewUploadUseCase(repo, store, testLogger())
	userID := uuid.New().String()
	otherID := uuid.New().String()

	_, err := uc.Register(userID, []UploadInput{
		{FileName: "a.png", ContentType: "image/png", Body: strings.NewReader("aaa")},
	})
	require.NoError(t, err)
	_, err = uc.Register(otherID, []UploadInput{
		{FileName: "keep.png", ContentType: "image/png", Body: strings.NewReader("ccc")},
	})
	require.NoError(t, err)

	msg, err := uc.Clear(userID)

	require.NoError(t, err)
	assert.Equal(t, "Removed 1 uploads", msg)
	assert.Len(t, store.deleted, 1)

	// The other user's uploads are untouched.
	remaining, err := uc.List(otherID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	mine, err := uc.List(userID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}
