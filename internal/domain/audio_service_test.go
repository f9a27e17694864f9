package domain

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Dzigojty/Audio-file-downloader/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAudioRepo struct {
	nextID int64
	rows   []models.Audio
}

func (r *fakeAudioRepo) Insert(ctx context.Context, audio *models.Audio) (*models.Audio, error) {
	r.nextID++
	audio.ID = r.nextID
	r.rows = append(r.rows, *audio)
	return audio, nil
}

func (r *fakeAudioRepo) ListByUser(ctx context.Context, userID int64) ([]models.Audio, error) {
	out := []models.Audio{}
	for _, a := range r.rows {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeStore struct {
	saves   int
	lastExt string
	content []byte
	err     error
}

func (s *fakeStore) Save(ext string, content io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saves++
	s.lastExt = ext
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	s.content = data
	return "uploads/generated" + ext, nil
}

func TestUpload_KeepsExtensionAndContent(t *testing.T) {
	repo := &fakeAudioRepo{}
	store := &fakeStore{}
	svc := NewAudioService(repo, store)

	audio, err := svc.Upload(context.Background(), 1, "clip1", "song.wav", strings.NewReader("RIFF..."))
	require.NoError(t, err)

	assert.Equal(t, ".wav", store.lastExt)
	assert.Equal(t, []byte("RIFF..."), store.content)
	assert.Equal(t, "clip1", audio.Name)
	assert.Equal(t, int64(1), audio.UserID)
	assert.Equal(t, "uploads/generated.wav", audio.FilePath)
	assert.NotZero(t, audio.ID)
}

func TestUpload_DefaultsToMp3(t *testing.T) {
	store := &fakeStore{}
	svc := NewAudioService(&fakeAudioRepo{}, store)

	_, err := svc.Upload(context.Background(), 1, "clip", "noextension", strings.NewReader("x"))
	require.NoError(t, err)

	assert.Equal(t, ".mp3", store.lastExt)
}

func TestUpload_MissingFilename(t *testing.T) {
	store := &fakeStore{}
	svc := NewAudioService(&fakeAudioRepo{}, store)

	_, err := svc.Upload(context.Background(), 1, "clip", "", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrNoFilename)
	assert.Zero(t, store.saves, "nothing may hit the store without a filename")
}

func TestUpload_StoreFailure(t *testing.T) {
	repo := &fakeAudioRepo{}
	svc := NewAudioService(repo, &fakeStore{err: errors.New("disk full")})

	_, err := svc.Upload(context.Background(), 1, "clip", "a.wav", strings.NewReader("x"))
	require.Error(t, err)
	assert.Empty(t, repo.rows, "failed writes must not leave records behind")
}

func TestList_OnlyOwnRecords(t *testing.T) {
	repo := &fakeAudioRepo{}
	svc := NewAudioService(repo, &fakeStore{})

	_, err := svc.Upload(context.Background(), 1, "mine", "a.wav", strings.NewReader("x"))
	require.NoError(t, err)
	_, err = svc.Upload(context.Background(), 2, "theirs", "b.wav", strings.NewReader("y"))
	require.NoError(t, err)

	audios, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, audios, 1)
	assert.Equal(t, "mine", audios[0].Name)
}

func TestList_EmptyForNewUser(t *testing.T) {
	svc := NewAudioService(&fakeAudioRepo{}, &fakeStore{})

	audios, err := svc.List(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, audios)
}
