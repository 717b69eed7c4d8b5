package server

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/record"
	"github.com/jonathan/resume-builder/internal/types"
)

// mockStore is an in-memory Store for session and handler tests.
type mockStore struct {
	mu      sync.Mutex
	resumes map[string]*types.Resume
	saves   int
	saveErr error
	getErr  error
}

func newMockStore() *mockStore {
	return &mockStore{resumes: make(map[string]*types.Resume)}
}

func (m *mockStore) SaveResume(_ context.Context, r *types.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	if r.PersonalInfo.Email == "" {
		return db.ErrEmailRequired
	}
	m.resumes[r.PersonalInfo.Email] = record.Clone(r)
	m.saves++
	return nil
}

func (m *mockStore) GetResumeByEmail(_ context.Context, email string) (*types.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	r, ok := m.resumes[email]
	if !ok {
		return nil, nil
	}
	return record.Clone(r), nil
}

func (m *mockStore) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func personalInfoPayload(t *testing.T, info types.PersonalInfo) json.RawMessage {
	t.Helper()
	payload, err := json.Marshal(info)
	require.NoError(t, err)
	return payload
}

func TestSession_StartsEmpty(t *testing.T) {
	session := NewSession(nil, 0)

	snapshot := session.Snapshot()
	assert.Equal(t, types.TemplateClassic, snapshot.Template)
	assert.Empty(t, snapshot.PersonalInfo.FullName)

	// Score and suggestions are computed up front.
	assert.NotZero(t, session.Report().Score)
	shown, _, industry := session.Suggestions()
	assert.NotEmpty(t, shown)
	assert.NotEmpty(t, industry)
}

func TestSession_SnapshotIsIsolated(t *testing.T) {
	session := NewSession(nil, 0)

	snapshot := session.Snapshot()
	snapshot.PersonalInfo.FullName = "Mutation"

	assert.Empty(t, session.Snapshot().PersonalInfo.FullName)
}

func TestSession_ReplaceRecomputesScore(t *testing.T) {
	session := NewSession(nil, 0)
	before := session.Report().Score

	err := session.Replace("personalInfo", personalInfoPayload(t, types.PersonalInfo{
		Email: "jane@example.com",
		Phone: "555-0100",
	}))
	require.NoError(t, err)

	assert.Greater(t, session.Report().Score, before)
}

func TestSession_ReplaceUnknownSection(t *testing.T) {
	session := NewSession(nil, 0)

	err := session.Replace("hobbies", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Equal(t, 400, HTTPStatus(err))
}

func TestSession_ApplySuggestion(t *testing.T) {
	session := NewSession(nil, 0)

	shown, _, _ := session.Suggestions()
	require.NotEmpty(t, shown)
	applied := shown[0]

	require.NoError(t, session.ApplySuggestion(applied.ID))

	// The id stays retired over recomputations.
	shown, _, _ = session.Suggestions()
	for _, s := range shown {
		assert.NotEqual(t, applied.ID, s.ID)
	}
}

func TestSession_ApplySuggestionUnknownID(t *testing.T) {
	session := NewSession(nil, 0)

	err := session.ApplySuggestion("no-such-id")
	var notFound *ErrSuggestionNotFound
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, 404, HTTPStatus(err))
}

func TestSession_DismissSuggestion(t *testing.T) {
	session := NewSession(nil, 0)

	shown, _, _ := session.Suggestions()
	require.NotEmpty(t, shown)
	dismissed := shown[0]

	require.NoError(t, session.DismissSuggestion(dismissed.ID))

	// Dismissing does not alter the record.
	assert.Empty(t, session.Snapshot().Skills.Technical)

	shown, _, _ = session.Suggestions()
	for _, s := range shown {
		assert.NotEqual(t, dismissed.ID, s.ID)
	}
}

func TestSession_SaveRequiresStore(t *testing.T) {
	session := NewSession(nil, 0)

	err := session.Save(context.Background())
	var noStore *ErrNoStore
	assert.True(t, errors.As(err, &noStore))
}

func TestSession_SaveRequiresEmail(t *testing.T) {
	session := NewSession(newMockStore(), 0)

	err := session.Save(context.Background())
	assert.ErrorIs(t, err, db.ErrEmailRequired)
	assert.Equal(t, 422, HTTPStatus(err))
}

func TestSession_SaveAndLoadRoundTrip(t *testing.T) {
	store := newMockStore()
	session := NewSession(store, 0)

	require.NoError(t, session.Replace("personalInfo", personalInfoPayload(t, types.PersonalInfo{
		FullName: "Jane Smith",
		Email:    "jane@example.com",
	})))
	require.NoError(t, session.Save(context.Background()))

	other := NewSession(store, 0)
	require.NoError(t, other.Load(context.Background(), "jane@example.com"))
	assert.Equal(t, "Jane Smith", other.Snapshot().PersonalInfo.FullName)
}

func TestSession_LoadUnknownEmail(t *testing.T) {
	session := NewSession(newMockStore(), 0)

	err := session.Load(context.Background(), "missing@example.com")
	var notFound *ErrResumeNotFound
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, 404, HTTPStatus(err))
}

func TestSession_LoadStoreFailure(t *testing.T) {
	store := newMockStore()
	store.getErr = errors.New("connection refused")
	session := NewSession(store, 0)

	assert.Error(t, session.Load(context.Background(), "jane@example.com"))
}

func TestSession_DebouncedSaveCoalesces(t *testing.T) {
	store := newMockStore()
	session := NewSession(store, 20*time.Millisecond)
	defer session.Close()

	// Three rapid edits arm and re-arm the timer; only the last one
	// should produce a save.
	for _, name := range []string{"J", "Ja", "Jane"} {
		require.NoError(t, session.Replace("personalInfo", personalInfoPayload(t, types.PersonalInfo{
			FullName: name,
			Email:    "jane@example.com",
		})))
	}

	require.Eventually(t, func() bool {
		return store.saveCount() == 1
	}, time.Second, 5*time.Millisecond)

	saved, err := store.GetResumeByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Jane", saved.PersonalInfo.FullName, "last write wins")
}

func TestSession_DebouncedSaveSkippedWithoutEmail(t *testing.T) {
	store := newMockStore()
	session := NewSession(store, 10*time.Millisecond)
	defer session.Close()

	require.NoError(t, session.Replace("personalInfo", personalInfoPayload(t, types.PersonalInfo{
		FullName: "Jane Smith",
	})))

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, store.saveCount())
}

func TestSession_FailedSaveKeepsRecord(t *testing.T) {
	store := newMockStore()
	store.saveErr = errors.New("disk full")
	session := NewSession(store, 0)

	require.NoError(t, session.Replace("personalInfo", personalInfoPayload(t, types.PersonalInfo{
		FullName: "Jane Smith",
		Email:    "jane@example.com",
	})))

	assert.Error(t, session.Save(context.Background()))
	assert.Equal(t, "Jane Smith", session.Snapshot().PersonalInfo.FullName)
}
