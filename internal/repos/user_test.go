package repos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/contacts-backend/internal/db"
	"github.com/yungbote/contacts-backend/internal/hash"
	"github.com/yungbote/contacts-backend/internal/platform/apierr"
)

func TestUserRepoCreateAndFind(t *testing.T) {
	m := newMemExec()
	repo := NewUserRepo(m, newTestLogger(t))
	ctx := context.Background()

	user, outcome, err := repo.Create(ctx, "John", "Doe", "John.Doe@Example.com")
	require.NoError(t, err)
	assert.Equal(t, db.OutcomeInserted, outcome)
	assert.Equal(t, hash.UserKey("john.doe@example.com"), user.UserKey)
	assert.Equal(t, "john.doe@example.com", user.Email)

	// Lookup is case-insensitive because the key is a pure function of the
	// normalized email.
	found, err := repo.FindByEmail(ctx, "JOHN.DOE@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, user.UserKey, found.UserKey)

	byKey, err := repo.FindByKey(ctx, user.UserKey)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byKey.Email)
}

func TestUserRepoCreateDuplicateReturnsExisting(t *testing.T) {
	m := newMemExec()
	repo := NewUserRepo(m, newTestLogger(t))
	ctx := context.Background()

	first, _, err := repo.Create(ctx, "John", "Doe", "a@b.com")
	require.NoError(t, err)

	second, outcome, err := repo.Create(ctx, "Jane", "Smith", "A@B.com")
	require.NoError(t, err)
	assert.Equal(t, db.OutcomeAlreadyExists, outcome)
	assert.Equal(t, first, second, "stored row wins, incoming names discarded")
	assert.Len(t, m.users, 1)
}

func TestUserRepoCreateRaceFailsWithConflict(t *testing.T) {
	m := newMemExec()
	repo := NewUserRepo(m, newTestLogger(t))

	// Concurrent writer lands between the lookup miss and the insert. Unlike
	// addresses, this must fail loudly.
	m.beforeInsertUser = func(m *memExec) {
		m.putUser(hash.UserKey("a@b.com"), "Jane", "Smith", "a@b.com")
	}

	_, _, err := repo.Create(context.Background(), "John", "Doe", "a@b.com")
	require.Error(t, err)
	assert.True(t, apierr.Is(err, apierr.CodeConflict))
}

func TestUserRepoUpdateNamesValidation(t *testing.T) {
	repo := NewUserRepo(newMemExec(), newTestLogger(t))
	ctx := context.Background()

	_, err := repo.UpdateNames(ctx, "a@b.com", "", "Doe")
	assert.True(t, apierr.Is(err, apierr.CodeValidation))

	_, err = repo.UpdateNames(ctx, "a@b.com", "John", "")
	assert.True(t, apierr.Is(err, apierr.CodeValidation))

	_, err = repo.UpdateNames(ctx, "", "John", "Doe")
	assert.True(t, apierr.Is(err, apierr.CodeValidation))
}

func TestUserRepoUpdateNamesMissingUser(t *testing.T) {
	repo := NewUserRepo(newMemExec(), newTestLogger(t))

	_, err := repo.UpdateNames(context.Background(), "missing@b.com", "A", "B")
	assert.True(t, apierr.Is(err, apierr.CodeNotFound))
}

func TestUserRepoUpdateNamesKeepsIdentity(t *testing.T) {
	m := newMemExec()
	repo := NewUserRepo(m, newTestLogger(t))
	ctx := context.Background()

	created, _, err := repo.Create(ctx, "John", "Doe", "a@b.com")
	require.NoError(t, err)

	updated, err := repo.UpdateNames(ctx, "A@B.com", "Jonathan", "Dorian")
	require.NoError(t, err)
	assert.Equal(t, "Jonathan", updated.FirstName)
	assert.Equal(t, "Dorian", updated.LastName)
	assert.Equal(t, created.UserKey, updated.UserKey)
	assert.Equal(t, created.Email, updated.Email)
}

func TestUserRepoList(t *testing.T) {
	m := newMemExec()
	repo := NewUserRepo(m, newTestLogger(t))
	ctx := context.Background()

	_, _, err := repo.Create(ctx, "John", "Doe", "a@b.com")
	require.NoError(t, err)
	_, _, err = repo.Create(ctx, "Jane", "Smith", "b@b.com")
	require.NoError(t, err)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "b@b.com", users[0].Email, "newest first")
	assert.Equal(t, "a@b.com", users[1].Email)
}

func TestUserRepoDeleteByKey(t *testing.T) {
	m := newMemExec()
	repo := NewUserRepo(m, newTestLogger(t))
	ctx := context.Background()

	user, _, err := repo.Create(ctx, "John", "Doe", "a@b.com")
	require.NoError(t, err)

	deleted, err := repo.DeleteByKey(ctx, user.UserKey)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	deleted, err = repo.DeleteByKey(ctx, user.UserKey)
	require.NoError(t, err)
	assert.EqualValues(t, 0, deleted)
}
