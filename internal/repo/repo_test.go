package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/shop/internal/db/dbtest"
	"github.com/Skotchmaster/shop/internal/models"
)

func newRepo(t *testing.T) *GormRepo {
	t.Helper()
	return New(dbtest.InitTestDB(t))
}

func TestCategoryCRUD(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	cat := &models.Category{Name: "Books", Version: 1}
	require.NoError(t, r.CreateCategory(ctx, cat))
	require.NotZero(t, cat.ID)

	got, err := r.GetCategory(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Books", got.Name)

	require.NoError(t, r.ReplaceCategory(ctx, &models.Category{ID: cat.ID, Name: "Comics", Version: 1}))
	got, err = r.GetCategory(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Comics", got.Name)
	assert.EqualValues(t, 2, got.Version)

	items, err := r.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, r.DeleteCategory(ctx, cat.ID))
	_, err = r.GetCategory(ctx, cat.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, r.DeleteCategory(ctx, cat.ID), gorm.ErrRecordNotFound)
}

func TestReplace_VersionGuard(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	cat := &models.Category{Name: "Books", Version: 1}
	require.NoError(t, r.CreateCategory(ctx, cat))

	require.NoError(t, r.ReplaceCategory(ctx, &models.Category{ID: cat.ID, Name: "Two", Version: 1}))
	err := r.ReplaceCategory(ctx, &models.Category{ID: cat.ID, Name: "Stale", Version: 1})
	assert.ErrorIs(t, err, ErrStaleRecord)

	require.NoError(t, r.ReplaceCategory(ctx, &models.Category{ID: cat.ID, Name: "Blind"}))
	got, err := r.GetCategory(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blind", got.Name)
	assert.EqualValues(t, 3, got.Version)

	assert.ErrorIs(t, r.ReplaceCategory(ctx, &models.Category{ID: 999, Name: "Ghost"}), ErrStaleRecord)
}

func TestProducts_PreloadAndFilter(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	books := &models.Category{Name: "Books", Version: 1}
	games := &models.Category{Name: "Games", Version: 1}
	require.NoError(t, r.CreateCategory(ctx, books))
	require.NoError(t, r.CreateCategory(ctx, games))

	p := &models.Product{Title: "Dune", Price: 10, CategoryID: books.ID, Version: 1}
	require.NoError(t, r.CreateProduct(ctx, p))

	got, err := r.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Books", got.Category.Name)

	inBooks, err := r.ListProductsByCategory(ctx, books.ID)
	require.NoError(t, err)
	assert.Len(t, inBooks, 1)

	inGames, err := r.ListProductsByCategory(ctx, games.ID)
	require.NoError(t, err)
	assert.NotNil(t, inGames)
	assert.Empty(t, inGames)
}

func TestProducts_ForeignKeyEnforced(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	err := r.CreateProduct(ctx, &models.Product{Title: "Orphan", Price: 1, CategoryID: 404, Version: 1})
	assert.Error(t, err)

	cat := &models.Category{Name: "Books", Version: 1}
	require.NoError(t, r.CreateCategory(ctx, cat))
	require.NoError(t, r.CreateProduct(ctx, &models.Product{Title: "Dune", Price: 1, CategoryID: cat.ID, Version: 1}))

	assert.Error(t, r.DeleteCategory(ctx, cat.ID))
}

func TestUsers(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	u := &models.User{Username: "alice", PasswordHash: "h", Role: models.RoleEmployee, Version: 1}
	created, err := r.CreateUserIfNotExists(ctx, u)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = r.CreateUserIfNotExists(ctx, &models.User{Username: "alice", PasswordHash: "x", Role: models.RoleManager, Version: 1})
	require.NoError(t, err)
	assert.False(t, created)

	got, err := r.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.RoleEmployee, got.Role)

	assert.Error(t, r.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "y", Role: models.RoleEmployee, Version: 1}))

	require.NoError(t, r.ReplaceUser(ctx, &models.User{ID: u.ID, Username: "alice", PasswordHash: "z", Role: models.RoleManager}))
	got, err = r.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, got.Role)
	assert.Equal(t, "z", got.PasswordHash)

	require.NoError(t, r.DeleteUser(ctx, u.ID))
	users, err := r.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
