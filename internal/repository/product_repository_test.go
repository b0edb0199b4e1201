package repository

import (
	"slices"
	"testing"

	"press-start/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustConsole(t *testing.T, id int, name string, storage domain.StorageCapacity, brand, price string) domain.Product {
	t.Helper()
	p, err := domain.NewConsole(id, name, decimal.RequireFromString(price), storage, brand)
	require.NoError(t, err)
	return p
}

func mustGame(t *testing.T, id int, name string) domain.Product {
	t.Helper()
	p, err := domain.NewGame(id, name, decimal.NewFromInt(100), "Action", "Studio")
	require.NoError(t, err)
	return p
}

func ids(repo ProductRepository) []int {
	var out []int
	for p := range repo.ListAll() {
		out = append(out, p.ID())
	}
	return out
}

func TestRegister_ConsoleThenConflict(t *testing.T) {
	repo := NewInMemory()

	ps5 := mustConsole(t, 1, "PS5", domain.Storage2TB, "Sony", "3999.90")
	require.NoError(t, repo.Register(ps5))

	view, err := repo.ListByID(1)
	require.NoError(t, err)
	assert.Contains(t, view.Lines(), "Storage: 2 TB")

	other := mustConsole(t, 1, "PS5 Slim", domain.Storage500GB, "Sony", "2999.90")
	err = repo.Register(other)
	assert.ErrorIs(t, err, ErrProductAlreadyExists)

	stored, ok := repo.FindProductByID(1)
	require.True(t, ok)
	assert.True(t, stored.Equal(ps5))
	assert.Equal(t, 1, repo.Len())
}

func TestUpdate_NeverRegisteredID(t *testing.T) {
	repo := NewInMemory()
	require.NoError(t, repo.Register(mustGame(t, 1, "Hades")))

	err := repo.Update(mustGame(t, 7, "Celeste"))
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, ok := repo.FindProductByID(7)
	assert.False(t, ok)
	assert.Equal(t, []int{1}, ids(repo))
}

func TestUpdate_ReplacesWholeValueInPlace(t *testing.T) {
	repo := NewInMemory()
	require.NoError(t, repo.Register(mustGame(t, 1, "Hades")))
	require.NoError(t, repo.Register(mustGame(t, 2, "Celeste")))
	require.NoError(t, repo.Register(mustGame(t, 3, "Ori")))

	replacement, err := domain.NewGame(2, "Celeste Deluxe", decimal.NewFromInt(60), "Platformer", "Extremely OK Games")
	require.NoError(t, err)
	require.NoError(t, repo.Update(replacement))

	stored, ok := repo.FindProductByID(2)
	require.True(t, ok)
	assert.True(t, stored.Equal(replacement))
	assert.Equal(t, []int{1, 2, 3}, ids(repo))
}

func TestDelete(t *testing.T) {
	repo := NewInMemory()
	require.NoError(t, repo.Register(mustGame(t, 1, "Hades")))
	require.NoError(t, repo.Register(mustGame(t, 2, "Celeste")))

	assert.ErrorIs(t, repo.Delete(42), ErrProductNotFound)

	require.NoError(t, repo.Delete(1))
	_, ok := repo.FindProductByID(1)
	assert.False(t, ok)
	assert.Equal(t, []int{2}, ids(repo))

	assert.ErrorIs(t, repo.Delete(1), ErrProductNotFound)
}

func TestListByID_NotFound(t *testing.T) {
	repo := NewInMemory()

	view, err := repo.ListByID(5)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Equal(t, domain.View{}, view)
}

func TestListAll_IsRestartableAndReflectsCurrentState(t *testing.T) {
	repo := NewInMemory()
	seq := repo.ListAll()

	assert.Empty(t, slices.Collect(seq))

	require.NoError(t, repo.Register(mustGame(t, 3, "Ori")))
	require.NoError(t, repo.Register(mustGame(t, 1, "Hades")))

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	require.Len(t, first, 2)
	assert.Equal(t, len(first), len(second))
	assert.Equal(t, 3, first[0].ID())
	assert.Equal(t, 1, first[1].ID())

	for p := range seq {
		assert.Equal(t, 3, p.ID())
		break
	}
}

func TestListAll_DeleteWhileRanging(t *testing.T) {
	repo := NewInMemory()
	require.NoError(t, repo.Register(mustGame(t, 1, "Hades")))
	require.NoError(t, repo.Register(mustGame(t, 2, "Ori")))
	require.NoError(t, repo.Register(mustGame(t, 3, "Celeste")))

	var seen []int
	for p := range repo.ListAll() {
		seen = append(seen, p.ID())
		assert.NotEmpty(t, p.Name())
		assert.True(t, p.Type().IsValid())
		if p.ID() == 1 {
			require.NoError(t, repo.Delete(1))
		}
		if p.ID() == 2 {
			require.NoError(t, repo.Delete(3))
		}
	}

	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, []int{2}, ids(repo))
}

func TestGenerateID_StartsAtOneAndSurvivesDeletes(t *testing.T) {
	repo := NewInMemory()

	first := repo.GenerateID()
	assert.Equal(t, 1, first)
	require.NoError(t, repo.Register(mustGame(t, first, "Hades")))
	require.NoError(t, repo.Delete(first))

	assert.Equal(t, 2, repo.GenerateID())
}
