package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timothyf/baseball-data-lab-web/internal/store"
)

func TestNormalizeAggregatorID(t *testing.T) {
	cases := map[string]string{
		"123.0":    "123",
		"123":      "123",
		"123.00":   "123.0",
		"":         "",
		"0.0":      "0",
		"abc":      "abc",
		"12.5":     "12.5",
		"116.0.0":  "116.0",
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeAggregatorID(raw), raw)
	}
}

func TestNormalizePtr(t *testing.T) {
	assert.Nil(t, NormalizePtr(nil))

	raw := "545361.0"
	got := NormalizePtr(&raw)
	require.NotNil(t, got)
	assert.Equal(t, "545361", *got)
	assert.Equal(t, "545361.0", raw)
}

// fakePlayers implements store.PlayerStore over fixed maps.
type fakePlayers struct {
	bySurrogate map[int64]string
	existing    map[string]bool
	err         error
}

func (f *fakePlayers) SearchByName(context.Context, string, int) ([]store.PlayerSearchRow, error) {
	return nil, nil
}

func (f *fakePlayers) AggregatorIDBySurrogate(_ context.Context, id int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	key, ok := f.bySurrogate[id]
	if !ok {
		return "", store.ErrNotFound
	}
	return key, nil
}

func (f *fakePlayers) AggregatorIDExists(_ context.Context, keyMLBAM string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.existing[keyMLBAM], nil
}

func (f *fakePlayers) ByBBRefIDs(context.Context, []string) (map[string]store.PlayerIdentity, error) {
	return nil, nil
}

type fakeTeams struct {
	bySurrogate map[int64]int64
	existing    map[int64]bool
}

func (f *fakeTeams) SearchByName(context.Context, string, int) ([]store.TeamSearchRow, error) {
	return nil, nil
}

func (f *fakeTeams) CurrentByAggregatorID(context.Context, int64) (store.TeamInfoRow, error) {
	return store.TeamInfoRow{}, store.ErrNotFound
}

func (f *fakeTeams) AggregatorIDBySurrogate(_ context.Context, id int64) (int64, error) {
	mlbamID, ok := f.bySurrogate[id]
	if !ok {
		return 0, store.ErrNotFound
	}
	return mlbamID, nil
}

func (f *fakeTeams) AggregatorIDExists(_ context.Context, mlbamTeamID int64) (bool, error) {
	return f.existing[mlbamTeamID], nil
}

func (f *fakeTeams) AbbrevByAggregatorID(context.Context, int64) (string, error) {
	return "", store.ErrNotFound
}

func TestResolvePlayerBySurrogate(t *testing.T) {
	r := NewResolver(&fakePlayers{
		bySurrogate: map[int64]string{42: "545361.0"},
	}, &fakeTeams{}, nil)

	res, err := r.Player(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(545361), res.AggregatorID)
	assert.False(t, res.Fallback)
}

func TestResolvePlayerByAggregatorID(t *testing.T) {
	r := NewResolver(&fakePlayers{
		existing: map[string]bool{"660271": true},
	}, &fakeTeams{}, nil)

	res, err := r.Player(context.Background(), 660271)
	require.NoError(t, err)
	assert.Equal(t, int64(660271), res.AggregatorID)
	assert.False(t, res.Fallback)
}

func TestResolvePlayerFallback(t *testing.T) {
	r := NewResolver(&fakePlayers{}, &fakeTeams{}, nil)

	res, err := r.Player(context.Background(), 999999)
	require.NoError(t, err)
	assert.Equal(t, int64(999999), res.AggregatorID)
	assert.True(t, res.Fallback)
}

func TestResolvePlayerNullKeyFallsThrough(t *testing.T) {
	// A surrogate row with a null aggregator id is not a terminal answer.
	r := NewResolver(&fakePlayers{
		bySurrogate: map[int64]string{7: ""},
	}, &fakeTeams{}, nil)

	res, err := r.Player(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, res.Fallback)
}

func TestResolvePlayerMalformedKey(t *testing.T) {
	r := NewResolver(&fakePlayers{
		bySurrogate: map[int64]string{1: "not-a-number"},
	}, &fakeTeams{}, nil)

	_, err := r.Player(context.Background(), 1)
	assert.Error(t, err)
}

func TestResolvePlayerStorageError(t *testing.T) {
	boom := errors.New("connection reset")
	r := NewResolver(&fakePlayers{err: boom}, &fakeTeams{}, nil)

	_, err := r.Player(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}

func TestResolveTeamBySurrogate(t *testing.T) {
	r := NewResolver(&fakePlayers{}, &fakeTeams{
		bySurrogate: map[int64]int64{3: 116},
	}, nil)

	mlbamID, err := r.Team(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(116), mlbamID)
}

func TestResolveTeamByAggregatorID(t *testing.T) {
	r := NewResolver(&fakePlayers{}, &fakeTeams{
		existing: map[int64]bool{121: true},
	}, nil)

	mlbamID, err := r.Team(context.Background(), 121)
	require.NoError(t, err)
	assert.Equal(t, int64(121), mlbamID)
}

func TestResolveTeamUnknownIsNotFound(t *testing.T) {
	r := NewResolver(&fakePlayers{}, &fakeTeams{}, nil)

	_, err := r.Team(context.Background(), 9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
