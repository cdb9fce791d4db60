package services

import (
	"arena-route-planner/internal/adapters/repositories"
	"arena-route-planner/internal/domain"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSaveAndLoadLayout(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryLayoutRepository()

	m, err := domain.NewRouteModel(domain.DefaultArenaConfig())
	require.NoError(t, err)
	session, err := NewSession(m)
	require.NoError(t, err)

	require.NoError(t, session.Do(func(m *domain.RouteModel) error {
		m.AddWaypoint(0, 0)
		m.AddWaypoint(30, 40)
		return m.AddLandmark(10, 10, 5)
	}))

	rec, err := SaveLayout(ctx, session, repo, "  demo ")
	require.NoError(t, err)
	assert.Equal(t, "demo", rec.Name)

	require.NoError(t, session.Do(func(m *domain.RouteModel) error {
		m.Reset()
		return nil
	}))

	require.NoError(t, LoadLayout(ctx, session, repo, "demo"))

	snap, err := session.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Waypoints, 2)
	assert.Len(t, snap.Landmarks, 1)
	assert.InDelta(t, 50.0, snap.Analysis.TotalDistance, 1e-9)
}

func TestSessionLoadFailureKeepsModel(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryLayoutRepository()

	m, err := domain.NewRouteModel(domain.DefaultArenaConfig())
	require.NoError(t, err)
	m.AddWaypoint(1, 1)
	session, err := NewSession(m)
	require.NoError(t, err)

	err = LoadLayout(ctx, session, repo, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLayoutNotFound))

	snap, err := session.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []domain.Point{{X: 1, Y: 1}}, snap.Waypoints)
}

func TestSaveLayoutRequiresName(t *testing.T) {
	m, err := domain.NewRouteModel(domain.DefaultArenaConfig())
	require.NoError(t, err)
	session, err := NewSession(m)
	require.NoError(t, err)

	_, err = SaveLayout(context.Background(), session, repositories.NewMemoryLayoutRepository(), " ")
	assert.Error(t, err)
}
