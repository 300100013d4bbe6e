package services_test

import (
	"context"
	"sort"
	"testing"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCourierStore keeps couriers in memory; GetFirstAvailableForUpdate picks
// the first available courier by id, like the postgres repository.
type fakeCourierStore struct {
	couriers map[kernel.UUID]*courier.Courier
}

func newFakeCourierStore(couriers ...*courier.Courier) *fakeCourierStore {
	store := &fakeCourierStore{
		couriers: make(map[kernel.UUID]*courier.Courier),
	}
	for _, c := range couriers {
		store.couriers[c.ID()] = c
	}
	return store
}

func (s *fakeCourierStore) Get(_ context.Context, id kernel.UUID) (*courier.Courier, error) {
	c, ok := s.couriers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("courier", id.String())
	}
	return c, nil
}

func (s *fakeCourierStore) GetFirstAvailableForUpdate(_ context.Context) (*courier.Courier, error) {
	ids := make([]kernel.UUID, 0, len(s.couriers))
	for id := range s.couriers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	for _, id := range ids {
		if s.couriers[id].Status() == courier.Available {
			return s.couriers[id], nil
		}
	}
	return nil, errs.NewObjectNotFoundError("courier", "first available")
}

func (s *fakeCourierStore) Update(_ context.Context, aggregate *courier.Courier) error {
	s.couriers[aggregate.ID()] = aggregate
	return nil
}

func mustCourier(t *testing.T, name string, status courier.Status) *courier.Courier {
	t.Helper()
	c, err := courier.RestoreCourier(kernel.NewUUID(), name, "Norte", status)
	require.NoError(t, err)
	return c
}

func TestCourierPool_AcquireAny(t *testing.T) {
	ctx := context.Background()
	pool := services.NewCourierPool()

	t.Run("acquires_an_available_courier", func(t *testing.T) {
		free := mustCourier(t, "Carlos", courier.Available)
		store := newFakeCourierStore(free)

		acquired, err := pool.AcquireAny(ctx, store)

		require.NoError(t, err)
		assert.True(t, acquired.IsEqual(free))
		assert.Equal(t, courier.Busy, acquired.Status())
		assert.Equal(t, courier.Busy, store.couriers[free.ID()].Status())
	})

	t.Run("skips_busy_couriers", func(t *testing.T) {
		busy := mustCourier(t, "Pedro", courier.Busy)
		free := mustCourier(t, "Carlos", courier.Available)
		store := newFakeCourierStore(busy, free)

		acquired, err := pool.AcquireAny(ctx, store)

		require.NoError(t, err)
		assert.True(t, acquired.IsEqual(free))
	})

	t.Run("fails_when_every_courier_is_busy", func(t *testing.T) {
		store := newFakeCourierStore(
			mustCourier(t, "Carlos", courier.Busy),
			mustCourier(t, "Pedro", courier.Busy),
		)

		_, err := pool.AcquireAny(ctx, store)

		require.ErrorIs(t, err, services.ErrNoCourierAvailable)
	})

	t.Run("two_acquisitions_drain_a_two_courier_pool", func(t *testing.T) {
		store := newFakeCourierStore(
			mustCourier(t, "Carlos", courier.Available),
			mustCourier(t, "Pedro", courier.Available),
		)

		first, err := pool.AcquireAny(ctx, store)
		require.NoError(t, err)

		second, err := pool.AcquireAny(ctx, store)
		require.NoError(t, err)
		assert.False(t, first.IsEqual(second))

		_, err = pool.AcquireAny(ctx, store)
		require.ErrorIs(t, err, services.ErrNoCourierAvailable)
	})
}

func TestCourierPool_Release(t *testing.T) {
	ctx := context.Background()
	pool := services.NewCourierPool()

	t.Run("releases_a_busy_courier", func(t *testing.T) {
		busy := mustCourier(t, "Carlos", courier.Busy)
		store := newFakeCourierStore(busy)

		require.NoError(t, pool.Release(ctx, store, busy.ID()))
		assert.Equal(t, courier.Available, store.couriers[busy.ID()].Status())
	})

	t.Run("missing_courier_surfaces_not_found", func(t *testing.T) {
		store := newFakeCourierStore()

		err := pool.Release(ctx, store, kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("acquire_release_acquire_round_trip", func(t *testing.T) {
		free := mustCourier(t, "Carlos", courier.Available)
		store := newFakeCourierStore(free)

		acquired, err := pool.AcquireAny(ctx, store)
		require.NoError(t, err)

		require.NoError(t, pool.Release(ctx, store, acquired.ID()))

		again, err := pool.AcquireAny(ctx, store)
		require.NoError(t, err)
		assert.True(t, again.IsEqual(acquired))
	})
}
