package memstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crushcollection/storefront/internal/adapter/memstore"
)

func TestWishlistStore(t *testing.T) {

	t.Run("ToggleOnThenOffIsInvolution", func(t *testing.T) {
		s := memstore.NewWishlistStore()
		s.Toggle(jacket)

		before := s.Products()

		added := s.Toggle(tee)
		assert.True(t, added)
		assert.True(t, s.Has("tee"))

		added = s.Toggle(tee)
		assert.False(t, added)
		assert.False(t, s.Has("tee"))

		assert.Equal(t, before, s.Products())
	})

	t.Run("NoDuplicateIDs", func(t *testing.T) {
		s := memstore.NewWishlistStore()
		s.Toggle(tee)
		s.Toggle(jacket)
		s.Toggle(tee)
		s.Toggle(tee)

		ps := s.Products()
		require.Len(t, ps, 2)
		assert.Equal(t, "jacket", ps[0].ProductID)
		assert.Equal(t, "tee", ps[1].ProductID)
	})

	t.Run("RemoveAbsentIsNoop", func(t *testing.T) {
		s := memstore.NewWishlistStore()
		s.Toggle(tee)
		s.Remove("jacket")
		assert.Len(t, s.Products(), 1)
	})

	t.Run("Clear", func(t *testing.T) {
		s := memstore.NewWishlistStore()
		s.Toggle(tee)
		s.Toggle(jacket)
		s.Clear()
		assert.Empty(t, s.Products())
	})
}
