package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemIncrementsExisting(t *testing.T) {
	c := New(nil)

	c.AddItem(Product{ID: 1, Name: "Desk Lamp", Price: "34.50"})
	c.AddItem(Product{ID: 1, Name: "Desk Lamp", Price: "34.50"})

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, c.IsOpen())
}

func TestAddItemAppendsNew(t *testing.T) {
	c := New(nil)

	c.AddItem(Product{ID: 1, Name: "Desk Lamp", Price: "34.50"})
	c.AddItem(Product{ID: 2, Name: "Mug", Price: "9.90"})

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestRemoveItem(t *testing.T) {
	c := New(nil)

	c.AddItem(Product{ID: 1, Price: "10.00"})
	c.AddItem(Product{ID: 2, Price: "5.00"})
	c.RemoveItem(1)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint64(2), items[0].ID)
}

func TestUpdateQuantity(t *testing.T) {
	c := New(nil)
	c.AddItem(Product{ID: 1, Price: "10.00"})

	c.UpdateQuantity(1, 5)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 5, c.Items()[0].Quantity)

	// Zero removes the item
	c.UpdateQuantity(1, 0)
	assert.Empty(t, c.Items())
}

func TestUpdateQuantityNegativeRemoves(t *testing.T) {
	c := New(nil)
	c.AddItem(Product{ID: 1, Price: "10.00"})

	c.UpdateQuantity(1, -3)
	assert.Empty(t, c.Items())
}

func TestClear(t *testing.T) {
	c := New(nil)
	c.AddItem(Product{ID: 1, Price: "10.00"})
	c.AddItem(Product{ID: 2, Price: "5.00"})

	c.Clear()
	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.ItemCount())
}

func TestTotal(t *testing.T) {
	c := New(nil)

	c.AddItem(Product{ID: 1, Price: "34.50"})
	c.AddItem(Product{ID: 1, Price: "34.50"})
	c.AddItem(Product{ID: 2, Price: "9.90"})

	assert.InDelta(t, 34.50*2+9.90, c.Total(), 0.0001)
	assert.Equal(t, 3, c.ItemCount())
}

func TestTotalSkipsUnparseablePrice(t *testing.T) {
	c := New(nil)

	c.AddItem(Product{ID: 1, Price: "not-a-price"})
	c.AddItem(Product{ID: 2, Price: "10.00"})

	assert.InDelta(t, 10.00, c.Total(), 0.0001)
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	c := New(store)
	c.AddItem(Product{ID: 1, Name: "Desk Lamp", Price: "34.50"})
	c.AddItem(Product{ID: 1, Name: "Desk Lamp", Price: "34.50"})

	// A new cart on the same store restores the persisted state.
	restored := New(store)
	items := restored.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, restored.IsOpen())
}

func TestPersistenceCorruptState(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(StorageKey, []byte("{broken")))

	// Corrupt state is ignored, not fatal.
	c := New(store)
	assert.Empty(t, c.Items())
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	c := New(store)
	c.AddItem(Product{ID: 7, Name: "Mug", Price: "9.90"})

	restored := New(store)
	items := restored.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint64(7), items[0].ID)
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(t.TempDir())

	data, err := store.Load(StorageKey)
	require.NoError(t, err)
	assert.Nil(t, data)
}
