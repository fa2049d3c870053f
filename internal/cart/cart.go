// Package cart implements the shopping cart state container.
//
// The cart is an explicitly constructed value with an injected persistence
// strategy; it is not a process-wide singleton. Persistence is best-effort:
// a failing store logs a warning and the in-memory state stays
// authoritative.
package cart

import (
	"encoding/json"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
)

// StorageKey is the fixed key the cart state is persisted under.
const StorageKey = "storefront-cart"

// Product is a cart line item. Price is a decimal string, matching the
// product catalog.
type Product struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// state is the persisted shape of the cart.
type state struct {
	Items  []Product `json:"items"`
	IsOpen bool      `json:"isOpen"`
}

// Cart holds the cart items and the open/closed flag. Item ids are unique
// within the item list.
type Cart struct {
	mu     sync.Mutex
	store  Store
	items  []Product
	isOpen bool
}

// New creates a cart bound to the given store and restores any previously
// persisted state. A nil store yields a purely in-memory cart.
func New(store Store) *Cart {
	c := &Cart{store: store}

	if store == nil {
		return c
	}

	data, err := store.Load(StorageKey)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load persisted cart state")
		return c
	}

	if len(data) == 0 {
		return c
	}

	var s state
	if err := json.Unmarshal(data, &s); err != nil {
		log.Warn().Err(err).Msg("ignoring corrupt persisted cart state")
		return c
	}

	c.items = s.Items
	c.isOpen = s.IsOpen

	return c
}

// AddItem adds a product to the cart and opens it. Adding an id already in
// the cart increments that item's quantity by one instead.
func (c *Cart) AddItem(p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			c.isOpen = true
			c.persist()

			return
		}
	}

	p.Quantity = 1
	c.items = append(c.items, p)
	c.isOpen = true
	c.persist()
}

// RemoveItem removes the item with the given id.
func (c *Cart) RemoveItem(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(id)
	c.persist()
}

// UpdateQuantity sets an item's exact quantity. A quantity of zero or less
// removes the item.
func (c *Cart) UpdateQuantity(id uint64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(id)
		c.persist()

		return
	}

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			break
		}
	}

	c.persist()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.persist()
}

// Open marks the cart as open.
func (c *Cart) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.isOpen = true
	c.persist()
}

// Close marks the cart as closed.
func (c *Cart) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.isOpen = false
	c.persist()
}

// IsOpen reports whether the cart is open.
func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.isOpen
}

// Items returns a copy of the cart items.
func (c *Cart) Items() []Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Product, len(c.items))
	copy(out, c.items)

	return out
}

// Total returns the sum of price times quantity over all items. An
// unparseable price contributes nothing.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64

	for _, item := range c.items {
		price, err := strconv.ParseFloat(item.Price, 64)
		if err != nil {
			log.Warn().Str("price", item.Price).Uint64("id", item.ID).Msg("unparseable cart item price")
			continue
		}

		total += price * float64(item.Quantity)
	}

	return total
}

// ItemCount returns the sum of all item quantities.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int
	for _, item := range c.items {
		count += item.Quantity
	}

	return count
}

// removeLocked filters out the item with the given id. Callers hold the lock.
func (c *Cart) removeLocked(id uint64) {
	out := c.items[:0]

	for _, item := range c.items {
		if item.ID != id {
			out = append(out, item)
		}
	}

	c.items = out
}

// persist writes the current state to the store, fire-and-forget. Callers
// hold the lock.
func (c *Cart) persist() {
	if c.store == nil {
		return
	}

	data, err := json.Marshal(state{Items: c.items, IsOpen: c.isOpen})
	if err != nil {
		log.Warn().Err(err).Msg("failed to marshal cart state")
		return
	}

	if err := c.store.Save(StorageKey, data); err != nil {
		log.Warn().Err(err).Msg("failed to persist cart state")
	}
}
