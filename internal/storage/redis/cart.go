package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eletrofluxo/storefront/internal/domain/model"
)

// CartKey formats the redis key holding a user's cart hash.
func CartKey(userID int64) string {
	return fmt.Sprintf("cart:%d", userID)
}

// CartStore keeps per-user carts in redis hashes with a sliding TTL. Carts are
// ephemeral; an abandoned cart simply expires.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore builds a cart store over an existing redis client.
func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &CartStore{client: client, ttl: ttl}
}

// Get returns the current cart content for the user.
func (s *CartStore) Get(ctx context.Context, userID int64) ([]model.CartItem, error) {
	fields, err := s.client.HGetAll(ctx, CartKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]model.CartItem, 0, len(fields))
	for field, value := range fields {
		productID, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			continue
		}
		quantity, err := strconv.Atoi(value)
		if err != nil || quantity <= 0 {
			continue
		}
		items = append(items, model.CartItem{ProductID: productID, Quantity: quantity})
	}
	return items, nil
}

// SetItem upserts the quantity for a product and refreshes the cart TTL.
func (s *CartStore) SetItem(ctx context.Context, userID, productID int64, quantity int) error {
	key := CartKey(userID)
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, strconv.FormatInt(productID, 10), quantity)
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// RemoveItem drops a single product from the cart.
func (s *CartStore) RemoveItem(ctx context.Context, userID, productID int64) error {
	return s.client.HDel(ctx, CartKey(userID), strconv.FormatInt(productID, 10)).Err()
}

// Clear removes the whole cart.
func (s *CartStore) Clear(ctx context.Context, userID int64) error {
	return s.client.Del(ctx, CartKey(userID)).Err()
}
