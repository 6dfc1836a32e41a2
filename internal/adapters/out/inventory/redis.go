package inventory

import (
	"context"
	"fmt"
	"sort"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// Key layout:
//
//	inventory:stock:<sku>     hash, location code -> available quantity
//	inventory:hold:<ref>      hash, the reservation placed for <ref>
//
// Both scripts touch one stock hash and one hold hash, so they stay atomic
// on a single Redis instance and hash-tag friendly under cluster mode.
var reserveScript = redis.NewScript(`
local stock = KEYS[1]
local hold = KEYS[2]
local location = ARGV[1]
local quantity = tonumber(ARGV[2])
local id = ARGV[3]

if redis.call('exists', hold) == 1 then
    return redis.call('hget', hold, 'id')
end

local available = tonumber(redis.call('hget', stock, location))
if not available or available < quantity then
    return 'SHORT'
end

redis.call('hincrbyfloat', stock, location, -quantity)
redis.call('hset', hold, 'id', id, 'location', location, 'quantity', ARGV[2], 'sku', ARGV[4])
return id
`)

var releaseScript = redis.NewScript(`
local hold = KEYS[1]
local stock = KEYS[2]

if redis.call('exists', hold) == 0 then
    return 0
end

local location = redis.call('hget', hold, 'location')
local quantity = redis.call('hget', hold, 'quantity')
redis.call('hincrbyfloat', stock, location, quantity)
redis.call('del', hold)
return 1
`)

// RedisAdapter implements InventoryAdapter on a shared Redis stock pool.
// Reserve and release run as Lua scripts, so concurrent fulfillment
// instances never double-spend a location's stock.
type RedisAdapter struct {
	client *redis.Client
}

// NewRedisAdapter creates a Redis-backed inventory adapter.
func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

// SeedStock sets the available quantity of a SKU at a location. Used by
// operational tooling and tests; the fulfillment core never calls it.
func (a *RedisAdapter) SeedStock(ctx context.Context, sku, locationCode string, quantity decimal.Decimal) error {
	return a.client.HSet(ctx, stockKey(sku), locationCode, quantity.String()).Err()
}

// CheckAvailability returns the locations holding the SKU, sorted by
// location code.
func (a *RedisAdapter) CheckAvailability(ctx context.Context, sku string) ([]ports.StockLocation, error) {
	levels, err := a.client.HGetAll(ctx, stockKey(sku)).Result()
	if err != nil {
		return nil, errs.NewAdapterError("check availability", err)
	}

	locations := make([]ports.StockLocation, 0, len(levels))
	for code, raw := range levels {
		available, parseErr := decimal.NewFromString(raw)
		if parseErr != nil {
			return nil, errs.NewAdapterError("check availability",
				fmt.Errorf("stock level for %s at %s: %w", sku, code, parseErr))
		}
		if available.IsPositive() {
			locations = append(locations, ports.StockLocation{
				LocationCode: code,
				Available:    available,
			})
		}
	}
	sort.Slice(locations, func(i, j int) bool {
		return locations[i].LocationCode < locations[j].LocationCode
	})
	return locations, nil
}

// Reserve places a hold on stock. Repeating a request with the same
// reference returns the original reservation without taking more stock.
func (a *RedisAdapter) Reserve(ctx context.Context, req ports.ReserveRequest) (ports.Reservation, error) {
	id := reservationID(req.Reference)
	keys := []string{stockKey(req.SKU), holdKey(req.Reference)}
	args := []any{req.LocationCode, req.Quantity.String(), id, req.SKU}

	result, err := reserveScript.Run(ctx, a.client, keys, args...).Result()
	if err != nil {
		return ports.Reservation{}, errs.NewAdapterError("reserve", err)
	}

	returned, ok := result.(string)
	if !ok {
		return ports.Reservation{}, errs.NewAdapterError("reserve",
			fmt.Errorf("unexpected result type from reserve script: %T", result))
	}
	if returned == "SHORT" {
		return ports.Reservation{}, errs.NewAdapterError("reserve",
			fmt.Errorf("%s at %s: insufficient stock for %s",
				req.SKU, req.LocationCode, req.Quantity))
	}

	return ports.Reservation{
		ID:           returned,
		SKU:          req.SKU,
		LocationCode: req.LocationCode,
		Quantity:     req.Quantity,
	}, nil
}

// Release returns a hold's quantity to its location. Releasing an unknown
// or already released reservation is a no-op.
func (a *RedisAdapter) Release(ctx context.Context, resID string) error {
	reference, ok := referenceFromID(resID)
	if !ok {
		return nil
	}

	hold := holdKey(reference)
	sku, err := a.client.HGet(ctx, hold, "sku").Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return errs.NewAdapterError("release", err)
	}

	keys := []string{hold, stockKey(sku)}
	if err := releaseScript.Run(ctx, a.client, keys).Err(); err != nil && err != redis.Nil {
		return errs.NewAdapterError("release", err)
	}
	return nil
}

func stockKey(sku string) string {
	return "inventory:stock:" + sku
}

func holdKey(reference string) string {
	return "inventory:hold:" + reference
}
