package cache

import "time"

// DataWithLogicalExpire wraps cached data with a logical expiry.
// The physical redis TTL is longer, so a stale value can still be served
// while it is rebuilt in the background.
type DataWithLogicalExpire[T any] struct {
	Data      T         `json:"data"`
	ExpireAt  time.Time `json:"expire_at"`  // logical expiry
	CreatedAt time.Time `json:"created_at"` // for debugging
}

// IsLogicalExpired reports whether now is past the logical expiry.
func (d *DataWithLogicalExpire[T]) IsLogicalExpired(now time.Time) bool {
	return now.After(d.ExpireAt)
}

// NewDataWithLogicalExpire wraps data created at now, expiring after ttl.
func NewDataWithLogicalExpire[T any](data T, now time.Time, ttl time.Duration) *DataWithLogicalExpire[T] {
	return &DataWithLogicalExpire[T]{
		Data:      data,
		ExpireAt:  now.Add(ttl),
		CreatedAt: now,
	}
}
