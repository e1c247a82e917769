/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package objcache

// Objects cache. Safe for concurrent use.
type ICache[K comparable, V any] interface {
	// Gets value by key. Returns true and value if key exists, false and zero value overwise
	Get(K) (value V, ok bool)

	// Puts value with key
	Put(K, V)

	// Returns cached value by key. If key is not cached, then calls make,
	// puts result into cache and returns it.
	GetOrMake(K, func(K) V) V

	// Returns count of cached values
	Len() int
}
