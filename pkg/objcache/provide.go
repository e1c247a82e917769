/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package objcache

import "github.com/voedger/edmfacets/pkg/objcache/internal/hashicorp"

// Creates and return new LRU object cache with K key type and V value type.
//
// Maximum cache size is limited by size param. Optional onEvicted cb is called then some value evicted from cache.
func New[K comparable, V any](size int, onEvicted func(K, V)) ICache[K, V] {
	return hashicorp.New[K, V](size, onEvicted)
}
