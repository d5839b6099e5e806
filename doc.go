// Package zset implements an in-memory ordered set modeled on the Redis
// ZSET: a membership map paired with a span-augmented skip list, giving
// O(log N) insert, delete, rank lookup, and range queries by score or by
// rank.
//
// The zero value of OrderedSet is not usable; construct one with New,
// NewSeeded, or NewWithDict.
package zset
