// Package ratelimit throttles abusive form submissions with a fixed-window
// counter per client key.
//
// The counter lives behind the Store interface: MemoryStore keeps it in the
// process (tests, single instance), RedisStore shares it between instances.
// The limiter is advisory abuse mitigation and fails open when the store is
// unavailable.
package ratelimit
