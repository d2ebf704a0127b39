// Package di provides a small, explicit lifetime helper for Go.
//
// Singleton[T] is a lazy, exactly-once holder. The constructor runs on the
// first Get, even when that first access is contended, and every later Get
// returns the same pointer for the lifetime of the holder.
//
// There is no reflection and no container graph. Packages usually keep the
// holder unexported and publish an accessor that calls Get, which keeps the
// constructor the only path to a value. Provider turns a holder into a plain
// func() *T for callers that want a constructor-shaped value instead.
//
// Import
//
//	"github.com/sghaida/printmgr/di"
package di
