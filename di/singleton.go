package di

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	// ErrNilConstructor is the panic value of Get when the holder was created
	// without a constructor.
	ErrNilConstructor = errors.New("di: nil singleton constructor")

	// ErrNilInstance is the panic value of Get when the constructor returned nil.
	ErrNilInstance = errors.New("di: singleton constructor returned nil")
)

// Singleton holds a single lazily constructed *T.
//
// The zero value is not usable; create holders with Lazy. A Singleton must not
// be copied after first use.
type Singleton[T any] struct {
	ctor     func() *T
	onCreate func(*T)

	once sync.Once
	val  *T
	done atomic.Bool
}

// Lazy returns an uninitialized holder that will call ctor on first Get.
func Lazy[T any](ctor func() *T) *Singleton[T] {
	return &Singleton[T]{ctor: ctor}
}

// OnCreate registers fn to run once, right after construction, before the
// first Get returns. It must be called before the first Get and returns s for
// chaining.
func (s *Singleton[T]) OnCreate(fn func(*T)) *Singleton[T] {
	s.onCreate = fn
	return s
}

// Get returns the shared instance, constructing it on the first call.
//
// Concurrent first callers block until construction completes and all observe
// the same pointer. Get panics with ErrNilConstructor or ErrNilInstance on
// wiring mistakes; a panicking constructor leaves the holder uninitialized
// and later calls return nil.
func (s *Singleton[T]) Get() *T {
	s.once.Do(func() {
		if s.ctor == nil {
			panic(ErrNilConstructor)
		}
		v := s.ctor()
		if v == nil {
			panic(ErrNilInstance)
		}
		s.val = v
		if s.onCreate != nil {
			s.onCreate(v)
		}
		s.done.Store(true)
	})
	return s.val
}

// Initialized reports whether the instance has been constructed.
// Once true it stays true.
func (s *Singleton[T]) Initialized() bool {
	return s.done.Load()
}

// Provider adapts s into a plain constructor function. Every call of the
// returned function yields the shared instance.
func Provider[T any](s *Singleton[T]) func() *T {
	return s.Get
}
