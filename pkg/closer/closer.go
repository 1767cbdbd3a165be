package closer

import (
	"context"
	"errors"
	"sync"

	"github.com/proxionix/unit-tools/pkg/logger"
)

// Closer releases one resource. It must be safe to call once.
type Closer func(ctx context.Context) error

type named struct {
	name string
	fn   Closer
}

type registry struct {
	mu      sync.Mutex
	closers []named
	log     *logger.Logger
	closed  bool
}

var global = &registry{}

func SetLogger(l *logger.Logger) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.log = l
}

func Add(fn Closer) { AddNamed("", fn) }

func AddNamed(name string, fn Closer) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.closers = append(global.closers, named{name: name, fn: fn})
}

// CloseAll runs registered closers in reverse registration order.
// A failing closer does not stop the remaining ones.
func CloseAll(ctx context.Context) error { return global.closeAll(ctx) }

func (r *registry) closeAll(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	closers := r.closers
	r.closers = nil
	log := r.log
	r.mu.Unlock()

	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		c := closers[i]
		if err := c.fn(ctx); err != nil {
			if log != nil {
				log.Error(ctx, "close resource",
					logger.String("resource", c.name),
					logger.ErrorF(err),
				)
			}
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
