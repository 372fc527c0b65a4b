package konieczny

import (
	"github.com/dclassgo/konieczny/dclass"
	"github.com/dclassgo/konieczny/element"
)

func (e *Engine) finished() error {
	if e.state != Finished {
		return ErrNotYetFinished
	}
	return nil
}

// Size returns the total number of elements across every discovered
// D-class, i.e. the order of the generated semigroup.
func (e *Engine) Size() (int, error) {
	if err := e.finished(); err != nil {
		return 0, err
	}
	total := 0
	for _, c := range e.store.All() {
		total += c.Size()
	}
	return total, nil
}

// Classes returns every discovered D-class, highest rank first as
// discovered.
func (e *Engine) Classes() ([]*dclass.Class, error) {
	if err := e.finished(); err != nil {
		return nil, err
	}
	return e.store.All(), nil
}

// RegularClasses returns only the classes that contain an idempotent.
func (e *Engine) RegularClasses() ([]*dclass.Class, error) {
	if err := e.finished(); err != nil {
		return nil, err
	}
	var out []*dclass.Class
	for _, c := range e.store.All() {
		if c.Kind == dclass.Regular {
			out = append(out, c)
		}
	}
	return out, nil
}

// IsRegularElement reports whether x's D-class contains an idempotent.
func (e *Engine) IsRegularElement(x element.Element) (bool, error) {
	if err := e.finished(); err != nil {
		return false, err
	}
	c := e.store.Find(x)
	if c == nil {
		return false, nil
	}
	return c.Kind == dclass.Regular, nil
}

// Contains reports whether x belongs to the generated semigroup.
func (e *Engine) Contains(x element.Element) (bool, error) {
	if err := e.finished(); err != nil {
		return false, err
	}
	return e.store.Find(x) != nil, nil
}

// NumIdempotents returns the total number of idempotents across every
// regular class (a non-regular class has none by definition).
func (e *Engine) NumIdempotents() (int, error) {
	if err := e.finished(); err != nil {
		return 0, err
	}
	total := 0
	for _, c := range e.store.All() {
		total += c.NumIdempotents
	}
	return total, nil
}
