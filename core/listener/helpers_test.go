package listener_test

import (
	"context"
	"sync"

	"github.com/dmitrymomot/listeners/core/listener"
)

type document struct {
	listener.Object
	title string
	tags  []string
	hits  int
}

func newDocument(title string) *document {
	return &document{title: title}
}

func (d *document) Rename(ctx context.Context, title string) error {
	d.title = title
	return nil
}

func (d *document) Touch() {
	d.hits++
}

func (d *document) Tag(tags ...string) {
	d.tags = append(d.tags, tags...)
}

func (d *document) Fail(reason string) error {
	return &failure{reason: reason}
}

type failure struct{ reason string }

func (f *failure) Error() string { return "failure: " + f.reason }

// recorder collects the names of invoked listeners in call order.
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) method(name string) listener.Method {
	return listener.Func(r.handler(name))
}

func (r *recorder) handler(name string) listener.HandlerFunc {
	return func(context.Context, any, ...any) error {
		r.record(name)
		return nil
	}
}

func (r *recorder) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
}

func (r *recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func (r *recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
