package mock

import (
	"context"

	"github.com/ndtrung/vbpl"
)

var _ vbpl.Frontier = (*Frontier)(nil)

// Frontier is a mock implementation of vbpl.Frontier.
type Frontier struct {
	PushFn func(ref vbpl.DocRef) bool
	PopFn  func() (vbpl.DocRef, bool)
	LenFn  func() int
	SeenFn func(id string) bool
}

func (f *Frontier) Push(ref vbpl.DocRef) bool {
	return f.PushFn(ref)
}

func (f *Frontier) Pop() (vbpl.DocRef, bool) {
	return f.PopFn()
}

func (f *Frontier) Len() int {
	return f.LenFn()
}

func (f *Frontier) Seen(id string) bool {
	return f.SeenFn(id)
}

var _ vbpl.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of vbpl.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
