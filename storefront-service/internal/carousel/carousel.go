package carousel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fjod/mycogrow/pkg/logger"
	"github.com/fjod/mycogrow/storefront-service/internal/domain"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// DefaultInterval is how often autoplay advances the carousel
const DefaultInterval = 5 * time.Second

var (
	ErrNoTestimonials  = errors.New("carousel needs at least one testimonial")
	ErrIndexOutOfRange = errors.New("testimonial index out of range")
	ErrAutoplayRunning = errors.New("autoplay already running")
)

// Slide is the carousel position read under a single lock, so Index always
// matches Testimonial.
type Slide struct {
	Index       int                `json:"index"`
	Testimonial domain.Testimonial `json:"testimonial"`
}

// Carousel is a cursor over a fixed ring of testimonials. Manual navigation
// and autoplay both write the same index; the last write wins.
type Carousel struct {
	mu    sync.Mutex
	items []domain.Testimonial
	index int

	clock    clockwork.Clock
	interval time.Duration
	log      *zap.Logger

	run *autoplayRun
}

// autoplayRun is the handle of one Start..Stop lifetime.
type autoplayRun struct {
	cancel context.CancelFunc
	done   chan struct{}
}

type Option func(*Carousel)

func WithClock(c clockwork.Clock) Option {
	return func(cr *Carousel) { cr.clock = c }
}

func WithInterval(d time.Duration) Option {
	return func(cr *Carousel) { cr.interval = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(cr *Carousel) { cr.log = l }
}

// New creates a carousel positioned on the first testimonial.
func New(items []domain.Testimonial, opts ...Option) (*Carousel, error) {
	if len(items) == 0 {
		return nil, ErrNoTestimonials
	}

	c := &Carousel{
		items:    append([]domain.Testimonial(nil), items...),
		clock:    clockwork.NewRealClock(),
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = logger.OrNop(c.log)
	if c.interval <= 0 {
		return nil, fmt.Errorf("autoplay interval must be positive, got %s", c.interval)
	}
	return c, nil
}

func (c *Carousel) Len() int {
	return len(c.items)
}

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Carousel) Current() Slide {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slide()
}

func (c *Carousel) Next() Slide {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = (c.index + 1) % len(c.items)
	return c.slide()
}

func (c *Carousel) Previous() Slide {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	c.index = (c.index - 1 + n) % n
	return c.slide()
}

func (c *Carousel) JumpTo(k int) (Slide, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if k < 0 || k >= len(c.items) {
		return Slide{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, k, len(c.items))
	}
	c.index = k
	return c.slide(), nil
}

// slide must be called with c.mu held.
func (c *Carousel) slide() Slide {
	return Slide{Index: c.index, Testimonial: c.items[c.index]}
}

// Start begins autoplay. The loop runs until ctx is done or Stop is called;
// either way the carousel can be started again afterwards.
func (c *Carousel) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.run != nil {
		return ErrAutoplayRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	run := &autoplayRun{cancel: cancel, done: make(chan struct{})}
	c.run = run

	// the ticker is created before Start returns so no tick can be missed
	ticker := c.clock.NewTicker(c.interval)

	go c.autoplayLoop(ctx, run, ticker)

	c.log.Debug("carousel autoplay started", zap.Duration("interval", c.interval))
	return nil
}

// Stop cancels autoplay and waits for the loop to exit. Safe to call more
// than once and when autoplay was never started.
func (c *Carousel) Stop() {
	c.mu.Lock()
	run := c.run
	c.run = nil
	c.mu.Unlock()

	if run == nil {
		return
	}
	run.cancel()
	<-run.done
	c.log.Debug("carousel autoplay stopped")
}

// Running reports whether autoplay is active.
func (c *Carousel) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.run != nil
}

func (c *Carousel) autoplayLoop(ctx context.Context, run *autoplayRun, ticker clockwork.Ticker) {
	defer close(run.done)
	defer ticker.Stop()
	defer c.release(run)

	for {
		select {
		case <-ticker.Chan():
			// a tick racing with cancellation must not advance
			if ctx.Err() != nil {
				return
			}
			c.Next()
		case <-ctx.Done():
			return
		}
	}
}

// release clears the running state when the loop ends on its own, e.g. the
// parent context was cancelled. A run already taken by Stop is left alone.
func (c *Carousel) release(run *autoplayRun) {
	run.cancel()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.run == run {
		c.run = nil
	}
}
