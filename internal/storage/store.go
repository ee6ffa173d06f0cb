package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/example/frenchie/internal/migration"
	"github.com/example/frenchie/pkg/models"
)

// Default timeouts
const (
	DefaultLoadTimeout = 2 * time.Second
	DefaultSaveTimeout = 5 * time.Second
)

const queueSize = 64

// Options configures a Store
type Options struct {
	LoadTimeout time.Duration
	SaveTimeout time.Duration
}

type opKind int

const (
	opGet opKind = iota
	opSet
	opRemove
	opFlush
)

type op struct {
	kind   opKind
	key    string
	value  string
	result chan opResult // nil for fire-and-forget writes
}

type opResult struct {
	value string
	found bool
	err   error
}

// Store loads and saves learner state through a KeyValue adapter. A single
// worker goroutine talks to the adapter, so writes reach it in the order they
// were requested and a load never overtakes an earlier save.
type Store struct {
	kv          KeyValue
	loadTimeout time.Duration
	saveTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	ops    chan op
	done   chan struct{}
}

// New creates a store and starts its worker. Call Close when done.
func New(kv KeyValue, opts Options) *Store {
	if opts.LoadTimeout <= 0 {
		opts.LoadTimeout = DefaultLoadTimeout
	}
	if opts.SaveTimeout <= 0 {
		opts.SaveTimeout = DefaultSaveTimeout
	}

	s := &Store{
		kv:          kv,
		loadTimeout: opts.LoadTimeout,
		saveTimeout: opts.SaveTimeout,
		ops:         make(chan op, queueSize),
		done:        make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Store) run() {
	defer close(s.done)
	for o := range s.ops {
		res := s.apply(o)
		if o.result != nil {
			o.result <- res
		} else if res.err != nil {
			log.Printf("Error saving %s (ignored): %v", o.key, res.err)
		}
	}
}

func (s *Store) apply(o op) opResult {
	timeout := s.saveTimeout
	if o.kind == opGet {
		timeout = s.loadTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var res opResult
	switch o.kind {
	case opGet:
		res.value, res.found, res.err = s.kv.Get(ctx, o.key)
	case opSet:
		res.err = s.kv.Set(ctx, o.key, o.value)
	case opRemove:
		res.err = s.kv.Remove(ctx, o.key)
	case opFlush:
	}
	if res.err == nil && ctx.Err() != nil {
		res.err = ErrTimeout
	}
	return res
}

// enqueue hands o to the worker, giving up when ctx ends first
func (s *Store) enqueue(ctx context.Context, o op) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return errors.New("storage: store closed")
	}
	select {
	case s.ops <- o:
		return nil
	default:
	}
	select {
	case s.ops <- o:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// call runs o on the worker and waits for its result within timeout
func (s *Store) call(ctx context.Context, o op, timeout time.Duration) (opResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	o.result = make(chan opResult, 1)
	if err := s.enqueue(ctx, o); err != nil {
		return opResult{}, timeoutErr(err)
	}
	select {
	case res := <-o.result:
		return res, timeoutErr(res.err)
	case <-ctx.Done():
		return opResult{}, timeoutErr(ctx.Err())
	}
}

func timeoutErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}

// get reads key with the load timeout
func (s *Store) get(ctx context.Context, key string) (string, bool, error) {
	res, err := s.call(ctx, op{kind: opGet, key: key}, s.loadTimeout)
	if err != nil {
		return "", false, err
	}
	return res.value, res.found, nil
}

// set queues a write of key. It does not wait for the adapter, and the
// caller's cancellation does not apply: a write fails only when the queue
// stays full for the save timeout.
func (s *Store) set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.saveTimeout)
	defer cancel()
	if err := s.enqueue(ctx, op{kind: opSet, key: key, value: value}); err != nil {
		log.Printf("Error queueing save of %s (ignored): %v", key, err)
		return err
	}
	return nil
}

// LoadProgress reads the progress map and upgrades legacy records. order lists
// catalog item ids in catalog order. On timeout, storage failure or corrupt data
// an empty map is returned. An upgraded map is written back.
func (s *Store) LoadProgress(ctx context.Context, order []string, now time.Time) models.ProgressMap {
	progress, migrated := s.readProgress(ctx, order, now)
	if migrated {
		_ = s.SaveProgress(ctx, progress)
	}
	return progress
}

// ReadProgress is LoadProgress without the write-back, for readers that do
// not own the learner's state.
func (s *Store) ReadProgress(ctx context.Context, order []string, now time.Time) models.ProgressMap {
	progress, _ := s.readProgress(ctx, order, now)
	return progress
}

func (s *Store) readProgress(ctx context.Context, order []string, now time.Time) (models.ProgressMap, bool) {
	value, found, err := s.get(ctx, ProgressKey)
	if err != nil {
		log.Printf("Error loading progress (using empty): %v", err)
		return models.ProgressMap{}, false
	}
	if !found {
		return models.ProgressMap{}, false
	}

	stored, err := DecodeProgress(value)
	if err != nil {
		log.Printf("Error decoding progress (using empty): %v", err)
		return models.ProgressMap{}, false
	}

	progress, report := migration.Migrate(stored, order, now)
	if report.Upgraded > 0 {
		log.Printf("Migrated %d progress entries (%d reinforced, %d introduced, %d parked)",
			report.Upgraded, report.Reinforced, report.Introduced, report.Parked)
	}
	return progress, report.Upgraded > 0
}

// SaveProgress queues the progress map for writing. Failures are logged; the
// returned error is informational only.
func (s *Store) SaveProgress(ctx context.Context, progress models.ProgressMap) error {
	value, err := EncodeProgress(progress)
	if err != nil {
		log.Printf("Error saving progress (ignored): %v", err)
		return err
	}
	return s.set(ctx, ProgressKey, value)
}

// LoadStreak reads the streak state, falling back to the zero state
func (s *Store) LoadStreak(ctx context.Context) models.StreakState {
	value, found, err := s.get(ctx, StreakKey)
	if err != nil {
		log.Printf("Error loading streak (using default): %v", err)
		return models.StreakState{}
	}
	if !found {
		return models.StreakState{}
	}
	state, err := DecodeStreak(value)
	if err != nil {
		log.Printf("Error decoding streak (using default): %v", err)
		return models.StreakState{}
	}
	return state
}

// SaveStreak queues the streak state for writing
func (s *Store) SaveStreak(ctx context.Context, state models.StreakState) error {
	value, err := EncodeStreak(state)
	if err != nil {
		log.Printf("Error saving streak (ignored): %v", err)
		return err
	}
	return s.set(ctx, StreakKey, value)
}

// LoadCurrentIndex reads the position of the current card, 0 on failure
func (s *Store) LoadCurrentIndex(ctx context.Context) int {
	value, found, err := s.get(ctx, CurrentIndexKey)
	if err != nil {
		log.Printf("Error loading current index (using 0): %v", err)
		return 0
	}
	if !found {
		return 0
	}
	n, err := DecodeIndex(value)
	if err != nil {
		log.Printf("Error decoding current index (using 0): %v", err)
		return 0
	}
	return n
}

// SaveCurrentIndex queues the current card position for writing
func (s *Store) SaveCurrentIndex(ctx context.Context, index int) error {
	return s.set(ctx, CurrentIndexKey, strconv.Itoa(index))
}

// Reset removes the progress map and the current index and waits until the
// adapter has done so.
func (s *Store) Reset(ctx context.Context) error {
	for _, key := range []string{ProgressKey, CurrentIndexKey} {
		if _, err := s.call(ctx, op{kind: opRemove, key: key}, s.saveTimeout); err != nil {
			log.Printf("Error resetting progress: %v", err)
			return fmt.Errorf("failed to remove %s: %w", key, err)
		}
	}
	return nil
}

// Flush waits until every queued write has reached the adapter
func (s *Store) Flush(ctx context.Context) error {
	_, err := s.call(ctx, op{kind: opFlush}, s.saveTimeout)
	return err
}

// Close flushes pending writes and stops the worker
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.ops)
	s.mu.Unlock()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
