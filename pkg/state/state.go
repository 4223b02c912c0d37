// Package state holds the client side view of transactions, budgets and
// categories and keeps it in sync with the API.
package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/budgetwise/backend/pkg/client"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds every remote call of the store.
const DefaultTimeout = 30 * time.Second

// Backend is the remote API the store synchronizes with.
// *client.Client implements it.
type Backend interface {
	Transactions(ctx context.Context, filter client.TransactionFilter) ([]client.Transaction, error)
	CreateTransaction(ctx context.Context, t client.TransactionEditable) (client.Transaction, error)
	UpdateTransaction(ctx context.Context, id uuid.UUID, patch client.TransactionPatch) (client.Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	Budgets(ctx context.Context) ([]client.Budget, error)
	UpsertBudget(ctx context.Context, b client.Budget) (client.Budget, error)
	Categories(ctx context.Context) ([]client.Category, error)
	CreateCategory(ctx context.Context, c client.CategoryCreate) (client.CategoryCreateResponse, error)
	DeleteCategory(ctx context.Context, value string) error
	Recommend(ctx context.Context, req client.RecommendationRequest) (client.RecommendationResponse, error)
}

// Phase is the lifecycle state of the store.
type Phase int

const (
	Uninitialized Phase = iota
	Loading
	Ready
	Failed
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Category is a category with its icon resolved.
type Category struct {
	Value     string
	Label     string
	Icon      Icon
	IsDefault bool
}

func newCategory(c client.Category) Category {
	return Category{
		Value:     c.Value,
		Label:     c.Label,
		Icon:      ResolveIcon(c.Icon),
		IsDefault: c.IsDefault,
	}
}

// Snapshot is the state at one point in time. Collections are nil until
// they have been loaded.
type Snapshot struct {
	Transactions      []client.Transaction
	Budgets           []client.Budget
	ExpenseCategories []Category
	IncomeCategories  []Category
	Loading           bool
	Err               error
	Phase             Phase
}

func initialSnapshot() Snapshot {
	return Snapshot{Loading: true}
}

func (s Snapshot) clone() Snapshot {
	s.Transactions = slices.Clone(s.Transactions)
	s.Budgets = slices.Clone(s.Budgets)
	s.ExpenseCategories = slices.Clone(s.ExpenseCategories)
	s.IncomeCategories = slices.Clone(s.IncomeCategories)
	return s
}

type Option func(*Store)

// WithTimeout sets the maximum duration of each remote call.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		s.timeout = d
	}
}

// Store owns the state. It is safe for concurrent use.
//
// The lock is never held during remote calls, concurrent mutations run in
// parallel and their results are merged in the order they complete.
type Store struct {
	backend Backend
	timeout time.Duration

	mu        sync.Mutex
	state     Snapshot
	listeners map[int]func(Snapshot)
	nextID    int
}

func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:   backend,
		timeout:   DefaultTimeout,
		state:     initialSnapshot(),
		listeners: map[int]func(Snapshot){},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn to be called with the new state after every load
// and every merged mutation. The returned function removes the listener.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// update applies fn to the state and notifies listeners afterwards.
func (s *Store) update(fn func(*Snapshot)) {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.state.clone()
	listeners := make([]func(Snapshot), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

func (s *Store) context(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// Load fetches all collections. Either all of them are replaced or, on
// any error, the state is reset and the error is recorded. It can be called
// again to reload everything. Listeners see the Loading phase before the
// result.
func (s *Store) Load(ctx context.Context) error {
	s.update(func(state *Snapshot) {
		state.Loading = true
		state.Phase = Loading
	})

	ctx, cancel := s.context(ctx)
	defer cancel()

	var (
		transactions []client.Transaction
		budgets      []client.Budget
		categories   []client.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		transactions, err = s.backend.Transactions(gctx, client.TransactionFilter{})
		return
	})
	g.Go(func() (err error) {
		budgets, err = s.backend.Budgets(gctx)
		return
	})
	g.Go(func() (err error) {
		categories, err = s.backend.Categories(gctx)
		return
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("loading data failed")

		s.update(func(state *Snapshot) {
			*state = initialSnapshot()
			state.Loading = false
			state.Err = err
			state.Phase = Failed
		})
		return err
	}

	expense := []Category{}
	income := []Category{}
	for _, c := range categories {
		switch c.Type {
		case client.TypeExpense:
			expense = append(expense, newCategory(c))
		case client.TypeIncome:
			income = append(income, newCategory(c))
		}
	}

	if transactions == nil {
		transactions = []client.Transaction{}
	}

	if budgets == nil {
		budgets = []client.Budget{}
	}

	s.update(func(state *Snapshot) {
		*state = Snapshot{
			Transactions:      transactions,
			Budgets:           budgets,
			ExpenseCategories: expense,
			IncomeCategories:  income,
			Phase:             Ready,
		}
	})

	return nil
}
