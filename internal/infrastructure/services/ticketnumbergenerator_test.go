package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/domain/ticket"
	vo "github.com/orris-inc/setracker/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/testutil"
	"github.com/orris-inc/setracker/internal/infrastructure/repository"
	"github.com/orris-inc/setracker/internal/shared/db"
)

type numberFixture struct {
	ctx       context.Context
	db        *gorm.DB
	tickets   *repository.TicketRepository
	projectID uint
	gen       *DatabaseNumberGenerator
}

func newNumberFixture(t *testing.T) *numberFixture {
	gdb := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	p, err := project.NewProject("Alpha", "")
	require.NoError(t, err)
	require.NoError(t, repository.NewProjectRepository(gdb).Create(ctx, p))

	tickets := repository.NewTicketRepository(gdb)
	return &numberFixture{
		ctx:       ctx,
		db:        gdb,
		tickets:   tickets,
		projectID: p.ID(),
		gen:       NewDatabaseNumberGenerator(gdb, "SE", tickets),
	}
}

func (f *numberFixture) insert(ctx context.Context, number string) error {
	tk, err := ticket.NewTicket("title", "body", vo.TypeTask, f.projectID, vo.PriorityLow, ticket.Reporter{
		Name:    "reporter",
		Contact: "reporter@example.com",
	})
	if err != nil {
		return err
	}
	if err := tk.AssignNumber(number); err != nil {
		return err
	}
	return f.tickets.Create(ctx, tk)
}

func TestDatabaseNumberGenerator_Sequential(t *testing.T) {
	f := newNumberFixture(t)

	for _, want := range []string{"SE-2024-001", "SE-2024-002", "SE-2024-003"} {
		got, err := f.gen.Next(f.ctx, 2024)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := f.gen.Next(f.ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, "SE-2025-001", got)
}

func TestDatabaseNumberGenerator_SeedsFromIssuedNumbers(t *testing.T) {
	f := newNumberFixture(t)
	require.NoError(t, f.insert(f.ctx, "SE-2024-009"))
	require.NoError(t, f.insert(f.ctx, "SE-2024-010"))
	require.NoError(t, f.insert(f.ctx, "SE-2023-500"))

	got, err := f.gen.Next(f.ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, "SE-2024-011", got)
}

func TestDatabaseNumberGenerator_ResyncsWhenBehind(t *testing.T) {
	f := newNumberFixture(t)

	first, err := f.gen.Next(f.ctx, 2024)
	require.NoError(t, err)
	require.Equal(t, "SE-2024-001", first)

	for _, n := range []string{"SE-2024-001", "SE-2024-002", "SE-2024-003"} {
		require.NoError(t, f.insert(f.ctx, n))
	}

	got, err := f.gen.Next(f.ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, "SE-2024-004", got)

	got, err = f.gen.Next(f.ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, "SE-2024-005", got)
}

func TestDatabaseNumberGenerator_ConcurrentCreatesGetDistinctNumbers(t *testing.T) {
	f := newNumberFixture(t)
	txManager := db.NewTransactionManager(f.db)

	const workers = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers []string
		errs    []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var number string
			err := txManager.RunInTransaction(f.ctx, func(txCtx context.Context) error {
				n, err := f.gen.Next(txCtx, 2024)
				if err != nil {
					return err
				}
				number = n
				return f.insert(txCtx, n)
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			numbers = append(numbers, number)
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	require.Len(t, numbers, workers)
	seen := make(map[string]struct{}, workers)
	for _, n := range numbers {
		_, dup := seen[n]
		assert.False(t, dup, "duplicate number %s", n)
		seen[n] = struct{}{}
	}

	issued, err := f.tickets.NumbersForYear(f.ctx, "SE", 2024)
	require.NoError(t, err)
	assert.Len(t, issued, workers)
	assert.Equal(t, int64(workers), ticket.MaxSequence(issued, "SE", 2024))
}
