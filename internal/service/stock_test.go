package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"boardcamp-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRentalRepo is an in-memory gateway honoring the same contract as
// the postgres implementation: the count-vs-stock check and the insert
// are one atomic unit. Used to exercise the admission gate under real
// goroutine contention.
type memRentalRepo struct {
	MockRentalRepo

	mu         sync.Mutex
	stockTotal int32
	nextID     int32
	rentals    map[int32]*domain.Rental
}

func newMemRentalRepo(stockTotal int32) *memRentalRepo {
	return &memRentalRepo{
		stockTotal: stockTotal,
		nextID:     1,
		rentals:    make(map[int32]*domain.Rental),
	}
}

func (r *memRentalRepo) Create(_ context.Context, rental *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var active int32
	for _, rt := range r.rentals {
		if rt.GameID == rental.GameID && !rt.Returned() {
			active++
		}
	}
	if active >= r.stockTotal {
		return domain.ErrStockExhausted
	}

	rental.ID = r.nextID
	r.nextID++
	cp := *rental
	r.rentals[rental.ID] = &cp
	return nil
}

func (r *memRentalRepo) CountActive(_ context.Context, gameID int32) (int32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var active int32
	for _, rt := range r.rentals {
		if rt.GameID == gameID && !rt.Returned() {
			active++
		}
	}
	return active, nil
}

func TestStockLedger_ActiveCount(t *testing.T) {
	ctx := context.Background()
	repo := newMemRentalRepo(3)
	ledger := NewStockLedger(repo)

	count, err := ledger.ActiveCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(0), count)

	require.NoError(t, ledger.Reserve(ctx, &domain.Rental{GameID: 1, CustomerID: 1, RentDate: "2024-01-01", DaysRented: 3}))

	count, err = ledger.ActiveCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(1), count)
}

func TestStockLedger_ReserveRefusesBeyondStock(t *testing.T) {
	ctx := context.Background()
	repo := newMemRentalRepo(2)
	ledger := NewStockLedger(repo)

	require.NoError(t, ledger.Reserve(ctx, &domain.Rental{GameID: 1, CustomerID: 1, RentDate: "2024-01-01", DaysRented: 3}))
	require.NoError(t, ledger.Reserve(ctx, &domain.Rental{GameID: 1, CustomerID: 2, RentDate: "2024-01-01", DaysRented: 3}))

	err := ledger.Reserve(ctx, &domain.Rental{GameID: 1, CustomerID: 3, RentDate: "2024-01-01", DaysRented: 3})
	assert.ErrorIs(t, err, domain.ErrStockExhausted)
}

// The admission gate must hold under concurrent creations: with stock 3
// and 50 racing requests, exactly 3 may win and the active count never
// exceeds the stock.
func TestRentalService_ConcurrentCreationRespectsStock(t *testing.T) {
	ctx := context.Background()
	const stock = 3
	const attempts = 50

	repo := newMemRentalRepo(stock)
	gameRepo := new(MockGameRepo)
	customerRepo := new(MockCustomerRepo)
	svc := NewRentalService(repo, gameRepo, customerRepo)

	game := &domain.Game{ID: 1, Name: "Catan", StockTotal: stock, PricePerDayCents: 1500}
	gameRepo.On("GetByID", ctx, int32(1)).Return(game, nil)
	customerRepo.On("GetByID", ctx, int32(1)).Return(&domain.Customer{ID: 1, Name: "Joana"}, nil)

	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, 1, 1, 3, "2024-01-01")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var won, refused int
	for err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, domain.ErrStockExhausted):
			refused++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, stock, won)
	assert.Equal(t, attempts-stock, refused)

	active, err := repo.CountActive(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(stock), active)
}
