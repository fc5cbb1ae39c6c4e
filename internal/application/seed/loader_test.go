package seed_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-analytics/internal/application/seed"
	"github.com/jhoicas/boutique-analytics/internal/domain"
	"github.com/jhoicas/boutique-analytics/internal/domain/entity"
	"github.com/jhoicas/boutique-analytics/pkg/logger"
)

// ── fake ──────────────────────────────────────────────────────────────────────

type fakeSeedRepo struct {
	calls        []string
	customers    []entity.Customer
	products     []entity.Product
	transactions []entity.Transaction
	insertErr    error
}

func (f *fakeSeedRepo) CreateSchema(context.Context) error {
	f.calls = append(f.calls, "schema")
	return nil
}

func (f *fakeSeedRepo) Reset(context.Context) error {
	f.calls = append(f.calls, "reset")
	return nil
}

func (f *fakeSeedRepo) InsertAll(_ context.Context, c []entity.Customer, p []entity.Product, t []entity.Transaction) error {
	f.calls = append(f.calls, "insert")
	if f.insertErr != nil {
		return f.insertErr
	}
	f.customers, f.products, f.transactions = c, p, t
	return nil
}

var fixedNow = time.Date(2024, 7, 1, 15, 4, 5, 0, time.UTC)

func regions() []string {
	return []string{"Alger", "Oran", "Constantine", "Annaba", "Blida", "Batna", "Sétif", "Tlemcen"}
}

func newLoader(repo *fakeSeedRepo, opts seed.Options) *seed.Loader {
	if opts.Regions == nil {
		opts.Regions = regions()
	}
	return seed.NewLoader(repo, opts, logger.Nop()).WithClock(func() time.Time { return fixedNow })
}

func defaultOpts() seed.Options {
	return seed.Options{Transactions: 50, MaxDaysBack: 180, MaxQuantity: 5, RandomSeed: 42}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestRun_PersisteLoteCompleto(t *testing.T) {
	repo := &fakeSeedRepo{}
	summary, err := newLoader(repo, defaultOpts()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"schema", "insert"}, repo.calls, "sin Reset no se vacían tablas")
	assert.Equal(t, 8, summary.Customers)
	assert.Equal(t, 10, summary.Products)
	assert.Equal(t, 50, summary.Transactions)
	assert.Len(t, repo.transactions, 50)

	total := decimal.Zero
	for _, tx := range repo.transactions {
		total = total.Add(tx.TotalAmount)
	}
	assert.True(t, total.Equal(summary.Revenue))
}

func TestRun_ResetAntesDeInsertar(t *testing.T) {
	repo := &fakeSeedRepo{}
	opts := defaultOpts()
	opts.Reset = true
	_, err := newLoader(repo, opts).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"schema", "reset", "insert"}, repo.calls)
}

func TestRun_PropagaErrorDeInsercion(t *testing.T) {
	repo := &fakeSeedRepo{insertErr: domain.ErrStoreUnavailable}
	_, err := newLoader(repo, defaultOpts()).Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

// TestGenerate_Invariantes: total = cantidad × precio, referencias válidas,
// cantidades y fechas dentro de los rangos configurados.
func TestGenerate_Invariantes(t *testing.T) {
	customers, products, transactions, err := newLoader(&fakeSeedRepo{}, defaultOpts()).Generate()
	require.NoError(t, err)

	byCustomer := make(map[string]entity.Customer)
	for _, c := range customers {
		byCustomer[c.ID] = c
	}
	byProduct := make(map[string]entity.Product)
	for _, p := range products {
		byProduct[p.ID] = p
	}

	today := entity.CalendarDate(fixedNow)
	for _, tx := range transactions {
		p, ok := byProduct[tx.ProductID]
		require.True(t, ok, "la venta debe referenciar un producto existente")
		_, ok = byCustomer[tx.CustomerID]
		require.True(t, ok, "la venta debe referenciar un cliente existente")

		assert.GreaterOrEqual(t, tx.Quantity, 1)
		assert.LessOrEqual(t, tx.Quantity, 5)
		assert.True(t, p.Price.Mul(decimal.NewFromInt(int64(tx.Quantity))).Equal(tx.TotalAmount))
		assert.True(t, tx.Date.Before(today))
		assert.False(t, tx.Date.Before(today.AddDate(0, 0, -180)))
	}
}

func TestGenerate_IdentificadoresUnicos(t *testing.T) {
	customers, products, transactions, err := newLoader(&fakeSeedRepo{}, defaultOpts()).Generate()
	require.NoError(t, err)

	seen := make(map[string]bool)
	add := func(id string) {
		assert.False(t, seen[id], "id repetido %s", id)
		seen[id] = true
	}
	for _, c := range customers {
		add(c.ID)
	}
	for _, p := range products {
		add(p.ID)
	}
	for _, tx := range transactions {
		add(tx.ID)
	}
}

func TestGenerate_DetectaColisionDeIdentificadores(t *testing.T) {
	n := 0
	loader := newLoader(&fakeSeedRepo{}, defaultOpts()).WithIDGenerator(func() string {
		n++
		if n > 3 {
			return "fixed"
		}
		return fmt.Sprintf("id-%d", n)
	})
	_, _, _, err := loader.Generate()
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestGenerate_MismaSemillaMismoLote(t *testing.T) {
	ids := func() func() string {
		n := 0
		return func() string { n++; return fmt.Sprintf("id-%03d", n) }
	}
	_, _, a, err := newLoader(&fakeSeedRepo{}, defaultOpts()).WithIDGenerator(ids()).Generate()
	require.NoError(t, err)
	_, _, b, err := newLoader(&fakeSeedRepo{}, defaultOpts()).WithIDGenerator(ids()).Generate()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_RegionFueraDelCatalogo(t *testing.T) {
	opts := defaultOpts()
	opts.Regions = []string{"Alger"}
	_, _, _, err := newLoader(&fakeSeedRepo{}, opts).Generate()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerate_ProductoConPrecioInvalido(t *testing.T) {
	loader := newLoader(&fakeSeedRepo{}, defaultOpts()).WithCatalog(
		seed.DefaultCustomers(),
		[]seed.ProductTemplate{{Name: "Gratis", Category: "Mode", Price: decimal.Zero, Stock: 1}},
	)
	_, _, _, err := loader.Generate()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
