// Package seed genera y persiste el juego de datos de ejemplo: clientes,
// productos y ventas aleatorias con forma determinista.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/boutique-analytics/internal/domain"
	"github.com/jhoicas/boutique-analytics/internal/domain/entity"
	"github.com/jhoicas/boutique-analytics/internal/domain/repository"
	"github.com/jhoicas/boutique-analytics/pkg/logger"
)

// Options parámetros de generación.
type Options struct {
	Transactions int
	MaxDaysBack  int   // fechas en [hoy - MaxDaysBack, hoy - 1]
	MaxQuantity  int   // cantidades en [1, MaxQuantity]
	RandomSeed   int64 // 0 = semilla basada en la hora
	Reset        bool
	Regions      []string // catálogo de regiones válidas
}

// Summary resultado de una ejecución.
type Summary struct {
	Customers    int
	Products     int
	Transactions int
	Revenue      decimal.Decimal
}

// Loader caso de uso de sembrado.
type Loader struct {
	repo      repository.SeedRepository
	customers []CustomerTemplate
	products  []ProductTemplate
	opts      Options
	log       *logger.Logger
	now       func() time.Time
	newID     func() string
}

// NewLoader construye el cargador con los catálogos por defecto.
func NewLoader(repo repository.SeedRepository, opts Options, log *logger.Logger) *Loader {
	return &Loader{
		repo:      repo,
		customers: DefaultCustomers(),
		products:  DefaultProducts(),
		opts:      opts,
		log:       log,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// WithCatalog reemplaza los catálogos de clientes y productos.
func (l *Loader) WithCatalog(customers []CustomerTemplate, products []ProductTemplate) *Loader {
	l.customers = customers
	l.products = products
	return l
}

// WithClock fija el reloj (tests).
func (l *Loader) WithClock(now func() time.Time) *Loader {
	l.now = now
	return l
}

// WithIDGenerator reemplaza el generador de identificadores (tests).
func (l *Loader) WithIDGenerator(newID func() string) *Loader {
	l.newID = newID
	return l
}

// Run crea el esquema, opcionalmente lo vacía, genera el lote y lo persiste.
func (l *Loader) Run(ctx context.Context) (*Summary, error) {
	customers, products, transactions, err := l.Generate()
	if err != nil {
		return nil, err
	}

	if err := l.repo.CreateSchema(ctx); err != nil {
		return nil, fmt.Errorf("seed: crear esquema: %w", err)
	}
	if l.opts.Reset {
		if err := l.repo.Reset(ctx); err != nil {
			return nil, fmt.Errorf("seed: vaciar tablas: %w", err)
		}
	}
	if err := l.repo.InsertAll(ctx, customers, products, transactions); err != nil {
		return nil, fmt.Errorf("seed: insertar datos: %w", err)
	}

	summary := &Summary{
		Customers:    len(customers),
		Products:     len(products),
		Transactions: len(transactions),
		Revenue:      decimal.Zero,
	}
	for _, t := range transactions {
		summary.Revenue = summary.Revenue.Add(t.TotalAmount)
	}
	l.log.Info().
		Int("customers", summary.Customers).
		Int("products", summary.Products).
		Int("transactions", summary.Transactions).
		Str("revenue", summary.Revenue.StringFixed(2)).
		Msg("datos de ejemplo cargados")
	return summary, nil
}

// Generate construye el lote en memoria sin tocar el almacén.
func (l *Loader) Generate() ([]entity.Customer, []entity.Product, []entity.Transaction, error) {
	if err := l.validate(); err != nil {
		return nil, nil, nil, err
	}

	ids := make(map[string]struct{})
	nextID := func() (string, error) {
		id := l.newID()
		if _, dup := ids[id]; dup {
			return "", fmt.Errorf("seed: identificador repetido %s: %w", id, domain.ErrDuplicate)
		}
		ids[id] = struct{}{}
		return id, nil
	}

	customers := make([]entity.Customer, 0, len(l.customers))
	for _, c := range l.customers {
		id, err := nextID()
		if err != nil {
			return nil, nil, nil, err
		}
		customers = append(customers, entity.Customer{
			ID: id, Name: c.Name, Email: c.Email, Region: c.Region,
			RegisteredAt: entity.CalendarDate(c.RegisteredAt),
		})
	}

	products := make([]entity.Product, 0, len(l.products))
	for _, p := range l.products {
		id, err := nextID()
		if err != nil {
			return nil, nil, nil, err
		}
		products = append(products, entity.Product{
			ID: id, Name: p.Name, Category: p.Category, Price: p.Price, Stock: p.Stock,
		})
	}

	rng := l.random()
	today := entity.CalendarDate(l.now())
	transactions := make([]entity.Transaction, 0, l.opts.Transactions)
	for i := 0; i < l.opts.Transactions; i++ {
		id, err := nextID()
		if err != nil {
			return nil, nil, nil, err
		}
		c := customers[rng.IntN(len(customers))]
		p := products[rng.IntN(len(products))]
		qty := 1 + rng.IntN(l.opts.MaxQuantity)
		daysBack := 1 + rng.IntN(l.opts.MaxDaysBack)

		transactions = append(transactions, entity.Transaction{
			ID:          id,
			CustomerID:  c.ID,
			ProductID:   p.ID,
			Quantity:    qty,
			Date:        today.AddDate(0, 0, -daysBack),
			TotalAmount: p.Price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	return customers, products, transactions, nil
}

func (l *Loader) validate() error {
	if len(l.customers) == 0 || len(l.products) == 0 {
		return fmt.Errorf("seed: catálogos vacíos: %w", domain.ErrInvalidInput)
	}
	if l.opts.MaxQuantity <= 0 || l.opts.MaxDaysBack <= 0 || l.opts.Transactions < 0 {
		return fmt.Errorf("seed: opciones inválidas: %w", domain.ErrInvalidInput)
	}
	valid := make(map[string]struct{}, len(l.opts.Regions))
	for _, r := range l.opts.Regions {
		valid[r] = struct{}{}
	}
	for _, c := range l.customers {
		if _, ok := valid[c.Region]; !ok {
			return fmt.Errorf("seed: región %q de %s fuera del catálogo: %w", c.Region, c.Name, domain.ErrInvalidInput)
		}
	}
	for _, p := range l.products {
		if !p.Price.IsPositive() || p.Stock < 0 {
			return fmt.Errorf("seed: producto %s con precio o stock inválido: %w", p.Name, domain.ErrInvalidInput)
		}
	}
	return nil
}

func (l *Loader) random() *rand.Rand {
	seed := uint64(l.opts.RandomSeed)
	if seed == 0 {
		seed = uint64(l.now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}
