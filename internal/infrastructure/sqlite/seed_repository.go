package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/jhoicas/boutique-analytics/internal/domain/entity"
	"github.com/jhoicas/boutique-analytics/internal/domain/repository"
)

var _ repository.SeedRepository = (*SeedRepo)(nil)

const insertBatchSize = 100

// SeedRepo escritura del juego de datos de ejemplo sobre SQLite.
type SeedRepo struct {
	db *gorm.DB
}

// NewSeedRepository construye el adaptador.
func NewSeedRepository(db *gorm.DB) *SeedRepo {
	return &SeedRepo{db: db}
}

// CreateSchema crea las tablas a partir de los modelos (AutoMigrate).
func (r *SeedRepo) CreateSchema(ctx context.Context) error {
	err := r.db.WithContext(ctx).AutoMigrate(&CustomerModel{}, &ProductModel{}, &TransactionModel{})
	return classify("sqlite.CreateSchema", err)
}

// Reset vacía las tablas respetando las claves foráneas.
func (r *SeedRepo) Reset(ctx context.Context) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{&TransactionModel{}, &CustomerModel{}, &ProductModel{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return classify("sqlite.Reset", err)
}

// InsertAll inserta el lote completo en una transacción.
func (r *SeedRepo) InsertAll(
	ctx context.Context,
	customers []entity.Customer,
	products []entity.Product,
	transactions []entity.Transaction,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cs := make([]CustomerModel, 0, len(customers))
		for _, c := range customers {
			cs = append(cs, customerModel(c))
		}
		ps := make([]ProductModel, 0, len(products))
		for _, p := range products {
			ps = append(ps, productModel(p))
		}
		ts := make([]TransactionModel, 0, len(transactions))
		for _, t := range transactions {
			ts = append(ts, transactionModel(t))
		}

		if len(cs) > 0 {
			if err := tx.CreateInBatches(cs, insertBatchSize).Error; err != nil {
				return err
			}
		}
		if len(ps) > 0 {
			if err := tx.CreateInBatches(ps, insertBatchSize).Error; err != nil {
				return err
			}
		}
		if len(ts) > 0 {
			// Omit evita que gorm intente upsert de las asociaciones vacías.
			if err := tx.Omit("Customer", "Product").CreateInBatches(ts, insertBatchSize).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return classify("sqlite.InsertAll", err)
}
