package warehouse

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cast"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"smartsales/internal"
	"smartsales/specs"
)

// idColumn is the sale table's primary key; its value becomes the fact
// record identifier and is also kept as an attribute so count metrics can
// reference it by column name.
const idColumn = "transaction_id"

// measureColumns are the sale table's numeric metric columns. Everything
// else on the row is a categorical attribute.
var measureColumns = map[string]bool{
	"sale_amount_usd":  true,
	"discount_percent": true,
}

// Warehouse is the source adapter over the SQLite data warehouse.
type Warehouse struct {
	db     *gorm.DB
	logger *slog.Logger
}

// Open connects to the data warehouse at the given path. Use ":memory:"
// for an in-memory database in tests.
func Open(path string, logger *slog.Logger) (*Warehouse, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: opening warehouse %s: %w", internal.ErrIngestion, path, err)
	}

	return &Warehouse{db: db, logger: logger}, nil
}

// CreateTables creates the customer, product and sale tables.
func (w *Warehouse) CreateTables() error {
	if err := w.db.AutoMigrate(&Customer{}, &Product{}, &Sale{}); err != nil {
		return fmt.Errorf("creating warehouse tables: %w", err)
	}
	w.logger.Info("warehouse tables created")
	return nil
}

// Seed inserts rows into the warehouse. Any argument may be empty.
func (w *Warehouse) Seed(customers []Customer, products []Product, sales []Sale) error {
	if len(customers) > 0 {
		if err := w.db.Create(&customers).Error; err != nil {
			return fmt.Errorf("seeding customer table: %w", err)
		}
	}
	if len(products) > 0 {
		if err := w.db.Create(&products).Error; err != nil {
			return fmt.Errorf("seeding product table: %w", err)
		}
	}
	if len(sales) > 0 {
		if err := w.db.Create(&sales).Error; err != nil {
			return fmt.Errorf("seeding sale table: %w", err)
		}
	}
	w.logger.Info("warehouse seeded",
		"customers", len(customers), "products", len(products), "sales", len(sales))
	return nil
}

// ReadFacts implements internal.FactSource: it reads the full sale table
// and returns it as an in-memory fact record set. Null columns are left
// out of the record's maps; null is meaningful downstream, not dropped.
func (w *Warehouse) ReadFacts() ([]specs.FactRecordSpec, error) {
	var rows []map[string]interface{}
	if err := w.db.Table("sale").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: reading sale table: %w", internal.ErrIngestion, err)
	}

	records := make([]specs.FactRecordSpec, 0, len(rows))
	for _, row := range rows {
		record, err := factRecordFromRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	w.logger.Info("sales data loaded from warehouse", "records", len(records))
	return records, nil
}

func factRecordFromRow(row map[string]interface{}) (specs.FactRecordSpec, error) {
	id, ok := row[idColumn]
	if !ok || id == nil {
		return specs.FactRecordSpec{}, fmt.Errorf("%w: sale row has no %s", internal.ErrIngestion, idColumn)
	}

	record := specs.FactRecordSpec{
		ID:         stringify(id),
		Attributes: make(map[string]string),
		Measures:   make(map[string]string),
	}

	for column, value := range row {
		if value == nil {
			continue
		}
		if measureColumns[column] {
			record.Measures[column] = stringify(value)
		} else {
			record.Attributes[column] = stringify(value)
		}
	}

	return record, nil
}

// stringify renders a scanned warehouse value as the string the engine
// groups and parses on. Dates keep their ISO form rather than time.Time's
// default formatting.
func stringify(value interface{}) string {
	if t, ok := value.(time.Time); ok {
		return t.Format("2006-01-02")
	}
	return cast.ToString(value)
}
