package warehouse

// Data warehouse tables. The sale fact table references the customer and
// product dimension tables; foreign-key columns on sale are nullable so
// facts with unknown references still land in the warehouse.

type Customer struct {
	CustomerID       int     `gorm:"column:customer_id;primaryKey"`
	Name             string  `gorm:"column:name;not null"`
	Region           *string `gorm:"column:region"`
	JoinDate         *string `gorm:"column:join_date"` // ISO 8601
	Age              *int    `gorm:"column:age"`
	PreferredContact *string `gorm:"column:preferred_contact"`
}

func (Customer) TableName() string { return "customer" }

type Product struct {
	ProductID    int     `gorm:"column:product_id;primaryKey"`
	ProductName  string  `gorm:"column:product_name;not null"`
	Category     *string `gorm:"column:category"`
	UnitPriceUSD float64 `gorm:"column:unit_price_usd;not null"`
	Stock        *int    `gorm:"column:stock"`
	Supplier     *string `gorm:"column:supplier"`
}

func (Product) TableName() string { return "product" }

type Sale struct {
	TransactionID   int      `gorm:"column:transaction_id;primaryKey"`
	SaleDate        *string  `gorm:"column:sale_date"` // ISO 8601
	CustomerID      *int     `gorm:"column:customer_id"`
	ProductID       *int     `gorm:"column:product_id"`
	StoreID         *int     `gorm:"column:store_id"`
	CampaignID      *int     `gorm:"column:campaign_id"`
	SaleAmountUSD   float64  `gorm:"column:sale_amount_usd;not null"`
	DiscountPercent *float64 `gorm:"column:discount_percent"`
	PaymentType     *string  `gorm:"column:payment_type"`
}

func (Sale) TableName() string { return "sale" }
