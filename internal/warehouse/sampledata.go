package warehouse

import "github.com/samber/lo"

// SeedSampleData loads the documented example dataset: three customers,
// three products and three sales in January 2024.
func (w *Warehouse) SeedSampleData() error {
	customers := []Customer{
		{CustomerID: 1001, Name: "William White", Region: lo.ToPtr("East"), JoinDate: lo.ToPtr("2021-11-11")},
		{CustomerID: 1002, Name: "Wylie Coyote", Region: lo.ToPtr("East"), JoinDate: lo.ToPtr("2023-02-14")},
		{CustomerID: 1003, Name: "Dan Brown", Region: lo.ToPtr("West"), JoinDate: lo.ToPtr("2023-10-19")},
	}

	products := []Product{
		{ProductID: 101, ProductName: "laptop", Category: lo.ToPtr("Electronics"), UnitPriceUSD: 793.12},
		{ProductID: 102, ProductName: "hoodie", Category: lo.ToPtr("Clothing"), UnitPriceUSD: 39.10},
		{ProductID: 103, ProductName: "cable", Category: lo.ToPtr("Electronics"), UnitPriceUSD: 22.76},
	}

	sales := []Sale{
		{TransactionID: 550, SaleDate: lo.ToPtr("2024-01-06"), CustomerID: lo.ToPtr(1001), ProductID: lo.ToPtr(101), SaleAmountUSD: 6344.96, PaymentType: lo.ToPtr("credit")},
		{TransactionID: 551, SaleDate: lo.ToPtr("2024-01-06"), CustomerID: lo.ToPtr(1002), ProductID: lo.ToPtr(102), SaleAmountUSD: 312.80, PaymentType: lo.ToPtr("debit")},
		{TransactionID: 552, SaleDate: lo.ToPtr("2024-01-16"), CustomerID: lo.ToPtr(1003), ProductID: lo.ToPtr(103), SaleAmountUSD: 431.00, PaymentType: lo.ToPtr("credit")},
	}

	return w.Seed(customers, products, sales)
}
