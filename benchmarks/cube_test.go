package benchmarks

import (
	"fmt"
	"testing"

	"smartsales/internal"
	"smartsales/specs"
)

// generateSaleRecords builds a synthetic sale fact set spread over the
// given number of products and days, so group counts scale with both.
func generateSaleRecords(count int) []specs.FactRecordSpec {
	records := make([]specs.FactRecordSpec, count)
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("%d", 1000+i)
		records[i] = specs.FactRecordSpec{
			ID: id,
			Attributes: map[string]string{
				"transaction_id": id,
				"sale_date":      fmt.Sprintf("2024-01-%02d", i%28+1),
				"customer_id":    fmt.Sprintf("%d", 1001+i%50),
				"product_id":     fmt.Sprintf("%d", 101+i%10),
				"payment_type":   []string{"credit", "debit", "cash"}[i%3],
			},
			Measures: map[string]string{
				"sale_amount_usd":  fmt.Sprintf("%d.%02d", 10+i%990, i%100),
				"discount_percent": fmt.Sprintf("0.%02d", i%30),
			},
		}
	}
	return records
}

func benchmarkConfig() specs.CubeConfigSpec {
	return specs.CubeConfigSpec{
		Dimensions: []string{"DayOfWeek", "product_id"},
		Metrics: []specs.MetricSpec{
			{Column: "sale_amount_usd", Functions: []string{"sum", "mean", "min", "max"}},
			{Column: "transaction_id", Functions: []string{"count"}},
		},
	}
}

// Benchmark the full cube build at increasing record counts
func BenchmarkBuildCube(b *testing.B) {
	for _, count := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprintf("records_%d", count), func(b *testing.B) {
			records, err := internal.DeriveCalendar(generateSaleRecords(count), "sale_date")
			if err != nil {
				b.Fatal(err)
			}
			config := benchmarkConfig()

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				_, err := internal.BuildCube(records, config)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Benchmark calendar dimension derivation on its own
func BenchmarkDeriveCalendar(b *testing.B) {
	for _, count := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprintf("records_%d", count), func(b *testing.B) {
			records := generateSaleRecords(count)

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				_, err := internal.DeriveCalendar(records, "sale_date")
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
