package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartsales/specs"
)

func TestNameColumns(t *testing.T) {
	t.Run("produces deterministic names for the documented example", func(t *testing.T) {
		config := specs.CubeConfigSpec{
			Dimensions: []string{"Quarter", "product_id"},
			Metrics: []specs.MetricSpec{
				{Column: "sale_amount_usd", Functions: []string{"sum", "mean"}},
				{Column: "transaction_id", Functions: []string{"count"}},
			},
		}

		names, err := NameColumns(config)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"Quarter",
			"product_id",
			"sale_amount_usd_sum",
			"sale_amount_usd_mean",
			"transaction_id_count",
			"sale_ids",
		}, names)
	})

	t.Run("keeps the function suffix for single-function metrics", func(t *testing.T) {
		config := specs.CubeConfigSpec{
			Dimensions: []string{"DayOfWeek"},
			Metrics:    []specs.MetricSpec{{Column: "sale_amount_usd", Functions: []string{"sum"}}},
		}

		names, err := NameColumns(config)

		require.NoError(t, err)
		assert.Equal(t, []string{"DayOfWeek", "sale_amount_usd_sum", "sale_ids"}, names)
	})

	t.Run("strips trailing separators left by an empty function name", func(t *testing.T) {
		config := specs.CubeConfigSpec{
			Dimensions: []string{"Quarter"},
			Metrics:    []specs.MetricSpec{{Column: "sale_amount_usd", Functions: []string{""}}},
		}

		names, err := NameColumns(config)

		require.NoError(t, err)
		assert.Equal(t, []string{"Quarter", "sale_amount_usd", "sale_ids"}, names)
	})

	t.Run("appends the traceability column last", func(t *testing.T) {
		config := specs.CubeConfigSpec{
			Dimensions: []string{"Quarter"},
			Metrics:    []specs.MetricSpec{{Column: "sale_amount_usd", Functions: []string{"sum"}}},
		}

		names, err := NameColumns(config)

		require.NoError(t, err)
		assert.Equal(t, specs.TraceabilityColumn, names[len(names)-1])
	})

	t.Run("with colliding metric names returns error", func(t *testing.T) {
		config := specs.CubeConfigSpec{
			Dimensions: []string{"Quarter"},
			Metrics: []specs.MetricSpec{
				{Column: "sale_amount", Functions: []string{"usd_sum"}},
				{Column: "sale_amount_usd", Functions: []string{"sum"}},
			},
		}

		_, err := NameColumns(config)

		require.ErrorIs(t, err, ErrConfiguration)
		assert.Contains(t, err.Error(), "sale_amount_usd_sum")
	})

	t.Run("with a dimension named like the traceability column returns error", func(t *testing.T) {
		config := specs.CubeConfigSpec{
			Dimensions: []string{"sale_ids"},
			Metrics:    []specs.MetricSpec{{Column: "sale_amount_usd", Functions: []string{"sum"}}},
		}

		_, err := NameColumns(config)

		require.ErrorIs(t, err, ErrConfiguration)
	})
}
