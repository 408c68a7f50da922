package sink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartsales/internal"
	"smartsales/specs"
)

func testCube() specs.CubeSpec {
	return specs.CubeSpec{
		Columns: []string{"DayOfWeek", "product_id", "sale_amount_usd_sum", "sale_ids"},
		Rows: []specs.CubeRowSpec{
			{
				Dimensions: map[string]string{"DayOfWeek": "Saturday", "product_id": "101"},
				Values:     map[string]string{"sale_amount_usd_sum": "6344.96"},
				RecordIDs:  []string{"550"},
			},
			{
				Dimensions: map[string]string{"DayOfWeek": "Saturday"}, // null product_id
				Values:     map[string]string{"sale_amount_usd_sum": "743.80"},
				RecordIDs:  []string{"551", "552"},
			},
		},
	}
}

func TestWriteCube(t *testing.T) {
	t.Run("writes header and rows with traceability list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cube.csv")

		err := NewCSVSink(path, nil).WriteCube(testCube())

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)

		expected := "DayOfWeek,product_id,sale_amount_usd_sum,sale_ids\n" +
			"Saturday,101,6344.96,[550]\n" +
			"Saturday,,743.80,\"[551, 552]\"\n"
		assert.Equal(t, expected, string(data))
	})

	t.Run("creates missing output directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "olap_cubing_outputs", "cube.csv")

		err := NewCSVSink(path, nil).WriteCube(testCube())

		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("with unwritable target returns persistence error", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		err := NewCSVSink(filepath.Join(blocker, "sub", "cube.csv"), nil).WriteCube(testCube())

		require.ErrorIs(t, err, internal.ErrPersistence)
	})
}
