package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCustomerStatisticsCanonicalNames(t *testing.T) {
	raw := map[string]any{
		"totalCustomers":              float64(50),
		"activeCustomers":             float64(40),
		"inactiveCustomers":           float64(10),
		"customersCreatedThisMonth":   float64(5),
		"customersCreatedThisWeek":    float64(2),
		"averageAddressesPerCustomer": 1.2,
	}

	stats, err := mapCustomerStatistics(jmespathLibEvaluator{}, raw)
	require.NoError(t, err)
	assert.Equal(t, int64(50), stats.Total)
	assert.Equal(t, int64(40), stats.Active)
	assert.Equal(t, int64(10), stats.Inactive)
	assert.Equal(t, int64(5), stats.CreatedThisMonth)
	assert.Equal(t, int64(2), stats.CreatedThisWeek)
	assert.Equal(t, 1.2, stats.AverageAddressesPerCustomer)
}

func TestMapCustomerStatisticsVariantTotal(t *testing.T) {
	raw := map[string]any{
		"managedCustomers": float64(30),
		"activeCustomers":  float64(25),
	}

	stats, err := mapCustomerStatistics(jmespathLibEvaluator{}, raw)
	require.NoError(t, err)
	assert.Equal(t, int64(30), stats.Total)
	assert.Equal(t, int64(5), stats.Inactive, "inactive derives from total minus active")
}

func TestMapCustomerStatisticsAbsentCountersReadZero(t *testing.T) {
	stats, err := mapCustomerStatistics(jmespathLibEvaluator{}, map[string]any{})
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.AverageAddressesPerCustomer)
}

func TestMapCustomerStatisticsRejectsNonNumeric(t *testing.T) {
	raw := map[string]any{"totalCustomers": "many"}

	_, err := mapCustomerStatistics(jmespathLibEvaluator{}, raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-numeric")
}

func TestMapUserStatisticsVariantAdminNames(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{
			"long names",
			map[string]any{
				"totalUsers":      float64(10),
				"activeUsers":     float64(9),
				"adminUsers":      float64(7),
				"superAdminUsers": float64(2),
			},
		},
		{
			"short names",
			map[string]any{
				"totalUsers":  float64(10),
				"activeUsers": float64(9),
				"admins":      float64(7),
				"superAdmins": float64(2),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := mapUserStatistics(jmespathLibEvaluator{}, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, int64(7), stats.Admins)
			assert.Equal(t, int64(2), stats.SuperAdmins)
			assert.Equal(t, int64(1), stats.Inactive)
		})
	}
}

func TestDeriveInactive(t *testing.T) {
	tests := []struct {
		name                    string
		total, active, reported int64
		want                    int64
	}{
		{"omitted counter derives", 50, 40, 0, 10},
		{"reported counter wins", 50, 40, 7, 7},
		{"all active stays zero", 50, 50, 0, 0},
		{"empty payload stays zero", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveInactive(tt.total, tt.active, tt.reported))
		})
	}
}

func TestMapUserStatisticsExplicitInactiveWins(t *testing.T) {
	raw := map[string]any{
		"totalUsers":    float64(10),
		"activeUsers":   float64(6),
		"inactiveUsers": float64(3), // trusted even though total-active differs
	}

	stats, err := mapUserStatistics(jmespathLibEvaluator{}, raw)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Inactive)
}
