package service

// Statistics payloads arrive with inconsistent field names between backend
// versions (e.g. managedCustomers vs totalCustomers, admins vs adminUsers).
// Mapping into a single canonical schema happens here, at the service
// boundary, through an explicit JMESPath expression table rather than
// implicit fallback chains scattered across callers.

import (
	"fmt"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/criseulises/customer-admin-go/internal/domain/model"
)

// StatisticsEvaluator evaluates a mapping expression against a raw payload.
type StatisticsEvaluator interface {
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements StatisticsEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// Field expressions. `||` selects the first non-null name variant.
var customerStatsExprs = struct {
	total, active, inactive, month, week, avgAddresses string
}{
	total:        "totalCustomers || managedCustomers",
	active:       "activeCustomers",
	inactive:     "inactiveCustomers",
	month:        "customersCreatedThisMonth",
	week:         "customersCreatedThisWeek",
	avgAddresses: "averageAddressesPerCustomer",
}

var userStatsExprs = struct {
	total, active, inactive, admins, superAdmins, month, week string
}{
	total:       "totalUsers",
	active:      "activeUsers",
	inactive:    "inactiveUsers",
	admins:      "adminUsers || admins",
	superAdmins: "superAdminUsers || superAdmins",
	month:       "usersCreatedThisMonth",
	week:        "usersCreatedThisWeek",
}

func mapCustomerStatistics(eval StatisticsEvaluator, raw map[string]any) (*model.CustomerStatistics, error) {
	var stats model.CustomerStatistics
	var err error

	if stats.Total, err = evalInt(eval, customerStatsExprs.total, raw); err != nil {
		return nil, err
	}
	if stats.Active, err = evalInt(eval, customerStatsExprs.active, raw); err != nil {
		return nil, err
	}
	if stats.Inactive, err = evalInt(eval, customerStatsExprs.inactive, raw); err != nil {
		return nil, err
	}
	if stats.CreatedThisMonth, err = evalInt(eval, customerStatsExprs.month, raw); err != nil {
		return nil, err
	}
	if stats.CreatedThisWeek, err = evalInt(eval, customerStatsExprs.week, raw); err != nil {
		return nil, err
	}
	if stats.AverageAddressesPerCustomer, err = evalFloat(eval, customerStatsExprs.avgAddresses, raw); err != nil {
		return nil, err
	}

	stats.Inactive = deriveInactive(stats.Total, stats.Active, stats.Inactive)

	return &stats, nil
}

func mapUserStatistics(eval StatisticsEvaluator, raw map[string]any) (*model.UserStatistics, error) {
	var stats model.UserStatistics
	var err error

	if stats.Total, err = evalInt(eval, userStatsExprs.total, raw); err != nil {
		return nil, err
	}
	if stats.Active, err = evalInt(eval, userStatsExprs.active, raw); err != nil {
		return nil, err
	}
	if stats.Inactive, err = evalInt(eval, userStatsExprs.inactive, raw); err != nil {
		return nil, err
	}
	if stats.Admins, err = evalInt(eval, userStatsExprs.admins, raw); err != nil {
		return nil, err
	}
	if stats.SuperAdmins, err = evalInt(eval, userStatsExprs.superAdmins, raw); err != nil {
		return nil, err
	}
	if stats.CreatedThisMonth, err = evalInt(eval, userStatsExprs.month, raw); err != nil {
		return nil, err
	}
	if stats.CreatedThisWeek, err = evalInt(eval, userStatsExprs.week, raw); err != nil {
		return nil, err
	}

	stats.Inactive = deriveInactive(stats.Total, stats.Active, stats.Inactive)

	return &stats, nil
}

// deriveInactive is the single post-expression rule shared by both mappers:
// older backends omit the inactive counter entirely, in which case it is
// total minus active. An explicitly reported counter always wins.
func deriveInactive(total, active, reported int64) int64 {
	if reported == 0 && total > active {
		return total - active
	}
	return reported
}

func evalInt(eval StatisticsEvaluator, expr string, raw map[string]any) (int64, error) {
	f, err := evalFloat(eval, expr, raw)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

func evalFloat(eval StatisticsEvaluator, expr string, raw map[string]any) (float64, error) {
	v, err := eval.Evaluate(expr, raw)
	if err != nil {
		return 0, fmt.Errorf("evaluate statistics field %q: %w", expr, err)
	}
	switch n := v.(type) {
	case nil:
		return 0, nil // absent counters read as zero
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("statistics field %q has non-numeric value %T", expr, v)
	}
}
