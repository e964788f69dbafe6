package model

// Canonical statistics schemas. The backend reports some counters under
// more than one name; the service layer maps raw payloads into these
// structs so callers never see the naming drift.

// CustomerStatistics aggregates customer counters.
type CustomerStatistics struct {
	Total                       int64   `json:"totalCustomers"`
	Active                      int64   `json:"activeCustomers"`
	Inactive                    int64   `json:"inactiveCustomers"`
	CreatedThisMonth            int64   `json:"customersCreatedThisMonth"`
	CreatedThisWeek             int64   `json:"customersCreatedThisWeek"`
	AverageAddressesPerCustomer float64 `json:"averageAddressesPerCustomer"`
}

// UserStatistics aggregates administrator account counters.
type UserStatistics struct {
	Total            int64 `json:"totalUsers"`
	Active           int64 `json:"activeUsers"`
	Inactive         int64 `json:"inactiveUsers"`
	Admins           int64 `json:"adminUsers"`
	SuperAdmins      int64 `json:"superAdminUsers"`
	CreatedThisMonth int64 `json:"usersCreatedThisMonth"`
	CreatedThisWeek  int64 `json:"usersCreatedThisWeek"`
}
