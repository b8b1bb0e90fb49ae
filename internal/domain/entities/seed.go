package entities

import "time"

// InviteUserEmail is the service address given to users signed in through
// an invite reference.
const InviteUserEmail = "client@bengalwelding.co.uk"

// InviteUserFallbackName is used when the invited job carries no customer name.
const InviteUserFallbackName = "Valued Customer"

var cannedUsers = map[UserRole]User{
	UserRoleCustomer: {
		ID:     "u1",
		Name:   "John Doe Engineering",
		Email:  "john@doe-eng.com",
		Role:   UserRoleCustomer,
		Avatar: "https://picsum.photos/seed/john/100",
	},
	UserRoleAdmin: {
		ID:     "a1",
		Name:   "Admin Manager",
		Email:  "admin@bengalwelding.co.uk",
		Role:   UserRoleAdmin,
		Avatar: "https://picsum.photos/seed/admin/100",
	},
}

// CannedUser returns the fixed demo identity for role.
func CannedUser(role UserRole) (User, bool) {
	u, ok := cannedUsers[role]
	return u, ok
}

// DemoJobs returns the jobs a fresh store is seeded with. The second job's
// warranty ends 45 days after now.
func DemoJobs(now time.Time) []Job {
	return []Job{
		{
			ID:              "j1",
			Title:           "Commercial Kitchen Installation",
			Description:     "Full installation of extraction system and stainless steel worktops.",
			CustomerID:      "u1",
			CustomerName:    "John Doe Engineering",
			CustomerEmail:   "john@doe-eng.com",
			Status:          JobStatusInProgress,
			StartDate:       "2024-01-15",
			WarrantyEndDate: "2026-01-15",
			PaymentStatus:   PaymentStatusPaid,
			Amount:          1250,
		},
		{
			ID:              "j2",
			Title:           "Extraction Hood Maintenance",
			Description:     "Biannual grease cleaning and filter replacement.",
			CustomerID:      "u1",
			CustomerName:    "John Doe Engineering",
			CustomerEmail:   "john@doe-eng.com",
			Status:          JobStatusCompleted,
			StartDate:       "2024-05-10",
			WarrantyEndDate: now.AddDate(0, 0, 45).UTC().Format(time.DateOnly),
			PaymentStatus:   PaymentStatusPaid,
			Amount:          850,
		},
	}
}
