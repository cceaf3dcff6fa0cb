package auth

import "github.com/SYK3S999/tamweeli-sub001/internal/domain"

// DemoPassword is shared by all seeded demo accounts.
const DemoPassword = "tamweeli-demo"

// DemoEmail returns the seeded demo account address for a role.
func DemoEmail(t domain.UserType) string {
	switch t {
	case domain.UserTypeInvestor:
		return "demo.investor@tamweeli.dz"
	case domain.UserTypeProjectOwner:
		return "demo.owner@tamweeli.dz"
	case domain.UserTypeConsultant:
		return "demo.consultant@tamweeli.dz"
	case domain.UserTypeAdmin:
		return "demo.admin@tamweeli.dz"
	}
	return ""
}
