package xerrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ParsePGErrorCode extracts the Postgres error code from a pgx error,
// e.g. 23505 for unique_violation.
func ParsePGErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return "unknown"
}

// Generic
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input provided")
)

// Registration / Login
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrInvalidUserType    = errors.New("invalid user type")
	ErrUserNotVerified    = errors.New("user not verified")

	ErrEmailRequired    = errors.New("email required")
	ErrPasswordRequired = errors.New("password required")
	ErrNameRequired     = errors.New("name required")
)

// Sessions
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrInvalidToken    = errors.New("invalid token")
)

// Projects
var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrTitleRequired       = errors.New("project title required")
	ErrInvalidSector       = errors.New("invalid project sector")
	ErrInvalidContractType = errors.New("invalid contract type")
	ErrFundingGoalTooLow   = errors.New("funding goal below platform minimum")
	ErrInvalidStatusChange = errors.New("invalid project status transition")
	ErrProjectNotEditable  = errors.New("only draft projects can be modified")
	ErrProjectNotApproved  = errors.New("project is not open for investment")
	ErrNotProjectOwner     = errors.New("not the project owner")
)

// Investments
var (
	ErrInvestmentNotFound    = errors.New("investment not found")
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrFundingExceeded       = errors.New("investment exceeds remaining funding capacity")
	ErrInvestmentNotPending  = errors.New("investment is not pending")
	ErrInvestmentNotAccepted = errors.New("investment is not accepted")
)

// Wallet
var (
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrWalletExists      = errors.New("wallet already exists for user")
)

// Messaging
var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("not a conversation participant")
	ErrEmptyMessage         = errors.New("message content required")
	ErrSelfConversation     = errors.New("cannot start a conversation with yourself")
)

// Consulting
var (
	ErrServiceNotFound        = errors.New("service not found")
	ErrServiceRequestNotFound = errors.New("service request not found")
	ErrRequestNotPending      = errors.New("service request is not pending")
	ErrNotServiceConsultant   = errors.New("not the service consultant")
)
