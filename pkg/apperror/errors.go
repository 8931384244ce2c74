package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Bet Validation (BET) ----

// Validation returns a BET_001 validation error with the given reason.
// A rejected wager mutates nothing and must not be retried unchanged.
func Validation(message string) *AppError {
	return New("BET_001", message, http.StatusBadRequest)
}

func ErrUnknownBetType(t string) *AppError {
	return New("BET_002", fmt.Sprintf("unknown bet type: %s", t), http.StatusBadRequest)
}

func ErrStakeLimitExceeded(maxStake int64) *AppError {
	return New("BET_003", fmt.Sprintf("stake exceeds table maximum of %d", maxStake), http.StatusUnprocessableEntity)
}

func ErrEmptySettlement() *AppError {
	return New("BET_004", "no wagers to settle", http.StatusBadRequest)
}

func ErrParseFailure(command string) *AppError {
	return New("BET_005", fmt.Sprintf("could not understand bet command: %q", command), http.StatusBadRequest)
}

// ---- Ledger (LEDGER) ----

func ErrInsufficientFunds() *AppError {
	return New("LEDGER_001", "Insufficient balance for stake", http.StatusPaymentRequired)
}

// ErrBalanceConflict signals the optimistic balance write lost a race and the
// retry also failed. The caller may retry the whole settlement.
func ErrBalanceConflict() *AppError {
	return New("LEDGER_002", "Balance changed concurrently, settlement aborted", http.StatusConflict)
}

// ErrPartialSettlement signals the balance write succeeded but wager
// persistence failed; the balance has been restored by a compensating write.
// The client can safely retry the whole batch.
func ErrPartialSettlement(err error) *AppError {
	return Wrap("LEDGER_003", "Settlement incomplete, balance restored", http.StatusInternalServerError, err)
}

// ---- Round Lifecycle (ROUND) ----

func ErrInvalidTransition(from string) *AppError {
	return New("ROUND_001", fmt.Sprintf("round in phase %s cannot be completed", from), http.StatusConflict)
}

func ErrRoundNotFound() *AppError {
	return New("ROUND_002", "round not found", http.StatusNotFound)
}

func ErrRoundClosed() *AppError {
	return New("ROUND_003", "betting is closed for this round", http.StatusConflict)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrNotFound(entity string) *AppError {
	return New("AUTH_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// ErrStorage wraps a persistent-store failure as a 5xx error.
// Idempotent reads are retried once at the repository layer before this
// surfaces; writes surface immediately.
func ErrStorage(err error) *AppError {
	return Wrap("SYS_001", "Internal storage error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_002 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_002", "Internal server error", http.StatusInternalServerError, err)
}
