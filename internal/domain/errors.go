package domain

import "errors"

// Validation and authorization failures surfaced to the invoking user/admin
// as explicit rejections. Transport failures never appear here: they are
// logged at the call site and swallowed. Store failures wrap the driver error
// and abort the current operation only.
var (
	ErrNotAuthorized   = errors.New("not authorized")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrPlanNotFound    = errors.New("plan not found")
	ErrAlreadyDecided  = errors.New("payment already decided")
	ErrNoPlanSelected  = errors.New("no plan selected")
)
