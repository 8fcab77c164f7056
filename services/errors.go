package services

import "errors"

// Sentinel errors the controllers translate to HTTP statuses. Not-found
// covers both "absent" and "owned by another user" on purpose: callers must
// not be able to probe for other tenants' resource ids.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrMealNotFound       = errors.New("meal not found")
	ErrMealLogNotFound    = errors.New("meal log not found")
	ErrIngredientNotFound = errors.New("ingredient not found")

	ErrIngredientInUse = errors.New("ingredient is in use; remove it from meals first or use force=true")

	ErrDuplicateIngredient        = errors.New("duplicate ingredient ids are not allowed")
	ErrInvalidIngredientReference = errors.New("invalid ingredient_id in request")
)
