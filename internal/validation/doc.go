// Package validation holds the pure predicates and sanitizers applied to raw
// credentials before they reach the auth service.
//
// Validators answer yes/no questions about a raw string (Required,
// IsValidEmail, IsStrongEnoughPassword). Sanitizers rewrite a raw string into
// its storable form (SanitizeName, SanitizeEmail). None of the functions here
// touch storage or return errors.
package validation
