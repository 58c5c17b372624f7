// Package validation provides struct validation using go-playground/validator.
//
// Configuration structs declare constraints with `validate` tags and call
// validation.Validate before use:
//
//	type Config struct {
//	    AuthServerURL string `validate:"required,url"`
//	    Realm         string `validate:"required"`
//	}
//
//	if err := validation.Validate(cfg); err != nil { ... }
package validation
