// Package errors provides classified error primitives used across sitecfg.
//
// A ClassifiedError carries a category, a severity and structured context.
// Errors are created through the fluent ErrorBuilder and presented to users by
// the CLIErrorAdapter, which also derives the process exit code.
//
// Example usage:
//
//	err := errors.ValidationError("nav entry has an empty label").
//		WithContext("field", "themeConfig.nav[1].text").
//		Build()
package errors
