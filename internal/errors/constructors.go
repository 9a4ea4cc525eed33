package errors

// Convenience functions for the pipeline's error taxonomy

// Configuration errors

func ConfigNotFound(path string) *DocugenError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigMissing(field string) *DocugenError {
	return New(CategoryConfig, SeverityFatal, "required configuration missing").
		WithContext("field", field)
}

// Input validation errors

func ValidationFailed(field, reason string) *DocugenError {
	return New(CategoryValidation, SeverityWarning, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Generation capability errors

func GenerationFailed(cause error) *DocugenError {
	return Wrap(cause, CategoryGeneration, SeverityError, "generation capability failed")
}

// SchemaViolation marks a capability response that broke the fixed
// four-section response contract. User-facing handling matches a
// generation failure; the distinct category keeps diagnosis possible.
func SchemaViolation(detail string) *DocugenError {
	return New(CategorySchema, SeverityError, "capability response violated schema").
		WithContext("detail", detail)
}

// Regeneration request errors

func InvalidSection(section string) *DocugenError {
	return New(CategoryValidation, SeverityError, "unknown document section").
		WithContext("section", section)
}

func InvalidTone(tone string) *DocugenError {
	return New(CategoryValidation, SeverityError, "unknown regeneration tone").
		WithContext("tone", tone)
}

// Export errors

func RemotePushFailed(section string, statusCode int, detail string) *DocugenError {
	return New(CategoryExport, SeverityError, "remote section upsert failed").
		WithContext("section", section).
		WithContext("status_code", statusCode).
		WithContext("detail", detail)
}

func ArchiveFailed(cause error) *DocugenError {
	return Wrap(cause, CategoryExport, SeverityError, "archive packaging failed")
}

// Network errors

func URLUnreachable(url string, cause error) *DocugenError {
	return WrapRetryable(cause, CategoryNetwork, SeverityWarning, "repository URL not reachable").
		WithContext("url", url)
}

// Internal errors

func InternalError(message string, cause error) *DocugenError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
