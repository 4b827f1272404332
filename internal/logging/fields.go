package logging

// Keys for structured log fields.
const (
	FieldError  = "error"
	FieldPath   = "path"
	FieldDir    = "dir"
	FieldConfig = "config"

	FieldJobs  = "jobs"
	FieldCache = "cache"

	FieldFiles       = "files"
	FieldQueries     = "queries"
	FieldFailed      = "failed"
	FieldDiagnostics = "diagnostics"
	FieldCached      = "cached"
	FieldKey         = "key"
)
