package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldEndpoint   = "endpoint"
	FieldKind       = "kind"
	FieldClub       = "club"
	FieldMatchID    = "match_id"
	FieldUsername   = "username"
	FieldStatus     = "status"
	FieldURL        = "url"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
