package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameRequestsRejected     = "http_requests_rejected_total"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Crafting metric names
const (
	MetricNameRecipesSaved      = "recipes_saved_total"
	MetricNameRecipeFileSize    = "recipe_file_recipes"
	MetricNameFilesSelected     = "recipe_files_selected_total"
	MetricNameCraftsCompleted   = "crafts_completed_total"
	MetricNameItemsProduced     = "items_produced_total"
	MetricNameItemsConsumed     = "items_consumed_total"
	MetricNameSearchesNoResults = "searches_no_results_total"
	MetricNameNotificationsSent = "notifications_sent_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextRequestsRejected     = "Total number of HTTP requests rejected by the auth or rate guard"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Crafting metric help text
const (
	HelpTextRecipesSaved      = "Total number of recipe file writes"
	HelpTextRecipeFileSize    = "Number of recipes in the last written file"
	HelpTextFilesSelected     = "Total number of recipe file switches"
	HelpTextCraftsCompleted   = "Total number of completed crafts"
	HelpTextItemsProduced     = "Total quantity of items produced by crafting"
	HelpTextItemsConsumed     = "Total number of inventory mutations consumed by crafting"
	HelpTextSearchesNoResults = "Total number of recipe searches without a match"
	HelpTextNotificationsSent = "Total number of write notifications delivered to sessions"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelItem       = "item"
	LabelFile       = "file"
	LabelRecipeType = "recipe_type"
	LabelForced     = "forced"
	LabelLevel      = "level"
	LabelReason     = "reason"
)

// Rejection reasons
const (
	ReasonUnauthorized = "unauthorized"
	ReasonRateLimited  = "rate_limited"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)

// unmatchedRoute labels requests chi could not route.
const unmatchedRoute = "unmatched"
