package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	HTTPRequestsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRequestsRejected,
			Help: HelpTextRequestsRejected,
		},
		[]string{LabelReason},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Crafting Metrics
var (
	RecipesSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipesSaved,
			Help: HelpTextRecipesSaved,
		},
		[]string{LabelFile},
	)

	RecipeFileSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameRecipeFileSize,
			Help: HelpTextRecipeFileSize,
		},
		[]string{LabelFile},
	)

	FilesSelected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFilesSelected,
			Help: HelpTextFilesSelected,
		},
	)

	CraftsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftsCompleted,
			Help: HelpTextCraftsCompleted,
		},
		[]string{LabelRecipeType, LabelForced},
	)

	ItemsProduced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsProduced,
			Help: HelpTextItemsProduced,
		},
		[]string{LabelItem},
	)

	ItemsConsumed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsConsumed,
			Help: HelpTextItemsConsumed,
		},
	)

	SearchesNoResults = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchesNoResults,
			Help: HelpTextSearchesNoResults,
		},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsSent,
			Help: HelpTextNotificationsSent,
		},
		[]string{LabelLevel},
	)
)
