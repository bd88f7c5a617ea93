package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymdesk_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_bookings_total",
			Help: "Total number of session bookings",
		},
		[]string{"status"},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
	)

	MembershipsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_memberships_created_total",
			Help: "Total number of memberships created",
		},
		[]string{"plan"},
	)

	CheckInsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_checkins_total",
			Help: "Total number of member check-ins",
		},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_payments_total",
			Help: "Total number of recorded payments",
		},
		[]string{"method"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymdesk_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(status string) {
	BookingsTotal.WithLabelValues(status).Inc()
}

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordMembership(planName string) {
	MembershipsCreatedTotal.WithLabelValues(planName).Inc()
}

func RecordCheckIn() {
	CheckInsTotal.Inc()
}

func RecordPayment(method string) {
	PaymentsTotal.WithLabelValues(method).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
