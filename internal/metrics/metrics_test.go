package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordBooking(t *testing.T) {
	before := testutil.ToFloat64(BookingsTotal.WithLabelValues("booked"))
	RecordBooking("booked")
	after := testutil.ToFloat64(BookingsTotal.WithLabelValues("booked"))
	assert.Equal(t, before+1, after)
}

func TestRecordBookingCancellation(t *testing.T) {
	before := testutil.ToFloat64(BookingCancellationsTotal)
	RecordBookingCancellation()
	assert.Equal(t, before+1, testutil.ToFloat64(BookingCancellationsTotal))
}

func TestRecordMembership(t *testing.T) {
	before := testutil.ToFloat64(MembershipsCreatedTotal.WithLabelValues("Gold"))
	RecordMembership("Gold")
	assert.Equal(t, before+1, testutil.ToFloat64(MembershipsCreatedTotal.WithLabelValues("Gold")))
}

func TestRecordCheckIn(t *testing.T) {
	before := testutil.ToFloat64(CheckInsTotal)
	RecordCheckIn()
	assert.Equal(t, before+1, testutil.ToFloat64(CheckInsTotal))
}

func TestRecordPayment(t *testing.T) {
	before := testutil.ToFloat64(PaymentsTotal.WithLabelValues("cash"))
	RecordPayment("cash")
	assert.Equal(t, before+1, testutil.ToFloat64(PaymentsTotal.WithLabelValues("cash")))
}
