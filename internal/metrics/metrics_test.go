package metrics_test

import (
	"io"
	"net/http/httptest"
	"time"

	"astralnexus/internal/metrics"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var _ = Describe("Metrics", func() {
	var m *metrics.Metrics

	BeforeEach(func() {
		m = metrics.New("")
	})

	It("should count submissions by outcome", func() {
		m.ObserveSubmission("character", "createCharacter", "confirmed", 3*time.Second)
		m.ObserveSubmission("character", "createCharacter", "confirmed", time.Second)
		m.ObserveSubmission("items", "createItem", "reverted", time.Second)

		Expect(testutil.GatherAndCount(m.Registry(), "astralnexus_submissions_total")).To(Equal(2))
		Expect(testutil.GatherAndCount(m.Registry(), "astralnexus_submission_duration_seconds")).To(Equal(2))
	})

	It("should count retries and nonce events", func() {
		m.BroadcastRetried()
		m.BroadcastRetried()
		m.NonceEvent("released")
		m.NonceEvent("abandoned")

		Expect(testutil.GatherAndCount(m.Registry(), "astralnexus_broadcast_retries_total")).To(Equal(1))
		Expect(testutil.GatherAndCount(m.Registry(), "astralnexus_nonce_events_total")).To(Equal(2))
	})

	It("should expose the registry over HTTP", func() {
		m.ObserveRequest("GET /exchange/rates", "GET", 200, 15*time.Millisecond)

		w := httptest.NewRecorder()
		m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

		body, err := io.ReadAll(w.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(ContainSubstring(`astralnexus_http_requests_total{method="GET",route="GET /exchange/rates",status="200"} 1`))
	})
})
