package logic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"warble/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks warble/logic IMetrics

type IMetrics interface {
	StartApiRequestIn(label string) IRequestObserver
	StartApubRequestIn(label string) IRequestObserver
	StartApubRequestOut(label string) IRequestObserver
	FollowerAdded()
	FollowerRemoved()
	PostCreated()
	ReactionRecorded()
	FeedUpdated()
	ServiceStarted()
	DeliveryQueueLength(length int)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                 *shared.Config
	apiRequestsIn       *prometheus.HistogramVec
	apubRequestsIn      *prometheus.HistogramVec
	apubRequestsOut     *prometheus.HistogramVec
	followersAdded      prometheus.Counter
	followersRemoved    prometheus.Counter
	postsCreated        prometheus.Counter
	reactionsRecorded   prometheus.Counter
	feedsUpdated        prometheus.Counter
	serviceStarted      prometheus.Counter
	deliveryQueueLength prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.apiRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "api_requests_in_duration",
		Help: "Duration in seconds of API requests served.",
	}, []string{"label"})
	prometheus.Register(res.apiRequestsIn)

	res.apubRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "apub_requests_in_duration",
		Help: "Duration in seconds of ActivityPub requests served.",
	}, []string{"label"})
	prometheus.Register(res.apubRequestsIn)

	res.apubRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "apub_requests_out_duration",
		Help: "Duration in seconds of ActivityPub requests made.",
	}, []string{"label"})
	prometheus.Register(res.apubRequestsOut)

	res.followersAdded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "followers_added",
		Help: "Number of followers added through the inbox",
	})
	prometheus.Register(res.followersAdded)

	res.followersRemoved = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "followers_removed",
		Help: "Number of followers removed through the inbox",
	})
	prometheus.Register(res.followersRemoved)

	res.postsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_created",
		Help: "Number of posts created",
	})
	prometheus.Register(res.postsCreated)

	res.reactionsRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reactions_recorded",
		Help: "Number of reactions recorded",
	})
	prometheus.Register(res.reactionsRecorded)

	res.feedsUpdated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bridged_feeds_updated",
		Help: "Number of bridged feed refreshes",
	})
	prometheus.Register(res.feedsUpdated)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.deliveryQueueLength = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "delivery_queue_length",
		Help: "Items in outbound delivery queue",
	})
	prometheus.Register(res.deliveryQueueLength)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartApiRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apiRequestsIn}
}

func (m *metrics) StartApubRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apubRequestsIn}
}

func (m *metrics) StartApubRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apubRequestsOut}
}

func (m *metrics) FollowerAdded() {
	m.followersAdded.Add(1)
}

func (m *metrics) FollowerRemoved() {
	m.followersRemoved.Add(1)
}

func (m *metrics) PostCreated() {
	m.postsCreated.Add(1)
}

func (m *metrics) ReactionRecorded() {
	m.reactionsRecorded.Add(1)
}

func (m *metrics) FeedUpdated() {
	m.feedsUpdated.Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) DeliveryQueueLength(length int) {
	m.deliveryQueueLength.Set(float64(length))
}
