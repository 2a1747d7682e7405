package pool

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 获取结果标签
const (
	resultCreated = "created"
	resultShared  = "shared"
	resultRefused = "refused"
)

// metrics 对象池指标
type metrics struct {
	live     prometheus.Gauge
	free     prometheus.Gauge
	acquired *prometheus.CounterVec
	recycled prometheus.Counter
}

// newMetrics 在 reg 上注册指标；reg 为 nil 时指标不注册，仅本地计数
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	m := &metrics{
		live: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "dds",
			Subsystem: "participant_pool",
			Name:      "live",
			Help:      "Number of participant proxies currently referenced.",
		}),
		free: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "dds",
			Subsystem: "participant_pool",
			Name:      "free",
			Help:      "Number of cleared participant proxies waiting for reuse.",
		}),
		acquired: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dds",
			Subsystem: "participant_pool",
			Name:      "acquisitions_total",
			Help:      "Participant proxy acquisitions by result.",
		}, []string{"result"}),
		recycled: f.NewCounter(prometheus.CounterOpts{
			Namespace: "dds",
			Subsystem: "participant_pool",
			Name:      "recycled_total",
			Help:      "Participant proxies cleared after their last reference was released.",
		}),
	}
	for _, r := range []string{resultCreated, resultShared, resultRefused} {
		m.acquired.WithLabelValues(r)
	}
	return m
}
