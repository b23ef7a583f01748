package metrics

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// PoolStats is a snapshot of connection pool counters.
type PoolStats struct {
	AcquireCount         int64
	AcquireDurationSecs  float64
	AcquiredConns        int32
	CanceledAcquireCount int64
	IdleConns            int32
	MaxConns             int32
	TotalConns           int32
}

// PoolCollector exports pgx pool statistics.
type PoolCollector struct {
	stats func() PoolStats

	acquireCount         *prometheus.Desc
	acquireDuration      *prometheus.Desc
	acquiredConns        *prometheus.Desc
	canceledAcquireCount *prometheus.Desc
	idleConns            *prometheus.Desc
	maxConns             *prometheus.Desc
	totalConns           *prometheus.Desc
}

// NewPoolCollector returns a collector reading pool.Stat on every scrape.
func NewPoolCollector(pool *pgxpool.Pool) *PoolCollector {
	return newPoolCollector(func() PoolStats {
		s := pool.Stat()
		return PoolStats{
			AcquireCount:         s.AcquireCount(),
			AcquireDurationSecs:  s.AcquireDuration().Seconds(),
			AcquiredConns:        s.AcquiredConns(),
			CanceledAcquireCount: s.CanceledAcquireCount(),
			IdleConns:            s.IdleConns(),
			MaxConns:             s.MaxConns(),
			TotalConns:           s.TotalConns(),
		}
	})
}

func newPoolCollector(stats func() PoolStats) *PoolCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc("pgxpool_"+name, help, nil, nil)
	}
	return &PoolCollector{
		stats:                stats,
		acquireCount:         desc("acquire_count_total", "Cumulative count of successful acquires from the pool."),
		acquireDuration:      desc("acquire_duration_seconds_total", "Total time spent waiting for a connection."),
		acquiredConns:        desc("acquired_conns", "Number of currently acquired connections."),
		canceledAcquireCount: desc("canceled_acquire_count_total", "Cumulative count of acquires canceled by a context."),
		idleConns:            desc("idle_conns", "Number of currently idle connections."),
		maxConns:             desc("max_conns", "Maximum size of the pool."),
		totalConns:           desc("total_conns", "Total number of connections in the pool."),
	}
}

// Describe implements prometheus.Collector.
func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.acquireCount
	ch <- c.acquireDuration
	ch <- c.acquiredConns
	ch <- c.canceledAcquireCount
	ch <- c.idleConns
	ch <- c.maxConns
	ch <- c.totalConns
}

// Collect implements prometheus.Collector.
func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats()
	ch <- prometheus.MustNewConstMetric(c.acquireCount, prometheus.CounterValue, float64(s.AcquireCount))
	ch <- prometheus.MustNewConstMetric(c.acquireDuration, prometheus.CounterValue, s.AcquireDurationSecs)
	ch <- prometheus.MustNewConstMetric(c.acquiredConns, prometheus.GaugeValue, float64(s.AcquiredConns))
	ch <- prometheus.MustNewConstMetric(c.canceledAcquireCount, prometheus.CounterValue, float64(s.CanceledAcquireCount))
	ch <- prometheus.MustNewConstMetric(c.idleConns, prometheus.GaugeValue, float64(s.IdleConns))
	ch <- prometheus.MustNewConstMetric(c.maxConns, prometheus.GaugeValue, float64(s.MaxConns))
	ch <- prometheus.MustNewConstMetric(c.totalConns, prometheus.GaugeValue, float64(s.TotalConns))
}
