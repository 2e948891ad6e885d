package metrics

import (
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// PushToGateway pushes every metric in reg to a Pushgateway under the given
// job name. One-shot builds have no scrape endpoint, so pushing is the only
// way their metrics reach Prometheus.
func PushToGateway(url, job string, reg *prom.Registry) error {
	if err := push.New(url, job).Gatherer(reg).Push(); err != nil {
		return fmt.Errorf("push metrics to %s: %w", url, err)
	}
	return nil
}
