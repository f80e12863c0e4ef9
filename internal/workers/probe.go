package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
)

// ProbeTaskName names the connectivity probe in logs.
const ProbeTaskName = "connectivity-probe"

// NewConnectivityProbe returns a periodic task that pings the origin right
// away and then every interval, reporting each outcome to sink.
func NewConnectivityProbe(pinger Pinger, sink ConnectivitySink, interval, timeout time.Duration, logger *logger.Logger) *PeriodicTask {
	probe := NewPeriodicTask(ProbeTaskName, interval, func(ctx context.Context) error {
		pingCtx := ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			pingCtx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		err := pinger.Ping(pingCtx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		sink.SetOnline(ctx, err == nil)
		return nil
	}, logger)
	probe.immediate = true

	return probe
}
