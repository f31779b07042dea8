package monitor

import (
	"fmt"

	"github.com/genricoloni/deskwall/internal/domain"
	"go.uber.org/zap"
)

// List enumerates the monitors known to the service, in service order.
// It is all-or-nothing: any failure discards the monitors read so far.
func List(svc domain.Service) ([]domain.Monitor, error) {
	n, err := svc.MonitorCount()
	if err != nil {
		return nil, domain.ServiceError("count monitors", err)
	}

	monitors := make([]domain.Monitor, 0, n)
	for i := 0; i < n; i++ {
		id, err := svc.MonitorID(i)
		if err != nil {
			return nil, domain.ServiceError(fmt.Sprintf("identify monitor %d", i), err)
		}
		if id == "" {
			return nil, domain.ServiceError(fmt.Sprintf("identify monitor %d", i),
				fmt.Errorf("service returned an empty identifier"))
		}

		path, err := svc.Wallpaper(id)
		if err != nil {
			return nil, domain.ServiceError(fmt.Sprintf("read wallpaper of monitor %d", i), err)
		}

		monitors = append(monitors, domain.Monitor{ID: id, Wallpaper: path})
	}
	return monitors, nil
}

// Directory is an indexed snapshot of the monitors taken at enumeration time
type Directory struct {
	logger   *zap.Logger
	monitors []domain.Monitor
}

// NewDirectory enumerates the monitors of svc
func NewDirectory(logger *zap.Logger, svc domain.Service) (*Directory, error) {
	monitors, err := List(svc)
	if err != nil {
		return nil, err
	}

	logger.Debug("Monitors enumerated", zap.Int("count", len(monitors)))
	return &Directory{
		logger:   logger,
		monitors: monitors,
	}, nil
}

// Monitors returns a copy of the snapshot
func (d *Directory) Monitors() []domain.Monitor {
	out := make([]domain.Monitor, len(d.monitors))
	copy(out, d.monitors)
	return out
}

// Len returns the number of monitors
func (d *Directory) Len() int {
	return len(d.monitors)
}

// Select returns the monitor at index i
func (d *Directory) Select(i int) (domain.Monitor, error) {
	if len(d.monitors) == 0 {
		return domain.Monitor{}, fmt.Errorf("%w: no monitors are available", domain.ErrMonitorOutOfRange)
	}
	if i < 0 || i >= len(d.monitors) {
		return domain.Monitor{}, fmt.Errorf("%w: the available monitors are from 0 to %d but %d was given",
			domain.ErrMonitorOutOfRange, len(d.monitors)-1, i)
	}
	return d.monitors[i], nil
}
