// Package worktime records employee work sessions and derives hours,
// overtime, lateness and payroll from them.
package worktime

import "log/slog"

// Service bundles the calculators over one store handle.
type Service struct {
	Sessions *Sessions
	Hours    *Aggregator
	Overtime *Overtime
	Lateness *Lateness
	Payroll  *Payroll
}

// New wires every calculator to store.
func New(store Store, clock Clock, logger *slog.Logger) *Service {
	hours := NewAggregator(store)
	overtime := NewOvertime(hours)
	lateness := NewLateness(store)
	return &Service{
		Sessions: NewSessions(store, clock, logger),
		Hours:    hours,
		Overtime: overtime,
		Lateness: lateness,
		Payroll:  NewPayroll(hours, overtime, lateness),
	}
}
