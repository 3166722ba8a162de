package composition

import (
	"math"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

// Status classifies a load against a vehicle's capacity.
type Status string

const (
	StatusFits           Status = "fits"
	StatusWeightExceeded Status = "weight_exceeded"
	StatusVolumeExceeded Status = "volume_exceeded"
	StatusBothExceeded   Status = "both_exceeded"
)

// CapacityReport is the utilization of a vehicle by a load.
type CapacityReport struct {
	WeightPct int    `json:"weight_pct"`
	VolumePct int    `json:"volume_pct"`
	Status    Status `json:"status"`
}

// Exceeded reports whether any dimension is at or over capacity.
func (r CapacityReport) Exceeded() bool {
	return r.Status != StatusFits
}

// Percent returns round(used/capacity*100), or 0 when capacity is not positive.
func Percent(used, capacity float64) int {
	if capacity <= 0 {
		return 0
	}
	return int(math.Round(used / capacity * 100))
}

// Evaluate compares totals with the vehicle capacity pair. A zero capacity
// reports 0% but any positive load on it counts as exceeded.
func Evaluate(weightCapacity, volumeCapacity float64, totals model.Totals) CapacityReport {
	r := CapacityReport{
		WeightPct: Percent(totals.Weight, weightCapacity),
		VolumePct: Percent(totals.Volume, volumeCapacity),
	}
	weightOver := exceeds(r.WeightPct, totals.Weight, weightCapacity)
	volumeOver := exceeds(r.VolumePct, totals.Volume, volumeCapacity)

	switch {
	case weightOver && volumeOver:
		r.Status = StatusBothExceeded
	case weightOver:
		r.Status = StatusWeightExceeded
	case volumeOver:
		r.Status = StatusVolumeExceeded
	default:
		r.Status = StatusFits
	}
	return r
}

// EvaluateVehicle is Evaluate over a vehicle's declared capacity.
func EvaluateVehicle(v model.Vehicle, totals model.Totals) CapacityReport {
	return Evaluate(v.WeightCapacity, v.VolumeCapacity, totals)
}

func exceeds(pct int, used, capacity float64) bool {
	if capacity <= 0 {
		return used > 0
	}
	return pct >= 100
}
