package domain

import "time"

// InsuranceStatus is the derived insurance position of a vehicle.
type InsuranceStatus struct {
	Active  *InsurancePolicy  `json:"active"`
	History []InsurancePolicy `json:"history"`
	DueSoon bool              `json:"due_soon"`
	Expired bool              `json:"expired"`
}

// VehicleStatus bundles the derived fields recomputed on every read.
type VehicleStatus struct {
	Insurance         InsuranceStatus `json:"insurance"`
	NextInspectionDue *Date           `json:"next_inspection_due"`
	Inspection        InspectionState `json:"inspection"`
}

// ResolveStatus computes the status block for a record at the given clock
// value. Pure; the record is not modified.
func ResolveStatus(v *Vehicle, now time.Time) VehicleStatus {
	status := VehicleStatus{
		Insurance: InsuranceStatus{
			Active:  ActivePolicy(v.Policies, now),
			History: PolicyHistory(v.Policies, now),
		},
		Inspection: ResolveInspectionState(v.PurchaseDate, v.Inspections, now),
	}
	if active := status.Insurance.Active; active != nil {
		status.Insurance.DueSoon = PolicyDueSoon(active.End, now)
		status.Insurance.Expired = PolicyExpired(active.End, now)
	}
	if due, ok := NextInspectionDue(v.PurchaseDate, v.Inspections, now); ok {
		status.NextInspectionDue = &due
	}
	return status
}
