package models

// VehicleClass represents one tier of ride service queried independently
// from the pricing backend
type VehicleClass struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// SupportedVehicleClasses is the closed set of classes the aggregator fans
// out over. Static configuration, not persisted.
var SupportedVehicleClasses = []VehicleClass{
	{ID: "econom", DisplayName: "Economy"},
	{ID: "business", DisplayName: "Business"},
	{ID: "comfortplus", DisplayName: "Comfort+"},
	{ID: "minivan", DisplayName: "Minivan"},
	{ID: "vip", DisplayName: "VIP"},
}
