package stats

// WardCount is one ward's admitted head count. The ward number rides in
// the aggregation's _id slot.
type WardCount struct {
	WardNumber string `bson:"_id" json:"ward_number"`
	Count      int64  `bson:"count" json:"count"`
}

// Overview is the ward dashboard snapshot. Patient counts exclude
// discharged patients except where named otherwise; the vital signs count
// spans the whole collection.
type Overview struct {
	TotalPatients      int64       `json:"total_patients"`
	HighRiskPatients   int64       `json:"high_risk_patients"`
	DischargedPatients int64       `json:"discharged_patients"`
	WardStatistics     []WardCount `json:"ward_statistics"`
	RecentVitalSigns   int64       `json:"recent_vital_signs"`
}
