package model

// Runway is the one-time plus six months of recurring cost estimate.
type Runway struct {
	OneTime            int64
	Monthly            int64
	SixMonthProjection int64
	Total              int64
}
