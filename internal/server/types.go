package server

// InsertPairRequest represents the request body for inserting a pair
type InsertPairRequest struct {
	Key     string `json:"key" binding:"required"`
	Value   string `json:"value" binding:"required"`
	Pos     uint   `json:"pos"`
	Reverse bool   `json:"reverse"`
	Unique  bool   `json:"unique"`
}

// PairResponse represents a stored pair addressed by position
type PairResponse struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Pos     uint   `json:"pos"`
	Reverse bool   `json:"reverse"`
}

// PositionQuery selects a pair among equal keys
type PositionQuery struct {
	Pos     uint `form:"pos"`
	Reverse bool `form:"reverse"`
}
