package model

import "time"

// ItemStats aggregates booking activity per item.
type ItemStats struct {
	ItemID      int64     `json:"itemId" db:"item_id"`
	LastUpdated time.Time `json:"lastUpdated" db:"last_updated"`
	Created     int       `json:"created" db:"cnt_created"`
	Approved    int       `json:"approved" db:"cnt_approved"`
	Rejected    int       `json:"rejected" db:"cnt_rejected"`
}

type StatsInfo struct {
	Data []ItemStats `json:"data"`
}
