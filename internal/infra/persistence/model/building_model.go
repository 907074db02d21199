package model

import (
	"time"
)

// BuildingModel is the GORM-specific struct for the 'buildings' table.
// Centroid and RefCentroid are selected with ST_AsBinary.
type BuildingModel struct {
	ID                int64    `gorm:"primaryKey"`
	BuildingID        int64    `gorm:"column:building_id;not null;index:idx_buildings_on_building_id"`
	RoadID            *int64   `gorm:"column:road_id"`
	AssociationType   string   `gorm:"column:association_type;type:varchar(20);not null;index:idx_buildings_on_association"`
	MainBuildingID    *int64   `gorm:"column:main_building_id;index:idx_buildings_on_association"`
	Centroid          WKB      `gorm:"column:centroid_wkb;->"`
	RefCentroid       WKB      `gorm:"column:ref_centroid_wkb;->"`
	RoadWidth         *float64 `gorm:"column:road_width"`
	RoadType          *string  `gorm:"column:road_type;type:varchar(100)"`
	RoadLane          *string  `gorm:"column:road_lane;type:varchar(50)"`
	ToleName          *string  `gorm:"column:tole_name;type:varchar(255)"`
	OwnerName         *string  `gorm:"column:owner_name;type:varchar(255)"`
	HouseNo           *string  `gorm:"column:house_no;type:varchar(100)"`
	Direction         *string  `gorm:"column:direction;type:varchar(10)"`
	RoadIDs           *string  `gorm:"column:road_ids;type:varchar(255)"`
	MetricAddress     *string  `gorm:"column:metric_address;type:varchar(255)"`
	AssociateRoadName *string  `gorm:"column:associate_road_name;type:varchar(255)"`
	NeedsReview       bool     `gorm:"column:needs_review;not null;default:false"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuildingModel) TableName() string {
	return "buildings"
}

// HouseNumberRow is a Main building's stored house number.
type HouseNumberRow struct {
	ID      int64  `gorm:"column:id"`
	HouseNo string `gorm:"column:house_no"`
}
