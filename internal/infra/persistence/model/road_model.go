package model

// RoadModel is the GORM-specific struct for the 'roads' table.
// Geom is selected as ST_AsBinary(geom) AS geom_wkb.
type RoadModel struct {
	ID           int64  `gorm:"primaryKey"`
	RoadID       int64  `gorm:"column:road_id;not null;index:idx_roads_on_road_id"`
	RoadCategory string `gorm:"column:road_category;type:varchar(20);not null"`
	RoadNameEn   string `gorm:"column:road_name_en;type:varchar(255)"`
	Geom         WKB    `gorm:"column:geom_wkb;->"`
}

// TableName explicitly sets the table name for GORM.
func (RoadModel) TableName() string {
	return "roads"
}

// RoadHitRow is one row of the spatial connection query.
type RoadHitRow struct {
	RoadID       int64   `gorm:"column:road_id"`
	RoadCategory string  `gorm:"column:road_category"`
	RoadNameEn   string  `gorm:"column:road_name_en"`
	Geom         WKB     `gorm:"column:geom_wkb"`
	Distance     float64 `gorm:"column:distance"`
}
