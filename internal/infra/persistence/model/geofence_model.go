package model

// GeofenceModel is the GORM-specific struct for the 'geofence' table.
type GeofenceModel struct {
	GeofenceID int64   `gorm:"column:geofence_id;primaryKey;autoIncrement"`
	Name       string  `gorm:"column:name;type:varchar(255);not null"`
	Geofence   Polygon `gorm:"column:geofence;not null"`
	IsActive   bool    `gorm:"column:is_active;not null"`
	UserID     int64   `gorm:"column:user_id;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (GeofenceModel) TableName() string {
	return "geofence"
}
