package model

import (
	"time"
)

// EventModel is the GORM-specific struct for the 'event' table.
type EventModel struct {
	EventID   int64     `gorm:"column:event_id;primaryKey;autoIncrement"`
	Event     string    `gorm:"column:event;type:varchar(255);not null"`
	Time      time.Time `gorm:"column:time;not null"`
	Location  Point     `gorm:"column:location;not null"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	CreatedOn time.Time `gorm:"column:created_on;autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "event"
}

// EventCollaboratorModel is one row of 'event_collaborators'; (event_id, user_id) is unique.
type EventCollaboratorModel struct {
	EventID int64 `gorm:"column:event_id;primaryKey"`
	UserID  int64 `gorm:"column:user_id;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (EventCollaboratorModel) TableName() string {
	return "event_collaborators"
}

// EventAttendeeModel is one row of 'event_attendees'; (event_id, user_id) is unique.
type EventAttendeeModel struct {
	EventID int64 `gorm:"column:event_id;primaryKey"`
	UserID  int64 `gorm:"column:user_id;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (EventAttendeeModel) TableName() string {
	return "event_attendees"
}

// IntersectionRow is the projection returned by the geofence intersection query.
type IntersectionRow struct {
	EventID        int64
	EventName      string
	EventTime      time.Time
	OwnerID        int64
	OwnerEmail     string
	OwnerFirstName string
	GeofenceID     int64
	GeofenceName   string
}
