package main

import (
	"geoalert/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query builders for the persistence models.
func main() {
	models := []any{
		model.UserModel{},
		model.EventModel{},
		model.EventCollaboratorModel{},
		model.EventAttendeeModel{},
		model.GeofenceModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
