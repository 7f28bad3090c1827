package models

import "time"

// Patient is owned by the patient service. Other services only ever hold a
// snapshot of it obtained through a lookup.
type Patient struct {
	ID        int64     `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	FirstName string    `json:"firstName" bson:"first_name"`
	BirthDate time.Time `json:"birthDate" bson:"birth_date"`
	Contact   string    `json:"contact" bson:"contact"`
}
