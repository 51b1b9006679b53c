package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment statuses. Status is the only field a stored appointment ever
// changes after creation.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the four appointment statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// AppointmentService is one booked service line.
type AppointmentService struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description" json:"description"`
}

type Customer struct {
	Name      string `bson:"name" json:"name"`
	FirstName string `bson:"firstName" json:"firstName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Schedule holds the requested slot. Date and time are stored as the client
// sent them, they are never parsed at write time.
type Schedule struct {
	Date string `bson:"date" json:"date"`
	Time string `bson:"time" json:"time"`
}

type Appointment struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	DeviceType  string               `bson:"deviceType" json:"deviceType"`
	DeviceName  string               `bson:"deviceName" json:"deviceName"`
	Subtype     string               `bson:"subtype" json:"subtype"`
	SubtypeName string               `bson:"subtypeName" json:"subtypeName"`
	Brand       string               `bson:"brand" json:"brand"`
	Model       string               `bson:"model" json:"model"`
	Services    []AppointmentService `bson:"services" json:"services"`
	TotalPrice  float64              `bson:"totalPrice" json:"totalPrice"`
	Customer    Customer             `bson:"customer" json:"customer"`
	Appointment Schedule             `bson:"appointment" json:"appointment"`
	Status      string               `bson:"status" json:"status"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
}
