package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	FindAll(ctx context.Context) ([]responses.Appointment, error)
	FindAppointmentByID(ctx context.Context, appointmentID int64) (*responses.Appointment, error)
	FindAppointmentsByPatientID(ctx context.Context, patientID int64) ([]responses.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID int64, request *requests.UpdateAppointment) (*responses.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID int64) error
}

type AppointmentRepository interface {
	Save(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment) (bool, error)
	FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID int64) ([]models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	DeleteByID(ctx context.Context, appointmentID int64) (bool, error)
}
