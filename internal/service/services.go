package service

import (
	"github.com/futuristic/perceptronx/internal/config"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/store"
)

// Services bundles the server-side business logic behind one constructor.
type Services struct {
	AuthService        AuthService
	TherapistService   TherapistService
	AppointmentService AppointmentService
	MessageService     MessageService
	AnnotationService  AnnotationService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg.App, logger),
		TherapistService:   NewTherapistService(storages.TherapistRepository, logger),
		AppointmentService: NewAppointmentService(storages.AppointmentRepository, storages.TherapistRepository, logger),
		MessageService:     NewMessageService(storages.MessageRepository, storages.TherapistRepository, logger),
		AnnotationService:  NewAnnotationService(storages.AnnotationRepository, logger),
	}
}
