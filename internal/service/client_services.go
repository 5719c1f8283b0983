package service

import (
	"github.com/futuristic/perceptronx/internal/adapter"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/validators"
)

// ClientServices bundles the client-side business logic behind one
// constructor. All services share a single API client and form validator.
type ClientServices struct {
	AuthService        ClientAuthService
	DirectoryService   DirectoryService
	AppointmentService ClientAppointmentService
	MessageService     ClientMessageService
	AnnotationService  ClientAnnotationService
	StatusJob          ClientStatusJob
}

func NewClientServices(apiClient adapter.APIClient, logger *logger.Logger) *ClientServices {
	validator := validators.NewFormValidator()
	authSvc := NewClientAuthService(apiClient, validator, logger)

	return &ClientServices{
		AuthService:        authSvc,
		DirectoryService:   NewDirectoryService(apiClient, validator, logger),
		AppointmentService: NewClientAppointmentService(apiClient, validator, logger),
		MessageService:     NewClientMessageService(apiClient, validator, logger),
		AnnotationService:  NewClientAnnotationService(apiClient, logger),
		StatusJob:          NewClientStatusJob(authSvc),
	}
}
