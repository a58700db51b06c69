package services

import (
	portsrepo "github.com/eni-training/course_management_app/internal/core/ports/repositories"
	portssvc "github.com/eni-training/course_management_app/internal/core/ports/services"
	"github.com/eni-training/course_management_app/internal/platform/config"
)

// NewServiceContainer wires every service over the repository provider.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:         NewUserService(repos.UserRepo, repos.AreaRepo),
		Token:        NewTokenService(cfg),
		Area:         NewAreaService(repos.AreaRepo),
		Course:       NewCourseService(repos.CourseRepo, repos.AreaRepo, repos.UserRepo),
		Enrollment:   NewEnrollmentService(repos.EnrollmentRepo, repos.CourseRepo, repos.UserRepo),
		Notification: NewNotificationService(repos.NotificationRepo, repos.UserRepo),
		Evidence:     NewEvidenceService(repos.EvidenceRepo, repos.UserRepo, repos.NotificationRepo),
	}
}
