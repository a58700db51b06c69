package repositories

// RepositoryProvider bundles every repository implementation so the service
// container can be wired from a single value.
type RepositoryProvider struct {
	UserRepo         UserRepository
	AreaRepo         AreaRepository
	CourseRepo       CourseRepository
	EnrollmentRepo   EnrollmentRepository
	NotificationRepo NotificationRepository
	EvidenceRepo     EvidenceRepository
}
