package services

import (
	"github.com/rs/zerolog"

	"github.com/yigit/turmas/internal/app/repositories"
	"github.com/yigit/turmas/internal/pkg/logger"
	"github.com/yigit/turmas/internal/pkg/metrics"
)

// Services defined in this package:
// - SectionService, CatalogService, StudentService, OfferingService and
//   EnrollmentService: writes guarded by the integrity rules in integrity.go
// - ViewService: the filtered composite read model

// Services groups every ledger service over one persistence provider
type Services struct {
	Sections    SectionService
	Catalog     CatalogService
	Students    StudentService
	Offerings   OfferingService
	Enrollments EnrollmentService
	View        ViewService
}

// NewServices builds all services sharing store, ids and observability
func NewServices(store repositories.SnapshotStore, ids IDGenerator, lgr zerolog.Logger, m *metrics.Metrics) *Services {
	l := NewLedger(store, ids, logger.Component(lgr, "ledger"), m)
	return &Services{
		Sections:    NewSectionService(l),
		Catalog:     NewCatalogService(l),
		Students:    NewStudentService(l),
		Offerings:   NewOfferingService(l),
		Enrollments: NewEnrollmentService(l),
		View:        NewViewService(store, logger.Component(lgr, "view")),
	}
}
