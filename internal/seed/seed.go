package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/turmas/internal/app/models/dto"
	"github.com/yigit/turmas/internal/app/repositories"
	appServices "github.com/yigit/turmas/internal/app/services"
)

// CreateDefaultData fills an empty ledger with a small demo data set. It goes
// through the services so every record passes the integrity rules.
// A ledger that already holds records is left alone.
func CreateDefaultData(ctx context.Context, store repositories.SnapshotStore, svc *appServices.Services, lgr zerolog.Logger) error {
	snap, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}
	if !snap.IsEmpty() {
		lgr.Info().Msg("Ledger already has data, skipping demo seed")
		return nil
	}

	lgr.Info().Msg("Creating demo data (sections, catalog, students)...")
	var finalErr error

	// --- Sections --- //
	morning, err := svc.Sections.CreateSection(ctx, &dto.SectionRequest{Name: "1A - Morning"})
	finalErr = errors.Join(finalErr, err)
	evening, err := svc.Sections.CreateSection(ctx, &dto.SectionRequest{Name: "1B - Evening"})
	finalErr = errors.Join(finalErr, err)

	// --- Catalog --- //
	calculus, err := svc.Catalog.CreateEntry(ctx, &dto.CatalogEntryRequest{Code: "MAT101", Name: "Calculus I"})
	finalErr = errors.Join(finalErr, err)
	physics, err := svc.Catalog.CreateEntry(ctx, &dto.CatalogEntryRequest{Code: "FIS101", Name: "Physics I"})
	finalErr = errors.Join(finalErr, err)
	_, err = svc.Catalog.CreateEntry(ctx, &dto.CatalogEntryRequest{Code: "PRG101", Name: "Introduction to Programming"})
	finalErr = errors.Join(finalErr, err)

	// --- Students --- //
	ana, err := svc.Students.CreateStudent(ctx, &dto.StudentRequest{RegistrationNumber: "2024001", Name: "Ana Souza", Phone: "+55 11 90000-0001"})
	finalErr = errors.Join(finalErr, err)
	bruno, err := svc.Students.CreateStudent(ctx, &dto.StudentRequest{RegistrationNumber: "2024002", Name: "Bruno Lima", Phone: "+55 11 90000-0002"})
	finalErr = errors.Join(finalErr, err)
	if finalErr != nil {
		lgr.Error().Err(finalErr).Msg("Error creating demo records")
		return finalErr
	}

	// --- Offerings & Enrollments --- //
	offerings := []dto.OfferingRequest{
		{SectionID: string(morning), CatalogID: string(calculus), Professor: "Dr. Lima"},
		{SectionID: string(morning), CatalogID: string(physics), Professor: "Dr. Reis"},
		{SectionID: string(evening), CatalogID: string(calculus), Professor: "Dr. Costa"},
	}
	var firstOffering string
	for i := range offerings {
		id, err := svc.Offerings.CreateOffering(ctx, &offerings[i])
		if err != nil {
			lgr.Error().Err(err).Str("professor", offerings[i].Professor).Msg("Error creating demo offering")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if firstOffering == "" {
			firstOffering = string(id)
		}
	}

	if firstOffering != "" {
		for _, student := range []string{string(ana), string(bruno)} {
			_, err := svc.Enrollments.CreateEnrollment(ctx, &dto.EnrollmentRequest{StudentID: student, OfferingID: firstOffering})
			if err != nil {
				lgr.Error().Err(err).Msg("Error creating demo enrollment")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Demo data created")
	}
	return finalErr
}
