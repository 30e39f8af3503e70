package seed

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	appModels "github.com/kaan/staffdesk/internal/app/models"
	"github.com/kaan/staffdesk/internal/db"
)

// CreateSampleEmployees inserts a few sample records when the employees table
// is empty, so the listing page shows content on first boot. The empty check
// and the inserts run in one transaction; existing data is never overwritten.
func CreateSampleEmployees(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var count int64
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		lgr.Info().Msg("Seeding sample employees...")

		samples := []appModels.Employee{
			{
				FirstName: "Ada",
				LastName:  "Lovelace",
				Email:     "ada.lovelace@staffdesk.local",
				Position:  "Software Engineer",
				HireDate:  time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC),
			},
			{
				FirstName: "Grace",
				LastName:  "Hopper",
				Email:     "grace.hopper@staffdesk.local",
				Position:  "Engineering Manager",
				HireDate:  time.Date(2019, time.July, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				FirstName: "Alan",
				LastName:  "Turing",
				Email:     "alan.turing@staffdesk.local",
				Position:  "Research Scientist",
				HireDate:  time.Date(2022, time.January, 10, 0, 0, 0, 0, time.UTC),
			},
		}

		for _, sample := range samples {
			_, err := tx.Exec(ctx, `
				INSERT INTO employees (first_name, last_name, email, position, hire_date)
				VALUES ($1, $2, $3, $4, $5)`,
				sample.FirstName,
				sample.LastName,
				sample.Email,
				sample.Position,
				sample.HireDate,
			)
			if err != nil {
				lgr.Error().Err(err).Str("email", sample.Email).Msg("Error seeding employee")
				return err
			}
		}

		lgr.Info().Int("count", len(samples)).Msg("Sample employees created")
		return nil
	})
}
