package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"candidate-intake/internal/domain"
	"candidate-intake/pkg/apperror"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) (domain.CandidateRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the in-memory database alive and shared.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return NewCandidateRepository(db), db
}

func strPtr(s string) *string { return &s }

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCandidateRepositoryCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should insert scalar fields and leave undefined optionals null", func(t *testing.T) {
		repo, _ := newTestRepo(t)
		saved, err := repo.Create(ctx, &domain.Candidate{
			FirstName: "Juan",
			LastName:  "Pérez",
			Email:     "juan@email.com",
		})
		require.NoError(t, err)
		assert.NotZero(t, saved.ID)
		assert.Equal(t, "Juan", saved.FirstName)

		found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Nil(t, found.Phone)
		assert.Nil(t, found.Address)
		assert.Empty(t, found.Educations)
		assert.Empty(t, found.WorkExperiences)
		assert.Empty(t, found.Resumes)
	})

	t.Run("Should create nested collections in the same call", func(t *testing.T) {
		repo, _ := newTestRepo(t)
		end := date("2022-06-30")
		saved, err := repo.Create(ctx, &domain.Candidate{
			FirstName: "Juan",
			LastName:  "Pérez",
			Email:     "juan@email.com",
			Phone:     strPtr("612345678"),
			Educations: []domain.Education{{
				Institution: "Universidad de Madrid",
				Title:       "Ingeniero Informático",
				StartDate:   date("2018-09-01"),
				EndDate:     &end,
			}},
			WorkExperiences: []domain.WorkExperience{{
				Company:     "TechCorp",
				Position:    "Desarrollador Senior",
				Description: strPtr("Desarrollo de aplicaciones web"),
				StartDate:   date("2022-01-01"),
			}},
			Resumes: []domain.Resume{{
				FilePath:   "/uploads/cv.pdf",
				FileType:   "application/pdf",
				UploadDate: date("2024-01-01"),
			}},
		})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "612345678", *found.Phone)

		require.Len(t, found.Educations, 1)
		assert.Equal(t, saved.ID, found.Educations[0].CandidateID)
		assert.Equal(t, "Universidad de Madrid", found.Educations[0].Institution)
		assert.True(t, found.Educations[0].StartDate.Equal(date("2018-09-01")))
		require.NotNil(t, found.Educations[0].EndDate)
		assert.True(t, found.Educations[0].EndDate.Equal(end))

		require.Len(t, found.WorkExperiences, 1)
		assert.Nil(t, found.WorkExperiences[0].EndDate)
		require.Len(t, found.Resumes, 1)
		assert.Equal(t, "/uploads/cv.pdf", found.Resumes[0].FilePath)
	})
}

func TestCandidateRepositoryDuplicateEmail(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Candidate{FirstName: "Ana", LastName: "López", Email: "ana@example.com"})
	require.NoError(t, err)

	t.Run("Should report a duplicate on create", func(t *testing.T) {
		_, err := repo.Create(ctx, &domain.Candidate{FirstName: "Ana", LastName: "Ruiz", Email: "ana@example.com"})
		require.Error(t, err)
		assert.Equal(t, apperror.KindDuplicate, apperror.KindOf(err))
		assert.Equal(t, apperror.MsgDuplicateEmail, err.Error())

		var count int64
		require.NoError(t, db.Model(&candidateModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Should report a duplicate on update", func(t *testing.T) {
		other, err := repo.Create(ctx, &domain.Candidate{FirstName: "Luis", LastName: "Gil", Email: "luis@example.com"})
		require.NoError(t, err)

		other.Email = "ana@example.com"
		_, err = repo.Update(ctx, other)
		require.Error(t, err)
		assert.Equal(t, apperror.KindDuplicate, apperror.KindOf(err))
	})
}

func TestCandidateRepositoryUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should update scalar fields scoped by id", func(t *testing.T) {
		repo, _ := newTestRepo(t)
		saved, err := repo.Create(ctx, &domain.Candidate{
			FirstName: "Juan",
			LastName:  "Pérez",
			Email:     "juan@email.com",
			Address:   strPtr("Calle Mayor 123"),
		})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, &domain.Candidate{
			ID:        saved.ID,
			FirstName: "Juan",
			LastName:  "García",
			Email:     "juan@email.com",
			Phone:     strPtr("612345678"),
		})
		require.NoError(t, err)
		assert.Equal(t, saved.ID, updated.ID)
		assert.Equal(t, "García", updated.LastName)
		assert.Equal(t, "612345678", *updated.Phone)
		// Address was undefined in the update, so the stored value survives.
		require.NotNil(t, updated.Address)
		assert.Equal(t, "Calle Mayor 123", *updated.Address)
	})

	t.Run("Should not write nested collections", func(t *testing.T) {
		repo, _ := newTestRepo(t)
		saved, err := repo.Create(ctx, &domain.Candidate{FirstName: "Juan", LastName: "Pérez", Email: "juan@email.com"})
		require.NoError(t, err)

		_, err = repo.Update(ctx, &domain.Candidate{
			ID:        saved.ID,
			FirstName: "Juan",
			LastName:  "Pérez",
			Email:     "juan@email.com",
			Educations: []domain.Education{{
				Institution: "Universidad de Madrid",
				Title:       "Ingeniero Informático",
				StartDate:   date("2018-09-01"),
			}},
		})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Empty(t, found.Educations)
	})

	t.Run("Should report not found for an unknown id", func(t *testing.T) {
		repo, _ := newTestRepo(t)
		_, err := repo.Update(ctx, &domain.Candidate{ID: 999, FirstName: "Juan", LastName: "Pérez", Email: "juan@email.com"})
		require.Error(t, err)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
		assert.Equal(t, apperror.MsgNotFound, err.Error())
	})
}

func TestCandidateRepositoryFindByID(t *testing.T) {
	repo, _ := newTestRepo(t)

	found, err := repo.FindByID(context.Background(), 999)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestCandidateRepositoryNestedCreates(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	saved, err := repo.Create(ctx, &domain.Candidate{FirstName: "Juan", LastName: "Pérez", Email: "juan@email.com"})
	require.NoError(t, err)

	edu, err := repo.CreateEducation(ctx, &domain.Education{
		CandidateID: saved.ID,
		Institution: "Universidad de Madrid",
		Title:       "Ingeniero Informático",
		StartDate:   date("2018-09-01"),
	})
	require.NoError(t, err)
	assert.NotZero(t, edu.ID)

	_, err = repo.CreateWorkExperience(ctx, &domain.WorkExperience{
		CandidateID: saved.ID,
		Company:     "TechCorp",
		Position:    "Desarrollador Senior",
		StartDate:   date("2022-01-01"),
	})
	require.NoError(t, err)

	_, err = repo.CreateResume(ctx, &domain.Resume{
		CandidateID: saved.ID,
		FilePath:    "/uploads/cv.pdf",
		FileType:    "application/pdf",
		UploadDate:  date("2024-01-01"),
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Len(t, found.Educations, 1)
	assert.Len(t, found.WorkExperiences, 1)
	assert.Len(t, found.Resumes, 1)
}

func TestCandidateRepositoryWithinTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("Should roll back the candidate when a nested save fails", func(t *testing.T) {
		repo, _ := newTestRepo(t)
		var createdID int64
		boom := errors.New("nested save failed")

		err := repo.WithinTransaction(ctx, func(tx domain.CandidateRepository) error {
			saved, err := tx.Create(ctx, &domain.Candidate{FirstName: "Juan", LastName: "Pérez", Email: "juan@email.com"})
			if err != nil {
				return err
			}
			createdID = saved.ID
			return boom
		})
		assert.ErrorIs(t, err, boom)
		require.NotZero(t, createdID)

		found, err := repo.FindByID(ctx, createdID)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Should commit when fn succeeds", func(t *testing.T) {
		repo, _ := newTestRepo(t)
		var createdID int64

		err := repo.WithinTransaction(ctx, func(tx domain.CandidateRepository) error {
			saved, err := tx.Create(ctx, &domain.Candidate{FirstName: "Juan", LastName: "Pérez", Email: "juan@email.com"})
			if err != nil {
				return err
			}
			createdID = saved.ID
			return nil
		})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, createdID)
		require.NoError(t, err)
		assert.NotNil(t, found)
	})
}

func TestUpdateColumns(t *testing.T) {
	cols := updateColumns(&domain.Candidate{ID: 1, FirstName: "Juan", LastName: "Pérez", Email: "juan@email.com"})
	assert.Equal(t, map[string]interface{}{
		"first_name": "Juan",
		"last_name":  "Pérez",
		"email":      "juan@email.com",
	}, cols)

	cols = updateColumns(&domain.Candidate{ID: 1, FirstName: "Juan", LastName: "Pérez", Email: "juan@email.com", Phone: strPtr("612345678")})
	assert.Equal(t, "612345678", cols["phone"])
	assert.NotContains(t, cols, "address")
}

func TestTranslateError(t *testing.T) {
	t.Run("Should map connection failures to the connection message", func(t *testing.T) {
		err := translateError(&pgconn.ConnectError{Config: &pgconn.Config{}})
		assert.Equal(t, apperror.KindConnection, apperror.KindOf(err))
		assert.Equal(t, apperror.MsgConnection, err.Error())
	})

	t.Run("Should map unique violations to the duplicate email message", func(t *testing.T) {
		err := translateError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
		assert.Equal(t, apperror.KindDuplicate, apperror.KindOf(err))
		assert.Equal(t, apperror.MsgDuplicateEmail, err.Error())

		err = translateError(gorm.ErrDuplicatedKey)
		assert.Equal(t, apperror.KindDuplicate, apperror.KindOf(err))
	})

	t.Run("Should map record not found", func(t *testing.T) {
		err := translateError(gorm.ErrRecordNotFound)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
		assert.Equal(t, apperror.MsgNotFound, err.Error())
	})

	t.Run("Should pass other errors through unchanged", func(t *testing.T) {
		generic := errors.New("Generic database error")
		assert.Same(t, generic, translateError(generic))

		other := &pgconn.PgError{Code: "23503"}
		assert.Equal(t, error(other), translateError(other))
		assert.Nil(t, translateError(nil))
	})
}
