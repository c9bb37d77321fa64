package repository

import (
	"context"
	"time"

	"github.com/tejavira2023/fitverse/internal/models"
)

type UserProfileRepository struct {
	db DBTX
}

func NewUserProfileRepository(db DBTX) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

const userProfileColumns = `id, user_id, full_name, age, gender, weight_kg, height_cm,
	   fitness_level, goal, health_notes, coins, streak, last_completed_day,
	   onboarding_complete, created_at, updated_at`

func (r *UserProfileRepository) CreateEmpty(ctx context.Context, userID int64) error {
	query := `INSERT INTO user_profiles (user_id) VALUES ($1)`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *UserProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error) {
	query := `
		SELECT ` + userProfileColumns + `
		FROM user_profiles
		WHERE user_id = $1
	`
	return r.scanProfile(r.db.QueryRow(ctx, query, userID))
}

type AccountSetupInput struct {
	FullName     string
	Age          int
	Gender       string
	WeightKG     float64
	HeightCM     float64
	FitnessLevel string
	Goal         string
	HealthNotes  *string
}

func (r *UserProfileRepository) UpdateOnboarding(ctx context.Context, userID int64, req AccountSetupInput) (*models.UserProfile, error) {
	query := `
		UPDATE user_profiles
		SET full_name = $1,
			age = $2,
			gender = $3,
			weight_kg = $4,
			height_cm = $5,
			fitness_level = $6,
			goal = $7,
			health_notes = $8,
			onboarding_complete = TRUE,
			updated_at = NOW()
		WHERE user_id = $9
		RETURNING ` + userProfileColumns + `
	`
	return r.scanProfile(r.db.QueryRow(ctx, query,
		req.FullName,
		req.Age,
		req.Gender,
		req.WeightKG,
		req.HeightCM,
		req.FitnessLevel,
		req.Goal,
		req.HealthNotes,
		userID,
	))
}

type UpdateUserProfileInput struct {
	FullName     *string
	Age          *int
	Gender       *string
	WeightKG     *float64
	HeightCM     *float64
	FitnessLevel *string
	Goal         *string
	HealthNotes  *string
}

func (r *UserProfileRepository) UpdatePartial(ctx context.Context, userID int64, req UpdateUserProfileInput) (*models.UserProfile, error) {
	query := `
		UPDATE user_profiles
		SET full_name = COALESCE($1, full_name),
			age = COALESCE($2, age),
			gender = COALESCE($3, gender),
			weight_kg = COALESCE($4, weight_kg),
			height_cm = COALESCE($5, height_cm),
			fitness_level = COALESCE($6, fitness_level),
			goal = COALESCE($7, goal),
			health_notes = COALESCE($8, health_notes),
			updated_at = NOW()
		WHERE user_id = $9
		RETURNING ` + userProfileColumns + `
	`
	return r.scanProfile(r.db.QueryRow(ctx, query,
		req.FullName,
		req.Age,
		req.Gender,
		req.WeightKG,
		req.HeightCM,
		req.FitnessLevel,
		req.Goal,
		req.HealthNotes,
		userID,
	))
}

// AddCoins applies a raw coin delta. The sign is the caller's business;
// level rewards are always positive.
func (r *UserProfileRepository) AddCoins(ctx context.Context, userID int64, amount int) (int, error) {
	query := `
		UPDATE user_profiles
		SET coins = coins + $1,
			updated_at = NOW()
		WHERE user_id = $2
		RETURNING coins
	`
	var coins int
	if err := r.db.QueryRow(ctx, query, amount, userID).Scan(&coins); err != nil {
		return 0, err
	}
	return coins, nil
}

func (r *UserProfileRepository) UpdateStreak(ctx context.Context, userID int64, streak int, lastCompletedDay time.Time) error {
	query := `
		UPDATE user_profiles
		SET streak = $1,
			last_completed_day = $2,
			updated_at = NOW()
		WHERE user_id = $3
	`
	_, err := r.db.Exec(ctx, query, streak, lastCompletedDay, userID)
	return err
}

func (r *UserProfileRepository) scanProfile(row interface{ Scan(dest ...any) error }) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.Age,
		&profile.Gender,
		&profile.WeightKG,
		&profile.HeightCM,
		&profile.FitnessLevel,
		&profile.Goal,
		&profile.HealthNotes,
		&profile.Coins,
		&profile.Streak,
		&profile.LastCompletedDay,
		&profile.OnboardingComplete,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
