package workout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/sporttracker/internal/telemetry/tracing"
	"github.com/2beens/sporttracker/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) CreateUser(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Language == "" {
		user.Language = DefaultLanguage
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO tracker_user (id, telegram_id, name, language, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		user.ID,
		user.TelegramID,
		user.Name,
		user.Language,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repo) FindUserByTelegramID(ctx context.Context, telegramID int64) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.findByTelegramId")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user := &User{}
	err = r.db.QueryRow(ctx, `
		SELECT id, telegram_id, COALESCE(name, ''), language, created_at, updated_at
		FROM tracker_user
		WHERE telegram_id = $1
	`, telegramID).Scan(
		&user.ID,
		&user.TelegramID,
		&user.Name,
		&user.Language,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (r *Repo) UpdateUserName(ctx context.Context, id uuid.UUID, name string, updatedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateName")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `
		UPDATE tracker_user SET name = $1, updated_at = $2 WHERE id = $3
	`, name, updatedAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repo) UpdateUserLanguage(ctx context.Context, id uuid.UUID, lang Language, updatedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateLanguage")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `
		UPDATE tracker_user SET language = $1, updated_at = $2 WHERE id = $3
	`, lang, updatedAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repo) ListUsers(ctx context.Context) (_ []User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT id, telegram_id, COALESCE(name, ''), language, created_at, updated_at
		FROM tracker_user
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.ID,
			&u.TelegramID,
			&u.Name,
			&u.Language,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *Repo) AddWorkout(ctx context.Context, w Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, `
		INSERT INTO workout (user_id, type, duration, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		w.UserID,
		w.Type,
		w.Duration,
		w.CreatedAt,
	).Scan(&w.ID)
	if err != nil {
		switch {
		case pkg.IsForeignKeyViolationError(err):
			return nil, ErrUserNotFound
		case pkg.IsCheckViolationError(err):
			return nil, ErrInvalidDuration
		}
		return nil, err
	}

	return &w, nil
}

// RecentWorkouts returns the latest workouts of a user, newest first.
func (r *Repo) RecentWorkouts(ctx context.Context, userID uuid.UUID, limit int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.recent")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, type, duration, created_at
		FROM workout
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// FindWorkouts returns the workouts of a user created within [start, end], both inclusive.
func (r *Repo) FindWorkouts(ctx context.Context, userID uuid.UUID, start, end time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.find")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, type, duration, created_at
		FROM workout
		WHERE user_id = $1 AND created_at BETWEEN $2 AND $3
		ORDER BY created_at
	`, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// FindAllUsersWithWorkouts returns every user, each with the workouts created within [start, end].
// Users without workouts in the range are included with an empty list.
func (r *Repo) FindAllUsersWithWorkouts(ctx context.Context, start, end time.Time) (_ []UserWorkouts, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.findAllUsers")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT u.id, u.telegram_id, COALESCE(u.name, ''), u.language, u.created_at, u.updated_at,
		       w.id, w.type, w.duration, w.created_at
		FROM tracker_user u
		LEFT JOIN workout w
		       ON w.user_id = u.id AND w.created_at BETWEEN $1 AND $2
		ORDER BY u.id, w.created_at
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []UserWorkouts
	for rows.Next() {
		var (
			u                User
			workoutID        *int64
			workoutType      *Category
			workoutDuration  *int
			workoutCreatedAt *time.Time
		)
		if err := rows.Scan(
			&u.ID,
			&u.TelegramID,
			&u.Name,
			&u.Language,
			&u.CreatedAt,
			&u.UpdatedAt,
			&workoutID,
			&workoutType,
			&workoutDuration,
			&workoutCreatedAt,
		); err != nil {
			return nil, err
		}

		if len(result) == 0 || result[len(result)-1].User.ID != u.ID {
			result = append(result, UserWorkouts{User: u})
		}
		if workoutID == nil {
			continue
		}

		last := &result[len(result)-1]
		last.Workouts = append(last.Workouts, Workout{
			ID:        *workoutID,
			UserID:    u.ID,
			Type:      *workoutType,
			Duration:  *workoutDuration,
			CreatedAt: *workoutCreatedAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("users.count", len(result)))

	return result, nil
}

func (r *Repo) CountUsers(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.count")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tracker_user`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repo) CountWorkouts(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.count")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workout`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CountUsersWithWorkoutsInRange counts distinct users with at least one workout within [start, end].
func (r *Repo) CountUsersWithWorkoutsInRange(ctx context.Context, start, end time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.countActive")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var count int
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT user_id)
		FROM workout
		WHERE created_at BETWEEN $1 AND $2
	`, start, end).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repo) CountUsersCreatedSince(ctx context.Context, since time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.countCreatedSince")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var count int
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM tracker_user WHERE created_at >= $1
	`, since).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// AverageWorkoutDuration is the mean duration over all workouts, 0 when there are none.
func (r *Repo) AverageWorkoutDuration(ctx context.Context) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.avgDuration")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var avg float64
	if err := r.db.QueryRow(ctx, `
		SELECT COALESCE(AVG(duration), 0)::float8 FROM workout
	`).Scan(&avg); err != nil {
		return 0, err
	}
	return avg, nil
}

// MostPopularCategory returns nil when no workouts exist.
// Ties are broken by the order of Categories.
func (r *Repo) MostPopularCategory(ctx context.Context) (_ *Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.mostPopularCategory")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	order := make([]string, 0, len(Categories))
	for _, c := range Categories {
		order = append(order, string(c))
	}

	var category Category
	err = r.db.QueryRow(ctx, `
		SELECT type
		FROM workout
		GROUP BY type
		ORDER BY COUNT(*) DESC, array_position($1::varchar[], type::varchar)
		LIMIT 1
	`, order).Scan(&category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("most popular category: %w", err)
	}

	return &category, nil
}

func scanWorkouts(rows pgx.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID,
			&w.UserID,
			&w.Type,
			&w.Duration,
			&w.CreatedAt,
		); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}
