package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/sporttracker/internal/config"
	"github.com/2beens/sporttracker/internal/db"
	"github.com/2beens/sporttracker/internal/stats"
	"github.com/2beens/sporttracker/internal/workout"
	"github.com/2beens/sporttracker/pkg"
)

// seeds the dev database with fake users and workouts spread over the last few weeks
func main() {
	env := flag.String("env", "development", "environment [dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	usersCount := flag.Int("users", 20, "number of fake users to create")
	weeks := flag.Int("weeks", 3, "number of weeks (current one included) to fill with workouts")
	maxPerWeek := flag.Int("max-per-week", 5, "max number of workouts per user per week")
	seed := flag.Int64("seed", 0, "random seed, 0 for a random one")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}
	if cfg.Environment == "production" {
		log.Fatalln("refusing to seed a production database")
	}
	log.SetLevel(log.DebugLevel)

	gofakeit.Seed(*seed)

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("SPORTTRACKER_DB_PASS"),
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	repo := workout.NewRepo(dbPool)
	now := time.Now()

	var usersAdded, workoutsAdded int
	for i := 0; i < *usersCount; i++ {
		createdAt := now.AddDate(0, 0, -7*(*weeks)-gofakeit.Number(0, 30))
		user, err := repo.CreateUser(ctx, workout.User{
			TelegramID: int64(gofakeit.Number(100_000_000, 999_999_999)),
			Name:       gofakeit.Username(),
			Language:   workout.Languages[gofakeit.Number(0, len(workout.Languages)-1)],
			CreatedAt:  createdAt,
			UpdatedAt:  createdAt,
		})
		if err != nil {
			if pkg.IsUniqueViolationError(err) {
				log.Debugf("telegram id collision, skipping user")
				continue
			}
			log.Fatalf("create user: %s", err)
		}
		usersAdded++

		week := stats.CurrentWeek(now)
		for w := 0; w < *weeks; w++ {
			end := week.End
			if end.After(now) {
				end = now
			}
			for n := gofakeit.Number(0, *maxPerWeek); n > 0; n-- {
				record, err := workout.NewWorkout(
					user.ID,
					workout.Categories[gofakeit.Number(0, len(workout.Categories)-1)],
					gofakeit.Number(3, 24)*5,
					gofakeit.DateRange(week.Start, end),
				)
				if err != nil {
					log.Fatalf("new workout: %s", err)
				}
				if _, err := repo.AddWorkout(ctx, record); err != nil {
					log.Fatalf("add workout: %s", err)
				}
				workoutsAdded++
			}
			week = week.Previous()
		}
	}

	log.Infof("seeded %d users and %d workouts", usersAdded, workoutsAdded)
}
