// Command seed loads the career and course catalogs from YAML files into
// Postgres and invalidates the Redis catalog cache. Inserts are
// idempotent, so re-running the seeder is safe.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"

	rediscache "github.com/careerpath-labs/career-compass/internal/adapter/cache/redis"
	"github.com/careerpath-labs/career-compass/internal/adapter/observability"
	"github.com/careerpath-labs/career-compass/internal/adapter/repo/postgres"
	"github.com/careerpath-labs/career-compass/internal/config"
	"github.com/careerpath-labs/career-compass/internal/domain"
)

type careerSeed struct {
	ID             string   `yaml:"id"`
	Title          string   `yaml:"title"`
	Description    string   `yaml:"description"`
	RequiredSkills []string `yaml:"required_skills"`
	Interests      []string `yaml:"interests"`
}

type courseSeed struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Level        string   `yaml:"level"`
	SkillsGained []string `yaml:"skills_gained"`
}

func main() {
	dir := flag.String("dir", "seed", "directory containing careers.yaml and courses.yaml")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DBURL)
	if err != nil {
		slog.Error("db connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := run(ctx, *dir, pool); err != nil {
		slog.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	defer func() { _ = rdb.Close() }()
	rediscache.Invalidate(ctx, rdb)
	slog.Info("seed complete")
}

func run(ctx context.Context, dir string, pool postgres.PgxPool) error {
	var careers []careerSeed
	if err := loadYAML(filepath.Join(dir, "careers.yaml"), &careers); err != nil {
		return err
	}
	var courses []courseSeed
	if err := loadYAML(filepath.Join(dir, "courses.yaml"), &courses); err != nil {
		return err
	}

	careerRepo := postgres.NewCareerRepo(pool)
	for _, c := range careers {
		id := c.ID
		if id == "" {
			id = uuid.New().String()
		}
		err := careerRepo.Insert(ctx, domain.Career{
			ID:             id,
			Title:          c.Title,
			Description:    c.Description,
			RequiredSkills: c.RequiredSkills,
			Interests:      c.Interests,
		})
		if err != nil {
			return fmt.Errorf("seed career %q: %w", c.Title, err)
		}
	}
	slog.Info("careers seeded", slog.Int("count", len(careers)))

	courseRepo := postgres.NewCourseRepo(pool)
	for _, c := range courses {
		id := c.ID
		if id == "" {
			id = uuid.New().String()
		}
		err := courseRepo.Insert(ctx, domain.Course{
			ID:           id,
			Title:        c.Title,
			Description:  c.Description,
			Level:        c.Level,
			SkillsGained: c.SkillsGained,
		})
		if err != nil {
			return fmt.Errorf("seed course %q: %w", c.Title, err)
		}
	}
	slog.Info("courses seeded", slog.Int("count", len(courses)))
	return nil
}

func loadYAML(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
