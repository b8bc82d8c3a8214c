package config

import (
	"errors"
	"log"

	"intia-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// defaultBranches are the agencies every installation starts with
var defaultBranches = []models.Branch{
	{Code: "DOUALA", Name: "INTIA - Douala"},
	{Code: "YAOUNDE", Name: "INTIA - Yaounde"},
	{Code: "DG", Name: "Direction Générale"},
}

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders. Safe to run on every start.
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedBranches(); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedBranches creates missing default branches and leaves existing ones untouched
func (s *Seeder) seedBranches() error {
	for _, b := range defaultBranches {
		var existing models.Branch
		err := s.db.Where("code = ?", b.Code).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		branch := b
		if err := s.db.Create(&branch).Error; err != nil {
			return err
		}
		log.Printf("   Created branch: %s (%s)", branch.Code, branch.Name)
	}
	return nil
}
