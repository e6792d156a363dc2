package repository

import (
	"errors"
	"testing"

	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupContentTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	db.AutoMigrate(&domain.Project{}, &domain.ContactMessage{})
	return db
}

func TestProjectRepository_CRUD(t *testing.T) {
	repo := NewProjectRepository(setupContentTestDB(t))

	project := &domain.Project{
		Title:   "Portfolio Site",
		Summary: "This site",
		Tags:    "go,gin",
	}
	if err := repo.Create(project); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if project.ID == 0 {
		t.Fatal("expected auto-assigned ID")
	}

	found, err := repo.FindByID(project.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Title != "Portfolio Site" {
		t.Errorf("expected title round-trip, got %q", found.Title)
	}

	found.Summary = "Updated"
	if err := repo.Update(found); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	again, err := repo.FindByID(project.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if again.Summary != "Updated" {
		t.Errorf("expected updated summary, got %q", again.Summary)
	}

	if err := repo.Delete(project.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.FindByID(project.ID); !errors.Is(err, common.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound after delete, got %v", err)
	}
}

func TestProjectRepository_NotFound(t *testing.T) {
	repo := NewProjectRepository(setupContentTestDB(t))

	if _, err := repo.FindByID(42); !errors.Is(err, common.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
	if err := repo.Delete(42); !errors.Is(err, common.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound on missing delete, got %v", err)
	}
}

func TestProjectRepository_FeaturedFilterAndOrder(t *testing.T) {
	repo := NewProjectRepository(setupContentTestDB(t))

	seed := []*domain.Project{
		{Title: "Second", Featured: true, DisplayOrder: 2},
		{Title: "First", Featured: true, DisplayOrder: 1},
		{Title: "Hidden", Featured: false, DisplayOrder: 0},
	}
	for _, p := range seed {
		if err := repo.Create(p); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	featured, err := repo.GetAll(true)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(featured) != 2 {
		t.Fatalf("expected 2 featured projects, got %d", len(featured))
	}
	if featured[0].Title != "First" || featured[1].Title != "Second" {
		t.Errorf("expected display order, got %s, %s", featured[0].Title, featured[1].Title)
	}

	all, err := repo.GetAll(false)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 projects, got %d", len(all))
	}
}

func TestContactRepository_CreateListMarkRead(t *testing.T) {
	repo := NewContactRepository(setupContentTestDB(t))

	msg := &domain.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello",
	}
	if err := repo.Create(msg); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	total, err := repo.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 message, got %d", total)
	}

	if err := repo.MarkRead(msg.ID); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	messages, err := repo.List(0, 20)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(messages) != 1 || !messages[0].Read {
		t.Error("expected message marked read")
	}

	if err := repo.MarkRead(99); !errors.Is(err, common.ErrMessageNotFound) {
		t.Errorf("expected ErrMessageNotFound, got %v", err)
	}
}
