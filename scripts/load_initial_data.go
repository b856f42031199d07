package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/config"
	"community-portal-backend/internal/database"
	"community-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type RegionData struct {
	Name string `yaml:"name"`
}

type OrganizationData struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	Website     string `yaml:"website"`
	Status      string `yaml:"status"`
	RegionName  string `yaml:"region_name,omitempty"`
}

type UserData struct {
	Name          string   `yaml:"name"`
	Email         string   `yaml:"email"`
	Role          string   `yaml:"role"`
	RegionName    string   `yaml:"region_name,omitempty"`
	Interests     []string `yaml:"interests,omitempty"`
	Organizations []string `yaml:"organizations,omitempty"`
}

type SectionData struct {
	Key      string                 `yaml:"key"`
	Title    string                 `yaml:"title"`
	Content  string                 `yaml:"content"`
	Position int                    `yaml:"position"`
	Settings map[string]interface{} `yaml:"settings,omitempty"`
}

type PageData struct {
	Slug            string        `yaml:"slug"`
	Title           string        `yaml:"title"`
	MetaDescription string        `yaml:"meta_description"`
	Status          string        `yaml:"status"`
	Sections        []SectionData `yaml:"sections"`
}

type NewsData struct {
	Title            string `yaml:"title"`
	Slug             string `yaml:"slug"`
	Excerpt          string `yaml:"excerpt"`
	Content          string `yaml:"content"`
	Category         string `yaml:"category"`
	OrganizationSlug string `yaml:"organization_slug,omitempty"`
	Featured         bool   `yaml:"featured"`
	DaysAgo          int    `yaml:"days_ago"`
}

// YAML file structures
type RegionsFile struct {
	Regions []RegionData `yaml:"regions"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type PagesFile struct {
	Pages []PageData `yaml:"pages"`
}

type NewsFile struct {
	News []NewsData `yaml:"news"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	if !cfg.IsProduction() {
		if err := printDevTokens(db, cfg); err != nil {
			log.Printf("⚠️  Could not issue development tokens: %v", err)
		}
	}

	log.Println("✅ Initial data loaded successfully!")
}

// printDevTokens logs a bearer token for every seeded user so the API can be exercised locally
func printDevTokens(db *gorm.DB, cfg *config.Config) error {
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg.JWTSecret, cfg.JWTIssuer), nil)
	if err != nil {
		return err
	}

	var users []models.User
	if err := db.Order("email").Find(&users).Error; err != nil {
		return err
	}
	for i := range users {
		token, err := authService.GenerateToken(&users[i])
		if err != nil {
			return err
		}
		log.Printf("🔑 %s (%s): %s", users[i].Email, users[i].Role, token)
	}
	return nil
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadFiles decodes every YAML file under dataDir whose path contains marker
func loadFiles[F any](dataDir, marker string) ([]F, error) {
	var files []F

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), marker) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file F
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		files = append(files, file)
		return nil
	})

	return files, err
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	regionFiles, err := loadFiles[RegionsFile](dataDir, "regions")
	if err != nil {
		return fmt.Errorf("failed to load regions: %w", err)
	}
	orgFiles, err := loadFiles[OrganizationsFile](dataDir, "organizations")
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}
	userFiles, err := loadFiles[UsersFile](dataDir, "users")
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	pageFiles, err := loadFiles[PagesFile](dataDir, "pages")
	if err != nil {
		return fmt.Errorf("failed to load pages: %w", err)
	}
	newsFiles, err := loadFiles[NewsFile](dataDir, "news")
	if err != nil {
		return fmt.Errorf("failed to load news: %w", err)
	}

	// Create regions first
	regionMap := make(map[string]*models.Region)
	regionCreated, regionTotal := 0, 0
	for _, file := range regionFiles {
		for _, data := range file.Regions {
			region := models.Region{Name: data.Name}
			created, err := firstOrCreate(db, &region, "name = ?", data.Name)
			if err != nil {
				return fmt.Errorf("failed to create region %s: %w", data.Name, err)
			}
			regionMap[data.Name] = &region
			regionTotal++
			if created {
				regionCreated++
			}
		}
	}
	log.Printf("📋 Regions: %d created, %d total", regionCreated, regionTotal)

	orgMap := make(map[string]*models.Organization)
	orgCreated, orgTotal := 0, 0
	for _, file := range orgFiles {
		for _, data := range file.Organizations {
			org := models.Organization{
				Name:        data.Name,
				Slug:        data.Slug,
				Description: data.Description,
				Website:     data.Website,
				Status:      models.OrganizationStatus(data.Status),
				RegionID:    regionID(regionMap, data.RegionName),
			}
			if org.Status == "" {
				org.Status = models.OrganizationStatusActive
			}
			created, err := firstOrCreate(db, &org, "slug = ?", data.Slug)
			if err != nil {
				return fmt.Errorf("failed to create organization %s: %w", data.Slug, err)
			}
			orgMap[data.Slug] = &org
			orgTotal++
			if created {
				orgCreated++
			}
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, orgTotal)

	userCreated, userTotal := 0, 0
	for _, file := range userFiles {
		for _, data := range file.Users {
			created, err := createUser(db, data, regionMap, orgMap)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", data.Email, err)
			}
			userTotal++
			if created {
				userCreated++
			}
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, userTotal)

	pageCreated, pageTotal := 0, 0
	for _, file := range pageFiles {
		for _, data := range file.Pages {
			created, err := createPage(db, data)
			if err != nil {
				return fmt.Errorf("failed to create page %s: %w", data.Slug, err)
			}
			pageTotal++
			if created {
				pageCreated++
			}
		}
	}
	log.Printf("📋 Pages: %d created, %d total", pageCreated, pageTotal)

	newsCreated, newsTotal := 0, 0
	now := time.Now()
	for _, file := range newsFiles {
		for _, data := range file.News {
			publishedAt := now.AddDate(0, 0, -data.DaysAgo)
			article := models.News{
				Title:       data.Title,
				Slug:        data.Slug,
				Excerpt:     data.Excerpt,
				Content:     data.Content,
				Category:    data.Category,
				Status:      models.NewsStatusPublished,
				IsFeatured:  data.Featured,
				PublishedAt: &publishedAt,
			}
			if org, ok := orgMap[data.OrganizationSlug]; ok {
				article.OrganizationID = &org.ID
				article.RegionID = org.RegionID
			}
			created, err := firstOrCreate(db, &article, "slug = ?", data.Slug)
			if err != nil {
				return fmt.Errorf("failed to create news %s: %w", data.Slug, err)
			}
			newsTotal++
			if created {
				newsCreated++
			}
		}
	}
	log.Printf("📋 News: %d created, %d total", newsCreated, newsTotal)

	return nil
}

// firstOrCreate loads the row matching query into dest, inserting dest when none exists
func firstOrCreate[T any](db *gorm.DB, dest *T, query string, args ...interface{}) (bool, error) {
	candidate := *dest
	err := db.Where(query, args...).First(dest).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query: %w", err)
	}
	*dest = candidate
	if err := db.Create(dest).Error; err != nil {
		return false, err
	}
	return true, nil
}

func regionID(regions map[string]*models.Region, name string) *uuid.UUID {
	if region, ok := regions[name]; ok {
		return &region.ID
	}
	return nil
}

func createUser(db *gorm.DB, data UserData, regions map[string]*models.Region, orgs map[string]*models.Organization) (bool, error) {
	user := models.User{
		Name:      data.Name,
		Email:     strings.ToLower(data.Email),
		Status:    models.UserStatusActive,
		Role:      models.UserRole(data.Role),
		RegionID:  regionID(regions, data.RegionName),
		Interests: data.Interests,
	}
	if user.Role == "" {
		user.Role = models.UserRoleVolunteer
	}
	created, err := firstOrCreate(db, &user, "email = ?", user.Email)
	if err != nil {
		return false, err
	}

	for _, slug := range data.Organizations {
		org, ok := orgs[slug]
		if !ok {
			return false, fmt.Errorf("unknown organization %s", slug)
		}
		membership := models.OrganizationMember{
			OrganizationID: org.ID,
			UserID:         user.ID,
			Role:           models.MemberRoleMember,
			JoinedAt:       time.Now(),
		}
		if _, err := firstOrCreate(db, &membership, "organization_id = ? AND user_id = ?", org.ID, user.ID); err != nil {
			return false, fmt.Errorf("failed to add membership in %s: %w", slug, err)
		}
	}
	return created, nil
}

func createPage(db *gorm.DB, data PageData) (bool, error) {
	page := models.Page{
		Slug:            data.Slug,
		Title:           data.Title,
		MetaDescription: data.MetaDescription,
		Status:          models.PageStatus(data.Status),
	}
	if page.Status == "" {
		page.Status = models.PageStatusPublished
	}
	created, err := firstOrCreate(db, &page, "slug = ?", data.Slug)
	if err != nil || !created {
		return created, err
	}

	for _, s := range data.Sections {
		settings, _ := json.Marshal(s.Settings)
		section := models.PageSection{
			PageID:   page.ID,
			Key:      s.Key,
			Title:    s.Title,
			Content:  s.Content,
			Position: s.Position,
			IsActive: true,
			Settings: settings,
		}
		if err := db.Create(&section).Error; err != nil {
			return false, fmt.Errorf("failed to create section %s: %w", s.Key, err)
		}
	}
	return true, nil
}
