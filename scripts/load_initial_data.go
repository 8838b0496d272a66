package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"club-portal-backend/internal/config"
	"club-portal-backend/internal/database"
	"club-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML seed files
type ClubData struct {
	Name    string `yaml:"name"`
	AboutUs string `yaml:"about_us"`
	Vision  string `yaml:"vision"`
	Mission string `yaml:"mission"`
}

type UserData struct {
	Username  string `yaml:"username"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Course    string `yaml:"course"`
	IsActive  bool   `yaml:"is_active"`
}

type CommunityData struct {
	Name         string            `yaml:"name"`
	ClubName     string            `yaml:"club_name"`
	Description  string            `yaml:"description"`
	Email        string            `yaml:"email"`
	IsRecruiting bool              `yaml:"is_recruiting"`
	LeadUsername string            `yaml:"lead_username,omitempty"`
	SocialMedia  []SocialMediaData `yaml:"social_media,omitempty"`
}

type SocialMediaData struct {
	Platform string `yaml:"platform"`
	URL      string `yaml:"url"`
}

type PartnerData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	WebsiteURL  string `yaml:"website_url"`
	LogoURL     string `yaml:"logo_url,omitempty"`
}

// File structures
type ClubsFile struct {
	Clubs []ClubData `yaml:"clubs"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type CommunitiesFile struct {
	Communities []CommunityData `yaml:"communities"`
}

type PartnersFile struct {
	Partners []PartnerData `yaml:"partners"`
}

func main() {
	log.Println("loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("initial data loaded")
}

// connectWithRetry waits for a dockerized Postgres to accept connections.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	clubs, err := loadClubs(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load clubs: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	communities, err := loadCommunities(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load communities: %w", err)
	}

	partners, err := loadPartners(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load partners: %w", err)
	}

	// Clubs first, communities reference them by name
	clubMap := make(map[string]*models.Club)
	clubsCreated := 0
	for _, clubData := range clubs {
		club, created, err := createClub(db, clubData)
		if err != nil {
			return fmt.Errorf("failed to create club %s: %w", clubData.Name, err)
		}
		clubMap[clubData.Name] = club
		if created {
			clubsCreated++
		}
	}
	log.Printf("Clubs: %d created, %d total", clubsCreated, len(clubs))

	userMap := make(map[string]*models.User)
	usersCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
		}
		userMap[userData.Username] = user
		if created {
			usersCreated++
		}
	}
	log.Printf("Users: %d created, %d total", usersCreated, len(users))

	communitiesCreated := 0
	for _, communityData := range communities {
		_, created, err := createCommunity(db, communityData, clubMap, userMap)
		if err != nil {
			log.Printf("Warning: failed to create community %s: %v", communityData.Name, err)
			continue
		}
		if created {
			communitiesCreated++
		}
	}
	log.Printf("Communities: %d created, %d total", communitiesCreated, len(communities))

	partnersCreated := 0
	for _, partnerData := range partners {
		_, created, err := createPartner(db, partnerData)
		if err != nil {
			log.Printf("Warning: failed to create partner %s: %v", partnerData.Name, err)
			continue
		}
		if created {
			partnersCreated++
		}
	}
	log.Printf("Partners: %d created, %d total", partnersCreated, len(partners))

	return nil
}

func loadClubs(dataDir string) ([]ClubData, error) {
	var all []ClubData
	err := walkYAML(dataDir, "clubs", func(data []byte) error {
		var file ClubsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Clubs...)
		return nil
	})
	return all, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var all []UserData
	err := walkYAML(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Users...)
		return nil
	})
	return all, err
}

func loadCommunities(dataDir string) ([]CommunityData, error) {
	var all []CommunityData
	err := walkYAML(dataDir, "communities", func(data []byte) error {
		var file CommunitiesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Communities...)
		return nil
	})
	return all, err
}

func loadPartners(dataDir string) ([]PartnerData, error) {
	var all []PartnerData
	err := walkYAML(dataDir, "partners", func(data []byte) error {
		var file PartnersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Partners...)
		return nil
	})
	return all, err
}

func walkYAML(dataDir, nameHint string, handle func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, nameHint) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			return handle(data)
		}
		return nil
	})
}

func createClub(db *gorm.DB, clubData ClubData) (*models.Club, bool, error) {
	var club models.Club
	if err := db.Where("name = ?", clubData.Name).First(&club).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			club = models.Club{
				Name:    clubData.Name,
				AboutUs: clubData.AboutUs,
				Vision:  clubData.Vision,
				Mission: clubData.Mission,
			}
			if err := db.Create(&club).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create club: %w", err)
			}
			return &club, true, nil
		}
		return nil, false, fmt.Errorf("failed to query club: %w", err)
	}
	return &club, false, nil
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}
			user = models.User{
				Username:     userData.Username,
				Email:        userData.Email,
				PasswordHash: string(hash),
				FirstName:    userData.FirstName,
				LastName:     userData.LastName,
				Course:       userData.Course,
				IsActive:     userData.IsActive,
			}
			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil
		}
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, false, nil
}

func createCommunity(db *gorm.DB, communityData CommunityData, clubMap map[string]*models.Club, userMap map[string]*models.User) (*models.Community, bool, error) {
	club := clubMap[communityData.ClubName]
	if club == nil {
		return nil, false, fmt.Errorf("club %s not found for community %s", communityData.ClubName, communityData.Name)
	}

	var leadID *uuid.UUID
	if communityData.LeadUsername != "" {
		if lead := userMap[communityData.LeadUsername]; lead != nil {
			leadID = &lead.ID
		} else {
			log.Printf("Warning: user %s not found for community %s", communityData.LeadUsername, communityData.Name)
		}
	}

	var community models.Community
	if err := db.Where("name = ? AND club_id = ?", communityData.Name, club.ID).First(&community).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			community = models.Community{
				ClubID:       club.ID,
				Name:         communityData.Name,
				Description:  communityData.Description,
				Email:        communityData.Email,
				IsRecruiting: communityData.IsRecruiting,
				LeadID:       leadID,
			}
			for _, sm := range communityData.SocialMedia {
				community.SocialMedia = append(community.SocialMedia, models.SocialMediaLink{
					Platform: sm.Platform,
					URL:      sm.URL,
				})
			}
			if err := db.Create(&community).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create community: %w", err)
			}

			// Seeded leads get their role row; the one-role rule still holds
			// because seed data assigns each user at most once.
			if leadID != nil {
				role := models.ExecutiveRole{
					UserID:      *leadID,
					CommunityID: community.ID,
					Position:    models.PositionLead,
					JoinedDate:  time.Now(),
				}
				if err := db.Where("user_id = ?", *leadID).FirstOrCreate(&role, role).Error; err != nil {
					log.Printf("Warning: failed to create executive role: %v", err)
				}
			}
			return &community, true, nil
		}
		return nil, false, fmt.Errorf("failed to query community: %w", err)
	}
	return &community, false, nil
}

func createPartner(db *gorm.DB, partnerData PartnerData) (*models.Partner, bool, error) {
	var partner models.Partner
	if err := db.Where("name = ?", partnerData.Name).First(&partner).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			partner = models.Partner{
				Name:        partnerData.Name,
				Description: partnerData.Description,
				WebsiteURL:  partnerData.WebsiteURL,
				LogoURL:     partnerData.LogoURL,
			}
			if err := db.Create(&partner).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create partner: %w", err)
			}
			return &partner, true, nil
		}
		return nil, false, fmt.Errorf("failed to query partner: %w", err)
	}
	return &partner, false, nil
}
