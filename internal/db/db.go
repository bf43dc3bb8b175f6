package db

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/nurpe/obras-portal/internal/config"
	"github.com/nurpe/obras-portal/internal/model"
)

// Dataset is the full static content of the portal, as seeded at start-up.
type Dataset struct {
	Regions     []model.Region       `yaml:"regions"`
	Projects    []model.Project      `yaml:"projects"`
	Users       []model.AdminUser    `yaml:"users"`
	Profiles    []model.AdminProfile `yaml:"profiles"`
	Permissions []model.Permission   `yaml:"permissions"`
	Settings    model.PortalSettings `yaml:"settings"`
}

// Store keeps every collection in memory. Reads hand out copies so callers
// can never mutate the canonical records.
type Store struct {
	mu          sync.RWMutex
	regions     []model.Region
	projects    []model.Project
	users       []model.AdminUser
	profiles    []model.AdminProfile
	permissions []model.Permission
	settings    model.PortalSettings
}

func New(cfg *config.Config, log zerolog.Logger) (*Store, error) {
	data := Fixtures()
	source := "built-in fixtures"
	if cfg != nil && cfg.Data.SeedFile != "" {
		loaded, err := LoadSeedFile(cfg.Data.SeedFile)
		if err != nil {
			return nil, err
		}
		data = loaded
		source = cfg.Data.SeedFile
	}

	store, err := NewStore(data)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("source", source).
		Int("projects", len(data.Projects)).
		Int("regions", len(data.Regions)).
		Int("users", len(data.Users)).
		Msg("project store seeded")
	return store, nil
}

func NewStore(data Dataset) (*Store, error) {
	if data.Settings.OrgName == "" {
		data.Settings = DefaultSettings()
	}
	if err := validateDataset(data); err != nil {
		return nil, err
	}
	s := &Store{
		regions:     model.CloneRegions(data.Regions),
		projects:    model.CloneProjects(data.Projects),
		users:       model.CloneUsers(data.Users),
		permissions: append([]model.Permission{}, data.Permissions...),
		settings:    data.Settings,
	}
	s.profiles = make([]model.AdminProfile, len(data.Profiles))
	for i, p := range data.Profiles {
		s.profiles[i] = p.Clone()
	}
	return s, nil
}

func LoadSeedFile(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read seed file: %w", err)
	}
	var data Dataset
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Dataset{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return data, nil
}

func validateDataset(data Dataset) error {
	seen := make(map[string]struct{}, len(data.Projects))
	for i, p := range data.Projects {
		if err := model.Validate(p); err != nil {
			return fmt.Errorf("project %d (%s): %w", i+1, p.ID, err)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("project %d: duplicate id %s", i+1, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	for i, r := range data.Regions {
		if err := model.Validate(r); err != nil {
			return fmt.Errorf("region %d (%s): %w", i+1, r.ID, err)
		}
	}
	for i, u := range data.Users {
		if err := model.Validate(u); err != nil {
			return fmt.Errorf("user %d (%s): %w", i+1, u.ID, err)
		}
	}
	for i, p := range data.Profiles {
		if err := model.Validate(p); err != nil {
			return fmt.Errorf("profile %d (%s): %w", i+1, p.ID, err)
		}
	}
	for i, p := range data.Permissions {
		if err := model.Validate(p); err != nil {
			return fmt.Errorf("permission %d (%s): %w", i+1, p.ID, err)
		}
	}
	if err := model.Validate(data.Settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}

func (s *Store) Regions() []model.Region {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneRegions(s.regions)
}

func (s *Store) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneProjects(s.projects)
}

func (s *Store) Project(id string) (model.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return model.Project{}, false
}

func (s *Store) PrependProject(p model.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append([]model.Project{p.Clone()}, s.projects...)
}

// ReplaceProject swaps the record with the same id; false when none exists.
func (s *Store) ReplaceProject(p model.Project) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = p.Clone()
			return true
		}
	}
	return false
}

func (s *Store) Users() []model.AdminUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneUsers(s.users)
}

func (s *Store) User(id string) (model.AdminUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u.Clone(), true
		}
	}
	return model.AdminUser{}, false
}

func (s *Store) PrependUser(u model.AdminUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]model.AdminUser{u.Clone()}, s.users...)
}

func (s *Store) ReplaceUser(u model.AdminUser) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u.Clone()
			return true
		}
	}
	return false
}

func (s *Store) Profiles() []model.AdminProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.AdminProfile, len(s.profiles))
	for i, p := range s.profiles {
		out[i] = p.Clone()
	}
	return out
}

func (s *Store) Profile(id string) (model.AdminProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.profiles {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return model.AdminProfile{}, false
}

func (s *Store) AppendProfile(p model.AdminProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = append(s.profiles, p.Clone())
}

func (s *Store) ReplaceProfile(p model.AdminProfile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.profiles {
		if s.profiles[i].ID == p.ID {
			s.profiles[i] = p.Clone()
			return true
		}
	}
	return false
}

func (s *Store) Permissions() []model.Permission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Permission{}, s.permissions...)
}

func (s *Store) Settings() model.PortalSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) SaveSettings(settings model.PortalSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}
