package model

import "strings"

type ProjectStatus string

const (
	StatusInProgress ProjectStatus = "in-progress"
	StatusCompleted  ProjectStatus = "completed"
	StatusPlanned    ProjectStatus = "planned"
	StatusDelayed    ProjectStatus = "delayed"
	StatusOnHold     ProjectStatus = "on-hold"
)

// AllStatuses returns every status in display order.
func AllStatuses() []ProjectStatus {
	return []ProjectStatus{
		StatusInProgress,
		StatusCompleted,
		StatusPlanned,
		StatusDelayed,
		StatusOnHold,
	}
}

var statusLabels = map[ProjectStatus]string{
	StatusInProgress: "Em andamento",
	StatusCompleted:  "Concluida",
	StatusPlanned:    "Planejada",
	StatusDelayed:    "Atrasada",
	StatusOnHold:     "Suspensa",
}

func (s ProjectStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s ProjectStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// ParseStatus accepts the canonical status value, case-insensitively.
func ParseStatus(raw string) (ProjectStatus, bool) {
	status := ProjectStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", false
	}
	return status, true
}

type ProjectUpdate struct {
	ID          string `json:"id" yaml:"id" validate:"required"`
	Date        string `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description" yaml:"description"`
	ImageURL    string `json:"image_url,omitempty" yaml:"image_url"`
	Author      string `json:"author" yaml:"author" validate:"required"`
}

type ProjectMilestone struct {
	ID        string `json:"id" yaml:"id" validate:"required"`
	Label     string `json:"label" yaml:"label" validate:"required"`
	Date      string `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	Completed bool   `json:"completed" yaml:"completed"`
}

type Project struct {
	ID              string             `json:"id" yaml:"id" validate:"required"`
	Name            string             `json:"name" yaml:"name" validate:"required"`
	Location        string             `json:"location" yaml:"location"`
	City            string             `json:"city" yaml:"city" validate:"required"`
	District        string             `json:"district" yaml:"district" validate:"required"`
	Status          ProjectStatus      `json:"status" yaml:"status" validate:"required,oneof=in-progress completed planned delayed on-hold"`
	Progress        int                `json:"progress" yaml:"progress" validate:"gte=0,lte=100"`
	LastUpdate      string             `json:"last_update" yaml:"last_update" validate:"required,datetime=2006-01-02"`
	Lat             float64            `json:"lat" yaml:"lat" validate:"gte=-90,lte=90"`
	Lng             float64            `json:"lng" yaml:"lng" validate:"gte=-180,lte=180"`
	Contractor      string             `json:"contractor" yaml:"contractor"`
	StartDate       string             `json:"start_date" yaml:"start_date" validate:"omitempty,datetime=2006-01-02"`
	ExpectedEndDate string             `json:"expected_end_date" yaml:"expected_end_date" validate:"omitempty,datetime=2006-01-02"`
	ContractID      string             `json:"contract_id" yaml:"contract_id"`
	Budget          string             `json:"budget" yaml:"budget"`
	Category        string             `json:"category" yaml:"category"`
	Updates         []ProjectUpdate    `json:"updates" yaml:"updates" validate:"dive"`
	Milestones      []ProjectMilestone `json:"milestones" yaml:"milestones" validate:"dive"`
	GalleryImages   []string           `json:"gallery_images" yaml:"gallery_images"`
	HeroImage       *string            `json:"hero_image" yaml:"hero_image"`
}

func (p Project) Coordinates() LatLng {
	return LatLng{Lat: p.Lat, Lng: p.Lng}
}

// Clone returns a copy that shares no slices with p.
func (p Project) Clone() Project {
	out := p
	out.Updates = make([]ProjectUpdate, len(p.Updates))
	copy(out.Updates, p.Updates)
	out.Milestones = make([]ProjectMilestone, len(p.Milestones))
	copy(out.Milestones, p.Milestones)
	out.GalleryImages = make([]string, len(p.GalleryImages))
	copy(out.GalleryImages, p.GalleryImages)
	if p.HeroImage != nil {
		hero := *p.HeroImage
		out.HeroImage = &hero
	}
	return out
}

func CloneProjects(list []Project) []Project {
	out := make([]Project, len(list))
	for i, p := range list {
		out[i] = p.Clone()
	}
	return out
}
