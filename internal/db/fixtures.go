package db

import "github.com/nurpe/obras-portal/internal/model"

// Fixtures is the reference dataset of the municipal portal: three regions of
// three cities each, twelve tracked works and the admin directory.
func Fixtures() Dataset {
	return Dataset{
		Regions:     fixtureRegions(),
		Projects:    fixtureProjects(),
		Users:       fixtureUsers(),
		Profiles:    fixtureProfiles(),
		Permissions: fixturePermissions(),
		Settings:    DefaultSettings(),
	}
}

func DefaultSettings() model.PortalSettings {
	return model.PortalSettings{
		OrgName:             "Portal de Obras Municipal",
		OrgEmail:            "contato@portal.gov",
		OrgPhone:            "(11) 3000-0000",
		OrgDescription:      "Sistema de acompanhamento de obras publicas municipais.",
		EmailNotifications:  true,
		UpdateAlerts:        true,
		DeadlineAlerts:      true,
		WeeklyReport:        false,
		MaxUsersPerProfile:  50,
		UpdateFrequencyDays: 7,
		SessionTimeoutMin:   30,
		DefaultLanguage:     "pt-BR",
		TwoFactor:           false,
		PasswordExpiryDays:  90,
		MinPasswordLength:   8,
	}
}

func fixtureRegions() []model.Region {
	return []model.Region{
		{
			ID:     "region-norte",
			Name:   "Region Norte",
			Cities: []model.City{
				{ID: "city-1", Name: "San Miguel", Lat: -12.077, Lng: -77.084, Zoom: 14},
				{ID: "city-2", Name: "Los Olivos", Lat: -11.955, Lng: -77.066, Zoom: 14},
				{ID: "city-3", Name: "Independencia", Lat: -11.995, Lng: -77.052, Zoom: 14},
			},
		},
		{
			ID:     "region-centro",
			Name:   "Region Centro",
			Cities: []model.City{
				{ID: "city-4", Name: "Lima Centro", Lat: -12.046, Lng: -77.043, Zoom: 14},
				{ID: "city-5", Name: "La Victoria", Lat: -12.068, Lng: -77.018, Zoom: 14},
				{ID: "city-6", Name: "Rimac", Lat: -12.025, Lng: -77.035, Zoom: 14},
			},
		},
		{
			ID:     "region-sur",
			Name:   "Region Sur",
			Cities: []model.City{
				{ID: "city-7", Name: "Miraflores", Lat: -12.121, Lng: -77.037, Zoom: 14},
				{ID: "city-8", Name: "Surco", Lat: -12.146, Lng: -76.993, Zoom: 14},
				{ID: "city-9", Name: "San Borja", Lat: -12.106, Lng: -76.998, Zoom: 14},
			},
		},
	}
}

func fixtureProjects() []model.Project {
	return []model.Project{
		{
			ID:              "proj-001",
			Name:            "Av. Principal Road Rehabilitation",
			Location:        "Av. Principal, Block 12-18",
			City:            "San Miguel",
			District:        "Region Norte",
			Status:          model.StatusInProgress,
			Progress:        67,
			LastUpdate:      "2026-02-08",
			Lat:             -12.078,
			Lng:             -77.086,
			Contractor:      "Constructora Nacional S.A.",
			StartDate:       "2025-06-15",
			ExpectedEndDate: "2026-08-30",
			ContractID:      "CP-2025-0142",
			Budget:          "S/ 2,450,000",
			Category:        "Road Infrastructure",
			GalleryImages:   []string{},
			Milestones:      []model.ProjectMilestone{
				{ID: "ms-001a", Label: "Inicio da obra", Date: "2025-06-15", Completed: true},
				{ID: "ms-001b", Label: "Escavacao concluida", Date: "2025-12-10", Completed: true},
				{ID: "ms-001c", Label: "Drenagem instalada", Date: "2026-01-22", Completed: true},
				{ID: "ms-001d", Label: "Pavimentacao asfaltica", Date: "2026-04-15", Completed: false},
				{ID: "ms-001e", Label: "Sinalizacao e entrega", Date: "2026-08-30", Completed: false},
			},
			Updates: []model.ProjectUpdate{
				{
					ID:          "upd-001a",
					Date:        "2026-02-08",
					Title:       "Asphalt layer completed on blocks 12-15",
					Description: "The first layer of asphalt has been applied to blocks 12 through 15. Blocks 16-18 are scheduled for next week. Traffic diversion remains in effect on the south lane.",
					ImageURL:    "/placeholder-road-1.jpg",
					Author:      "Eng. Maria Torres",
				},
				{
					ID:          "upd-001b",
					Date:        "2026-01-22",
					Title:       "Drainage installation completed",
					Description: "Underground drainage system fully installed across all blocks. Pressure tests passed with satisfactory results. No water retention detected during recent rainfall.",
					ImageURL:    "/placeholder-road-2.jpg",
					Author:      "Eng. Carlos Mendez",
				},
				{
					ID:          "upd-001c",
					Date:        "2025-12-10",
					Title:       "Excavation phase completed",
					Description: "All excavation work completed on schedule. Soil samples met quality standards for road foundation. Temporary barriers installed for pedestrian safety.",
					Author:      "Eng. Maria Torres",
				},
				{
					ID:          "upd-001d",
					Date:        "2025-09-03",
					Title:       "Project commenced",
					Description: "Official start of construction. Equipment mobilized to site. Community notification issued via municipal channels.",
					Author:      "Project Office",
				},
			},
		},
		{
			ID:              "proj-002",
			Name:            "Municipal Water Treatment Plant Expansion",
			Location:        "Sector Industrial, Zone B",
			City:            "San Miguel",
			District:        "Region Norte",
			Status:          model.StatusInProgress,
			Progress:        42,
			LastUpdate:      "2026-02-05",
			Lat:             -12.074,
			Lng:             -77.081,
			Contractor:      "Hidro Ingenieria S.A.C.",
			StartDate:       "2025-09-01",
			ExpectedEndDate: "2027-03-15",
			ContractID:      "CP-2025-0198",
			Budget:          "S/ 8,900,000",
			Category:        "Water & Sanitation",
			GalleryImages:   []string{},
			Milestones:      []model.ProjectMilestone{
				{ID: "ms-002a", Label: "Inicio da obra", Date: "2025-09-01", Completed: true},
				{ID: "ms-002b", Label: "Fundacao concluida", Date: "2026-03-15", Completed: false},
				{ID: "ms-002c", Label: "Instalacao de equipamentos", Date: "2026-09-01", Completed: false},
				{ID: "ms-002d", Label: "Testes operacionais", Date: "2027-01-15", Completed: false},
				{ID: "ms-002e", Label: "Entrega final", Date: "2027-03-15", Completed: false},
			},
			Updates: []model.ProjectUpdate{
				{
					ID:          "upd-002a",
					Date:        "2026-02-05",
					Title:       "Foundation structure 80% complete",
					Description: "Reinforced concrete foundation for the new treatment module is 80% complete. Steel reinforcement meets specification standards.",
					ImageURL:    "/placeholder-water-1.jpg",
					Author:      "Eng. Pedro Alvarez",
				},
				{
					ID:          "upd-002b",
					Date:        "2026-01-15",
					Title:       "Environmental compliance review passed",
					Description: "Monthly environmental compliance audit completed. All parameters within acceptable limits. Water discharge quality meets regulatory standards.",
					Author:      "Environmental Office",
				},
			},
		},
		{
			ID:              "proj-003",
			Name:            "Community Health Center Construction",
			Location:        "Jr. Salud 450, Urbanizacion Los Jardines",
			City:            "Los Olivos",
			District:        "Region Norte",
			Status:          model.StatusPlanned,
			Progress:        0,
			LastUpdate:      "2026-01-28",
			Lat:             -11.958,
			Lng:             -77.063,
			Contractor:      "Edificaciones del Norte E.I.R.L.",
			StartDate:       "2026-04-01",
			ExpectedEndDate: "2027-06-30",
			ContractID:      "CP-2026-0015",
			Budget:          "S/ 5,200,000",
			Category:        "Healthcare",
			GalleryImages:   []string{},
			Milestones:      []model.ProjectMilestone{
				{ID: "ms-003a", Label: "Aquisicao do terreno", Date: "2026-01-28", Completed: true},
				{ID: "ms-003b", Label: "Inicio da construcao", Date: "2026-04-01", Completed: false},
				{ID: "ms-003c", Label: "Estrutura concluida", Date: "2027-01-15", Completed: false},
				{ID: "ms-003d", Label: "Entrega final", Date: "2027-06-30", Completed: false},
			},
			Updates: []model.ProjectUpdate{
				{
					ID:          "upd-003a",
					Date:        "2026-01-28",
					Title:       "Land acquisition finalized",
					Description: "Municipal land transfer completed. Property boundaries officially registered. Geotechnical survey scheduled for March 2026.",
					Author:      "Legal Department",
				},
			},
		},
		{
			ID:              "proj-004",
			Name:            "Public School Seismic Reinforcement",
			Location:        "I.E. Nacional 2045, Av. Educacion",
			City:            "Los Olivos",
			District:        "Region Norte",
			Status:          model.StatusCompleted,
			Progress:        100,
			LastUpdate:      "2026-01-10",
			Lat:             -11.952,
			Lng:             -77.069,
			Contractor:      "Reforzamiento Estructural Peru S.A.",
			StartDate:       "2025-03-10",
			ExpectedEndDate: "2025-12-31",
			ContractID:      "CP-2025-0078",
			Budget:          "S/ 1,800,000",
			Category:        "Education",
			GalleryImages:   []string{},
			Milestones:      []model.ProjectMilestone{
				{ID: "ms-004a", Label: "Inicio do reforco", Date: "2025-03-10", Completed: true},
				{ID: "ms-004b", Label: "Reforco estrutural concluido", Date: "2025-09-15", Completed: true},
				{ID: "ms-004c", Label: "Acabamentos internos", Date: "2025-12-15", Completed: true},
				{ID: "ms-004d", Label: "Inspecao final aprovada", Date: "2026-01-10", Completed: true},
			},
			Updates: []model.ProjectUpdate{
				{
					ID:          "upd-004a",
					Date:        "2026-01-10",
					Title:       "Final inspection approved",
					Description: "Independent structural assessment confirmed compliance with current seismic codes. Building cleared for occupancy. Final documentation submitted to ministry.",
					ImageURL:    "/placeholder-school-1.jpg",
					Author:      "Quality Assurance Office",
				},
				{
					ID:          "upd-004b",
					Date:        "2025-12-15",
					Title:       "Interior finishing completed",
					Description: "All classrooms repainted. Electrical system upgraded. New emergency signage installed throughout the building.",
					Author:      "Eng. Rosa Huaman",
				},
			},
		},
		{
			ID:              "proj-005",
			Name:            "Pedestrian Bridge over Av. Tupac Amaru",
			Location:        "Km 8.5, Av. Tupac Amaru",
			City:            "Independencia",
			District:        "Region Norte",
			Status:          model.StatusDelayed,
			Progress:        31,
			LastUpdate:      "2026-02-01",
			Lat:             -11.998,
			Lng:             -77.055,
			Contractor:      "Puentes y Estructuras S.A.C.",
			StartDate:       "2025-07-01",
			ExpectedEndDate: "2026-03-31",
			ContractID:      "CP-2025-0156",
			Budget:          "S/ 3,100,000",
			Category:        "Transport Infrastructure",
			GalleryImages:   []string{},
			Milestones:      []model.ProjectMilestone{
				{ID: "ms-005a", Label: "Inicio da obra", Date: "2025-07-01", Completed: true},
				{ID: "ms-005b", Label: "Colunas de fundacao", Date: "2025-11-20", Completed: true},
				{ID: "ms-005c", Label: "Estrutura metalica", Date: "2026-02-15", Completed: false},
				{ID: "ms-005d", Label: "Entrega prevista", Date: "2026-03-31", Completed: false},
			},
			Updates: []model.ProjectUpdate{
				{
					ID:          "upd-005a",
					Date:        "2026-02-01",
					Title:       "Delay notification issued",
					Description: "Construction delayed due to pending utility relocation by electricity provider. New timeline under review. Estimated 60-day delay.",
					Author:      "Project Management Unit",
				},
				{
					ID:          "upd-005b",
					Date:        "2025-11-20",
					Title:       "Foundation columns installed",
					Description: "Two of four foundation columns successfully installed. Load-bearing tests passed inspection.",
					ImageURL:    "/placeholder-bridge-1.jpg",
					Author:      "Eng. Luis Vargas",
				},
			},
		},
		{
			ID:              "proj-006",
			Name:            "Plaza Mayor Renovation",
			Location:        "Plaza Mayor, Centro Historico",
			City:            "Lima Centro",
			District:        "Region Centro",
			Status:          model.StatusInProgress,
			Progress:        85,
			LastUpdate:      "2026-02-09",
			Lat:             -12.045,
			Lng:             -77.042,
			Contractor:      "Restauraciones Urbanas S.A.",
			StartDate:       "2025-04-15",
			ExpectedEndDate: "2026-04-15",
			ContractID:      "CP-2025-0089",
			Budget:          "S/ 4,600,000",
			Category:        "Public Spaces",
			GalleryImages:   []string{},
			Milestones:      []model.ProjectMilestone{
				{ID: "ms-006a", Label: "Inicio da renovacao", Date: "2025-04-15", Completed: true},
				{ID: "ms-006b", Label: "Pavimentacao em pedra", Date: "2026-01-25", Completed: true},
				{ID: "ms-006c", Label: "Iluminacao instalada", Date: "2026-03-15", Completed: false},
				{ID: "ms-006d", Label: "Entrega final", Date: "2026-04-15", Completed: false},
			},
			Updates: []model.ProjectUpdate{
				{
					ID:          "upd-006a",
					Date:        "2026-02-09",
					Title:       "Lighting system installation underway",
					Description: "New energy-efficient LED lighting system being installed. 60% of fixtures in place. Heritage-compatible design approved by cultural preservation office.",
					ImageURL:    "/placeholder-plaza-1.jpg",
					Author:      "Eng. Ana Gutierrez",
				},
				{
					ID:          "upd-006b",
					Date:        "2026-01-25",
					Title:       "Stone paving 95% complete",
					Description: "Original stone pavers restored and reinstalled in main plaza area. New accessible pathways added connecting all entry points.",
					Author:      "Eng. Ana Gutierrez",
				},
			},
		},
		{
			ID:              "proj-007",
			Name:            "Storm Drain System Upgrade",
			Location:        "Multiple streets, La Victoria district",
			City:            "La Victoria",
			District:        "Region Centro",
			Status:          model.StatusInProgress,
			Progress:        55,
			LastUpdate:      "2026-02-07",
			Lat:             -12.070,
			Lng:             -77.015,
			Contractor:      "Drenajes Metropolitanos S.A.",
			StartDate:       "2025-08-20",
			ExpectedEndDate: "2026-07-31",
			ContractID:      "CP-2025-0177",
			Budget:          "S/ 6,300,000",
			Category:        "Water & Sanitation",
			GalleryImages:   []string{},
			Milestones:      []model.ProjectMilestone{
				{ID: "ms-007a", Label: "Inicio da fase 1", Date: "2025-08-20", Completed: true},
				{ID: "ms-007b", Label: "Fase 1 operacional", Date: "2026-01-30", Completed: true},
				{ID: "ms-007c", Label: "Inicio da fase 2", Date: "2026-02-07", Completed: true},
				{ID: "ms-007d", Label: "Entrega final", Date: "2026-07-31", Completed: false},
			},
			Updates: []model.ProjectUpdate{
				{
					ID:          "upd-007a",
					Date:        "2026-02-07",
					Title:       "Phase 2 excavation started",
					Description: "Excavation for second phase covering streets 8-15 has commenced. Phase 1 drains operational and performing as designed.",
					Author:      "Eng. Jorge Castillo",
				},
			},
		},
		{
			ID:              "proj-008",
			Name:            "Rimac River Walkway",
			Location:        "Malecon Rimac, Sections 3-7",
			City:            "Rimac",
			District:        "Region Centro",
			Status:          model.StatusOnHold,
			Progress:        18,
			LastUpdate:      "2026-01-15",
			Lat:             -12.024,
			Lng:             -77.033,
			Contractor:      "Paisajismo Urbano S.A.C.",
			StartDate:       "2025-10-01",
			ExpectedEndDate: "2026-12-31",
			ContractID:      "CP-2025-0210",
			Budget:          "S/ 7,500,000",
			Category:        "Public Spaces",
			GalleryImages:   []string{},
			Milestones:      []model.ProjectMilestone{
				{ID: "ms-008a", Label: "Inicio da obra", Date: "2025-10-01", Completed: true},
				{ID: "ms-008b", Label: "Obra suspensa", Date: "2026-01-15", Completed: false},
				{ID: "ms-008c", Label: "Retomada prevista", Date: "2026-06-01", Completed: false},
				{ID: "ms-008d", Label: "Entrega final", Date: "2026-12-31", Completed: false},
			},
			Updates: []model.ProjectUpdate{
				{
					ID:          "upd-008a",
					Date:        "2026-01-15",
					Title:       "Project placed on hold",
					Description: "Construction temporarily suspended pending resolution of land rights dispute in section 5. Legal proceedings expected to conclude by Q2 2026.",
					Author:      "Legal Department",
				},
			},
		},
		{
			ID:              "proj-009",
			Name:            "Miraflores Bike Lane Network",
			Location:        "Av. Larco to Malecon Cisneros",
			City:            "Miraflores",
			District:        "Region Sur",
			Status:          model.StatusCompleted,
			Progress:        100,
			LastUpdate:      "2025-12-20",
			Lat:             -12.122,
			Lng:             -77.035,
			Contractor:      "Movilidad Verde S.A.",
			StartDate:       "2025-02-01",
			ExpectedEndDate: "2025-11-30",
			ContractID:      "CP-2025-0034",
			Budget:          "S/ 2,100,000",
			Category:        "Transport Infrastructure",
			GalleryImages:   []string{},
			Milestones:      []model.ProjectMilestone{
				{ID: "ms-009a", Label: "Inicio da obra", Date: "2025-02-01", Completed: true},
				{ID: "ms-009b", Label: "Ciclovias concluidas", Date: "2025-09-30", Completed: true},
				{ID: "ms-009c", Label: "Sinalizacao instalada", Date: "2025-11-15", Completed: true},
				{ID: "ms-009d", Label: "Projeto concluido", Date: "2025-12-20", Completed: true},
			},
			Updates: []model.ProjectUpdate{
				{
					ID:          "upd-009a",
					Date:        "2025-12-20",
					Title:       "Project completed and operational",
					Description: "All 12km of bike lanes now operational. Signage, traffic calming measures, and bicycle parking stations fully installed. Safety audit completed.",
					ImageURL:    "/placeholder-bike-1.jpg",
					Author:      "Project Completion Office",
				},
			},
		},
		{
			ID:              "proj-010",
			Name:            "Surco Sports Complex",
			Location:        "Parque Zonal, Av. Los Constructores",
			City:            "Surco",
			District:        "Region Sur",
			Status:          model.StatusInProgress,
			Progress:        38,
			LastUpdate:      "2026-02-06",
			Lat:             -12.148,
			Lng:             -76.991,
			Contractor:      "Infraestructura Deportiva S.A.",
			StartDate:       "2025-11-01",
			ExpectedEndDate: "2027-02-28",
			ContractID:      "CP-2025-0245",
			Budget:          "S/ 12,400,000",
			Category:        "Sports & Recreation",
			GalleryImages:   []string{},
			Milestones:      []model.ProjectMilestone{
				{ID: "ms-010a", Label: "Inicio da obra", Date: "2025-11-01", Completed: true},
				{ID: "ms-010b", Label: "Fundacoes concluidas", Date: "2026-02-28", Completed: false},
				{ID: "ms-010c", Label: "Estrutura metalica", Date: "2026-08-15", Completed: false},
				{ID: "ms-010d", Label: "Entrega final", Date: "2027-02-28", Completed: false},
			},
			Updates: []model.ProjectUpdate{
				{
					ID:          "upd-010a",
					Date:        "2026-02-06",
					Title:       "Steel structure for main arena rising",
					Description: "Structural steel framework for the main covered arena is 40% erected. Foundation work for the swimming pool complex has begun.",
					ImageURL:    "/placeholder-sports-1.jpg",
					Author:      "Eng. Fernando Ramos",
				},
			},
		},
		{
			ID:              "proj-011",
			Name:            "San Borja Cultural Center Extension",
			Location:        "Av. San Borja Sur 500",
			City:            "San Borja",
			District:        "Region Sur",
			Status:          model.StatusPlanned,
			Progress:        0,
			LastUpdate:      "2026-02-03",
			Lat:             -12.108,
			Lng:             -76.996,
			Contractor:      "To be assigned",
			StartDate:       "2026-06-01",
			ExpectedEndDate: "2027-12-31",
			ContractID:      "CP-2026-0028",
			Budget:          "S/ 9,800,000",
			Category:        "Culture & Education",
			GalleryImages:   []string{},
			Milestones:      []model.ProjectMilestone{
				{ID: "ms-011a", Label: "Projeto arquitetonico aprovado", Date: "2026-02-03", Completed: true},
				{ID: "ms-011b", Label: "Selecao do empreiteiro", Date: "2026-03-15", Completed: false},
				{ID: "ms-011c", Label: "Inicio da construcao", Date: "2026-06-01", Completed: false},
				{ID: "ms-011d", Label: "Entrega final", Date: "2027-12-31", Completed: false},
			},
			Updates: []model.ProjectUpdate{
				{
					ID:          "upd-011a",
					Date:        "2026-02-03",
					Title:       "Architectural design approved",
					Description: "Final architectural plans approved by municipal planning committee. Public comment period concluded with no objections. Contractor selection process begins March 2026.",
					Author:      "Planning Department",
				},
			},
		},
		{
			ID:              "proj-012",
			Name:            "Emergency Response Station",
			Location:        "Esquina Av. Colonial y Jr. Union",
			City:            "Lima Centro",
			District:        "Region Centro",
			Status:          model.StatusInProgress,
			Progress:        72,
			LastUpdate:      "2026-02-04",
			Lat:             -12.048,
			Lng:             -77.046,
			Contractor:      "Construcciones Institucionales S.A.",
			StartDate:       "2025-05-20",
			ExpectedEndDate: "2026-05-20",
			ContractID:      "CP-2025-0112",
			Budget:          "S/ 3,800,000",
			Category:        "Public Safety",
			GalleryImages:   []string{},
			Milestones:      []model.ProjectMilestone{
				{ID: "ms-012a", Label: "Inicio da obra", Date: "2025-05-20", Completed: true},
				{ID: "ms-012b", Label: "Estrutura concluida", Date: "2025-11-30", Completed: true},
				{ID: "ms-012c", Label: "Instalacoes internas", Date: "2026-03-15", Completed: false},
				{ID: "ms-012d", Label: "Entrega final", Date: "2026-05-20", Completed: false},
			},
			Updates: []model.ProjectUpdate{
				{
					ID:          "upd-012a",
					Date:        "2026-02-04",
					Title:       "Interior systems installation phase",
					Description: "Electrical, plumbing, and communication systems being installed. Building envelope fully sealed. Interior partition walls complete.",
					Author:      "Eng. Roberto Diaz",
				},
			},
		},
	}
}

func fixtureUsers() []model.AdminUser {
	return []model.AdminUser{
		{ID: "usr-001", Name: "Maria Torres", Email: "maria.torres@portal.gov", Role: model.RoleAdmin, Status: model.UserActive, CreatedAt: "2025-01-15", LastLogin: strPtr("2026-02-24")},
		{ID: "usr-002", Name: "Carlos Mendez", Email: "carlos.mendez@portal.gov", Role: model.RoleManager, Status: model.UserActive, CreatedAt: "2025-02-20", LastLogin: strPtr("2026-02-23")},
		{ID: "usr-003", Name: "Ana Gutierrez", Email: "ana.gutierrez@portal.gov", Role: model.RoleFiscal, Status: model.UserActive, CreatedAt: "2025-03-10", LastLogin: strPtr("2026-02-22")},
		{ID: "usr-004", Name: "Pedro Alvarez", Email: "pedro.alvarez@portal.gov", Role: model.RoleManager, Status: model.UserActive, CreatedAt: "2025-04-05", LastLogin: strPtr("2026-02-20")},
		{ID: "usr-005", Name: "Rosa Huaman", Email: "rosa.huaman@portal.gov", Role: model.RoleFiscal, Status: model.UserInactive, CreatedAt: "2025-05-12", LastLogin: strPtr("2025-12-15")},
		{ID: "usr-006", Name: "Luis Vargas", Email: "luis.vargas@portal.gov", Role: model.RoleViewer, Status: model.UserActive, CreatedAt: "2025-06-01", LastLogin: strPtr("2026-02-18")},
		{ID: "usr-007", Name: "Jorge Castillo", Email: "jorge.castillo@portal.gov", Role: model.RoleManager, Status: model.UserActive, CreatedAt: "2025-07-08", LastLogin: strPtr("2026-02-21")},
		{ID: "usr-008", Name: "Fernando Ramos", Email: "fernando.ramos@portal.gov", Role: model.RoleFiscal, Status: model.UserActive, CreatedAt: "2025-08-15", LastLogin: strPtr("2026-02-19")},
		{ID: "usr-009", Name: "Roberto Diaz", Email: "roberto.diaz@portal.gov", Role: model.RoleViewer, Status: model.UserInactive, CreatedAt: "2025-09-20", LastLogin: strPtr("2025-11-10")},
		{ID: "usr-010", Name: "Isabella Costa", Email: "isabella.costa@portal.gov", Role: model.RoleAdmin, Status: model.UserActive, CreatedAt: "2025-10-01", LastLogin: strPtr("2026-02-24")},
		{ID: "usr-011", Name: "Gabriel Santos", Email: "gabriel.santos@portal.gov", Role: model.RoleManager, Status: model.UserActive, CreatedAt: "2025-11-05", LastLogin: strPtr("2026-02-17")},
		{ID: "usr-012", Name: "Claudia Rivera", Email: "claudia.rivera@portal.gov", Role: model.RoleFiscal, Status: model.UserActive, CreatedAt: "2025-12-10", LastLogin: strPtr("2026-02-16")},
	}
}

func fixturePermissions() []model.Permission {
	return []model.Permission{
		{ID: "perm-01", Key: "dashboard.view", Label: "Visualizar dashboard", Module: "Dashboard"},
		{ID: "perm-02", Key: "obras.view", Label: "Visualizar obras", Module: "Obras"},
		{ID: "perm-03", Key: "obras.create", Label: "Criar obras", Module: "Obras"},
		{ID: "perm-04", Key: "obras.edit", Label: "Editar obras", Module: "Obras"},
		{ID: "perm-05", Key: "obras.delete", Label: "Excluir obras", Module: "Obras"},
		{ID: "perm-06", Key: "users.view", Label: "Visualizar usuarios", Module: "Usuarios"},
		{ID: "perm-07", Key: "users.create", Label: "Criar usuarios", Module: "Usuarios"},
		{ID: "perm-08", Key: "users.edit", Label: "Editar usuarios", Module: "Usuarios"},
		{ID: "perm-09", Key: "users.delete", Label: "Excluir usuarios", Module: "Usuarios"},
		{ID: "perm-10", Key: "profiles.manage", Label: "Gerenciar perfis", Module: "Perfis"},
		{ID: "perm-11", Key: "settings.manage", Label: "Gerenciar configuracoes", Module: "Configuracoes"},
	}
}

func fixtureProfiles() []model.AdminProfile {
	all := make([]string, 0, 11)
	for _, p := range fixturePermissions() {
		all = append(all, p.Key)
	}
	return []model.AdminProfile{
		{
			ID:          "prof-01",
			Name:        "Administrador",
			Description: "Acesso total ao sistema, incluindo gerenciamento de usuarios e configuracoes.",
			Permissions: all,
			UsersCount:  2,
		},
		{
			ID:          "prof-02",
			Name:        "Gestor",
			Description: "Gerenciamento completo de obras e visualizacao de dashboards.",
			Permissions: []string{"dashboard.view", "obras.view", "obras.create", "obras.edit", "users.view"},
			UsersCount:  4,
		},
		{
			ID:          "prof-03",
			Name:        "Fiscal",
			Description: "Acompanhamento e atualizacao de obras em campo.",
			Permissions: []string{"dashboard.view", "obras.view", "obras.edit"},
			UsersCount:  4,
		},
		{
			ID:          "prof-04",
			Name:        "Visualizador",
			Description: "Apenas visualizacao de dados publicos e dashboards.",
			Permissions: []string{"dashboard.view", "obras.view"},
			UsersCount:  2,
		},
	}
}

func strPtr(s string) *string {
	return &s
}
