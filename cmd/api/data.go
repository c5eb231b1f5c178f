package main

import (
	"production-brief/internal/crew"
	"production-brief/internal/models"
	"production-brief/internal/timeline"
)

// Static brief content. Everything here is authored once per deployment;
// the only runtime mutations are ad-hoc matrix shifts and board moves.

var locations = []models.Location{
	{Key: "main", Name: "Freak Stage (Main)"},
	{Key: "under", Name: "Underground"},
	{Key: "hof", Name: "House of Freaks"},
	{Key: "hub", Name: "Entrance / Plaza"},
	{Key: "site", Name: "Site / Infra"},
	{Key: "activations", Name: "Activations / Art"},
	{Key: "merch", Name: "Merch"},
	{Key: "food", Name: "Food / Bar"},
	{Key: "vip", Name: "VIP"},
	{Key: "hq", Name: "Backstage / HQ"},
}

var crewRoster = crew.Roster{
	models.TeamBroadcast: {
		{Code: "B1", Role: "Stream Lead"},
		{Code: "B2", Role: "Cam 1 (Front)"},
		{Code: "B3", Role: "Cam 2 (Jib)"},
		{Code: "B4", Role: "Cam 3 (Stage)"},
	},
	models.TeamPhoto: {
		{Code: "P1", Role: "Photo Lead"},
		{Code: "P2", Role: "Photo Main"},
		{Code: "P3", Role: "Photo Under"},
		{Code: "P4", Role: "Photo HOF"},
		{Code: "P5", Role: "Photo Roam"},
	},
	models.TeamVideo: {
		{Code: "V1", Role: "Video Dir"},
		{Code: "V2", Role: "Cam A (Gimbal)"},
		{Code: "V3", Role: "Cam B (Long)"},
		{Code: "V4", Role: "Cam C (POV)"},
		{Code: "V5", Role: "Video Socials"},
	},
	models.TeamDrone: {
		{Code: "D1", Role: "Drone FPV"},
		{Code: "D2", Role: "Drone Cinema"},
	},
	models.TeamSocial: {
		{Code: "S1", Role: "Social Lead"},
		{Code: "S2", Role: "Editor 1"},
		{Code: "S3", Role: "Editor 2"},
	},
	models.TeamMgmt: {
		{Code: "M1", Role: "Prod Mgr"},
		{Code: "M2", Role: "Runner 1"},
		{Code: "M3", Role: "Runner 2"},
	},
}

var shotCatalog = map[string]models.ShotCategory{
	"dj_set": {
		ID: "dj_set", Title: "DJ Set Coverage (Full)",
		Items: []string{
			"FULL SET RECORDING (Tripod/Static)",
			"Intros & Outros",
			"Crowd reaction (Drops)",
			"DJ hands / mixer close-ups",
			"Pyro / CO2 moments",
			"Behind the decks POV",
			"Stage lighting wide shots",
		},
	},
	"site": {
		ID: "site", Title: "Site / Location / Infrastructure",
		Items: []string{
			"Full site aerial (empty)",
			"Full site aerial (live)",
			"Site perimeter",
			"Site skyline",
			"Entry gates (front)",
			"Queue formations",
			"Crowd flow lanes",
			"Wayfinding and site maps",
			"Fence branding",
			"Cabling runs (clean)",
		},
	},
	"arrival": {
		ID: "arrival", Title: "Arrival / Entry Experience",
		Items: []string{
			"Ticket scanning devices",
			"Wristband application",
			"Security checks",
			"Welcome staff",
			"First crowd reactions",
			"Arrival outfits",
			"Entry lighting mood",
		},
	},
	"branding": {
		ID: "branding", Title: "Branding & Graphic System",
		Items: []string{
			"Logo applications",
			"Event title signage",
			"Typography close-ups",
			"Wayfinding signs",
			"Zone labels",
			"Digital screens (static)",
			"Digital screens (motion)",
			"Wall and floor graphics",
		},
	},
	"id": {
		ID: "id", Title: "Wristbands / Passes / ID",
		Items: []string{
			"GA wristbands (flat and worn)",
			"VIP wristbands",
			"Staff and media badges",
			"Artist passes",
			"Lanyards",
			"Credential scanning moments",
		},
	},
	"consent": {
		ID: "consent", Title: "Consent & Safety",
		Items: []string{
			"Opt-out lanyards",
			"Consent signage in crowd context",
			"Security staff interaction",
			"Medical tents",
			"First aid signage",
			"Crowd control barriers",
		},
	},
	"crowd": {
		ID: "crowd", Title: "Crowd / Audience",
		Items: []string{
			"Crowd wide shots",
			"Close crowd portraits",
			"Groups of friends",
			"Dancing feet",
			"Hands in air",
			"Fashion details",
			"Reactions to drops",
			"Quiet moments",
			"Walking between stages",
		},
	},
	"mainstage": {
		ID: "mainstage", Title: "Mainstage",
		Items: []string{
			"Mainstage wide (empty)",
			"Mainstage wide (crowded)",
			"Stage depth shots",
			"LED content close-ups",
			"Lighting rigs",
			"Pyro hardware",
			"DJ booth interior",
			"Crowd from stage POV",
			"Peak moment wide",
		},
	},
	"underground": {
		ID: "underground", Title: "Underground Stage",
		Items: []string{
			"Exterior entrance",
			"Interior wide",
			"Mapping surfaces",
			"Crowd silhouettes",
			"Immersive angles",
			"Exit corridor",
		},
	},
	"hof": {
		ID: "hof", Title: "House of Freaks",
		Items: []string{
			"Exterior facade",
			"LED windows",
			"Interior wide",
			"Props and scenic textures",
			"Crowd interaction",
			"Performer reactions",
		},
	},
	"backstage": {
		ID: "backstage", Title: "Backstage / Operations",
		Items: []string{
			"Artist arrival",
			"Backstage corridors",
			"FOH control desks",
			"Radio communication",
			"Crew coordination",
			"Load-in / load-out activity",
		},
	},
	"atmos": {
		ID: "atmos", Title: "Transitions & Atmosphere",
		Items: []string{
			"Sunset over site",
			"Blue hour lighting",
			"Fog / haze",
			"Light beams in air",
			"Crowd silhouettes",
			"Long exposure motion",
		},
	},
	"closing": {
		ID: "closing", Title: "Closing & After",
		Items: []string{
			"Final set crowd",
			"Closing reactions",
			"People leaving",
			"Empty stages",
			"Empty site at dawn",
		},
	},
	"bts": {
		ID: "bts", Title: "Behind The Scenes / Build",
		Items: []string{
			"Build crew at work",
			"Timelapse: stage build / site rig",
			"Rigging, lighting focus, sound checks",
			"Gear prep and data wrangling",
			"Team huddles / briefings",
		},
	},
}

func seedDays() []*models.DaySchedule {
	hm, dur := timeline.HM, timeline.Duration
	return []*models.DaySchedule{
		{
			Key: "build", Label: "PREP: Build Phase", Date: "Feb 01-02",
			Shifts: map[string][]*models.Shift{
				"main": {
					{ID: "bmain1", Start: 9, Duration: 3, Task: "Build Timelapse: Mainstage Structure", Crew: []string{"V2 (Gimbal)", "D2 (Cinema)"}, Team: models.TeamVideo, Priority: models.PriorityHigh, ShotCategories: []string{"bts", "mainstage", "site"}},
					{ID: "bmain2", Start: 12, Duration: 2, Task: "LED Wall + Lighting Focus Tests", Crew: []string{"V3 (Long)", "P2 (Main)"}, Team: models.TeamVideo, Priority: models.PriorityNormal, ShotCategories: []string{"mainstage", "bts"}},
					{ID: "bmain3", Start: 14, Duration: 3, Task: "Stage Detail Stills + Pyro Hardware", Crew: []string{"P2 (Main)"}, Team: models.TeamPhoto, Priority: models.PriorityNormal, ShotCategories: []string{"mainstage"}},
					{ID: "bmain4", Start: 17, Duration: 1, Task: "Empty Stage Wides (Golden Hour)", Crew: []string{"P2 (Main)", "D2 (Cinema)"}, Team: models.TeamPhoto, Priority: models.PriorityHigh, ShotCategories: []string{"mainstage", "atmos"}},
				},
				"under": {
					{ID: "bund1", Start: 10, Duration: 3, Task: "Underground Build + Mapping Surfaces", Crew: []string{"V4 (POV)", "P3 (Under)"}, Team: models.TeamVideo, Priority: models.PriorityNormal, ShotCategories: []string{"underground", "bts"}},
					{ID: "bund2", Start: 13, Duration: 2, Task: "Lighting Tests + Texture Stills", Crew: []string{"P3 (Under)"}, Team: models.TeamPhoto, Priority: models.PriorityNormal, ShotCategories: []string{"underground"}},
				},
				"hof": {
					{ID: "bhof1", Start: 11, Duration: 3, Task: "Scenic Install + Props", Crew: []string{"P4 (HOF)", "V5 (Socials)"}, Team: models.TeamPhoto, Priority: models.PriorityNormal, ShotCategories: []string{"hof", "bts"}},
				},
				"hub": {
					{ID: "bhub1", Start: 12, Duration: 2, Task: "Entry Gates Build + Signage Install", Crew: []string{"P5 (Roam)"}, Team: models.TeamPhoto, Priority: models.PriorityNormal, ShotCategories: []string{"site", "branding", "arrival"}},
				},
				"site": {
					{ID: "bsite1", Start: 9, Duration: 3, Task: "Site Aerials (Empty) + Perimeter", Crew: []string{"D1 (FPV)"}, Team: models.TeamDrone, Priority: models.PriorityHigh, ShotCategories: []string{"site"}},
					{ID: "bsite2", Start: 12, Duration: 3, Task: "Infrastructure Sweep (Cabling/Paths)", Crew: []string{"P1 (Lead)"}, Team: models.TeamPhoto, Priority: models.PriorityNormal, ShotCategories: []string{"site"}},
				},
				"activations": {
					{ID: "bact1", Start: 13, Duration: 3, Task: "Sponsor Activation Build", Crew: []string{"P1 (Lead)"}, Team: models.TeamPhoto, Priority: models.PriorityNormal, ShotCategories: []string{"branding"}},
				},
				"merch": {
					{ID: "bmer1", Start: 14, Duration: 2, Task: "Merch Booth Setup + Flat-lays", Crew: []string{"P5 (Roam)"}, Team: models.TeamPhoto, Priority: models.PriorityNormal},
				},
				"food": {
					{ID: "bfood1", Start: 14, Duration: 2, Task: "Food Stall Setup + Menu Boards", Crew: []string{"P5 (Roam)"}, Team: models.TeamPhoto, Priority: models.PriorityNormal, ShotCategories: []string{"branding"}},
				},
				"vip": {
					{ID: "bvip1", Start: 15, Duration: 2, Task: "VIP Lounge Build + Decor", Crew: []string{"P1 (Lead)"}, Team: models.TeamPhoto, Priority: models.PriorityNormal},
				},
				"hq": {
					{ID: "bhq1", Start: 9, Duration: 1, Task: "Build Briefing + Safety", Crew: []string{"ALL LEADS"}, Team: models.TeamMgmt, Priority: models.PriorityHigh, ShotCategories: []string{"bts"}},
					{ID: "bhq2", Start: 12, Duration: 1, Task: "Media Drives + Ingest Station Setup", Crew: []string{"M1 (Mgr)"}, Team: models.TeamMgmt, Priority: models.PriorityNormal, ShotCategories: []string{"backstage"}},
					{ID: "bhq3", Start: 17, Duration: 1, Task: "Build Day Backup", Crew: []string{"M1 (Mgr)", "S2 (Editor)"}, Team: models.TeamMgmt, Priority: models.PriorityHigh, ShotCategories: []string{"backstage"}},
				},
			},
		},
		{
			Key: "preparty", Label: "PRE-PARTY: Influencer Night", Date: "Feb 03",
			Shifts: map[string][]*models.Shift{
				"main": {
					{ID: "ppmain1", Start: 20, Duration: 2, Task: "Pre-Party Stage Warmup + Atmos", Crew: []string{"V2 (Gimbal)", "P2 (Main)"}, Team: models.TeamVideo, Priority: models.PriorityHigh, ShotCategories: []string{"mainstage", "atmos"}},
					{ID: "ppmain2", Start: 22, Duration: 2, Task: "Pre-Party Highlights Set 1", Crew: []string{"V2 (Gimbal)", "P2 (Main)"}, Team: models.TeamVideo, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set", "crowd", "mainstage"}},
					{ID: "ppmain3", Start: 0, Duration: 2, Task: "Pre-Party Peak Moments", Crew: []string{"V3 (Long)", "P2 (Main)"}, Team: models.TeamVideo, Priority: models.PriorityCritical, ShotCategories: []string{"dj_set", "crowd", "mainstage"}},
				},
				"hof": {
					{ID: "pphof1", Start: 21, Duration: 2, Task: "House of Freaks Party Coverage", Crew: []string{"P4 (HOF)", "V5 (Socials)"}, Team: models.TeamPhoto, Priority: models.PriorityNormal, ShotCategories: []string{"hof", "crowd"}},
				},
				"hub": {
					{ID: "pphub1", Start: 20, Duration: 2, Task: "Influencer Arrivals + Wristbands", Crew: []string{"P5 (Roam)"}, Team: models.TeamPhoto, Priority: models.PriorityHigh, ShotCategories: []string{"arrival", "id", "consent"}},
				},
				"site": {
					{ID: "ppsite1", Start: 20, Duration: 2, Task: "Night Exterior + Skyline", Crew: []string{"D2 (Cinema)"}, Team: models.TeamDrone, Priority: models.PriorityNormal, ShotCategories: []string{"site", "atmos"}},
				},
				"vip": {
					{ID: "ppvip1", Start: 22, Duration: 2, Task: "VIP Lounge + Boxes (Pre-Party)", Crew: []string{"P1 (Lead)"}, Team: models.TeamPhoto, Priority: models.PriorityHigh},
				},
				"hq": {
					{ID: "pphq1", Start: 19, Duration: 1, Task: "Pre-Party Briefing", Crew: []string{"ALL LEADS"}, Team: models.TeamMgmt, Priority: models.PriorityHigh, ShotCategories: []string{"bts"}},
					{ID: "pphq2", Start: 23, Duration: 2, Task: "Live Edit: Pre-Party Aftermovie", Crew: []string{"S1 (Lead)", "S2 (Editor)"}, Team: models.TeamSocial, Priority: models.PriorityCritical, ShotCategories: []string{"branding"}},
					{ID: "pphq3", Start: 2, Duration: 1, Task: "Data Backup + Wrap", Crew: []string{"M1 (Mgr)"}, Team: models.TeamMgmt, Priority: models.PriorityCritical, ShotCategories: []string{"backstage"}},
				},
			},
		},
		{
			Key: "wk1_thu", Label: "WK1: Thursday (Full)", Date: "Thu Feb 5",
			Shifts: map[string][]*models.Shift{
				"main": {
					{ID: "wk1_thu_main_1", Start: hm(17, 40), Duration: dur(17, 40, 18, 10), Task: "Prayer Time", Crew: []string{"B2 (Front)", "P2 (Main)"}, Team: models.TeamBroadcast, Priority: models.PriorityNormal},
					{ID: "wk1_thu_main_2", Start: hm(18, 0), Duration: 0, Task: "Doors open", Crew: []string{"B2 (Front)", "P2 (Main)"}, Team: models.TeamBroadcast, Priority: models.PriorityNormal},
					{ID: "wk1_thu_main_3", Start: hm(18, 10), Duration: dur(18, 10, 19, 5), Task: "SET: DJ Bliss", Crew: []string{"B2 (Front)", "P2 (Main)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_main_4", Start: hm(19, 10), Duration: dur(19, 10, 19, 40), Task: "Prayer Time", Crew: []string{"B2 (Front)", "P2 (Main)"}, Team: models.TeamBroadcast, Priority: models.PriorityNormal},
					{ID: "wk1_thu_main_5", Start: hm(19, 40), Duration: dur(19, 40, 20, 33), Task: "SET: Rag", Crew: []string{"B2 (Front)", "P2 (Main)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_main_6", Start: hm(20, 35), Duration: dur(20, 35, 21, 28), Task: "SET: Labi", Crew: []string{"B2 (Front)", "P2 (Main)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_main_7", Start: hm(21, 30), Duration: dur(21, 30, 22, 28), Task: "SET: Kimberly", Crew: []string{"B2 (Front)", "P2 (Main)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_main_8", Start: hm(22, 30), Duration: dur(22, 30, 23, 28), Task: "SET: Viva", Crew: []string{"B2 (Front)", "P2 (Main)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_main_9", Start: hm(23, 30), Duration: dur(23, 30, 0, 28), Task: "SET: HANNAH", Crew: []string{"B2 (Front)", "P2 (Main)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_main_10", Start: hm(0, 30), Duration: dur(0, 30, 1, 28), Task: "SET: Brooks", Crew: []string{"B2 (Front)", "P2 (Main)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_main_11", Start: hm(1, 30), Duration: dur(1, 30, 2, 30), Task: "SET: Third Party", Crew: []string{"B2 (Front)", "P2 (Main)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_main_12", Start: hm(2, 35), Duration: dur(2, 35, 4, 0), Task: "SET: Alesso", Crew: []string{"ALL UNITS"}, Team: models.TeamBroadcast, Priority: models.PriorityCritical, ShotCategories: []string{"dj_set"}},
				},
				"under": {
					{ID: "wk1_thu_under_1", Start: hm(18, 0), Duration: 0, Task: "Doors open", Crew: []string{"B3 (Jib)", "P3 (Under)"}, Team: models.TeamBroadcast, Priority: models.PriorityNormal},
					{ID: "wk1_thu_under_2", Start: hm(18, 10), Duration: dur(18, 10, 19, 5), Task: "SET: Nik-B", Crew: []string{"B3 (Jib)", "P3 (Under)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_under_3", Start: hm(19, 40), Duration: dur(19, 40, 20, 58), Task: "SET: Ghost", Crew: []string{"B3 (Jib)", "P3 (Under)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_under_4", Start: hm(21, 0), Duration: dur(21, 0, 21, 58), Task: "SET: Haffs", Crew: []string{"B3 (Jib)", "P3 (Under)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_under_5", Start: hm(22, 0), Duration: dur(22, 0, 22, 58), Task: "SET: MBP", Crew: []string{"B3 (Jib)", "P3 (Under)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_under_6", Start: hm(23, 0), Duration: dur(23, 0, 23, 58), Task: "SET: Linska", Crew: []string{"B3 (Jib)", "P3 (Under)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_under_7", Start: hm(0, 0), Duration: dur(0, 0, 1, 0), Task: "SET: KREAM", Crew: []string{"B3 (Jib)", "P3 (Under)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_under_8", Start: hm(1, 5), Duration: dur(1, 5, 2, 30), Task: "SET: ARTBAT", Crew: []string{"B3 (Jib)", "P3 (Under)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_under_9", Start: hm(2, 30), Duration: dur(2, 30, 4, 0), Task: "SET: Son Of Son", Crew: []string{"B3 (Jib)", "P3 (Under)"}, Team: models.TeamBroadcast, Priority: models.PriorityCritical, ShotCategories: []string{"dj_set"}},
				},
				"hof": {
					{ID: "wk1_thu_hof_1", Start: hm(18, 0), Duration: 0, Task: "Doors open", Crew: []string{"B4 (Stage)", "P4 (HOF)"}, Team: models.TeamBroadcast, Priority: models.PriorityNormal},
					{ID: "wk1_thu_hof_2", Start: hm(18, 10), Duration: dur(18, 10, 19, 5), Task: "SET: Julien Relive", Crew: []string{"B4 (Stage)", "P4 (HOF)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_hof_3", Start: hm(19, 40), Duration: dur(19, 40, 20, 33), Task: "SET: Largo", Crew: []string{"B4 (Stage)", "P4 (HOF)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_hof_4", Start: hm(20, 35), Duration: dur(20, 35, 21, 28), Task: "SET: Gazi", Crew: []string{"B4 (Stage)", "P4 (HOF)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_hof_5", Start: hm(21, 30), Duration: dur(21, 30, 22, 28), Task: "SET: RSCL", Crew: []string{"B4 (Stage)", "P4 (HOF)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_hof_6", Start: hm(22, 30), Duration: dur(22, 30, 23, 28), Task: "SET: BURNR", Crew: []string{"B4 (Stage)", "P4 (HOF)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_hof_7", Start: hm(23, 30), Duration: dur(23, 30, 0, 30), Task: "SET: Giu", Crew: []string{"B4 (Stage)", "P4 (HOF)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_hof_8", Start: hm(0, 35), Duration: dur(0, 35, 2, 0), Task: "SET: HotSince82", Crew: []string{"B4 (Stage)", "P4 (HOF)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_hof_9", Start: hm(2, 0), Duration: dur(2, 0, 2, 58), Task: "SET: Sam Collins", Crew: []string{"B4 (Stage)", "P4 (HOF)"}, Team: models.TeamBroadcast, Priority: models.PriorityHigh, ShotCategories: []string{"dj_set"}},
					{ID: "wk1_thu_hof_10", Start: hm(3, 0), Duration: dur(3, 0, 4, 0), Task: "SET: Toby Romeo", Crew: []string{"B4 (Stage)", "P4 (HOF)"}, Team: models.TeamBroadcast, Priority: models.PriorityCritical, ShotCategories: []string{"dj_set"}},
				},
				"hub": {
					{ID: "wk1_thu_hub_1", Start: 12, Duration: 2, Task: "Queue Management & Gates", Crew: []string{"V5 (Socials)", "P5 (Roam)"}, Team: models.TeamPhoto, Priority: models.PriorityHigh, ShotCategories: []string{"arrival", "id", "consent"}},
					{ID: "wk1_thu_hub_2", Start: 14, Duration: 2, Task: "Crowd Inflow / ID Checks", Crew: []string{"P5 (Roam)"}, Team: models.TeamPhoto, Priority: models.PriorityNormal, ShotCategories: []string{"arrival", "id", "consent"}},
					{ID: "wk1_thu_hub_3", Start: 19, Duration: 2, Task: "Food Court & Chill Zone", Crew: []string{"P5 (Roam)"}, Team: models.TeamPhoto, Priority: models.PriorityNormal, ShotCategories: []string{"crowd"}},
					{ID: "wk1_thu_hub_4", Start: 2, Duration: 2, Task: "Egress / Taxi Stand", Crew: []string{"P5 (Roam)"}, Team: models.TeamPhoto, Priority: models.PriorityNormal, ShotCategories: []string{"site", "closing", "crowd"}},
				},
				"site": {
					{ID: "wk1_thu_site_1", Start: 12, Duration: 2, Task: "Site Aerials (Empty) + Infra Sweep", Crew: []string{"D2 (Cinema)", "P1 (Lead)"}, Team: models.TeamDrone, Priority: models.PriorityHigh, ShotCategories: []string{"site", "branding"}},
					{ID: "wk1_thu_site_2", Start: 18, Duration: 2, Task: "Site Perimeter + Skyline (Live)", Crew: []string{"D1 (FPV)"}, Team: models.TeamDrone, Priority: models.PriorityNormal, ShotCategories: []string{"site", "crowd", "atmos"}},
					{ID: "wk1_thu_site_3", Start: 4, Duration: 1, Task: "Empty Site at Dawn", Crew: []string{"P5 (Roam)"}, Team: models.TeamPhoto, Priority: models.PriorityNormal, ShotCategories: []string{"closing", "site"}},
				},
				"activations": {
					{ID: "wk1_thu_act_1", Start: 16, Duration: 2, Task: "Sponsor Activations + Pop-up Stages", Crew: []string{"P1 (Lead)"}, Team: models.TeamPhoto, Priority: models.PriorityNormal, ShotCategories: []string{"branding"}},
					{ID: "wk1_thu_act_2", Start: 20, Duration: 2, Task: "Art Installations (Night)", Crew: []string{"V5 (Socials)"}, Team: models.TeamSocial, Priority: models.PriorityHigh, ShotCategories: []string{"atmos"}},
				},
				"hq": {
					{ID: "wk1_thu_hq_1", Start: 16, Duration: 1, Task: "Show Day Briefing", Crew: []string{"ALL LEADS"}, Team: models.TeamMgmt, Priority: models.PriorityHigh, ShotCategories: []string{"bts"}},
					{ID: "wk1_thu_hq_2", Start: 22, Duration: 3, Task: "Live Edit: Daily Recap", Crew: []string{"S1 (Lead)", "S2 (Editor)", "S3 (Editor)"}, Team: models.TeamSocial, Priority: models.PriorityCritical, ShotCategories: []string{"branding"}},
					{ID: "wk1_thu_hq_3", Start: 2, Duration: 2, Task: "FINAL BACKUP & WRAP", Crew: []string{"ALL MGMT", "ALL LEADS"}, Team: models.TeamMgmt, Priority: models.PriorityCritical, ShotCategories: []string{"backstage"}},
				},
			},
		},
	}
}

func seedBoard() []*models.Column {
	return []*models.Column{
		{
			ID: "photo", Title: "Photo Ops",
			Tasks: []*models.Task{
				{ID: "p1", Title: "Site Aerials (Empty) + Perimeter", Time: "Build Phase", Area: "Site / Perimeter", Team: models.TeamPhoto, Crew: "Photo Lead + Drone"},
				{ID: "p2", Title: "Entry Gates + Queue Formations", Time: "12:00 - 16:00", Area: "Entrance", Team: models.TeamPhoto, Crew: "Roaming Unit"},
				{ID: "p3", Title: "Ticket Scanning + Wristbands + Security", Time: "14:00 - 18:00", Area: "Entry Lanes", Team: models.TeamPhoto, Crew: "Roaming Unit"},
				{ID: "p4", Title: "Crowd Wide / Mid / Close", Time: "Peak Sets", Area: "All Stages", Team: models.TeamPhoto, Crew: "Photo Main"},
				{ID: "p5", Title: "Mainstage Coverage (Empty + Live)", Time: "16:00 - 02:00", Area: "Mainstage", Team: models.TeamPhoto, Crew: "Photo Main"},
				{ID: "p6", Title: "VIP Lounge + Boxes", Time: "19:00 - 01:00", Area: "VIP", Team: models.TeamPhoto, Crew: "Photo Lead"},
				{ID: "p7", Title: "Transitions & Atmosphere", Time: "Sunset / Blue Hour", Area: "Site", Team: models.TeamPhoto, Crew: "Photo Lead"},
				{ID: "p8", Title: "Closing + Empty Site", Time: "02:00 - 05:00", Area: "Site", Team: models.TeamPhoto, Crew: "Roaming Unit"},
			},
		},
		{
			ID: "video", Title: "Video Unit",
			Tasks: []*models.Task{
				{ID: "v1", Title: "Build Phase Timelapses", Time: "Build Phase", Area: "All Stages", Team: models.TeamVideo, Crew: "Hero Video"},
				{ID: "v2", Title: "Influencer Pre-Party Aftermovie (1 min)", Time: "Pre-Party", Area: "Main + HoF", Team: models.TeamVideo, Crew: "Hero Video"},
				{ID: "v3", Title: "Daily Recap Videos (4 days)", Time: "Night + AM", Area: "Edit Bay", Team: models.TeamVideo, Crew: "Editors"},
				{ID: "v4", Title: "Social Reels (10-15)", Time: "Daily", Area: "All Zones", Team: models.TeamVideo, Crew: "Social Video"},
				{ID: "v5", Title: "Full Set Recordings (All Headliners)", Time: "Show Nights", Area: "All Stages", Team: models.TeamVideo, Crew: "Broadcast"},
			},
		},
		{
			ID: "social", Title: "Social / Live",
			Tasks: []*models.Task{
				{ID: "s1", Title: "Stories: Gates Opening Rush", Time: "18:00", Area: "Entrance", Team: models.TeamSocial, Crew: "Social Lead"},
				{ID: "s2", Title: "Top 20 Bangers Within 2h of Gates", Time: "Nightly", Area: "Edit Bay", Team: models.TeamSocial, Crew: "Editors"},
				{ID: "s3", Title: "Artist Handover Takeovers", Time: "Per Set", Area: "Backstage", Team: models.TeamSocial, Crew: "Social Lead"},
			},
		},
		{
			ID: "mgmt", Title: "Ops / Data",
			Tasks: []*models.Task{
				{ID: "m1", Title: "Daily Card Dumps + Verification", Time: "Continuous", Area: "HQ", Team: models.TeamMgmt, Crew: "Prod Mgr"},
				{ID: "m2", Title: "Battery + Lens Rotation Runs", Time: "Hourly", Area: "Site Wide", Team: models.TeamMgmt, Crew: "Runners"},
				{ID: "m3", Title: "FINAL BACKUP & WRAP", Time: "02:00 - 04:00", Area: "HQ", Team: models.TeamMgmt, Crew: "All Mgmt"},
			},
		},
	}
}

// Operation phases for the timeline tab.
type phase struct {
	Date  string
	Title string
	Kind  string // prep, party, main, rest
	Hours string
	Focus string
}

var operationPhases = []phase{
	{Date: "Feb 01-02", Title: "Site Setup & Tech Recce", Kind: "prep", Hours: "09:00 - 18:00", Focus: "Drone flight paths, Cable runs, Internet tests"},
	{Date: "Feb 03", Title: "THE PRE-PARTY", Kind: "party", Hours: "20:00 - 04:00", Focus: "Intimate vibes, Low light, 'Behind the velvet rope' feel"},
	{Date: "Feb 04", Title: "Media Day", Kind: "prep", Hours: "14:00 - 18:00", Focus: "Artist arrivals, Soundchecks, Empty venue grandeur"},
	{Date: "Feb 05", Title: "WEEKEND 1 - DAY 1", Kind: "main", Hours: "18:00 - 04:00", Focus: "The Reveal. Gates opening rush. First drops."},
	{Date: "Feb 06", Title: "WEEKEND 1 - DAY 2", Kind: "main", Hours: "18:00 - 04:00", Focus: "Crowd interactions, Sunset transitions, Mainstage pyro"},
	{Date: "Feb 07-11", Title: "The Void (Edit Week)", Kind: "rest", Hours: "Remote / Hybrid", Focus: "Editing rushes, Social hype maintenance, Re-charging"},
	{Date: "Feb 12", Title: "WEEKEND 2 - DAY 1", Kind: "main", Hours: "18:00 - 04:00", Focus: "New angles, Hidden corners, Specific artist requests"},
	{Date: "Feb 13", Title: "GRAND FINALE", Kind: "main", Hours: "18:00 - 04:00", Focus: "The Closing Ceremony. Emotion. Final fireworks. Sunrise."},
}

// Mission and per-team role briefs.
type teamBrief struct {
	Team    models.Team
	Title   string
	Mission string
	Rules   []string
}

var missionStatement = "Two weekends, one pre-party, ~40TB of footage. Weekend 1 captures the ENERGY; " +
	"weekend 2 captures the DETAILS and the missing links. Daily dumps are mandatory; " +
	"no card is formatted until verified on the master drive."

var teamBriefs = []teamBrief{
	{
		Team: models.TeamBroadcast, Title: "Broadcast",
		Mission: "Continuous full-set recordings on every stage, every night.",
		Rules: []string{
			"Audio tap from FOH for every set.",
			"Start recording before the intro, stop after the outro.",
			"Card handover to runners at set changeover only.",
		},
	},
	{
		Team: models.TeamPhoto, Title: "Photo",
		Mission: "Stills coverage across stages, crowd, VIP and site systems.",
		Rules: []string{
			"No flash for stage acts unless authorized.",
			"Shoot the checklist first, experiments second.",
			"Golden hour and blue hour are blocked time; do not be in the food queue.",
		},
	},
	{
		Team: models.TeamVideo, Title: "Video",
		Mission: "Aftermovie hero footage plus daily recap material.",
		Rules: []string{
			"Gimbal unit owns crowd energy; long-lens unit owns artists.",
			"Log every clip location and set in the wrangle sheet.",
		},
	},
	{
		Team: models.TeamDrone, Title: "Drone",
		Mission: "Aerials of the site empty and live, within approved flight windows.",
		Rules: []string{
			"Only fly approved paths; crowd overflight is prohibited.",
			"FPV unit coordinates with stage pyro calls over radio.",
		},
	},
	{
		Team: models.TeamSocial, Title: "Social",
		Mission: "Live coverage and rapid edits from the on-site edit bay.",
		Rules: []string{
			"Top 20 'Bangers' delivered within 2 hours of gates open.",
			"Stories cadence: one push per hour minimum while gates are open.",
		},
	},
	{
		Team: models.TeamMgmt, Title: "Management",
		Mission: "Crew logistics, data wrangling and the master backup chain.",
		Rules: []string{
			"Runners rotate batteries and cards hourly.",
			"Nothing is formatted until verified on the master drive.",
		},
	},
}

// Checklist tab content.
type checklistSection struct {
	Title string
	Items []string
}

var photoChecklist = []checklistSection{
	{Title: "Site & Infrastructure", Items: shotCatalog["site"].Items},
	{Title: "Arrival & Entry", Items: shotCatalog["arrival"].Items},
	{Title: "Branding System", Items: shotCatalog["branding"].Items},
	{Title: "Wristbands / Passes / ID", Items: shotCatalog["id"].Items},
	{Title: "Consent & Safety", Items: shotCatalog["consent"].Items},
	{Title: "Crowd", Items: shotCatalog["crowd"].Items},
	{Title: "Closing & After", Items: shotCatalog["closing"].Items},
}

var videoChecklist = []string{
	"Build timelapses (one per stage)",
	"Gates opening rush (every show day)",
	"Full set recordings: all headliners",
	"Crowd reactions at drops (every stage)",
	"Sunset transition sequence",
	"Pyro and CO2 moments (safety distance)",
	"Artist arrivals and backstage walk-ins",
	"Closing ceremony and final fireworks",
	"Empty site at dawn (last show day)",
}

// Contacts tab content.
type contact struct {
	Name  string
	Role  string
	Team  models.Team
	Phone string
}

var contacts = []contact{
	{Name: "Khalid", Role: "Production Manager / Master Drive", Team: models.TeamMgmt, Phone: "+971 50 000 0001"},
	{Name: "Lena", Role: "Photo Lead", Team: models.TeamPhoto, Phone: "+971 50 000 0002"},
	{Name: "Marco", Role: "Video Director", Team: models.TeamVideo, Phone: "+971 50 000 0003"},
	{Name: "Sufyan", Role: "Stream Lead", Team: models.TeamBroadcast, Phone: "+971 50 000 0004"},
	{Name: "Dana", Role: "Social Lead", Team: models.TeamSocial, Phone: "+971 50 000 0005"},
	{Name: "Ilya", Role: "Drone Ops", Team: models.TeamDrone, Phone: "+971 50 000 0006"},
}
