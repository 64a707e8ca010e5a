package models

import "time"

type Authorization struct {
	Message        string    `json:"message"`
	VolunteerEmail string    `json:"volunteer_email"`
	Role           Role      `json:"role"`
	Token          string    `json:"token"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type ScanResult struct {
	Message       string `json:"message"`
	Volunteer     string `json:"volunteer"`
	TeamID        string `json:"team_id"`
	EventID       string `json:"event_id"`
	PointsAwarded int    `json:"points_awarded"`
	TeamPoints    int    `json:"team_points"`
}
