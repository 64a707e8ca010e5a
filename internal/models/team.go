package models

import "time"

const (
	MemberRoleLeader = "leader"
	MemberRoleMember = "member"
)

type Member struct {
	Name       string `json:"name" bson:"name"`
	Email      string `json:"email" bson:"email"`
	RollNumber string `json:"rollNumber" bson:"rollNumber"`
	Role       string `json:"role" bson:"role"`
}

type Team struct {
	ID                 string    `json:"team_id" bson:"team_id"`
	Name               string    `json:"team_name" bson:"team_name"`
	Members            []Member  `json:"members" bson:"members"`
	Points             int       `json:"points" bson:"points"`
	EventsParticipated []string  `json:"events_participated" bson:"events_participated"`
	QRID               string    `json:"qr_id" bson:"qr_id"`
	JoinCode           string    `json:"join_code" bson:"join_code"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
	CreatedBy          string    `json:"created_by" bson:"created_by"`
}

func (t *Team) HasParticipated(eventID string) bool {
	for _, id := range t.EventsParticipated {
		if id == eventID {
			return true
		}
	}

	return false
}

func (t *Team) HasMember(email string) bool {
	email = NormalizeEmail(email)
	for _, m := range t.Members {
		if NormalizeEmail(m.Email) == email {
			return true
		}
	}

	return false
}

type Standing struct {
	Rank               int    `json:"rank"`
	TeamID             string `json:"team_id"`
	TeamName           string `json:"team_name"`
	Points             int    `json:"points"`
	EventsParticipated int    `json:"events_participated"`
	Members            int    `json:"members"`
}
