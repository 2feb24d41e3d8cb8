package account

import "strings"

// Role classifies what a signed-in user is allowed to see
type Role string

const (
	RoleStudent Role = "student"
	RoleAnalyst Role = "analyst"
	RoleMentor  Role = "mentor"
)

// Group is a learning cohort that accounts belong to
type Group struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// Account is a registered demo user. Passwords are stored as-is: this is a
// mock credential layer for classroom demos, not a production identity system.
type Account struct {
	Email       string `json:"email"`
	Password    string `json:"-"`
	DisplayName string `json:"displayName"`
	GroupID     int    `json:"groupId"`
	Role        Role   `json:"role"`
}

// NormalizeEmail canonicalizes an email for lookup and storage
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DisplayNameFromEmail derives a readable name from the local part of an
// email, used when auto-provisioning an unknown sign-in.
func DisplayNameFromEmail(email string) string {
	local := NormalizeEmail(email)
	if at := strings.IndexByte(local, '@'); at >= 0 {
		local = local[:at]
	}
	if plus := strings.IndexByte(local, '+'); plus >= 0 {
		local = local[:plus]
	}
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
	if local == "" {
		return "Guest"
	}
	words := strings.Fields(local)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// DefaultGroups are the built-in cohorts shown on the group picker
func DefaultGroups() []Group {
	return []Group{
		{ID: 1, Name: "NewsQuest Academy 1年A組", Kind: "school"},
		{ID: 2, Name: "Metropolitan Policy Lab", Kind: "class"},
		{ID: 3, Name: "Global Media Mentors", Kind: "training"},
	}
}

// SeedAccounts are the demo credentials provisioned on first start
func SeedAccounts() []Account {
	return []Account{
		{
			Email:       "student.alpha+demo01@example.com",
			Password:    "NewsQuest#01",
			DisplayName: "Student Alpha",
			GroupID:     1,
			Role:        RoleStudent,
		},
		{
			Email:       "analyst.bravo+demo02@example.com",
			Password:    "NewsQuest#02",
			DisplayName: "Analyst Bravo",
			GroupID:     2,
			Role:        RoleAnalyst,
		},
		{
			Email:       "mentor.charlie+demo03@example.com",
			Password:    "NewsQuest#03",
			DisplayName: "Mentor Charlie",
			GroupID:     3,
			Role:        RoleMentor,
		},
	}
}
