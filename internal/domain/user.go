package domain

import (
	"time"
)

type Role string

const (
	RoleOwner            Role = "Bookspace Owner"
	RoleManager          Role = "Bookspace Manager"
	RoleAssistantManager Role = "Assistant Bookspace Manager"
	RoleWorker           Role = "Bookspace Worker"
	RoleRegularUser      Role = "Regular User"
)

type SexChoice string

const (
	SexMale   SexChoice = "Male"
	SexFemale SexChoice = "Female"
)

// User carries four independent role flags. The assign operations keep them
// mutually exclusive; GetRole resolves any inconsistent combination by
// precedence (owner > manager > assistant manager > worker).
type User struct {
	ID                 int64     `json:"id"`
	Username           string    `json:"username"`
	PasswordHash       string    `json:"-"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	Email              string    `json:"email"`
	PhoneNumber        string    `json:"phoneNumber"`
	Sex                SexChoice `json:"sex"`
	IsOwner            bool      `json:"isBookspaceOwner"`
	IsManager          bool      `json:"isBookspaceManager"`
	IsAssistantManager bool      `json:"isAssistantBookspaceManager"`
	IsWorker           bool      `json:"isBookspaceWorker"`
	CreatedAt          time.Time `json:"createdAt"`
	Version            int32     `json:"-"`
}

// RoleTransition mutates the role flags of a single user in memory.
// Persistence is the caller's concern.
type RoleTransition func(*User)

func (u *User) AssignOwner() {
	u.IsOwner = true
	u.IsManager = false
	u.IsAssistantManager = false
	u.IsWorker = false
}

func (u *User) AssignManager() {
	u.IsOwner = false
	u.IsManager = true
	u.IsAssistantManager = false
	u.IsWorker = false
}

func (u *User) AssignAssistantManager() {
	u.IsOwner = false
	u.IsManager = false
	u.IsAssistantManager = true
	u.IsWorker = false
}

func (u *User) AssignWorker() {
	u.IsOwner = false
	u.IsManager = false
	u.IsAssistantManager = false
	u.IsWorker = true
}

func (u *User) DismissOwner() {
	u.IsOwner = false
}

func (u *User) DismissManager() {
	u.IsManager = false
}

func (u *User) DismissAssistantManager() {
	u.IsAssistantManager = false
}

func (u *User) DismissWorker() {
	u.IsWorker = false
}

func (u *User) GetRole() Role {
	switch {
	case u.IsOwner:
		return RoleOwner
	case u.IsManager:
		return RoleManager
	case u.IsAssistantManager:
		return RoleAssistantManager
	case u.IsWorker:
		return RoleWorker
	default:
		return RoleRegularUser
	}
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
