package models

type UserRole string

const (
	MasterRole      UserRole = "Master"
	PRRole          UserRole = "PR"
	MediaLabRole    UserRole = "MediaLab"
	DesignRole      UserRole = "Design"
	SocialMediaRole UserRole = "SocialMedia"
	EmployeeRole    UserRole = "Employee"
)

var roleHumanName = map[UserRole]string{
	MasterRole:      "Master Admin",
	PRRole:          "PR Team",
	MediaLabRole:    "Media Lab Team",
	DesignRole:      "Design Team",
	SocialMediaRole: "Social Media Team",
	EmployeeRole:    "Requester",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsMaster() bool {
	return r == MasterRole
}

// IsTeam reports whether the role is one of the specialist teams
// a request can be fanned out to.
func (r UserRole) IsTeam() bool {
	switch r {
	case PRRole, MediaLabRole, DesignRole, SocialMediaRole:
		return true
	}
	return false
}

func (r UserRole) IsValid() bool {
	switch r {
	case MasterRole, PRRole, MediaLabRole, DesignRole, SocialMediaRole, EmployeeRole:
		return true
	}
	return false
}

func TeamRoles() []UserRole {
	return []UserRole{DesignRole, PRRole, MediaLabRole, SocialMediaRole}
}

const SystemActor = "System"
