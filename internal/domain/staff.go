package domain

// StaffGroupID identifies a technician group in the directory.
type StaffGroupID string

const (
	GroupManager     StaffGroupID = "manager"
	GroupNetwork     StaffGroupID = "network"
	GroupApplication StaffGroupID = "application"
	GroupDatabase    StaffGroupID = "database"
)

// StaffGroup describes a technician group and its roster constraints.
type StaffGroup struct {
	ID          StaffGroupID
	Label       string
	Description string
	IDPrefix    string
	MaxMembers  int
	MinMembers  int
}

// StaffMember models a technician listed in the directory.
type StaffMember struct {
	ID    string
	Name  string
	Email string
	Group StaffGroupID
}
