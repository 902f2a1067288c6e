package user

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	vo "github.com/orris-inc/setracker/internal/domain/user/valueobjects"
	"github.com/orris-inc/setracker/internal/shared/authorization"
	"github.com/orris-inc/setracker/internal/shared/biztime"
)

var titleCaser = cases.Title(language.Und)

// User is an account that can report, own or be assigned tickets.
// Only internal team members are eligible for ownership, assignment and
// team-wide reports.
type User struct {
	id           uint
	username     string
	email        *vo.Email
	firstName    string
	lastName     string
	teamMember   bool
	role         authorization.UserRole
	passwordHash string
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username string, email *vo.Email, firstName, lastName string, teamMember bool, role authorization.UserRole) (*User, error) {
	normalized, err := vo.NormalizeUsername(username)
	if err != nil {
		return nil, err
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		username:   normalized,
		email:      email,
		firstName:  strings.TrimSpace(firstName),
		lastName:   strings.TrimSpace(lastName),
		teamMember: teamMember,
		role:       role,
		active:     true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	email *vo.Email,
	firstName, lastName string,
	teamMember bool,
	role authorization.UserRole,
	passwordHash string,
	active bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	return &User{
		id:           id,
		username:     username,
		email:        email,
		firstName:    firstName,
		lastName:     lastName,
		teamMember:   teamMember,
		role:         role,
		passwordHash: passwordHash,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Username() string             { return u.username }
func (u *User) Email() *vo.Email             { return u.email }
func (u *User) FirstName() string            { return u.firstName }
func (u *User) LastName() string             { return u.lastName }
func (u *User) IsTeamMember() bool           { return u.teamMember }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) IsActive() bool               { return u.active }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

// DisplayName is the title-cased full name, or the username when no name is set.
func (u *User) DisplayName() string {
	return DisplayName(u.username, u.firstName, u.lastName)
}

// DisplayName builds a display name from raw fields for read models that do
// not load the full aggregate.
func DisplayName(username, firstName, lastName string) string {
	full := strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
	if full == "" {
		return username
	}
	return titleCaser.String(full)
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	u.id = id
	return nil
}

func (u *User) SetPasswordHash(hash string) {
	u.passwordHash = hash
	u.touch()
}

// SetTeamMember toggles internal team membership. Returns false when unchanged.
func (u *User) SetTeamMember(member bool) bool {
	if u.teamMember == member {
		return false
	}
	u.teamMember = member
	u.touch()
	return true
}

func (u *User) Deactivate() {
	u.active = false
	u.touch()
}

// CanLogin reports whether the account may authenticate.
func (u *User) CanLogin() bool {
	return u.active && u.passwordHash != ""
}

func (u *User) touch() {
	u.updatedAt = biztime.NowUTC()
}
