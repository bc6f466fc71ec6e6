// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"workspace-membership/internal/api"
	"workspace-membership/internal/entities"
)

// FromAPIProfile builds an entities.UserProfile from a transport DTO.
func FromAPIProfile(src api.UserProfile) entities.UserProfile {
	return entities.UserProfile{
		Name:      src.Name,
		Username:  src.Username,
		Email:     src.Email,
		AvatarURL: src.AvatarURL,
		Bio:       src.Bio,
		Theme:     fromAPITheme(src.Theme),
	}
}

// FromAPIOwner builds an entities.Owner from a transport DTO.
func FromAPIOwner(src api.Owner) entities.Owner {
	switch entities.OwnerKindFromLabel(src.Kind) {
	case entities.OwnerKindUser:
		return entities.UserOwner(entities.Identity(src.UserID))
	case entities.OwnerKindTeam:
		return entities.TeamOwner(src.TeamID)
	default:
		return entities.Owner{}
	}
}

// FromAPITarget builds an entities.InviteTarget from a transport DTO.
func FromAPITarget(src api.InviteTarget) entities.InviteTarget {
	return entities.InviteTarget{
		Kind: entities.TargetKindFromLabel(src.Kind),
		ID:   src.ID,
	}
}

// ToAPIUser maps entities.User to a transport model.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		UserID: string(u.ID),
		Profile: api.UserProfile{
			Name:      u.Profile.Name,
			Username:  u.Profile.Username,
			Email:     u.Profile.Email,
			AvatarURL: u.Profile.AvatarURL,
			Bio:       u.Profile.Bio,
			Theme:     toAPITheme(u.Profile.Theme),
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToAPIUserList maps a slice of users to the transport slice.
func ToAPIUserList(users []entities.User) []api.User {
	res := make([]api.User, 0, len(users))
	for _, u := range users {
		res = append(res, ToAPIUser(u))
	}
	return res
}

// ToAPITeam maps entities.Team to a transport model.
func ToAPITeam(t entities.Team) api.Team {
	return api.Team{
		TeamID:      t.ID,
		Name:        t.Name,
		Description: t.Description,
		IsPublic:    t.IsPublic,
		OwnerID:     string(t.OwnerID),
		Members:     toAPIMembers(t.Members),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToAPITeamList maps a slice of teams to the transport slice.
func ToAPITeamList(teams []entities.Team) []api.Team {
	res := make([]api.Team, 0, len(teams))
	for _, t := range teams {
		res = append(res, ToAPITeam(t))
	}
	return res
}

// ToAPIProject maps entities.Project to a transport model.
func ToAPIProject(p entities.Project) api.Project {
	return api.Project{
		ProjectID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Owner:       toAPIOwner(p.Owner),
		Members:     toAPIMembers(p.Members),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToAPIProjectList maps a slice of projects to the transport slice.
func ToAPIProjectList(projects []entities.Project) []api.Project {
	res := make([]api.Project, 0, len(projects))
	for _, p := range projects {
		res = append(res, ToAPIProject(p))
	}
	return res
}

// ToAPIInvite maps entities.Invite to a transport model.
func ToAPIInvite(i entities.Invite) api.Invite {
	return api.Invite{
		InviteID: i.ID,
		Target: api.InviteTarget{
			Kind: i.Target.Kind.Label(),
			ID:   i.Target.ID,
		},
		Role:        i.Role.Label(),
		InvitedBy:   string(i.InvitedBy),
		InvitedUser: string(i.Invited),
		Status:      i.Status.Label(),
		ExpiresAt:   i.ExpiresAt,
		CreatedAt:   i.CreatedAt,
	}
}

// ToAPIInviteList maps a slice of invites to the transport slice.
func ToAPIInviteList(invites []entities.Invite) []api.Invite {
	res := make([]api.Invite, 0, len(invites))
	for _, i := range invites {
		res = append(res, ToAPIInvite(i))
	}
	return res
}

func toAPIMembers(members []entities.Member) []api.Member {
	res := make([]api.Member, 0, len(members))
	for _, m := range members {
		res = append(res, api.Member{
			UserID:   string(m.UserID),
			Role:     m.Role.Label(),
			JoinedAt: m.JoinedAt,
		})
	}
	return res
}

func toAPIOwner(owner entities.Owner) api.Owner {
	switch owner.Kind {
	case entities.OwnerKindUser:
		return api.Owner{Kind: owner.Kind.Label(), UserID: string(owner.UserID)}
	case entities.OwnerKindTeam:
		return api.Owner{Kind: owner.Kind.Label(), TeamID: owner.TeamID}
	default:
		return api.Owner{Kind: entities.OwnerKindUnspecified.Label()}
	}
}

func toAPITheme(theme *entities.ThemePreferences) *api.ThemePreferences {
	if theme == nil {
		return nil
	}
	return &api.ThemePreferences{Color: theme.Color, DarkMode: theme.DarkMode}
}

func fromAPITheme(theme *api.ThemePreferences) *entities.ThemePreferences {
	if theme == nil {
		return nil
	}
	return &entities.ThemePreferences{Color: theme.Color, DarkMode: theme.DarkMode}
}
