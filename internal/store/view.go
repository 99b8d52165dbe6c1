package store

import "github.com/Zomujo/dial4inclusion/internal/domain"

// StatusFilter narrows the visible list to one workflow status. FilterAll is
// the sentinel meaning no narrowing.
type StatusFilter string

const FilterAll StatusFilter = "all"

// Matches reports whether a complaint passes the filter.
func (f StatusFilter) Matches(c *domain.Complaint) bool {
	if f == FilterAll || f == "" {
		return true
	}
	return c.Status == domain.ComplaintStatus(f)
}

// Visible derives what the user may see from the raw cache. Rules, in order:
// district officers keep only cases assigned to them (and, when their record
// carries a district, cases in that district — defensive, the server already
// scopes); navigators keep only cases they logged; admins see everything
// fetched. The status filter is the final intersection.
func Visible(cache []domain.Complaint, user *domain.User, filter StatusFilter) []domain.Complaint {
	if user == nil {
		return nil
	}

	visible := make([]domain.Complaint, 0, len(cache))
	for i := range cache {
		c := &cache[i]
		switch user.Role {
		case domain.RoleDistrictOfficer:
			if !c.AssignedToUser(user.ID) {
				continue
			}
			if user.District != nil && c.District != "" && c.District != *user.District {
				continue
			}
		case domain.RoleNavigator:
			if !c.CreatedByUser(user.ID) {
				continue
			}
		}
		if !filter.Matches(c) {
			continue
		}
		visible = append(visible, *c)
	}
	return visible
}

// EscalatedTo derives the admin escalation inbox: cases escalated directly to
// this admin. Empty for every other role.
func EscalatedTo(cache []domain.Complaint, user *domain.User) []domain.Complaint {
	if user == nil || user.Role != domain.RoleAdmin {
		return nil
	}
	inbox := make([]domain.Complaint, 0)
	for i := range cache {
		c := &cache[i]
		if c.Status == domain.StatusEscalated && c.AssignedToUser(user.ID) {
			inbox = append(inbox, *c)
		}
	}
	return inbox
}

// Active resolves the focused complaint: the explicitly selected one, or the
// first visible entry as a default-focus convenience when nothing is
// selected. Returns nil when neither exists.
func Active(cache, visible []domain.Complaint, selectedID string) *domain.Complaint {
	if selectedID != "" {
		for i := range cache {
			if cache[i].ID == selectedID {
				c := cache[i]
				return &c
			}
		}
		return nil
	}
	if len(visible) > 0 {
		c := visible[0]
		return &c
	}
	return nil
}
