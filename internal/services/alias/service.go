package alias

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"hme/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Service exposes one operation per command verb over an authenticated
// session.
type Service struct {
	client domain.AccountClient
	sess   domain.Session
}

func New(client domain.AccountClient, sess domain.Session) *Service {
	return &Service{client: client, sess: sess}
}

// List fetches all aliases, applies the active filter, and truncates to
// limit (0 means no truncation). The second return is the total after
// filtering but before truncation, for the "N of M" notice.
func (s *Service) List(ctx context.Context, activeOnly bool, limit int) ([]domain.Alias, int, error) {
	all, err := s.client.ListAliases(ctx, s.sess)
	if err != nil {
		return nil, 0, err
	}
	if activeOnly {
		kept := all[:0]
		for _, a := range all {
			if a.Active {
				kept = append(kept, a)
			}
		}
		all = kept
	}
	total := len(all)
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

// Search returns the aliases whose label, address, or note contains query,
// case-insensitively.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Alias, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query is empty", domain.ErrValidation)
	}
	all, err := s.client.ListAliases(ctx, s.sess)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var out []domain.Alias
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Label), q) ||
			strings.Contains(strings.ToLower(a.Address), q) ||
			strings.Contains(strings.ToLower(a.Note), q) {
			out = append(out, a)
		}
	}
	return out, nil
}

// Create reserves a new alias with the given label and optional note.
func (s *Service) Create(ctx context.Context, label, note string) (domain.Alias, error) {
	if strings.TrimSpace(label) == "" {
		return domain.Alias{}, fmt.Errorf("%w: label is required", domain.ErrValidation)
	}
	return s.client.CreateAlias(ctx, s.sess, label, note)
}

// Resolve finds an alias by its address or anonymous id.
func (s *Service) Resolve(ctx context.Context, target string) (domain.Alias, error) {
	if err := validateTarget(target); err != nil {
		return domain.Alias{}, err
	}
	all, err := s.client.ListAliases(ctx, s.sess)
	if err != nil {
		return domain.Alias{}, err
	}
	for _, a := range all {
		if a.Address == target || a.AnonymousID == target {
			return a, nil
		}
	}
	return domain.Alias{}, fmt.Errorf("%w: %s", domain.ErrNotFound, target)
}

// Update changes the label and/or note of the target alias. Nil keeps the
// current value; at least one field must be given. Returns the alias as it
// stands after the update.
func (s *Service) Update(ctx context.Context, target string, label, note *string) (domain.Alias, error) {
	if label == nil && note == nil {
		return domain.Alias{}, fmt.Errorf("%w: nothing to update, give --label or --note", domain.ErrValidation)
	}
	a, err := s.Resolve(ctx, target)
	if err != nil {
		return domain.Alias{}, err
	}

	newLabel, newNote := a.Label, a.Note
	if label != nil {
		newLabel = *label
	}
	if note != nil {
		newNote = *note
	}
	if strings.TrimSpace(newLabel) == "" {
		return domain.Alias{}, fmt.Errorf("%w: label cannot be empty", domain.ErrValidation)
	}

	if err := s.client.UpdateAlias(ctx, s.sess, a.AnonymousID, newLabel, newNote); err != nil {
		return domain.Alias{}, err
	}
	a.Label, a.Note = newLabel, newNote
	return a, nil
}

// SetActive toggles forwarding for the target alias. The bool reports
// whether a remote change was made; asking for the state the alias is
// already in is a no-op, not an error.
func (s *Service) SetActive(ctx context.Context, target string, active bool) (domain.Alias, bool, error) {
	a, err := s.Resolve(ctx, target)
	if err != nil {
		return domain.Alias{}, false, err
	}
	if a.Active == active {
		return a, false, nil
	}
	if err := s.client.SetAliasActive(ctx, s.sess, a.AnonymousID, active); err != nil {
		return domain.Alias{}, false, err
	}
	a.Active = active
	return a, true, nil
}

// Delete permanently removes the target alias and returns the record that
// was deleted.
func (s *Service) Delete(ctx context.Context, target string) (domain.Alias, error) {
	a, err := s.Resolve(ctx, target)
	if err != nil {
		return domain.Alias{}, err
	}
	if err := s.client.DeleteAlias(ctx, s.sess, a.AnonymousID); err != nil {
		return domain.Alias{}, err
	}
	return a, nil
}

// validateTarget accepts an alias address or an opaque anonymous id.
// Anything that looks like an email must actually parse as one.
func validateTarget(target string) error {
	if strings.TrimSpace(target) == "" {
		return fmt.Errorf("%w: alias address or id is required", domain.ErrValidation)
	}
	if strings.Contains(target, "@") && !emailPattern.MatchString(target) {
		return fmt.Errorf("%w: %q is not a valid email address", domain.ErrValidation, target)
	}
	return nil
}
