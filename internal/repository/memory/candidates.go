package memory

import (
	"context"
	"sort"
	"strings"

	"job-bridge/internal/domain/candidate"
	"job-bridge/internal/domain/message"
	"job-bridge/internal/repository"
)

type Candidates struct{ s *Store }

func (r *Candidates) Search(_ context.Context, employerID int64, f candidate.Filter) ([]candidate.Candidate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]candidate.Candidate, 0)
	for _, p := range r.s.seekers {
		u := r.s.users[p.UserID]
		skills := r.s.skillNames(p.ID)
		if len(f.Terms) > 0 && !matchesAny(f.Terms, p.FirstName, p.LastName, u.Username, skills) {
			continue
		}
		out = append(out, candidate.Candidate{
			Profile:  p,
			Username: u.Username,
			Email:    u.Email,
			Skills:   skills,
			Saved:    r.isSaved(employerID, p.ID),
		})
	}

	if f.SortBy == candidate.SortByName {
		sort.Slice(out, func(i, j int) bool {
			a, b := out[i].Profile, out[j].Profile
			if a.FirstName != b.FirstName {
				return a.FirstName < b.FirstName
			}
			if a.LastName != b.LastName {
				return a.LastName < b.LastName
			}
			return a.ID < b.ID
		})
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].Profile.ID > out[j].Profile.ID })
	}
	return out, nil
}

func matchesAny(terms []string, first, last, username string, skills []string) bool {
	for _, term := range terms {
		if term = strings.TrimSpace(term); term != "" && matchesCandidate(term, first, last, username, skills) {
			return true
		}
	}
	return false
}

func matchesCandidate(term, first, last, username string, skills []string) bool {
	if containsFold(first, term) || containsFold(last, term) || containsFold(username, term) {
		return true
	}
	for _, s := range skills {
		if containsFold(s, term) {
			return true
		}
	}
	return false
}

func (r *Candidates) isSaved(employerID, seekerID int64) bool {
	for _, sv := range r.s.saved {
		if sv.EmployerID == employerID && sv.JobSeekerID == seekerID {
			return true
		}
	}
	return false
}

func (r *Candidates) SaveCandidate(_ context.Context, sv candidate.Saved) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.employers[sv.EmployerID]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := r.s.seekers[sv.JobSeekerID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range r.s.saved {
		if existing.EmployerID == sv.EmployerID && existing.JobSeekerID == sv.JobSeekerID {
			existing.Notes = sv.Notes
			existing.MatchScore = sv.MatchScore
			existing.SavedAt = r.s.now()
			r.s.saved[id] = existing
			return nil
		}
	}
	r.s.saved[r.s.nextID("saved_candidates")] = candidate.Saved{
		EmployerID:  sv.EmployerID,
		JobSeekerID: sv.JobSeekerID,
		Notes:       sv.Notes,
		MatchScore:  sv.MatchScore,
		SavedAt:     r.s.now(),
	}
	return nil
}

func (r *Candidates) ListSaved(_ context.Context, employerID int64) ([]candidate.Saved, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]candidate.Saved, 0)
	for id, sv := range r.s.saved {
		if sv.EmployerID != employerID {
			continue
		}
		sv.ID = id
		sv.Profile = r.s.seekers[sv.JobSeekerID]
		sv.Skills = r.s.skillNames(sv.JobSeekerID)
		out = append(out, sv)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SavedAt.Equal(out[j].SavedAt) {
			return out[i].SavedAt.After(out[j].SavedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *Candidates) RemoveSaved(_ context.Context, employerID, jobSeekerID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, sv := range r.s.saved {
		if sv.EmployerID == employerID && sv.JobSeekerID == jobSeekerID {
			delete(r.s.saved, id)
		}
	}
	return nil
}

type Messages struct{ s *Store }

func (r *Messages) Create(_ context.Context, m message.Message) (message.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[m.SenderID]; !ok {
		return message.Message{}, repository.ErrNotFound
	}
	if _, ok := r.s.users[m.ReceiverID]; !ok {
		return message.Message{}, repository.ErrNotFound
	}
	m.ID = r.s.nextID("messages")
	m.SentAt = r.s.now()
	r.s.messages = append(r.s.messages, m)
	return m, nil
}

func (r *Messages) ListForUser(_ context.Context, userID int64) ([]message.Message, error) {
	out := r.filter(func(m message.Message) bool { return m.SenderID == userID || m.ReceiverID == userID })
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *Messages) ListConversation(_ context.Context, userID, partnerID int64) ([]message.Message, error) {
	out := r.filter(func(m message.Message) bool {
		return (m.SenderID == userID && m.ReceiverID == partnerID) ||
			(m.SenderID == partnerID && m.ReceiverID == userID)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Messages) filter(keep func(message.Message) bool) []message.Message {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]message.Message, 0)
	for _, m := range r.s.messages {
		if !keep(m) {
			continue
		}
		m.SenderUsername = r.s.users[m.SenderID].Username
		m.ReceiverUsername = r.s.users[m.ReceiverID].Username
		out = append(out, m)
	}
	return out
}
