// Package memory keeps every repository in process memory with the same
// uniqueness, ownership and cascade rules as the Postgres schema. It backs
// tests and local runs without a database.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"job-bridge/internal/domain/application"
	"job-bridge/internal/domain/candidate"
	"job-bridge/internal/domain/message"
	"job-bridge/internal/domain/posting"
	"job-bridge/internal/domain/profile"
	"job-bridge/internal/domain/skill"
	"job-bridge/internal/domain/user"
)

type Store struct {
	mu sync.Mutex

	base time.Time
	tick int64
	seq  map[string]int64

	users        map[int64]user.User
	seekers      map[int64]profile.JobSeekerProfile
	employers    map[int64]profile.EmployerProfile
	skills       map[int64]skill.Skill
	seekerSkills map[int64][]int64
	postings     map[int64]posting.Posting
	applications map[int64]application.Application
	saved        map[int64]candidate.Saved
	messages     []message.Message
}

func New() *Store {
	return &Store{
		base:         time.Now().UTC().Truncate(time.Second),
		seq:          map[string]int64{},
		users:        map[int64]user.User{},
		seekers:      map[int64]profile.JobSeekerProfile{},
		employers:    map[int64]profile.EmployerProfile{},
		skills:       map[int64]skill.Skill{},
		seekerSkills: map[int64][]int64{},
		postings:     map[int64]posting.Posting{},
		applications: map[int64]application.Application{},
		saved:        map[int64]candidate.Saved{},
	}
}

// now is strictly increasing so ordering by timestamp is deterministic.
func (s *Store) now() time.Time {
	s.tick++
	return s.base.Add(time.Duration(s.tick) * time.Millisecond)
}

func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func (s *Store) Users() *Users { return &Users{s} }

func (s *Store) Profiles() *Profiles { return &Profiles{s} }

func (s *Store) Skills() *Skills { return &Skills{s} }

func (s *Store) JobSeekerSkills() *SeekerSkills { return &SeekerSkills{s} }

func (s *Store) Postings() *Postings { return &Postings{s} }

func (s *Store) Applications() *Applications { return &Applications{s} }

func (s *Store) Candidates() *Candidates { return &Candidates{s} }

func (s *Store) Messages() *Messages { return &Messages{s} }

// AddSkill inserts reference data the way the skills seeder does.
func (s *Store) AddSkill(name, category string) skill.Skill {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sk := range s.skills {
		if sk.Name == name {
			return sk
		}
	}
	sk := skill.Skill{ID: s.nextID("skills"), Name: name, Category: category, CreatedAt: s.now()}
	s.skills[sk.ID] = sk
	return sk
}

func (s *Store) seekerByUser(userID int64) (profile.JobSeekerProfile, bool) {
	for _, p := range s.seekers {
		if p.UserID == userID {
			return p, true
		}
	}
	return profile.JobSeekerProfile{}, false
}

func (s *Store) employerByUser(userID int64) (profile.EmployerProfile, bool) {
	for _, p := range s.employers {
		if p.UserID == userID {
			return p, true
		}
	}
	return profile.EmployerProfile{}, false
}

func (s *Store) skillNames(seekerID int64) []string {
	names := make([]string, 0, len(s.seekerSkills[seekerID]))
	for _, id := range s.seekerSkills[seekerID] {
		names = append(names, s.skills[id].Name)
	}
	sort.Strings(names)
	return names
}

// withPostingView fills the joined and aggregated columns of a posting row.
func (s *Store) withPostingView(p posting.Posting) posting.Posting {
	ep := s.employers[p.EmployerID]
	p.CompanyName = ep.CompanyName
	p.CompanyDescription = ep.CompanyDescription
	p.EmployerUserID = ep.UserID
	p.ApplicationsCount = 0
	for _, a := range s.applications {
		if a.JobPostingID == p.ID {
			p.ApplicationsCount++
		}
	}
	p.Skills = append([]string{}, p.Skills...)
	return p
}

func newestPostingsFirst(items []posting.Posting) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
