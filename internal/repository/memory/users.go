package memory

import (
	"context"
	"sort"

	"job-bridge/internal/domain/profile"
	"job-bridge/internal/domain/skill"
	"job-bridge/internal/domain/user"
	"job-bridge/internal/repository"
)

type Users struct{ s *Store }

func (r *Users) CreateUser(_ context.Context, u user.User) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return user.User{}, &user.ConflictError{Field: "username"}
		}
		if existing.Email == u.Email {
			return user.User{}, &user.ConflictError{Field: "email"}
		}
	}
	u.ID = r.s.nextID("users")
	u.CreatedAt = r.s.now()
	r.s.users[u.ID] = u
	return u, nil
}

func (r *Users) GetUserByID(_ context.Context, id int64) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *Users) GetUserByUsername(_ context.Context, username string, role user.Role) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username && u.Role == role {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *Users) ListUsers(_ context.Context) ([]user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]user.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		u.PasswordHash = ""
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type Profiles struct{ s *Store }

func (r *Profiles) UpsertJobSeeker(_ context.Context, p profile.JobSeekerProfile) (profile.JobSeekerProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[p.UserID]; !ok {
		return profile.JobSeekerProfile{}, repository.ErrNotFound
	}
	now := r.s.now()
	if existing, ok := r.s.seekerByUser(p.UserID); ok {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	} else {
		p.ID = r.s.nextID("job_seeker_profiles")
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	r.s.seekers[p.ID] = p
	return p, nil
}

func (r *Profiles) FindJobSeekerByUserID(_ context.Context, userID int64) (profile.JobSeekerProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.seekerByUser(userID)
	if !ok {
		return profile.JobSeekerProfile{}, repository.ErrNotFound
	}
	return p, nil
}

func (r *Profiles) FindJobSeekerByID(_ context.Context, id int64) (profile.JobSeekerProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.seekers[id]
	if !ok {
		return profile.JobSeekerProfile{}, repository.ErrNotFound
	}
	return p, nil
}

func (r *Profiles) UpsertEmployer(_ context.Context, p profile.EmployerProfile) (profile.EmployerProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[p.UserID]; !ok {
		return profile.EmployerProfile{}, repository.ErrNotFound
	}
	now := r.s.now()
	if existing, ok := r.s.employerByUser(p.UserID); ok {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	} else {
		p.ID = r.s.nextID("employer_profiles")
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	r.s.employers[p.ID] = p
	return p, nil
}

func (r *Profiles) FindEmployerByUserID(_ context.Context, userID int64) (profile.EmployerProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.employerByUser(userID)
	if !ok {
		return profile.EmployerProfile{}, repository.ErrNotFound
	}
	return p, nil
}

type Skills struct{ s *Store }

func (r *Skills) GetAllSkills(_ context.Context) ([]skill.Skill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]skill.Skill, 0, len(r.s.skills))
	for _, sk := range r.s.skills {
		out = append(out, sk)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Skills) CountExisting(_ context.Context, ids []int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	seen := map[int64]struct{}{}
	for _, id := range ids {
		if _, ok := r.s.skills[id]; ok {
			seen[id] = struct{}{}
		}
	}
	return len(seen), nil
}

type SeekerSkills struct{ s *Store }

func (r *SeekerSkills) FindByJobSeekerID(_ context.Context, jobSeekerID int64) ([]skill.Skill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]skill.Skill, 0)
	for _, id := range r.s.seekerSkills[jobSeekerID] {
		out = append(out, r.s.skills[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *SeekerSkills) ReplaceForJobSeeker(_ context.Context, jobSeekerID int64, skillIDs []int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.seekers[jobSeekerID]; !ok {
		return repository.ErrNotFound
	}
	ids := make([]int64, 0, len(skillIDs))
	seen := map[int64]struct{}{}
	for _, id := range skillIDs {
		if _, ok := r.s.skills[id]; !ok {
			return repository.ErrNotFound
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	r.s.seekerSkills[jobSeekerID] = ids
	return nil
}
