package memory

import (
	"context"
	"sort"

	"job-bridge/internal/domain/application"
	"job-bridge/internal/domain/posting"
	"job-bridge/internal/repository"
)

type Postings struct{ s *Store }

func (r *Postings) Create(_ context.Context, p posting.Posting) (posting.Posting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.employers[p.EmployerID]; !ok {
		return posting.Posting{}, repository.ErrNotFound
	}
	now := r.s.now()
	p.ID = r.s.nextID("job_postings")
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Skills = append([]string{}, p.Skills...)
	r.s.postings[p.ID] = p
	return r.s.withPostingView(p), nil
}

func (r *Postings) Update(_ context.Context, p posting.Posting) (posting.Posting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.postings[p.ID]
	if !ok || existing.EmployerID != p.EmployerID {
		return posting.Posting{}, repository.ErrNotFound
	}
	existing.Title = p.Title
	existing.Description = p.Description
	existing.Requirements = p.Requirements
	existing.Location = p.Location
	existing.JobType = p.JobType
	existing.SalaryRange = p.SalaryRange
	existing.Status = p.Status
	existing.Skills = append([]string{}, p.Skills...)
	existing.UpdatedAt = r.s.now()
	r.s.postings[p.ID] = existing
	return r.s.withPostingView(existing), nil
}

func (r *Postings) SetStatus(_ context.Context, employerID, id int64, status posting.Status) (posting.Posting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.postings[id]
	if !ok || existing.EmployerID != employerID {
		return posting.Posting{}, repository.ErrNotFound
	}
	existing.Status = status
	existing.UpdatedAt = r.s.now()
	r.s.postings[id] = existing
	return r.s.withPostingView(existing), nil
}

// Delete cascades to the posting's applications.
func (r *Postings) Delete(_ context.Context, employerID, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.postings[id]
	if !ok || existing.EmployerID != employerID {
		return repository.ErrNotFound
	}
	delete(r.s.postings, id)
	for appID, a := range r.s.applications {
		if a.JobPostingID == id {
			delete(r.s.applications, appID)
		}
	}
	return nil
}

func (r *Postings) FindByID(_ context.Context, id int64) (posting.Posting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.postings[id]
	if !ok {
		return posting.Posting{}, repository.ErrNotFound
	}
	return r.s.withPostingView(p), nil
}

func (r *Postings) ListActive(_ context.Context) ([]posting.Posting, error) {
	return r.list(func(p posting.Posting) bool { return p.Status == posting.StatusActive }), nil
}

func (r *Postings) ListByEmployer(_ context.Context, employerID int64) ([]posting.Posting, error) {
	return r.list(func(p posting.Posting) bool { return p.EmployerID == employerID }), nil
}

func (r *Postings) ListAll(_ context.Context) ([]posting.Posting, error) {
	return r.list(func(posting.Posting) bool { return true }), nil
}

func (r *Postings) list(keep func(posting.Posting) bool) []posting.Posting {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]posting.Posting, 0)
	for _, p := range r.s.postings {
		if keep(p) {
			out = append(out, r.s.withPostingView(p))
		}
	}
	newestPostingsFirst(out)
	return out
}

type Applications struct{ s *Store }

func (r *Applications) Create(_ context.Context, postingID, jobSeekerID int64, coverLetter string) (application.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.postings[postingID]; !ok {
		return application.Application{}, repository.ErrNotFound
	}
	seeker, ok := r.s.seekers[jobSeekerID]
	if !ok {
		return application.Application{}, repository.ErrNotFound
	}
	for _, a := range r.s.applications {
		if a.JobPostingID == postingID && a.JobSeekerID == jobSeekerID {
			return application.Application{}, repository.ErrDuplicate
		}
	}
	now := r.s.now()
	a := application.Application{
		ID:              r.s.nextID("job_applications"),
		JobPostingID:    postingID,
		JobSeekerID:     jobSeekerID,
		Status:          application.StatusPending,
		CoverLetter:     coverLetter,
		AppliedAt:       now,
		UpdatedAt:       now,
		JobSeekerUserID: seeker.UserID,
	}
	r.s.applications[a.ID] = a
	return a, nil
}

func (r *Applications) ListByPosting(_ context.Context, postingID int64) ([]application.Applicant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]application.Applicant, 0)
	for _, a := range r.s.applications {
		if a.JobPostingID != postingID {
			continue
		}
		seeker := r.s.seekers[a.JobSeekerID]
		u := r.s.users[seeker.UserID]
		a.JobSeekerUserID = seeker.UserID
		out = append(out, application.Applicant{
			Application:   a,
			JobSeekerName: seeker.DisplayName(),
			Username:      u.Username,
			Email:         u.Email,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *Applications) ListByJobSeeker(_ context.Context, jobSeekerID int64) ([]application.Submitted, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]application.Submitted, 0)
	for _, a := range r.s.applications {
		if a.JobSeekerID != jobSeekerID {
			continue
		}
		p := r.s.withPostingView(r.s.postings[a.JobPostingID])
		out = append(out, application.Submitted{
			Application: a,
			JobTitle:    p.Title,
			CompanyName: p.CompanyName,
			Location:    p.Location,
			SalaryRange: p.SalaryRange,
			JobType:     p.JobType,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *Applications) SetStatus(_ context.Context, employerID, applicationID int64, status application.Status) (application.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.applications[applicationID]
	if !ok || r.s.postings[a.JobPostingID].EmployerID != employerID {
		return application.Application{}, repository.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = r.s.now()
	a.JobSeekerUserID = r.s.seekers[a.JobSeekerID].UserID
	r.s.applications[applicationID] = a
	return a, nil
}
