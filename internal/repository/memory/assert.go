package memory

import (
	"job-bridge/internal/domain/user"
	"job-bridge/internal/repository"
)

var (
	_ user.Repository                     = (*Users)(nil)
	_ repository.ProfileRepository        = (*Profiles)(nil)
	_ repository.SkillRepository          = (*Skills)(nil)
	_ repository.JobSeekerSkillRepository = (*SeekerSkills)(nil)
	_ repository.PostingRepository        = (*Postings)(nil)
	_ repository.ApplicationRepository    = (*Applications)(nil)
	_ repository.CandidateRepository      = (*Candidates)(nil)
	_ repository.MessageRepository        = (*Messages)(nil)
)
