package skill

import "time"

type Skill struct {
	ID        int64
	Name      string
	Category  string
	CreatedAt time.Time
}

type JobSeekerSkill struct {
	JobSeekerID int64
	SkillID     int64
}
