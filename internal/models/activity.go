package models

import "strings"

// ActivityKind is one of the fixed activity tags stored in alumni.activities.
type ActivityKind string

const (
	ActivityWorker    ActivityKind = "bekerja"
	ActivityHomemaker ActivityKind = "ibu rumah tangga"
	ActivityBusiness  ActivityKind = "bisnis / freelance"
)

// ActivityKinds lists every kind in opportunity pooling order.
var ActivityKinds = []ActivityKind{ActivityBusiness, ActivityWorker, ActivityHomemaker}

func ParseActivityKind(tag string) (ActivityKind, bool) {
	switch ActivityKind(strings.ToLower(strings.TrimSpace(tag))) {
	case ActivityWorker:
		return ActivityWorker, true
	case ActivityHomemaker:
		return ActivityHomemaker, true
	case ActivityBusiness:
		return ActivityBusiness, true
	}
	return "", false
}

// ParseActivities splits the stored activities text, keeping declared order.
// Unknown tags are skipped and repeated tags collapse to their first position.
func ParseActivities(s string) []ActivityKind {
	var out []ActivityKind
	seen := map[ActivityKind]bool{}
	for _, tag := range strings.Split(s, ",") {
		k, ok := ParseActivityKind(tag)
		if !ok || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// NewDetail returns an empty row of the kind's detail table, ready to be scanned into.
func (k ActivityKind) NewDetail() ActivityDetail {
	switch k {
	case ActivityWorker:
		return &WorkerDetail{}
	case ActivityHomemaker:
		return &HomemakerDetail{}
	case ActivityBusiness:
		return &BusinessDetail{}
	}
	return nil
}

type Field struct {
	Key   string
	Value string
}

// ActivityDetail is a row from one of the per-activity detail tables.
type ActivityDetail interface {
	Kind() ActivityKind
	OwnerID() int64
	// Fields returns every column in table order; NULL reads as "".
	Fields() []Field
	// NeedsText returns the free-text columns matched against another alumnus' skills.
	NeedsText() []string
}

type WorkerDetail struct {
	AlumniID      int64   `gorm:"column:alumni_id;primaryKey" json:"alumni_id"`
	Skill         *string `gorm:"column:skill;type:text" json:"skill"`
	Description   *string `gorm:"column:description;type:text" json:"description"`
	Certification *string `gorm:"column:certification;type:text" json:"certification"`
	SupportNeeded *string `gorm:"column:support_needed;type:text" json:"support_needed"`
}

func (WorkerDetail) TableName() string { return "worker_detail" }

func (WorkerDetail) Kind() ActivityKind { return ActivityWorker }

func (d WorkerDetail) OwnerID() int64 { return d.AlumniID }

func (d WorkerDetail) Fields() []Field {
	return []Field{
		{"skill", deref(d.Skill)},
		{"description", deref(d.Description)},
		{"certification", deref(d.Certification)},
		{"support_needed", deref(d.SupportNeeded)},
	}
}

func (d WorkerDetail) NeedsText() []string {
	return []string{deref(d.Skill), deref(d.Description), deref(d.SupportNeeded)}
}

type HomemakerDetail struct {
	AlumniID        int64   `gorm:"column:alumni_id;primaryKey" json:"alumni_id"`
	InterestArea    *string `gorm:"column:interest_area;type:text" json:"interest_area"`
	SpecificArea    *string `gorm:"column:specific_area;type:text" json:"specific_area"`
	ClassExperience *string `gorm:"column:class_experience;type:text" json:"class_experience"`
	NeedsGroup      *string `gorm:"column:needs_group;type:text" json:"needs_group"`
}

func (HomemakerDetail) TableName() string { return "homemaker_detail" }

func (HomemakerDetail) Kind() ActivityKind { return ActivityHomemaker }

func (d HomemakerDetail) OwnerID() int64 { return d.AlumniID }

func (d HomemakerDetail) Fields() []Field {
	return []Field{
		{"interest_area", deref(d.InterestArea)},
		{"specific_area", deref(d.SpecificArea)},
		{"class_experience", deref(d.ClassExperience)},
		{"needs_group", deref(d.NeedsGroup)},
	}
}

func (d HomemakerDetail) NeedsText() []string {
	return []string{deref(d.InterestArea), deref(d.SpecificArea), deref(d.NeedsGroup)}
}

type BusinessDetail struct {
	AlumniID          int64   `gorm:"column:alumni_id;primaryKey" json:"alumni_id"`
	BusinessName      *string `gorm:"column:business_name;type:text" json:"business_name"`
	BusinessField     *string `gorm:"column:business_field;type:text" json:"business_field"`
	SupportNeeded     *string `gorm:"column:support_needed;type:text" json:"support_needed"`
	CollaborationNeed *string `gorm:"column:collaboration_need;type:text" json:"collaboration_need"`
	HRNeed            *string `gorm:"column:hr_need;type:text" json:"hr_need"`
	PracticalSkill    *string `gorm:"column:practical_skill;type:text" json:"practical_skill"`
}

func (BusinessDetail) TableName() string { return "business_detail" }

func (BusinessDetail) Kind() ActivityKind { return ActivityBusiness }

func (d BusinessDetail) OwnerID() int64 { return d.AlumniID }

func (d BusinessDetail) Fields() []Field {
	return []Field{
		{"business_field", deref(d.BusinessField)},
		{"support_needed", deref(d.SupportNeeded)},
		{"collaboration_need", deref(d.CollaborationNeed)},
		{"hr_need", deref(d.HRNeed)},
		{"practical_skill", deref(d.PracticalSkill)},
		{"business_name", deref(d.BusinessName)},
	}
}

func (d BusinessDetail) NeedsText() []string {
	return []string{deref(d.SupportNeeded), deref(d.CollaborationNeed), deref(d.HRNeed)}
}

// Value is a small helper for reading optional columns outside this package.
func Value(s *string) string { return deref(s) }
