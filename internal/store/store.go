package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/developpeurInf/focus-academia-hub/internal/model"
)

// ErrNotFound is returned when no record matches the given id or email.
var ErrNotFound = errors.New("not found")

// Store owns the in-memory collections for the lifetime of the process.
// A single lock guards everything because mutations touch both an entity
// slice and the activity log in one step.
type Store struct {
	mu          sync.RWMutex
	users       []model.User
	credentials map[string]string // email -> bcrypt hash, kept apart from users
	students    []model.Student
	teachers    []model.Teacher
	classes     []model.Class
	activities  []model.ActivityItem // index 0 is newest
}

// New returns a store populated with the seed fixtures.
func New() *Store {
	s := &Store{credentials: make(map[string]string)}
	s.seed()
	return s
}

// newID generates a short random record id, unique enough for collections
// this size.
func newID() string {
	return uuid.NewString()[:8]
}

// -------- Users / credentials --------

// UserByEmail finds a user account by email.
func (s *Store) UserByEmail(email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

// CredentialByEmail returns the stored password hash for an email.
func (s *Store) CredentialByEmail(email string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hash, ok := s.credentials[email]
	if !ok {
		return "", ErrNotFound
	}
	return hash, nil
}

// -------- Students --------

// ListStudents returns students in insertion order, optionally filtered by
// a case-insensitive substring match on name, email or grade.
func (s *Store) ListStudents(query string) []model.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if query == "" {
		return append([]model.Student(nil), s.students...)
	}
	q := strings.ToLower(query)
	var out []model.Student
	for _, st := range s.students {
		if containsFold(q, st.Name, st.Email, st.Grade) {
			out = append(out, st)
		}
	}
	return out
}

// GetStudent finds a student by id.
func (s *Store) GetStudent(id string) (model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.students {
		if st.ID == id {
			return st, nil
		}
	}
	return model.Student{}, ErrNotFound
}

// CreateStudent appends a new student with a fresh id.
func (s *Store) CreateStudent(in model.StudentCreate) model.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := model.Student{
		ID:             newID(),
		Name:           in.Name,
		Email:          in.Email,
		Grade:          in.Grade,
		Status:         in.Status,
		EnrollmentDate: in.EnrollmentDate,
		ParentID:       in.ParentID,
		Avatar:         in.Avatar,
		Address:        in.Address,
		PhoneNumber:    in.PhoneNumber,
		DateOfBirth:    in.DateOfBirth,
		Attendance:     in.Attendance,
		AverageGrade:   in.AverageGrade,
	}
	s.students = append(s.students, st)
	return st
}

// UpdateStudent merges non-nil fields of the patch over the stored record.
// Attendance, averageGrade and avatar always carry forward from the prior
// record when absent from the patch.
func (s *Store) UpdateStudent(actor model.User, id string, in model.StudentUpdate) (model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.students {
		if s.students[i].ID != id {
			continue
		}
		st := &s.students[i]
		setString(&st.Name, in.Name)
		setString(&st.Email, in.Email)
		setString(&st.Grade, in.Grade)
		setString(&st.Status, in.Status)
		setString(&st.EnrollmentDate, in.EnrollmentDate)
		setString(&st.ParentID, in.ParentID)
		setString(&st.Avatar, in.Avatar)
		setString(&st.Address, in.Address)
		setString(&st.PhoneNumber, in.PhoneNumber)
		setString(&st.DateOfBirth, in.DateOfBirth)
		if in.Attendance != nil {
			st.Attendance = in.Attendance
		}
		if in.AverageGrade != nil {
			st.AverageGrade = in.AverageGrade
		}
		s.logActivity(actor, "updated student", st.Name, "system")
		return *st, nil
	}
	return model.Student{}, ErrNotFound
}

// DeleteStudent removes a student by id, reporting whether one was removed.
func (s *Store) DeleteStudent(actor model.User, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, st := range s.students {
		if st.ID == id {
			s.students = append(s.students[:i], s.students[i+1:]...)
			s.logActivity(actor, "removed student", st.Name, "system")
			return true
		}
	}
	return false
}

// -------- Teachers --------

// ListTeachers returns teachers in insertion order, optionally filtered by
// a case-insensitive substring match on name, email, subject, department
// or qualification.
func (s *Store) ListTeachers(query string) []model.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if query == "" {
		return append([]model.Teacher(nil), s.teachers...)
	}
	q := strings.ToLower(query)
	var out []model.Teacher
	for _, t := range s.teachers {
		if containsFold(q, t.Name, t.Email, t.Subject, t.Department, t.Qualification) {
			out = append(out, t)
		}
	}
	return out
}

// GetTeacher finds a teacher by id.
func (s *Store) GetTeacher(id string) (model.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.teachers {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Teacher{}, ErrNotFound
}

// CreateTeacher appends a new teacher and logs the addition.
func (s *Store) CreateTeacher(actor model.User, in model.TeacherCreate) model.Teacher {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := model.Teacher{
		ID:            newID(),
		Name:          in.Name,
		Email:         in.Email,
		Subject:       in.Subject,
		JoinDate:      in.JoinDate,
		Avatar:        in.Avatar,
		PhoneNumber:   in.PhoneNumber,
		Department:    in.Department,
		Qualification: in.Qualification,
	}
	s.teachers = append(s.teachers, t)
	s.logActivity(actor, "added new teacher", t.Name, "system")
	return t
}

// UpdateTeacher merges non-nil fields of the patch over the stored record
// and logs the update.
func (s *Store) UpdateTeacher(actor model.User, id string, in model.TeacherUpdate) (model.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.teachers {
		if s.teachers[i].ID != id {
			continue
		}
		t := &s.teachers[i]
		setString(&t.Name, in.Name)
		setString(&t.Email, in.Email)
		setString(&t.Subject, in.Subject)
		setString(&t.JoinDate, in.JoinDate)
		setString(&t.Avatar, in.Avatar)
		setString(&t.PhoneNumber, in.PhoneNumber)
		setString(&t.Department, in.Department)
		setString(&t.Qualification, in.Qualification)
		s.logActivity(actor, "updated teacher", t.Name, "system")
		return *t, nil
	}
	return model.Teacher{}, ErrNotFound
}

// DeleteTeacher removes a teacher by id, logging the removal under the name
// captured before it. Classes referencing the teacher are left untouched.
func (s *Store) DeleteTeacher(actor model.User, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.teachers {
		if t.ID == id {
			s.teachers = append(s.teachers[:i], s.teachers[i+1:]...)
			s.logActivity(actor, "removed teacher", t.Name, "system")
			return true
		}
	}
	return false
}

// -------- Classes --------

// ListClasses returns classes in insertion order, optionally filtered by a
// case-insensitive substring match on name, subject or teacherName.
func (s *Store) ListClasses(query string) []model.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if query == "" {
		return append([]model.Class(nil), s.classes...)
	}
	q := strings.ToLower(query)
	var out []model.Class
	for _, c := range s.classes {
		if containsFold(q, c.Name, c.Subject, c.TeacherName) {
			out = append(out, c)
		}
	}
	return out
}

// GetClass finds a class by id.
func (s *Store) GetClass(id string) (model.Class, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.classes {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Class{}, ErrNotFound
}

// CreateClass appends a new class with a fresh id.
func (s *Store) CreateClass(in model.ClassCreate) model.Class {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := model.Class{
		ID:           newID(),
		Name:         in.Name,
		Subject:      in.Subject,
		TeacherID:    in.TeacherID,
		TeacherName:  in.TeacherName,
		StudentCount: in.StudentCount,
		Schedule:     in.Schedule,
	}
	s.classes = append(s.classes, c)
	return c
}

// UpdateClass merges non-nil fields of the patch over the stored record.
func (s *Store) UpdateClass(id string, in model.ClassUpdate) (model.Class, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.classes {
		if s.classes[i].ID != id {
			continue
		}
		c := &s.classes[i]
		setString(&c.Name, in.Name)
		setString(&c.Subject, in.Subject)
		setString(&c.TeacherID, in.TeacherID)
		setString(&c.TeacherName, in.TeacherName)
		if in.StudentCount != nil {
			c.StudentCount = *in.StudentCount
		}
		if in.Schedule != nil {
			c.Schedule = *in.Schedule
		}
		return *c, nil
	}
	return model.Class{}, ErrNotFound
}

// DeleteClass removes a class by id, reporting whether one was removed.
func (s *Store) DeleteClass(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.classes {
		if c.ID == id {
			s.classes = append(s.classes[:i], s.classes[i+1:]...)
			return true
		}
	}
	return false
}

// -------- Activity feed / dashboard --------

// RecentActivities returns the newest entries of the activity feed, up to
// limit. A non-positive limit falls back to 5.
func (s *Store) RecentActivities(limit int) []model.ActivityItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = 5
	}
	if limit > len(s.activities) {
		limit = len(s.activities)
	}
	return append([]model.ActivityItem(nil), s.activities[:limit]...)
}

// Stats returns the dashboard snapshot. The numbers are a fixed fixture,
// not an aggregation over the live collections, and role is ignored.
func (s *Store) Stats(role model.Role) model.DashboardStats {
	return model.DashboardStats{
		TotalStudents:     320,
		TotalTeachers:     28,
		AverageAttendance: 93,
		AverageGrade:      86,
		PendingPayments:   45,
		UpcomingEvents:    12,
	}
}

// logActivity prepends a feed entry; callers hold the write lock.
func (s *Store) logActivity(actor model.User, action, target, typ string) {
	item := model.ActivityItem{
		ID:         newID(),
		UserID:     actor.ID,
		UserName:   actor.Name,
		UserAvatar: actor.Avatar,
		Action:     action,
		Target:     target,
		Date:       time.Now().UTC().Format("2006-01-02T15:04:05"),
		Type:       typ,
	}
	s.activities = append([]model.ActivityItem{item}, s.activities...)
}

func containsFold(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
