package model

// Role is a user's role within the school.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
)

// User represents an account that can sign in.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Student is an enrolled student record.
type Student struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Grade          string `json:"grade"`
	Status         string `json:"status"` // "active" or "inactive"
	EnrollmentDate string `json:"enrollmentDate"`
	ParentID       string `json:"parentId,omitempty"` // weak reference to a User
	Avatar         string `json:"avatar,omitempty"`
	Address        string `json:"address,omitempty"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	DateOfBirth    string `json:"dateOfBirth,omitempty"`
	Attendance     *int   `json:"attendance,omitempty"`   // 0-100
	AverageGrade   *int   `json:"averageGrade,omitempty"` // 0-100
}

// Teacher is a teaching staff record.
type Teacher struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Subject       string `json:"subject"`
	JoinDate      string `json:"joinDate"`
	Avatar        string `json:"avatar,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	Department    string `json:"department,omitempty"`
	Qualification string `json:"qualification,omitempty"`
}

// ClassSchedule is one recurring slot in a class timetable.
type ClassSchedule struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Room      string `json:"room"`
}

// Class is a taught class. TeacherName is a denormalized copy taken at
// write time; renaming a Teacher does not rewrite it.
type Class struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Subject      string          `json:"subject"`
	TeacherID    string          `json:"teacherId"`
	TeacherName  string          `json:"teacherName"`
	StudentCount int             `json:"studentCount"`
	Schedule     []ClassSchedule `json:"schedule"`
}

// ActivityItem is one entry in the append-only activity feed.
type ActivityItem struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar,omitempty"`
	Action     string `json:"action"`
	Target     string `json:"target"`
	Date       string `json:"date"` // ISO-8601
	Type       string `json:"type"` // message|grade|attendance|payment|system
}

// DashboardStats is the snapshot shown on the dashboard.
type DashboardStats struct {
	TotalStudents     int `json:"totalStudents"`
	TotalTeachers     int `json:"totalTeachers"`
	AverageAttendance int `json:"averageAttendance"`
	AverageGrade      int `json:"averageGrade"`
	PendingPayments   int `json:"pendingPayments"`
	UpcomingEvents    int `json:"upcomingEvents"`
}

// LoginRequest is the POST /api/auth/login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// StudentCreate is the payload for adding a student.
type StudentCreate struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Grade          string `json:"grade" binding:"required"`
	Status         string `json:"status" binding:"required,oneof=active inactive"`
	EnrollmentDate string `json:"enrollmentDate" binding:"required"`
	ParentID       string `json:"parentId"`
	Avatar         string `json:"avatar"`
	Address        string `json:"address"`
	PhoneNumber    string `json:"phoneNumber"`
	DateOfBirth    string `json:"dateOfBirth"`
	Attendance     *int   `json:"attendance" binding:"omitempty,min=0,max=100"`
	AverageGrade   *int   `json:"averageGrade" binding:"omitempty,min=0,max=100"`
}

// StudentUpdate is a partial update; nil fields keep their prior value.
type StudentUpdate struct {
	Name           *string `json:"name"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Grade          *string `json:"grade"`
	Status         *string `json:"status" binding:"omitempty,oneof=active inactive"`
	EnrollmentDate *string `json:"enrollmentDate"`
	ParentID       *string `json:"parentId"`
	Avatar         *string `json:"avatar"`
	Address        *string `json:"address"`
	PhoneNumber    *string `json:"phoneNumber"`
	DateOfBirth    *string `json:"dateOfBirth"`
	Attendance     *int    `json:"attendance" binding:"omitempty,min=0,max=100"`
	AverageGrade   *int    `json:"averageGrade" binding:"omitempty,min=0,max=100"`
}

// TeacherCreate is the payload for adding a teacher.
type TeacherCreate struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Subject       string `json:"subject" binding:"required"`
	JoinDate      string `json:"joinDate" binding:"required"`
	Avatar        string `json:"avatar"`
	PhoneNumber   string `json:"phoneNumber"`
	Department    string `json:"department"`
	Qualification string `json:"qualification"`
}

// TeacherUpdate is a partial update; nil fields keep their prior value.
type TeacherUpdate struct {
	Name          *string `json:"name"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Subject       *string `json:"subject"`
	JoinDate      *string `json:"joinDate"`
	Avatar        *string `json:"avatar"`
	PhoneNumber   *string `json:"phoneNumber"`
	Department    *string `json:"department"`
	Qualification *string `json:"qualification"`
}

// ClassCreate is the payload for adding a class.
type ClassCreate struct {
	Name         string          `json:"name" binding:"required"`
	Subject      string          `json:"subject" binding:"required"`
	TeacherID    string          `json:"teacherId" binding:"required"`
	TeacherName  string          `json:"teacherName" binding:"required"`
	StudentCount int             `json:"studentCount" binding:"min=0"`
	Schedule     []ClassSchedule `json:"schedule"`
}

// ClassUpdate is a partial update; nil fields keep their prior value.
type ClassUpdate struct {
	Name         *string          `json:"name"`
	Subject      *string          `json:"subject"`
	TeacherID    *string          `json:"teacherId"`
	TeacherName  *string          `json:"teacherName"`
	StudentCount *int             `json:"studentCount" binding:"omitempty,min=0"`
	Schedule     *[]ClassSchedule `json:"schedule"`
}
