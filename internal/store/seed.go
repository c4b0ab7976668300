package store

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/developpeurInf/focus-academia-hub/internal/model"
)

// seed loads the fixture dataset. The process starts from this state on
// every boot; nothing is persisted.
func (s *Store) seed() {
	s.users = []model.User{
		{ID: "1", Name: "Admin User", Email: "admin@focus.edu", Role: model.RoleAdmin, Avatar: "/placeholder.svg"},
		{ID: "2", Name: "John Smith", Email: "john@focus.edu", Role: model.RoleTeacher, Avatar: "/placeholder.svg"},
		{ID: "3", Name: "Emma Wilson", Email: "emma@focus.edu", Role: model.RoleStudent, Avatar: "/placeholder.svg"},
		{ID: "4", Name: "Robert Wilson", Email: "robert@focus.edu", Role: model.RoleParent, Avatar: "/placeholder.svg"},
	}

	// Passwords live apart from the user records; only the auth service
	// ever reads them.
	for email, plain := range map[string]string{
		"admin@focus.edu":  "adminpass",
		"john@focus.edu":   "johnpass",
		"emma@focus.edu":   "emmapass",
		"robert@focus.edu": "robertpass",
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("seed credential for %s: %v", email, err)
		}
		s.credentials[email] = string(hash)
	}

	s.students = []model.Student{
		{
			ID: "1", Name: "Emma Wilson", Email: "emma@focus.edu", Grade: "10th",
			Status: "active", EnrollmentDate: "2022-09-01", ParentID: "4",
			Avatar: "/placeholder.svg", Address: "123 School St, Education City",
			PhoneNumber: "(555) 123-4567", DateOfBirth: "2006-05-15",
			Attendance: intPtr(94), AverageGrade: intPtr(88),
		},
		{
			ID: "2", Name: "Michael Johnson", Email: "michael@focus.edu", Grade: "10th",
			Status: "active", EnrollmentDate: "2022-09-02",
			Avatar: "/placeholder.svg", Address: "456 Learning Ave, Knowledge Town",
			PhoneNumber: "(555) 234-5678", DateOfBirth: "2006-08-23",
			Attendance: intPtr(89), AverageGrade: intPtr(92),
		},
		{
			ID: "3", Name: "Sophia Brown", Email: "sophia@focus.edu", Grade: "11th",
			Status: "active", EnrollmentDate: "2021-09-01",
			Avatar: "/placeholder.svg", Address: "789 Education Blvd, Wisdom City",
			PhoneNumber: "(555) 345-6789", DateOfBirth: "2005-02-10",
			Attendance: intPtr(97), AverageGrade: intPtr(95),
		},
		{
			ID: "4", Name: "Daniel Taylor", Email: "daniel@focus.edu", Grade: "9th",
			Status: "active", EnrollmentDate: "2023-09-01",
			Avatar: "/placeholder.svg", Address: "101 School Rd, Learning Heights",
			PhoneNumber: "(555) 456-7890", DateOfBirth: "2007-11-05",
			Attendance: intPtr(91), AverageGrade: intPtr(84),
		},
		{
			ID: "5", Name: "Olivia Martinez", Email: "olivia@focus.edu", Grade: "12th",
			Status: "active", EnrollmentDate: "2020-09-01",
			Avatar: "/placeholder.svg", Address: "202 Academy St, Scholarship Hills",
			PhoneNumber: "(555) 567-8901", DateOfBirth: "2004-07-22",
			Attendance: intPtr(96), AverageGrade: intPtr(91),
		},
	}

	s.teachers = []model.Teacher{
		{
			ID: "1", Name: "John Smith", Email: "john@focus.edu", Subject: "Mathematics",
			JoinDate: "2020-08-15", Avatar: "/placeholder.svg", PhoneNumber: "(555) 123-4567",
			Department: "Science", Qualification: "Ph.D. in Mathematics",
		},
		{
			ID: "2", Name: "Sarah Johnson", Email: "sarah@focus.edu", Subject: "English",
			JoinDate: "2019-07-10", Avatar: "/placeholder.svg", PhoneNumber: "(555) 234-5678",
			Department: "Humanities", Qualification: "M.A. in English Literature",
		},
		{
			ID: "3", Name: "Robert Chen", Email: "robert.chen@focus.edu", Subject: "Physics",
			JoinDate: "2021-01-05", Avatar: "/placeholder.svg", PhoneNumber: "(555) 345-6789",
			Department: "Science", Qualification: "Ph.D. in Physics",
		},
		{
			ID: "4", Name: "Maria Garcia", Email: "maria@focus.edu", Subject: "Biology",
			JoinDate: "2018-09-01", Avatar: "/placeholder.svg", PhoneNumber: "(555) 456-7890",
			Department: "Science", Qualification: "M.S. in Biology",
		},
		{
			ID: "5", Name: "James Wilson", Email: "james@focus.edu", Subject: "History",
			JoinDate: "2020-02-15", Avatar: "/placeholder.svg", PhoneNumber: "(555) 567-8901",
			Department: "Humanities", Qualification: "Ph.D. in History",
		},
	}

	s.classes = []model.Class{
		{
			ID: "1", Name: "Math 101", Subject: "Mathematics",
			TeacherID: "2", TeacherName: "John Smith", StudentCount: 28,
			Schedule: []model.ClassSchedule{
				{Day: "Monday", StartTime: "09:00", EndTime: "10:30", Room: "A101"},
				{Day: "Wednesday", StartTime: "09:00", EndTime: "10:30", Room: "A101"},
			},
		},
		{
			ID: "2", Name: "English Literature", Subject: "English",
			TeacherID: "5", TeacherName: "Sarah Johnson", StudentCount: 24,
			Schedule: []model.ClassSchedule{
				{Day: "Tuesday", StartTime: "11:00", EndTime: "12:30", Room: "B205"},
				{Day: "Thursday", StartTime: "11:00", EndTime: "12:30", Room: "B205"},
			},
		},
		{
			ID: "3", Name: "Physics Fundamentals", Subject: "Physics",
			TeacherID: "6", TeacherName: "Robert Chen", StudentCount: 20,
			Schedule: []model.ClassSchedule{
				{Day: "Monday", StartTime: "13:00", EndTime: "14:30", Room: "C310"},
				{Day: "Wednesday", StartTime: "13:00", EndTime: "14:30", Room: "C310"},
				{Day: "Friday", StartTime: "10:00", EndTime: "11:30", Room: "C310"},
			},
		},
		{
			ID: "4", Name: "Biology 101", Subject: "Biology",
			TeacherID: "7", TeacherName: "Maria Garcia", StudentCount: 26,
			Schedule: []model.ClassSchedule{
				{Day: "Tuesday", StartTime: "09:00", EndTime: "10:30", Room: "D110"},
				{Day: "Thursday", StartTime: "09:00", EndTime: "10:30", Room: "D110"},
			},
		},
		{
			ID: "5", Name: "World History", Subject: "History",
			TeacherID: "8", TeacherName: "James Wilson", StudentCount: 30,
			Schedule: []model.ClassSchedule{
				{Day: "Wednesday", StartTime: "11:00", EndTime: "12:30", Room: "A210"},
				{Day: "Friday", StartTime: "13:00", EndTime: "14:30", Room: "A210"},
			},
		},
	}

	// Newest first.
	s.activities = []model.ActivityItem{
		{
			ID: "1", UserID: "2", UserName: "John Smith", UserAvatar: "/placeholder.svg",
			Action: "graded assignment for", Target: "Class 10A - Mathematics",
			Date: "2023-09-15T10:30:00", Type: "grade",
		},
		{
			ID: "2", UserID: "1", UserName: "Admin User", UserAvatar: "/placeholder.svg",
			Action: "added new student", Target: "Daniel Taylor",
			Date: "2023-09-14T14:15:00", Type: "system",
		},
		{
			ID: "3", UserID: "3", UserName: "Emma Wilson", UserAvatar: "/placeholder.svg",
			Action: "submitted assignment for", Target: "English Literature",
			Date: "2023-09-14T09:45:00", Type: "system",
		},
		{
			ID: "4", UserID: "2", UserName: "John Smith", UserAvatar: "/placeholder.svg",
			Action: "marked attendance for", Target: "Class 10A",
			Date: "2023-09-13T08:30:00", Type: "attendance",
		},
		{
			ID: "5", UserID: "4", UserName: "Robert Wilson", UserAvatar: "/placeholder.svg",
			Action: "made payment for", Target: "Tuition Fee - September",
			Date: "2023-09-12T11:20:00", Type: "payment",
		},
	}
}

func intPtr(v int) *int { return &v }
