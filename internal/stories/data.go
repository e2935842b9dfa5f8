package stories

import (
	"strconv"

	"datatable/internal/domain"
)

// User is the record shown by the demo stories
type User struct {
	ID    int    `table:"id"`
	Name  string `table:"name"`
	Email string `table:"email"`
}

// UserKey identifies users by ID
func UserKey(u User) string {
	return strconv.Itoa(u.ID)
}

// UserColumns are the columns shown by the demo stories
func UserColumns() []domain.Column {
	return []domain.Column{
		{Key: "name", Title: "Name", DataIndex: "name", Sortable: true},
		{Key: "email", Title: "Email", DataIndex: "email", Sortable: true},
	}
}

// Users returns the demo data set
func Users() []User {
	return []User{
		{ID: 1, Name: "Amit Sharma", Email: "amit.sharma@example.com"},
		{ID: 2, Name: "Priya Singh", Email: "priya.singh@example.com"},
		{ID: 3, Name: "Rahul Verma", Email: "rahul.verma@example.com"},
		{ID: 4, Name: "Sneha Patel", Email: "sneha.patel@example.com"},
		{ID: 5, Name: "Vikas Gupta", Email: "vikas.gupta@example.com"},
	}
}
