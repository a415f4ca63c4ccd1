package entities

type Supervisor struct {
	ID    int64
	Name  string
	Phone string
	Email string
}
