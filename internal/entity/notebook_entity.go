package entity

type Notebook struct {
	Id        int64
	Name      string
	CreatedAt string
}
