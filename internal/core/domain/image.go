package domain

type Image struct {
	ID       string
	Data     string
	Filename string
}
