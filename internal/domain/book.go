package domain

import (
	"time"
)

type Author struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio"`
}

func (a *Author) FullName() string {
	return a.FirstName + " " + a.LastName
}

type BookTagName string

const (
	TagFiction         BookTagName = "Fiction"
	TagFantasy         BookTagName = "Fantasy"
	TagComedy          BookTagName = "Comedy"
	TagAdventure       BookTagName = "Adventure"
	TagRomance         BookTagName = "Romance"
	TagSciFi           BookTagName = "Sci-Fi"
	TagHistory         BookTagName = "History"
	TagSelfImprovement BookTagName = "Self Improvement"
)

type BookTag struct {
	ID          int64       `json:"id"`
	Name        BookTagName `json:"name"`
	Description string      `json:"description"`
}

type Book struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	PublicationDate *time.Time `json:"publicationDate"`
	ISBN            string     `json:"isbn"`
	Price           string     `json:"price"`
	AuthorIDs       []int64    `json:"authors"`
	TagIDs          []int64    `json:"tags"`
	DateUpdated     time.Time  `json:"dateUpdated"`
}

type BookImage struct {
	ID         int64  `json:"id"`
	BookID     int64  `json:"book"`
	CoverImage string `json:"coverImage"`
	Thumbnail  string `json:"thumbnail,omitempty"`
}
