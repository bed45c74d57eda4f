package books

import (
	"gorm.io/datatypes"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
)

type CreateBookRequest struct {
	Title          string   `json:"title" binding:"required,max=100"`
	ISBN           string   `json:"isbn" binding:"required,max=30"`
	Classification string   `json:"classification" binding:"required,classification,max=25"`
	Summary        string   `json:"summary" binding:"max=500"`
	Editorial      string   `json:"editorial" binding:"required,len=26"`
	Language       string   `json:"language" binding:"required,max=15"`
	Edition        string   `json:"edition" binding:"max=10"`
	Sample         int      `json:"sample" binding:"min=0"`
	Location       string   `json:"location" binding:"required,max=100"`
	BookStatus     string   `json:"book_status" binding:"required,len=26"`
	Genres         []string `json:"genres"`
	BookCollection string   `json:"book_collection" binding:"required,len=26"`
	Authors        []string `json:"authors"`
	BookImg        string   `json:"book_img"`
}

func (r CreateBookRequest) Book() *model.Book {
	return &model.Book{
		Title:            r.Title,
		ISBN:             r.ISBN,
		Classification:   r.Classification,
		Summary:          r.Summary,
		EditorialID:      r.Editorial,
		Language:         r.Language,
		Edition:          r.Edition,
		Sample:           r.Sample,
		Location:         r.Location,
		BookStatusID:     r.BookStatus,
		Genres:           datatypes.NewJSONSlice(r.Genres),
		BookCollectionID: r.BookCollection,
		BookImg:          r.BookImg,
	}
}

type UpdateBookRequest struct {
	Title          *string   `json:"title" binding:"omitempty,max=100"`
	ISBN           *string   `json:"isbn" binding:"omitempty,max=30"`
	Classification *string   `json:"classification" binding:"omitempty,classification,max=25"`
	Summary        *string   `json:"summary" binding:"omitempty,max=500"`
	Editorial      *string   `json:"editorial" binding:"omitempty,len=26"`
	Language       *string   `json:"language" binding:"omitempty,max=15"`
	Edition        *string   `json:"edition" binding:"omitempty,max=10"`
	Sample         *int      `json:"sample" binding:"omitempty,min=0"`
	Location       *string   `json:"location" binding:"omitempty,max=100"`
	BookStatus     *string   `json:"book_status" binding:"omitempty,len=26"`
	Genres         *[]string `json:"genres"`
	BookCollection *string   `json:"book_collection" binding:"omitempty,len=26"`
	BookImg        *string   `json:"book_img"`
}

// Updates flattens the request into store column updates.
func (r UpdateBookRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.Title != nil {
		u["title"] = *r.Title
	}
	if r.ISBN != nil {
		u["isbn"] = *r.ISBN
	}
	if r.Classification != nil {
		u["classification"] = *r.Classification
	}
	if r.Summary != nil {
		u["summary"] = *r.Summary
	}
	if r.Editorial != nil {
		u["editorial_id"] = *r.Editorial
	}
	if r.Language != nil {
		u["language"] = *r.Language
	}
	if r.Edition != nil {
		u["edition"] = *r.Edition
	}
	if r.Sample != nil {
		u["sample"] = *r.Sample
	}
	if r.Location != nil {
		u["location"] = *r.Location
	}
	if r.BookStatus != nil {
		u["book_status_id"] = *r.BookStatus
	}
	if r.Genres != nil {
		u["genres"] = datatypes.NewJSONSlice(*r.Genres)
	}
	if r.BookCollection != nil {
		u["book_collection_id"] = *r.BookCollection
	}
	if r.BookImg != nil {
		u["book_img"] = *r.BookImg
	}
	return u
}
