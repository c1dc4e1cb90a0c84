package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateActorRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (req *CreateActorRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 255)),
	)
}

type CreateGenreRequest struct {
	Name string `json:"name"`
}

func (req *CreateGenreRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
	)
}

type CreatePlayRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GenreIDs    []uint `json:"genres"`
	ActorIDs    []uint `json:"actors"`
}

func (req *CreatePlayRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
	)
}

type CreateHallRequest struct {
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
}

func (req *CreateHallRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Rows, validation.Required, validation.Min(1)),
		validation.Field(&req.SeatsInRow, validation.Required, validation.Min(1)),
	)
}

type CreatePerformanceRequest struct {
	PlayID        uint   `json:"play"`
	TheatreHallID uint   `json:"theatre_hall"`
	ShowTime      string `json:"show_time"`
}

func (req *CreatePerformanceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PlayID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.TheatreHallID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.ShowTime, validation.Required, validation.Date("2006-01-02T15:04:05Z07:00")),
	)
}
