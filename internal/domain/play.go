package domain

type Actor struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (a Actor) FullName() string {
	return a.FirstName + " " + a.LastName
}

type Genre struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Play struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Genres      []Genre `json:"genres"`
	Actors      []Actor `json:"actors"`
}

// PlayFilter narrows play listings. Zero values mean "no filter".
type PlayFilter struct {
	Title    string
	GenreIDs []uint
	ActorIDs []uint
}
