package response

import "github.com/saywin/airport-api-service/internal/domain"

type Crew struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

// CrewList exposes only the full name, for list views.
type CrewList struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
}

func NewCrew(crew domain.Crew) Crew {
	return Crew{
		ID:        crew.ID,
		FirstName: crew.FirstName,
		LastName:  crew.LastName,
		FullName:  crew.FullName(),
	}
}

func NewCrewList(crew domain.Crew) CrewList {
	return CrewList{
		ID:       crew.ID,
		FullName: crew.FullName(),
	}
}

func NewCrewLists(crew []domain.Crew) []CrewList {
	out := make([]CrewList, 0, len(crew))
	for _, c := range crew {
		out = append(out, NewCrewList(c))
	}

	return out
}
