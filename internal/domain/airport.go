package domain

type Airport struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

type Route struct {
	ID            uint    `json:"id"`
	Distance      int     `json:"distance"`
	SourceID      uint    `json:"source_id"`
	DestinationID uint    `json:"destination_id"`
	Source        Airport `json:"source"`
	Destination   Airport `json:"destination"`
}
