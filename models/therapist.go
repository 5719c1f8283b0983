package models

// Therapist is the full detail-view snapshot fetched by id from
// GET /therapists/{id}. All fields are immutable server-side projections;
// the client never computes or validates their internal consistency.
type Therapist struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	PhotoURL             string   `json:"photoUrl"`
	Specialties          []string `json:"specialties"`
	Bio                  string   `json:"bio"`
	ExperienceYears      int      `json:"experienceYears"`
	Education            []string `json:"education"`
	Languages            []string `json:"languages"`
	Address              string   `json:"address"`
	Rating               float64  `json:"rating"`
	ReviewCount          int      `json:"reviewCount"`
	AcceptingNewPatients bool     `json:"isAcceptingNewPatients"`
	AverageSessionLength int      `json:"averageSessionLength"`
}

// TableName returns the name of the database table
// associated with the Therapist model.
func (t Therapist) TableName() string {
	return "therapists"
}

// TherapistSummary is the list-view projection returned by GET /therapists.
// It is a deliberately distinct shape from [Therapist]: the list trades bio
// and education for location, distance, and the next available slot.
type TherapistSummary struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	PhotoURL      string   `json:"photoUrl"`
	Specialties   []string `json:"specialties"`
	Location      string   `json:"location"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Distance      float64  `json:"distance"`
	NextAvailable string   `json:"nextAvailable"`
}

// Review is a patient review of a therapist.
type Review struct {
	ID          int     `json:"id"`
	PatientName string  `json:"patientName"`
	Rating      float64 `json:"rating"`
	Comment     string  `json:"comment"`
	Date        string  `json:"date"`
}

// RatingRequest is the payload of POST /therapists/{id}/rate.
type RatingRequest struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment,omitempty"`
}
