package registration

import "community_site/internal/models"

// Counts is the head count of one registration. A nil counter means the
// bucket had nobody in it; zero is never stored.
type Counts struct {
	People  int  `json:"people"`
	Adults  *int `json:"adult"`
	Teens   *int `json:"teens"`
	Kids    *int `json:"kids"`
	Males   *int `json:"males"`
	Females *int `json:"females"`
}

type tally struct {
	people, adults, teens, kids, males, females int
}

func (t *tally) add(age models.AgeBand, sex models.Sex) {
	t.people++
	switch age {
	case models.AgeKid:
		t.kids++
	case models.AgeTeen:
		t.teens++
	case models.AgeAdult:
		t.adults++
	}
	switch sex {
	case models.SexMale:
		t.males++
	case models.SexFemale:
		t.females++
	}
}

func nilIfZero(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

// Aggregate counts the registrant and every guest by age band and sex.
func Aggregate(registrant Registrant, guests []Guest) Counts {
	var t tally
	t.add(registrant.Age, registrant.Sex)
	for _, g := range guests {
		t.add(g.Age, g.Sex)
	}
	return Counts{
		People:  t.people,
		Adults:  nilIfZero(t.adults),
		Teens:   nilIfZero(t.teens),
		Kids:    nilIfZero(t.kids),
		Males:   nilIfZero(t.males),
		Females: nilIfZero(t.females),
	}
}
