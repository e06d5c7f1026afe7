package seeder

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

type questionTemplate struct {
	question string
	options  []string
}

var questions = []questionTemplate{
	{"Tabs or spaces? #code #style", []string{"Tabs", "Spaces", "Whatever gofmt says"}},
	{"Best language for backend services? #code #backend", []string{"Go", "Rust", "Java", "Python"}},
	{"Which database for a new project? #backend #db", []string{"PostgreSQL", "MySQL", "SQLite"}},
	{"Morning coffee or tea? #food #morning", []string{"Coffee", "Tea", "Neither"}},
	{"Favourite season? #weather", []string{"Spring", "Summer", "Autumn", "Winter"}},
	{"Cats or dogs? #pets", []string{"Cats", "Dogs"}},
	{"Remote, hybrid or office? #work", []string{"Remote", "Hybrid", "Office"}},
	{"Pineapple on pizza? #food #pizza", []string{"Yes", "No", "Only on Fridays"}},
	{"Preferred editor? #code #tools", []string{"Vim", "Emacs", "VS Code", "GoLand"}},
	{"Best way to spend a weekend? #leisure", []string{"Hiking", "Reading", "Gaming", "Sleeping"}},
	{"How do you commute? #city #work", []string{"Bike", "Transit", "Car", "Walk"}},
	{"Favourite board game? #leisure #games", []string{"Chess", "Go", "Catan", "Carcassonne"}},
}

var remarks = []string{
	"Interesting question!",
	"I changed my mind twice before voting.",
	"Surprised by the results so far.",
	"Missing an option here.",
	"This one is easy.",
	"Great poll, sharing with friends.",
}

var firstNames = []string{"Ada", "Alan", "Barbara", "Dennis", "Edsger", "Grace", "Ken", "Margaret", "Niklaus", "Rob"}

var lastNames = []string{"Lovelace", "Turing", "Liskov", "Ritchie", "Dijkstra", "Hopper", "Thompson", "Hamilton", "Wirth", "Pike"}

// newID draws a UUIDv4 from rnd so runs with the same seed are repeatable.
func newID(rnd *rand.Rand) uuid.UUID {
	var b [16]byte
	for i := 0; i < 16; i += 8 {
		v := rnd.Uint64()
		for j := range 8 {
			b[i+j] = byte(v >> (8 * j))
		}
	}
	id, _ := uuid.FromBytes(b[:])
	id[6] = (id[6] & 0x0f) | 0x40
	id[8] = (id[8] & 0x3f) | 0x80
	return id
}
