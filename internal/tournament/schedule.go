package tournament

// Pairing - one scheduled game; First places and moves first.
type Pairing struct {
	Round  int
	First  int
	Second int
}

// RoundRobin - every entrant meets every other entrant from both seats,
// gamesPerPairing times per seat order. Indexes refer to the entrant list.
func RoundRobin(entrants, gamesPerPairing int) []Pairing {
	var pairings []Pairing

	for round := range max(gamesPerPairing, 1) {
		for a := range entrants {
			for b := range entrants {
				if a == b {
					continue
				}

				pairings = append(pairings, Pairing{Round: round, First: a, Second: b})
			}
		}
	}

	return pairings
}
