package game

import "math/rand"

// buildOrder produces the drawer rotation for a whole game: one uniform
// permutation of the roster per round, concatenated. Entries are player ids,
// resolved against the live roster when consumed, so departed players are
// skipped rather than invalidating the order.
func buildOrder(players []*Player, rounds int) []string {
	if len(players) == 0 {
		return nil
	}
	order := make([]string, 0, rounds*len(players))
	pass := make([]string, len(players))
	for i, p := range players {
		pass[i] = p.id
	}
	for i := 0; i < rounds; i++ {
		rand.Shuffle(len(pass), func(a, b int) {
			pass[a], pass[b] = pass[b], pass[a]
		})
		order = append(order, pass...)
	}
	return order
}
