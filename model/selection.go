package model

// Selection holds the face up cards that are not resolved yet.
type Selection struct {
	cards [2]*Card
	n     int
}

func (s *Selection) Push(c *Card) bool {
	if s.Full() {
		return false
	}
	s.cards[s.n] = c
	s.n++
	return true
}

func (s *Selection) Full() bool {
	return s.n == len(s.cards)
}

func (s *Selection) Len() int {
	return s.n
}

func (s *Selection) Pair() (*Card, *Card) {
	return s.cards[0], s.cards[1]
}

func (s *Selection) Clear() {
	s.cards = [2]*Card{}
	s.n = 0
}
