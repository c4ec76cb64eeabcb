package player

import (
	"errors"
	"strconv"

	"github.com/Shuftle/shuftlib/cards"
)

type RandomBot struct {
	BotName string
	Src     cards.Source
}

func (b *RandomBot) Name() string {
	if b.BotName == "" {
		b.BotName = "RandomBot_" + strconv.Itoa(b.Src.Intn(100))
	}
	return b.BotName
}

func (b *RandomBot) PlayCard(hand, playable []cards.Card) (cards.Card, error) {
	if len(playable) == 0 {
		return cards.Card{}, errors.New("no playable cards")
	}
	return playable[b.Src.Intn(len(playable))], nil
}

func NewRandomBot(src cards.Source) Player {
	return &RandomBot{Src: src}
}
