package entity

type Player struct {
	ID   string
	Mark string
	Bot  bool
}

func (that *Player) IsBot() bool {
	return that.Bot
}
