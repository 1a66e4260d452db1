package model

type Pokemon struct {
	ID        string `json:"id"`
	PokeID    int    `json:"poke_id"`
	Name      string `json:"name"`
	SpriteURL string `json:"sprite_url"`
}

type Item struct {
	ID        string `json:"id"`
	ItemID    int    `json:"item_id"`
	Name      string `json:"name"`
	SpriteURL string `json:"sprite_url"`
}
